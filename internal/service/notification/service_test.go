package notification

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	rows   []notification.Notification
	nextID int
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	f.nextID++
	n.ID = fmt.Sprintf("notif-%d", f.nextID)
	n.CreatedAt = time.Now()
	f.rows = append(f.rows, *n)
	return nil
}

func (f *fakeNotificationRepo) ListForUser(ctx context.Context, userID string, limit int) ([]notification.Notification, error) {
	var out []notification.Notification
	for i := len(f.rows) - 1; i >= 0 && len(out) < limit; i-- {
		n := f.rows[i]
		personal := n.RecipientID != nil && *n.RecipientID == userID
		if personal || n.Target == notification.TargetAll {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(ctx context.Context, userID string) (int, error) {
	count := 0
	for _, n := range f.rows {
		if n.RecipientID != nil && *n.RecipientID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id, userID string) (*notification.Notification, error) {
	for i := range f.rows {
		n := &f.rows[i]
		if n.ID == id && n.RecipientID != nil && *n.RecipientID == userID {
			n.IsRead = true
			found := *n
			return &found, nil
		}
	}
	return nil, notification.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) ClearForUser(ctx context.Context, userID string) error {
	var kept []notification.Notification
	for _, n := range f.rows {
		if n.RecipientID != nil && *n.RecipientID == userID {
			continue
		}
		kept = append(kept, n)
	}
	f.rows = kept
	return nil
}

func TestNotificationService_Broadcast_SingleRow(t *testing.T) {
	ctx := context.Background()
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	resp, err := svc.Broadcast(ctx, notification.BroadcastRequest{
		SenderID: "admin-1",
		Title:    "Office closed Friday",
		Message:  "The office is closed for the public holiday.",
	})

	require.NoError(t, err)
	assert.Equal(t, notification.TargetAll, resp.Target)

	// One stored row reaches every user; no per-recipient fan-out.
	require.Len(t, repo.rows, 1)
	assert.Nil(t, repo.rows[0].RecipientID)
}

func TestNotificationService_List_MixesPersonalAndBroadcast(t *testing.T) {
	ctx := context.Background()
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	sender := "admin-1"
	require.NoError(t, svc.Notify(ctx, "user-1", &sender, "Task", "New task for you"))
	require.NoError(t, svc.Notify(ctx, "user-2", &sender, "Task", "New task for someone else"))
	_, err := svc.Broadcast(ctx, notification.BroadcastRequest{
		SenderID: sender,
		Title:    "Announcement",
		Message:  "Town hall at 4pm",
	})
	require.NoError(t, err)

	resp, err := svc.List(ctx, "user-1")

	require.NoError(t, err)
	assert.Len(t, resp.Notifications, 2)
	// Broadcasts carry no read state, so only the personal row counts.
	assert.Equal(t, 1, resp.UnreadCount)
}

func TestNotificationService_List_CapsAtLimit(t *testing.T) {
	ctx := context.Background()
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	sender := "admin-1"
	for i := 0; i < ListLimit+5; i++ {
		require.NoError(t, svc.Notify(ctx, "user-1", &sender, "Ping", fmt.Sprintf("message %d", i)))
	}

	resp, err := svc.List(ctx, "user-1")

	require.NoError(t, err)
	assert.Len(t, resp.Notifications, ListLimit)
	assert.Equal(t, ListLimit+5, resp.UnreadCount)
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	sender := "admin-1"
	require.NoError(t, svc.Notify(ctx, "user-1", &sender, "Task", "New task"))
	id := repo.rows[0].ID

	resp, err := svc.MarkRead(ctx, id, "user-1")

	require.NoError(t, err)
	assert.True(t, resp.IsRead)

	list, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, list.UnreadCount)
}

func TestNotificationService_MarkRead_OtherUsersRow(t *testing.T) {
	ctx := context.Background()
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	sender := "admin-1"
	require.NoError(t, svc.Notify(ctx, "user-1", &sender, "Task", "New task"))
	id := repo.rows[0].ID

	_, err := svc.MarkRead(ctx, id, "user-2")

	assert.ErrorIs(t, err, notification.ErrNotificationNotFound)
}

func TestNotificationService_Clear_LeavesBroadcasts(t *testing.T) {
	ctx := context.Background()
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	sender := "admin-1"
	require.NoError(t, svc.Notify(ctx, "user-1", &sender, "Task", "New task"))
	_, err := svc.Broadcast(ctx, notification.BroadcastRequest{
		SenderID: sender,
		Title:    "Announcement",
		Message:  "Town hall at 4pm",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "user-1"))

	resp, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, resp.Notifications, 1)
	assert.Equal(t, notification.TargetAll, resp.Notifications[0].Target)
}

func TestNotificationService_Broadcast_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewNotificationService(&fakeNotificationRepo{})

	_, err := svc.Broadcast(ctx, notification.BroadcastRequest{SenderID: "admin-1"})

	assert.Error(t, err)
}

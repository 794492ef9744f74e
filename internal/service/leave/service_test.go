package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/leave"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/notification"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	requests []leave.LeaveRequest
	nextID   int
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	l.ID = fmt.Sprintf("leave-%d", f.nextID)
	l.CreatedAt = time.Now()
	f.requests = append(f.requests, l)
	return l, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	for _, l := range f.requests {
		if l.ID == id {
			return l, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, l := range f.requests {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListUpcoming(ctx context.Context, today time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, l := range f.requests {
		if !l.StartDate.Before(today) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListHistorical(ctx context.Context, today time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, l := range f.requests {
		if l.StartDate.Before(today) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListActiveOn(ctx context.Context, date time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, l := range f.requests {
		if l.Status == leave.StatusApproved && !date.Before(l.StartDate) && !date.After(l.EndDate) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status, rejectionReason *string) (leave.LeaveRequest, error) {
	for i, l := range f.requests {
		if l.ID == id {
			f.requests[i].Status = status
			f.requests[i].RejectionReason = rejectionReason
			return f.requests[i], nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error {
	for i, l := range f.requests {
		if l.ID == id {
			f.requests = append(f.requests[:i], f.requests[i+1:]...)
			return nil
		}
	}
	return leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) CountByStatus(ctx context.Context, status leave.Status) (int, error) {
	n := 0
	for _, l := range f.requests {
		if l.Status == status {
			n++
		}
	}
	return n, nil
}

type sentNotification struct {
	RecipientID string
	Title       string
	Message     string
}

type fakeNotifier struct {
	sent []sentNotification
}

func (f *fakeNotifier) Notify(ctx context.Context, recipientID string, senderID *string, title, message string) error {
	f.sent = append(f.sent, sentNotification{RecipientID: recipientID, Title: title, Message: message})
	return nil
}

func (f *fakeNotifier) Broadcast(ctx context.Context, req notification.BroadcastRequest) (notification.NotificationResponse, error) {
	return notification.NotificationResponse{}, nil
}

func (f *fakeNotifier) List(ctx context.Context, userID string) (notification.ListResponse, error) {
	return notification.ListResponse{}, nil
}

func (f *fakeNotifier) MarkRead(ctx context.Context, id, userID string) (notification.NotificationResponse, error) {
	return notification.NotificationResponse{}, nil
}

func (f *fakeNotifier) Clear(ctx context.Context, userID string) error {
	return nil
}

func newTestLeaveService(now time.Time) (*leaveServiceImpl, *fakeLeaveRepo, *fakeNotifier) {
	repo := &fakeLeaveRepo{}
	notifier := &fakeNotifier{}
	svc := &leaveServiceImpl{
		leaveRepo:       repo,
		notificationSvc: notifier,
		now:             func() time.Time { return now },
	}
	return svc, repo, notifier
}

var leaveTestNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func TestLeaveService_Apply_Success(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestLeaveService(leaveTestNow)

	resp, err := svc.Apply(ctx, leave.ApplyRequest{
		UserID:    "user-1",
		LeaveDate: "2026-03-10",
		EndDate:   "2026-03-12",
		Reason:    "Family event",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Equal(t, 3, resp.Days)
	assert.Len(t, repo.requests, 1)
}

func TestLeaveService_Apply_EndBeforeStart(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestLeaveService(leaveTestNow)

	_, err := svc.Apply(ctx, leave.ApplyRequest{
		UserID:    "user-1",
		LeaveDate: "2026-03-12",
		EndDate:   "2026-03-10",
		Reason:    "Trip",
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "end_date")
}

func TestLeaveService_Apply_StartEqualsEnd(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestLeaveService(leaveTestNow)

	_, err := svc.Apply(ctx, leave.ApplyRequest{
		UserID:    "user-1",
		LeaveDate: "2026-03-10",
		EndDate:   "2026-03-10",
		Reason:    "Appointment",
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "end_date")
}

func TestLeaveService_Apply_PastStart(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestLeaveService(leaveTestNow)

	_, err := svc.Apply(ctx, leave.ApplyRequest{
		UserID:    "user-1",
		LeaveDate: "2026-03-01",
		EndDate:   "2026-03-05",
		Reason:    "Trip",
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "leave_date")
}

func TestLeaveService_Apply_StartToday(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestLeaveService(leaveTestNow)

	// Today is allowed even though the clock is already past midnight.
	_, err := svc.Apply(ctx, leave.ApplyRequest{
		UserID:    "user-1",
		LeaveDate: "2026-03-02",
		EndDate:   "2026-03-04",
		Reason:    "Sick leave",
	})

	assert.NoError(t, err)
}

func TestLeaveService_Apply_MissingFields(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestLeaveService(leaveTestNow)

	_, err := svc.Apply(ctx, leave.ApplyRequest{UserID: "user-1"})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "leave_date")
	assert.Contains(t, m, "end_date")
	assert.Contains(t, m, "reason")
}

func TestLeaveService_ActiveOn_ApprovedLeavesCoveringTheDate(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestLeaveService(leaveTestNow)

	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }
	repo.requests = []leave.LeaveRequest{
		{ID: "leave-1", UserID: "user-1", StartDate: day(9), EndDate: day(11), Status: leave.StatusApproved},
		{ID: "leave-2", UserID: "user-2", StartDate: day(10), EndDate: day(10), Status: leave.StatusPending},
		{ID: "leave-3", UserID: "user-3", StartDate: day(12), EndDate: day(14), Status: leave.StatusApproved},
	}

	// A timestamp mid-day resolves to the same calendar date.
	active, err := svc.ActiveOn(ctx, time.Date(2026, 3, 10, 15, 45, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "leave-1", active[0].ID)
}

func TestLeaveService_UpdateStatus_ApproveNotifies(t *testing.T) {
	ctx := context.Background()
	svc, _, notifier := newTestLeaveService(leaveTestNow)

	created, err := svc.Apply(ctx, leave.ApplyRequest{
		UserID:    "user-1",
		LeaveDate: "2026-03-10",
		EndDate:   "2026-03-12",
		Reason:    "Trip",
	})
	require.NoError(t, err)

	resp, err := svc.UpdateStatus(ctx, "admin-1", leave.UpdateStatusRequest{
		LeaveID: created.ID,
		Status:  string(leave.StatusApproved),
	})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, resp.Status)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "user-1", notifier.sent[0].RecipientID)
	assert.Equal(t, "Leave Request Approved", notifier.sent[0].Title)
	assert.Contains(t, notifier.sent[0].Message, "2026-03-10 to 2026-03-12")
}

func TestLeaveService_UpdateStatus_RejectCarriesReason(t *testing.T) {
	ctx := context.Background()
	svc, _, notifier := newTestLeaveService(leaveTestNow)

	created, err := svc.Apply(ctx, leave.ApplyRequest{
		UserID:    "user-1",
		LeaveDate: "2026-03-10",
		EndDate:   "2026-03-12",
		Reason:    "Trip",
	})
	require.NoError(t, err)

	reason := "Too many people out that week"
	resp, err := svc.UpdateStatus(ctx, "admin-1", leave.UpdateStatusRequest{
		LeaveID:         created.ID,
		Status:          string(leave.StatusRejected),
		RejectionReason: &reason,
	})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, reason, *resp.RejectionReason)
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0].Message, "rejected")
	assert.Contains(t, notifier.sent[0].Message, reason)
}

func TestLeaveService_UpdateStatus_PendingDoesNotNotify(t *testing.T) {
	ctx := context.Background()
	svc, _, notifier := newTestLeaveService(leaveTestNow)

	created, err := svc.Apply(ctx, leave.ApplyRequest{
		UserID:    "user-1",
		LeaveDate: "2026-03-10",
		EndDate:   "2026-03-12",
		Reason:    "Trip",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, "admin-1", leave.UpdateStatusRequest{
		LeaveID: created.ID,
		Status:  string(leave.StatusPending),
	})

	require.NoError(t, err)
	assert.Empty(t, notifier.sent)
}

func TestLeaveService_UpdateStatus_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestLeaveService(leaveTestNow)

	_, err := svc.UpdateStatus(ctx, "admin-1", leave.UpdateStatusRequest{
		LeaveID: "missing",
		Status:  string(leave.StatusApproved),
	})

	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveService_UpdateStatus_ReasonIgnoredOnApprove(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestLeaveService(leaveTestNow)

	created, err := svc.Apply(ctx, leave.ApplyRequest{
		UserID:    "user-1",
		LeaveDate: "2026-03-10",
		EndDate:   "2026-03-12",
		Reason:    "Trip",
	})
	require.NoError(t, err)

	reason := "should not be stored"
	_, err = svc.UpdateStatus(ctx, "admin-1", leave.UpdateStatusRequest{
		LeaveID:         created.ID,
		Status:          string(leave.StatusApproved),
		RejectionReason: &reason,
	})

	require.NoError(t, err)
	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.RejectionReason)
}

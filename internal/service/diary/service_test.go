package diary

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/diary"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDiaryRepo struct {
	diaries []diary.DailyDiary
	nextID  int
}

func (f *fakeDiaryRepo) Create(ctx context.Context, d diary.DailyDiary) (diary.DailyDiary, error) {
	f.nextID++
	d.ID = fmt.Sprintf("diary-%d", f.nextID)
	d.CreatedAt = time.Now()
	f.diaries = append(f.diaries, d)
	return d, nil
}

func (f *fakeDiaryRepo) GetByID(ctx context.Context, id string) (diary.DailyDiary, error) {
	for _, d := range f.diaries {
		if d.ID == id {
			return d, nil
		}
	}
	return diary.DailyDiary{}, diary.ErrDiaryNotFound
}

func (f *fakeDiaryRepo) ListAll(ctx context.Context, withReplier bool) ([]diary.DailyDiary, error) {
	return f.diaries, nil
}

func (f *fakeDiaryRepo) ListByUser(ctx context.Context, userID string) ([]diary.DailyDiary, error) {
	var out []diary.DailyDiary
	for _, d := range f.diaries {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDiaryRepo) Update(ctx context.Context, d diary.DailyDiary) error {
	for i := range f.diaries {
		if f.diaries[i].ID == d.ID {
			f.diaries[i] = d
			return nil
		}
	}
	return diary.ErrDiaryNotFound
}

func (f *fakeDiaryRepo) Delete(ctx context.Context, id string) error {
	for i, d := range f.diaries {
		if d.ID == id {
			f.diaries = append(f.diaries[:i], f.diaries[i+1:]...)
			return nil
		}
	}
	return diary.ErrDiaryNotFound
}

func (f *fakeDiaryRepo) DeleteByUser(ctx context.Context, id, userID string) error {
	for i, d := range f.diaries {
		if d.ID == id && d.UserID == userID {
			f.diaries = append(f.diaries[:i], f.diaries[i+1:]...)
			return nil
		}
	}
	return diary.ErrDiaryNotFound
}

type fakeFileService struct{}

func (f *fakeFileService) UploadProfileImage(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	return "profiles/" + userID + "/" + filename, nil
}

func (f *fakeFileService) UploadTaskAttachment(ctx context.Context, taskOwnerID string, file io.Reader, filename string) (string, error) {
	return "tasks/" + taskOwnerID + "/" + filename, nil
}

func (f *fakeFileService) UploadDiaryAttachment(ctx context.Context, userID string, date time.Time, file io.Reader, filename string) (string, error) {
	return "diaries/" + userID + "/" + filename, nil
}

func (f *fakeFileService) UploadCourseImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	return "courses/" + filename, nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, path string) error {
	return nil
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

var diaryTestNow = time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)

func newTestDiaryService() (*diaryServiceImpl, *fakeDiaryRepo, *fakeNotifier) {
	repo := &fakeDiaryRepo{}
	notifier := &fakeNotifier{}
	svc := &diaryServiceImpl{
		diaryRepo:       repo,
		fileService:     &fakeFileService{},
		notificationSvc: notifier,
		now:             func() time.Time { return diaryTestNow },
	}
	return svc, repo, notifier
}

func TestDiaryService_Submit_DefaultsToToday(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestDiaryService()

	resp, err := svc.Submit(ctx, diary.SubmitRequest{
		UserID:      "user-1",
		Name:        "Sprint work",
		Description: "Implemented the report endpoint",
	})

	require.NoError(t, err)
	assert.Equal(t, diary.StatusPending, resp.Status)
	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Equal(t, "05:30 PM", resp.Time)
}

func TestDiaryService_Submit_ExplicitDate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestDiaryService()

	date := "2026-02-27"
	resp, err := svc.Submit(ctx, diary.SubmitRequest{
		UserID:      "user-1",
		Name:        "Backfill",
		Description: "Friday's entry",
		Date:        &date,
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-02-27", resp.Date)
}

func TestDiaryService_UpdateStatus_RepliedWritesReplyAndNotifies(t *testing.T) {
	ctx := context.Background()
	svc, repo, notifier := newTestDiaryService()

	created, err := svc.Submit(ctx, diary.SubmitRequest{
		UserID:      "user-1",
		Name:        "Sprint work",
		Description: "Implemented the report endpoint",
	})
	require.NoError(t, err)

	resp, err := svc.UpdateStatus(ctx, diary.UpdateStatusRequest{
		DiaryID:      created.ID,
		Status:       string(diary.StatusReplied),
		ReplyMessage: "Nice progress, keep the tests coming",
		AdminID:      "admin-1",
	})

	require.NoError(t, err)
	assert.Equal(t, diary.StatusReplied, resp.Status)
	require.NotNil(t, resp.ReplyMessage)
	assert.Equal(t, "Nice progress, keep the tests coming", *resp.ReplyMessage)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.RepliedBy)
	assert.Equal(t, "admin-1", *stored.RepliedBy)
	require.NotNil(t, stored.ReplyDate)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "user-1", notifier.sent[0].RecipientID)
	assert.Equal(t, "Diary Reply", notifier.sent[0].Title)
	assert.Contains(t, notifier.sent[0].Message, "Sprint work")
}

func TestDiaryService_UpdateStatus_ApprovedSkipsReplyFields(t *testing.T) {
	ctx := context.Background()
	svc, repo, notifier := newTestDiaryService()

	created, err := svc.Submit(ctx, diary.SubmitRequest{
		UserID:      "user-1",
		Name:        "Sprint work",
		Description: "Implemented the report endpoint",
	})
	require.NoError(t, err)

	resp, err := svc.UpdateStatus(ctx, diary.UpdateStatusRequest{
		DiaryID:      created.ID,
		Status:       string(diary.StatusApproved),
		ReplyMessage: "ignored for approvals",
		AdminID:      "admin-1",
	})

	require.NoError(t, err)
	assert.Equal(t, diary.StatusApproved, resp.Status)
	assert.Nil(t, resp.ReplyMessage)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ReplyMessage)
	require.NotNil(t, stored.RepliedBy)
	assert.Equal(t, "admin-1", *stored.RepliedBy)

	// Only replies notify the author.
	assert.Empty(t, notifier.sent)
}

func TestDiaryService_UpdateStatus_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestDiaryService()

	_, err := svc.UpdateStatus(ctx, diary.UpdateStatusRequest{
		DiaryID: "missing",
		Status:  string(diary.StatusApproved),
		AdminID: "admin-1",
	})

	assert.ErrorIs(t, err, diary.ErrDiaryNotFound)
}

func TestDiaryService_DeleteOwn_RemovesOwnEntry(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestDiaryService()

	created, err := svc.Submit(ctx, diary.SubmitRequest{
		UserID:      "user-1",
		Name:        "Entry",
		Description: "Work notes",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOwn(ctx, created.ID, "user-1"))

	mine, err := svc.MyDiaries(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestDiaryService_DeleteOwn_SomeoneElsesEntryReadsAsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestDiaryService()

	created, err := svc.Submit(ctx, diary.SubmitRequest{
		UserID:      "user-1",
		Name:        "Entry",
		Description: "Work notes",
	})
	require.NoError(t, err)

	err = svc.DeleteOwn(ctx, created.ID, "user-2")
	assert.ErrorIs(t, err, diary.ErrDiaryNotFound)

	// The owner's entry survives.
	mine, err := svc.MyDiaries(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestDiaryService_MyDiaries_ScopedToUser(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestDiaryService()

	for _, userID := range []string{"user-1", "user-1", "user-2"} {
		_, err := svc.Submit(ctx, diary.SubmitRequest{
			UserID:      userID,
			Name:        "Entry",
			Description: "Work notes",
		})
		require.NoError(t, err)
	}

	mine, err := svc.MyDiaries(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

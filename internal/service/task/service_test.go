package task

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/notification"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/task"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/user"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaskRepo struct {
	tasks  []task.Task
	nextID int
}

func (f *fakeTaskRepo) Create(ctx context.Context, t task.Task) (task.Task, error) {
	f.nextID++
	t.ID = fmt.Sprintf("task-%d", f.nextID)
	t.CreatedAt = time.Now()
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, id string) (task.Task, error) {
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return task.Task{}, task.ErrTaskNotFound
}

func (f *fakeTaskRepo) GetByIDAndAssignee(ctx context.Context, id, userID string) (task.Task, error) {
	for _, t := range f.tasks {
		if t.ID == id && t.AssignedTo == userID {
			return t, nil
		}
	}
	return task.Task{}, task.ErrNotAssignedToUser
}

func (f *fakeTaskRepo) ListToday(ctx context.Context, today, tomorrow time.Time) ([]task.Task, error) {
	var out []task.Task
	for _, t := range f.tasks {
		if t.Status == task.StatusCompleted {
			continue
		}
		due := t.Deadline != nil && !t.Deadline.Before(today) && t.Deadline.Before(tomorrow)
		created := !t.CreatedAt.Before(today) && t.CreatedAt.Before(tomorrow)
		if due || created {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) ListOpen(ctx context.Context) ([]task.Task, error) {
	var out []task.Task
	for _, t := range f.tasks {
		if t.Status != task.StatusCompleted {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) ListCompleted(ctx context.Context) ([]task.Task, error) {
	var out []task.Task
	for _, t := range f.tasks {
		if t.Status == task.StatusCompleted {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) ListByAssignee(ctx context.Context, userID string, openOnly bool) ([]task.Task, error) {
	var out []task.Task
	for _, t := range f.tasks {
		if t.AssignedTo != userID {
			continue
		}
		if openOnly && t.Status == task.StatusCompleted {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, t task.Task) error {
	for i := range f.tasks {
		if f.tasks[i].ID == t.ID {
			f.tasks[i] = t
			return nil
		}
	}
	return task.ErrTaskNotFound
}

func (f *fakeTaskRepo) UpdateStatus(ctx context.Context, id string, status task.Status) (task.Task, error) {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Status = status
			return f.tasks[i], nil
		}
	}
	return task.Task{}, task.ErrTaskNotFound
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id string) error {
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return task.ErrTaskNotFound
}

func (f *fakeTaskRepo) CountByStatus(ctx context.Context, status task.Status) (int, error) {
	n := 0
	for _, t := range f.tasks {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, active *bool) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if active == nil || u.Active == *active {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) SetActive(ctx context.Context, id string, active bool) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Active = active
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) SetPassword(ctx context.Context, id string, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) CountActive(ctx context.Context) (int, error) {
	n := 0
	for _, u := range f.users {
		if u.Active {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) CountByTeam(ctx context.Context, teamID string) (int, error) {
	return 0, nil
}

func (f *fakeUserRepo) CountByJobRole(ctx context.Context, jobRoleID string) (int, error) {
	return 0, nil
}

type fakeFileService struct {
	uploaded []string
}

func (f *fakeFileService) UploadProfileImage(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	path := "profiles/" + userID + "/" + filename
	f.uploaded = append(f.uploaded, path)
	return path, nil
}

func (f *fakeFileService) UploadTaskAttachment(ctx context.Context, taskOwnerID string, file io.Reader, filename string) (string, error) {
	path := "tasks/" + taskOwnerID + "/" + filename
	f.uploaded = append(f.uploaded, path)
	return path, nil
}

func (f *fakeFileService) UploadDiaryAttachment(ctx context.Context, userID string, date time.Time, file io.Reader, filename string) (string, error) {
	path := "diaries/" + userID + "/" + filename
	f.uploaded = append(f.uploaded, path)
	return path, nil
}

func (f *fakeFileService) UploadCourseImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	path := "courses/" + filename
	f.uploaded = append(f.uploaded, path)
	return path, nil
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

var taskTestNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func newTestTaskService() (*taskServiceImpl, *fakeTaskRepo, *fakeNotifier) {
	taskRepo := &fakeTaskRepo{}
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"user-1": {ID: "user-1", Email: "intern@example.com", Active: true},
	}}
	notifier := &fakeNotifier{}
	svc := &taskServiceImpl{
		taskRepo:        taskRepo,
		userRepo:        userRepo,
		fileService:     &fakeFileService{},
		notificationSvc: notifier,
		now:             func() time.Time { return taskTestNow },
	}
	return svc, taskRepo, notifier
}

func TestTaskService_Create_Success(t *testing.T) {
	ctx := context.Background()
	svc, _, notifier := newTestTaskService()

	deadline := "2026-03-10"
	resp, err := svc.Create(ctx, "admin-1", task.CreateRequest{
		AssignedTo:  "user-1",
		Name:        "Prepare onboarding docs",
		Description: "Collect and review the onboarding material",
		Deadline:    &deadline,
	})

	require.NoError(t, err)
	assert.Equal(t, task.StatusAssigned, resp.Status)
	require.NotNil(t, resp.Deadline)
	assert.Equal(t, "2026-03-10", *resp.Deadline)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "user-1", notifier.sent[0].RecipientID)
	assert.Equal(t, "New Task Assigned", notifier.sent[0].Title)
	assert.Contains(t, notifier.sent[0].Message, "Prepare onboarding docs")
	assert.Contains(t, notifier.sent[0].Message, "due 2026-03-10")
}

func TestTaskService_Create_AssigneeNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTaskService()

	_, err := svc.Create(ctx, "admin-1", task.CreateRequest{
		AssignedTo:  "missing",
		Name:        "Task",
		Description: "Desc",
	})

	assert.ErrorIs(t, err, task.ErrAssigneeNotFound)
}

func TestTaskService_Create_DeadlineInThePast(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTaskService()

	deadline := "2026-03-01"
	_, err := svc.Create(ctx, "admin-1", task.CreateRequest{
		AssignedTo:  "user-1",
		Name:        "Task",
		Description: "Desc",
		Deadline:    &deadline,
	})

	assert.ErrorIs(t, err, task.ErrDeadlineInThePast)
}

func TestTaskService_Create_DeadlineToday(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTaskService()

	deadline := "2026-03-02"
	_, err := svc.Create(ctx, "admin-1", task.CreateRequest{
		AssignedTo:  "user-1",
		Name:        "Task",
		Description: "Desc",
		Deadline:    &deadline,
	})

	assert.NoError(t, err)
}

func TestTaskService_Create_InvalidFileURL(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTaskService()

	badURL := "https://example.com/spec.docx"
	_, err := svc.Create(ctx, "admin-1", task.CreateRequest{
		AssignedTo:    "user-1",
		Name:          "Task",
		Description:   "Desc",
		AssignFileURL: &badURL,
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "assign_file_path")
}

func TestTaskService_Create_ValidPDFURL(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestTaskService()

	url := "https://example.com/files/brief.pdf"
	resp, err := svc.Create(ctx, "admin-1", task.CreateRequest{
		AssignedTo:    "user-1",
		Name:          "Task",
		Description:   "Desc",
		AssignFileURL: &url,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.AssignFileURL)
	assert.Equal(t, url, *resp.AssignFileURL)
	assert.Len(t, repo.tasks, 1)
}

func TestTaskService_Submit_Success(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestTaskService()

	created, err := svc.Create(ctx, "admin-1", task.CreateRequest{
		AssignedTo:  "user-1",
		Name:        "Task",
		Description: "Desc",
	})
	require.NoError(t, err)

	submitURL := "https://example.com/result.pdf"
	resp, err := svc.Submit(ctx, task.SubmitRequest{
		TaskID:        created.ID,
		UserID:        "user-1",
		SubmitFileURL: &submitURL,
	})

	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, resp.Status)
	require.NotNil(t, resp.SubmitDate)
	assert.Equal(t, "2026-03-02", *resp.SubmitDate)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, stored.Status)
	require.NotNil(t, stored.SubmitFileURL)
	assert.Equal(t, submitURL, *stored.SubmitFileURL)
}

func TestTaskService_Submit_NotAssignedToCaller(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTaskService()

	created, err := svc.Create(ctx, "admin-1", task.CreateRequest{
		AssignedTo:  "user-1",
		Name:        "Task",
		Description: "Desc",
	})
	require.NoError(t, err)

	// Someone else's valid task id reads the same as a missing one.
	_, err = svc.Submit(ctx, task.SubmitRequest{
		TaskID: created.ID,
		UserID: "user-2",
	})

	assert.ErrorIs(t, err, task.ErrNotAssignedToUser)
}

func TestTaskService_MyTasks_OpenOnly(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestTaskService()

	repo.tasks = []task.Task{
		{ID: "t1", AssignedTo: "user-1", Status: task.StatusAssigned},
		{ID: "t2", AssignedTo: "user-1", Status: task.StatusProgress},
		{ID: "t3", AssignedTo: "user-1", Status: task.StatusCompleted},
		{ID: "t4", AssignedTo: "user-2", Status: task.StatusAssigned},
	}

	open, err := svc.MyTasks(ctx, "user-1", true)
	require.NoError(t, err)
	assert.Len(t, open, 2)

	all, err := svc.MyTasks(ctx, "user-1", false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestTaskService_UpdateStatus_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTaskService()

	_, err := svc.UpdateStatus(ctx, task.UpdateStatusRequest{
		TaskID: "t1",
		Status: "Cancelled",
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "status")
}

package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/task"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/user"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/file"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/notification"
)

type TaskService interface {
	// Create assigns a task and notifies the assignee. Admin only.
	Create(ctx context.Context, adminID string, req task.CreateRequest) (task.TaskResponse, error)

	// TodayTasks lists open tasks due or created today. Admin only.
	TodayTasks(ctx context.Context) ([]task.TaskResponse, error)

	// OpenTasks lists all unfinished tasks. Admin only.
	OpenTasks(ctx context.Context) ([]task.TaskResponse, error)

	// CompletedTasks lists finished tasks. Admin only.
	CompletedTasks(ctx context.Context) ([]task.TaskResponse, error)

	// MyTasks lists the caller's tasks; openOnly hides finished ones.
	MyTasks(ctx context.Context, userID string, openOnly bool) ([]task.TaskResponse, error)

	// Submit records the caller's submission and completes the task. The
	// lookup is scoped to the caller, so someone else's task id is a miss.
	Submit(ctx context.Context, req task.SubmitRequest) (task.TaskResponse, error)

	// UpdateStatus overrides a task's status. Admin only.
	UpdateStatus(ctx context.Context, req task.UpdateStatusRequest) (task.TaskResponse, error)

	// Delete removes a task. Admin only.
	Delete(ctx context.Context, id string) error
}

type taskServiceImpl struct {
	taskRepo        task.Repository
	userRepo        user.Repository
	fileService     file.FileService
	notificationSvc notification.NotificationService

	now func() time.Time
}

func NewTaskService(
	taskRepo task.Repository,
	userRepo user.Repository,
	fileService file.FileService,
	notificationSvc notification.NotificationService,
) TaskService {
	return &taskServiceImpl{
		taskRepo:        taskRepo,
		userRepo:        userRepo,
		fileService:     fileService,
		notificationSvc: notificationSvc,
		now:             time.Now,
	}
}

// Create implements TaskService.
func (s *taskServiceImpl) Create(ctx context.Context, adminID string, req task.CreateRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	assignee, err := s.userRepo.GetByID(ctx, req.AssignedTo)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return task.TaskResponse{}, task.ErrAssigneeNotFound
		}
		return task.TaskResponse{}, err
	}

	newTask := task.Task{
		AssignedTo:  req.AssignedTo,
		Name:        req.Name,
		Description: req.Description,
		Status:      task.StatusAssigned,
	}

	if req.Deadline != nil && *req.Deadline != "" {
		deadline, _ := validator.IsValidDate(*req.Deadline)
		now := s.now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if deadline.Before(today) {
			return task.TaskResponse{}, task.ErrDeadlineInThePast
		}
		newTask.Deadline = &deadline
	}

	if req.AssignFileURL != nil && *req.AssignFileURL != "" {
		newTask.AssignFileURL = req.AssignFileURL
	}

	if req.File != nil && req.FileHeader != nil {
		stored, err := s.fileService.UploadTaskAttachment(ctx, req.AssignedTo, req.File, req.FileHeader.Filename)
		if err != nil {
			return task.TaskResponse{}, err
		}
		newTask.AssignFileName = &req.FileHeader.Filename
		newTask.AssignFileStored = &stored
	}

	created, err := s.taskRepo.Create(ctx, newTask)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	title := "New Task Assigned"
	message := fmt.Sprintf("You have been assigned a new task: %s", created.Name)
	if created.Deadline != nil {
		message = fmt.Sprintf("%s (due %s)", message, created.Deadline.Format("2006-01-02"))
	}
	if err := s.notificationSvc.Notify(ctx, assignee.ID, &adminID, title, message); err != nil {
		slog.Warn("Failed to send task assignment notification", "task_id", created.ID, "error", err)
	}

	return task.ToTaskResponse(created), nil
}

// TodayTasks implements TaskService.
func (s *taskServiceImpl) TodayTasks(ctx context.Context) ([]task.TaskResponse, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	tasks, err := s.taskRepo.ListToday(ctx, today, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's tasks: %w", err)
	}

	return task.ToTaskResponses(tasks), nil
}

// OpenTasks implements TaskService.
func (s *taskServiceImpl) OpenTasks(ctx context.Context) ([]task.TaskResponse, error) {
	tasks, err := s.taskRepo.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open tasks: %w", err)
	}

	return task.ToTaskResponses(tasks), nil
}

// CompletedTasks implements TaskService.
func (s *taskServiceImpl) CompletedTasks(ctx context.Context) ([]task.TaskResponse, error) {
	tasks, err := s.taskRepo.ListCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed tasks: %w", err)
	}

	return task.ToTaskResponses(tasks), nil
}

// MyTasks implements TaskService.
func (s *taskServiceImpl) MyTasks(ctx context.Context, userID string, openOnly bool) ([]task.TaskResponse, error) {
	tasks, err := s.taskRepo.ListByAssignee(ctx, userID, openOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return task.ToTaskResponses(tasks), nil
}

// Submit implements TaskService.
func (s *taskServiceImpl) Submit(ctx context.Context, req task.SubmitRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	found, err := s.taskRepo.GetByIDAndAssignee(ctx, req.TaskID, req.UserID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	now := s.now()
	found.SubmitDate = &now
	found.Status = task.StatusCompleted

	if req.SubmitFileURL != nil && *req.SubmitFileURL != "" {
		found.SubmitFileURL = req.SubmitFileURL
	}

	if req.File != nil && req.FileHeader != nil {
		stored, err := s.fileService.UploadTaskAttachment(ctx, req.UserID, req.File, req.FileHeader.Filename)
		if err != nil {
			return task.TaskResponse{}, err
		}
		found.SubmitFile = &stored
	}

	if err := s.taskRepo.Update(ctx, found); err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to submit task: %w", err)
	}

	return task.ToTaskResponse(found), nil
}

// UpdateStatus implements TaskService.
func (s *taskServiceImpl) UpdateStatus(ctx context.Context, req task.UpdateStatusRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	updated, err := s.taskRepo.UpdateStatus(ctx, req.TaskID, task.Status(req.Status))
	if err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToTaskResponse(updated), nil
}

// Delete implements TaskService.
func (s *taskServiceImpl) Delete(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}

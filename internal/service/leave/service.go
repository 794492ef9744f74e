package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/leave"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/notification"
)

type LeaveService interface {
	// Apply files a leave request for the user. Requests start as Pending.
	Apply(ctx context.Context, req leave.ApplyRequest) (leave.LeaveResponse, error)

	// MyLeaves lists the caller's requests, newest first.
	MyLeaves(ctx context.Context, userID string) ([]leave.LeaveResponse, error)

	// Upcoming lists requests starting today or later. Admin only.
	Upcoming(ctx context.Context) ([]leave.LeaveResponse, error)

	// Historical lists requests that started before today. Admin only.
	Historical(ctx context.Context) ([]leave.LeaveResponse, error)

	// UpdateStatus applies an admin decision and notifies the requester.
	UpdateStatus(ctx context.Context, adminID string, req leave.UpdateStatusRequest) (leave.LeaveResponse, error)

	// Delete removes a request. Admin only.
	Delete(ctx context.Context, id string) error

	// ActiveOn lists approved requests covering the given date.
	ActiveOn(ctx context.Context, date time.Time) ([]leave.LeaveResponse, error)
}

type leaveServiceImpl struct {
	leaveRepo       leave.Repository
	notificationSvc notification.NotificationService

	now func() time.Time
}

func NewLeaveService(leaveRepo leave.Repository, notificationSvc notification.NotificationService) LeaveService {
	return &leaveServiceImpl{
		leaveRepo:       leaveRepo,
		notificationSvc: notificationSvc,
		now:             time.Now,
	}
}

// Apply implements LeaveService.
func (s *leaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.LeaveDate)
	end, _ := validator.IsValidDate(req.EndDate)

	var errs validator.ValidationErrors
	if !start.Before(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be after leave_date",
		})
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if start.Before(today) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_date",
			Message: "leave_date cannot be in the past",
		})
	}
	if len(errs) > 0 {
		return leave.LeaveResponse{}, errs
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		UserID:    req.UserID,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToLeaveResponse(created), nil
}

// MyLeaves implements LeaveService.
func (s *leaveServiceImpl) MyLeaves(ctx context.Context, userID string) ([]leave.LeaveResponse, error) {
	requests, err := s.leaveRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return leave.ToLeaveResponses(requests), nil
}

// Upcoming implements LeaveService.
func (s *leaveServiceImpl) Upcoming(ctx context.Context) ([]leave.LeaveResponse, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	requests, err := s.leaveRepo.ListUpcoming(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming leave requests: %w", err)
	}

	return leave.ToLeaveResponses(requests), nil
}

// Historical implements LeaveService.
func (s *leaveServiceImpl) Historical(ctx context.Context) ([]leave.LeaveResponse, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	requests, err := s.leaveRepo.ListHistorical(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list historical leave requests: %w", err)
	}

	return leave.ToLeaveResponses(requests), nil
}

// UpdateStatus implements LeaveService.
func (s *leaveServiceImpl) UpdateStatus(ctx context.Context, adminID string, req leave.UpdateStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	status := leave.Status(req.Status)

	var rejectionReason *string
	if status == leave.StatusRejected {
		rejectionReason = req.RejectionReason
	}

	updated, err := s.leaveRepo.UpdateStatus(ctx, req.LeaveID, status, rejectionReason)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	// Decisions notify the requester; re-opening to Pending does not.
	if status == leave.StatusApproved || status == leave.StatusRejected {
		title, message := leaveDecisionNotification(updated)
		if err := s.notificationSvc.Notify(ctx, updated.UserID, &adminID, title, message); err != nil {
			slog.Warn("Failed to send leave decision notification", "leave_id", updated.ID, "error", err)
		}
	}

	return leave.ToLeaveResponse(updated), nil
}

// Delete implements LeaveService.
func (s *leaveServiceImpl) Delete(ctx context.Context, id string) error {
	return s.leaveRepo.Delete(ctx, id)
}

// ActiveOn implements LeaveService.
func (s *leaveServiceImpl) ActiveOn(ctx context.Context, date time.Time) ([]leave.LeaveResponse, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	requests, err := s.leaveRepo.ListActiveOn(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list active leave requests: %w", err)
	}

	return leave.ToLeaveResponses(requests), nil
}

func leaveDecisionNotification(l leave.LeaveRequest) (title, message string) {
	span := fmt.Sprintf("%s to %s", l.StartDate.Format("2006-01-02"), l.EndDate.Format("2006-01-02"))

	if l.Status == leave.StatusApproved {
		return "Leave Request Approved",
			fmt.Sprintf("Your leave request from %s has been approved.", span)
	}

	message = fmt.Sprintf("Your leave request from %s has been rejected.", span)
	if l.RejectionReason != nil && *l.RejectionReason != "" {
		message = fmt.Sprintf("%s Reason: %s", message, *l.RejectionReason)
	}
	return "Leave Request Rejected", message
}

package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/attendance"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/leave"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/task"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/user"
)

// StatsResponse is the admin dashboard headline block.
type StatsResponse struct {
	ActiveUsers    int `json:"active_users"`
	AttendedToday  int `json:"attended_today"`
	LateToday      int `json:"late_today"`
	OnLeaveToday   int `json:"on_leave_today"`
	PendingLeaves  int `json:"pending_leaves"`
	OpenTasks      int `json:"open_tasks"`
	CompletedTasks int `json:"completed_tasks"`
}

type DashboardService interface {
	// Stats aggregates the admin dashboard counters for today.
	Stats(ctx context.Context) (StatsResponse, error)
}

type dashboardServiceImpl struct {
	userRepo       user.Repository
	attendanceRepo attendance.Repository
	leaveRepo      leave.Repository
	taskRepo       task.Repository

	now func() time.Time
}

func NewDashboardService(
	userRepo user.Repository,
	attendanceRepo attendance.Repository,
	leaveRepo leave.Repository,
	taskRepo task.Repository,
) DashboardService {
	return &dashboardServiceImpl{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		taskRepo:       taskRepo,
		now:            time.Now,
	}
}

// Stats implements DashboardService.
func (s *dashboardServiceImpl) Stats(ctx context.Context) (StatsResponse, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var stats StatsResponse
	var err error

	if stats.ActiveUsers, err = s.userRepo.CountActive(ctx); err != nil {
		return StatsResponse{}, fmt.Errorf("failed to count active users: %w", err)
	}

	if stats.AttendedToday, err = s.attendanceRepo.CountByDateAndStatus(ctx, today, attendance.StatusAttended); err != nil {
		return StatsResponse{}, fmt.Errorf("failed to count today's attendance: %w", err)
	}
	if stats.LateToday, err = s.attendanceRepo.CountByDateAndStatus(ctx, today, attendance.StatusLate); err != nil {
		return StatsResponse{}, fmt.Errorf("failed to count today's late arrivals: %w", err)
	}

	// Employees on leave today come from approved requests, not from
	// attendance rows.
	activeLeaves, err := s.leaveRepo.ListActiveOn(ctx, today)
	if err != nil {
		return StatsResponse{}, fmt.Errorf("failed to list active leaves: %w", err)
	}
	stats.OnLeaveToday = len(activeLeaves)

	if stats.PendingLeaves, err = s.leaveRepo.CountByStatus(ctx, leave.StatusPending); err != nil {
		return StatsResponse{}, fmt.Errorf("failed to count pending leaves: %w", err)
	}

	for _, status := range task.OpenStatuses() {
		n, err := s.taskRepo.CountByStatus(ctx, status)
		if err != nil {
			return StatsResponse{}, fmt.Errorf("failed to count open tasks: %w", err)
		}
		stats.OpenTasks += n
	}

	if stats.CompletedTasks, err = s.taskRepo.CountByStatus(ctx, task.StatusCompleted); err != nil {
		return StatsResponse{}, fmt.Errorf("failed to count completed tasks: %w", err)
	}

	return stats, nil
}

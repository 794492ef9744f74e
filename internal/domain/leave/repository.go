package leave

import (
	"context"
	"time"
)

// Repository defines data access methods for leave requests.
type Repository interface {
	Create(ctx context.Context, l LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByUser returns one user's requests, newest start date first.
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)

	// ListUpcoming returns requests starting today or later, user joined.
	ListUpcoming(ctx context.Context, today time.Time) ([]LeaveRequest, error)

	// ListHistorical returns requests starting strictly before today, user joined.
	ListHistorical(ctx context.Context, today time.Time) ([]LeaveRequest, error)

	// ListActiveOn returns approved requests whose span covers date.
	ListActiveOn(ctx context.Context, date time.Time) ([]LeaveRequest, error)

	UpdateStatus(ctx context.Context, id string, status Status, rejectionReason *string) (LeaveRequest, error)
	Delete(ctx context.Context, id string) error

	// CountByStatus powers the admin dashboard.
	CountByStatus(ctx context.Context, status Status) (int, error)
}

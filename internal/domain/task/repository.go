package task

import (
	"context"
	"time"
)

// Repository defines data access methods for tasks.
type Repository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)

	// GetByIDAndAssignee scopes the lookup to the caller; a valid id owned by
	// someone else is indistinguishable from a missing one.
	GetByIDAndAssignee(ctx context.Context, id, userID string) (Task, error)

	// ListToday returns open tasks due or created within [today, tomorrow),
	// deadline ascending then creation descending.
	ListToday(ctx context.Context, today, tomorrow time.Time) ([]Task, error)

	// ListOpen returns tasks in an open status, creation descending.
	ListOpen(ctx context.Context) ([]Task, error)

	// ListCompleted returns finished tasks, submit date then deadline descending.
	ListCompleted(ctx context.Context) ([]Task, error)

	// ListByAssignee returns one user's tasks; openOnly restricts to
	// Progress/Assigned. Sorted by deadline ascending.
	ListByAssignee(ctx context.Context, userID string, openOnly bool) ([]Task, error)

	Update(ctx context.Context, t Task) error
	UpdateStatus(ctx context.Context, id string, status Status) (Task, error)
	Delete(ctx context.Context, id string) error

	CountByStatus(ctx context.Context, status Status) (int, error)
}

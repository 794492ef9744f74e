package jobrole

import "context"

type JobRoleRepository interface {
	Create(ctx context.Context, j JobRole) (JobRole, error)
	GetByID(ctx context.Context, id string) (JobRole, error)

	// GetByName matches case-insensitively; excludeID skips one record when
	// checking for rename collisions.
	GetByName(ctx context.Context, name string, excludeID string) (*JobRole, error)

	List(ctx context.Context) ([]JobRole, error)
	Update(ctx context.Context, j JobRole) (JobRole, error)
	Delete(ctx context.Context, id string) error
}

package user

import "context"

// Repository defines data access methods for user records.
type Repository interface {
	// Create inserts a user and assigns its display code from the per-role
	// counter inside one transaction.
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// List retrieves users with team/job-role names joined. active filters by
	// the active flag when non-nil.
	List(ctx context.Context, active *bool) ([]User, error)

	Update(ctx context.Context, u User) error
	SetActive(ctx context.Context, id string, active bool) error
	SetPassword(ctx context.Context, id string, passwordHash string) error
	Delete(ctx context.Context, id string) error

	CountActive(ctx context.Context) (int, error)
	CountByTeam(ctx context.Context, teamID string) (int, error)
	CountByJobRole(ctx context.Context, jobRoleID string) (int, error)
}

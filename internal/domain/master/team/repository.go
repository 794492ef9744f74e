package team

import "context"

type TeamRepository interface {
	Create(ctx context.Context, t Team) (Team, error)
	GetByID(ctx context.Context, id string) (Team, error)

	// GetByName matches case-insensitively; excludeID skips one record when
	// checking for rename collisions.
	GetByName(ctx context.Context, name string, excludeID string) (*Team, error)

	List(ctx context.Context) ([]Team, error)
	Update(ctx context.Context, t Team) (Team, error)
	Delete(ctx context.Context, id string) error
}

package course

import "context"

// Repository defines data access methods for courses.
type Repository interface {
	Create(ctx context.Context, c Course) (Course, error)
	GetByID(ctx context.Context, id string) (Course, error)
	List(ctx context.Context) ([]Course, error)
	Update(ctx context.Context, c Course) (Course, error)
	Delete(ctx context.Context, id string) error
}

package calendar

import "context"

// Repository defines data access methods for calendar events.
type Repository interface {
	Create(ctx context.Context, e Event) (Event, error)
	List(ctx context.Context) ([]Event, error)
}

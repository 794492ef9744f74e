package diary

import "context"

// Repository defines data access methods for daily diaries.
type Repository interface {
	Create(ctx context.Context, d DailyDiary) (DailyDiary, error)
	GetByID(ctx context.Context, id string) (DailyDiary, error)

	// ListAll returns every diary with author fields joined, date descending.
	// withReplier additionally joins the replying admin's identity.
	ListAll(ctx context.Context, withReplier bool) ([]DailyDiary, error)

	// ListByUser scopes to one author, date descending.
	ListByUser(ctx context.Context, userID string) ([]DailyDiary, error)

	Update(ctx context.Context, d DailyDiary) error
	Delete(ctx context.Context, id string) error

	// DeleteByUser removes an entry only when it belongs to the given user.
	DeleteByUser(ctx context.Context, id, userID string) error
}

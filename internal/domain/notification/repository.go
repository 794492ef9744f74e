package notification

import "context"

// Repository defines data access methods for notifications.
type Repository interface {
	Create(ctx context.Context, n *Notification) error

	// ListForUser returns the newest personal-or-broadcast rows for a user,
	// sender identity joined, capped at limit.
	ListForUser(ctx context.Context, userID string, limit int) ([]Notification, error)

	// CountUnread counts unread personal rows for a user. Broadcast rows have
	// no per-user read state and are excluded.
	CountUnread(ctx context.Context, userID string) (int, error)

	// MarkRead marks a personal notification read; broadcast rows and other
	// users' rows return ErrNotificationNotFound.
	MarkRead(ctx context.Context, id, userID string) (*Notification, error)

	// ClearForUser deletes a user's personal rows.
	ClearForUser(ctx context.Context, userID string) error
}

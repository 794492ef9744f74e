package postgresql

import (
	"context"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/notification"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepositoryImpl{db: db}
}

// Create implements notification.Repository. A broadcast is stored as one
// target=all row; recipients resolve it at read time.
func (r *notificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (recipient_id, sender_id, title, message, target, is_read)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING id, is_read, created_at
	`

	return q.QueryRow(ctx, query,
		n.RecipientID,
		n.SenderID,
		n.Title,
		n.Message,
		n.Target,
	).Scan(&n.ID, &n.IsRead, &n.CreatedAt)
}

// ListForUser implements notification.Repository.
func (r *notificationRepositoryImpl) ListForUser(ctx context.Context, userID string, limit int) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT n.id, n.recipient_id, n.sender_id, n.title, n.message, n.target,
			   n.is_read, n.created_at,
			   s.first_name, s.last_name, s.user_code
		FROM notifications n
		LEFT JOIN users s ON s.id = n.sender_id
		WHERE n.recipient_id = $1 OR n.target = $2
		ORDER BY n.created_at DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, userID, notification.TargetAll, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		err := rows.Scan(
			&n.ID, &n.RecipientID, &n.SenderID, &n.Title, &n.Message, &n.Target,
			&n.IsRead, &n.CreatedAt,
			&n.SenderFirstName, &n.SenderLastName, &n.SenderUserCode,
		)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// CountUnread implements notification.Repository. Broadcast rows carry no
// per-user read state and are excluded from the badge count.
func (r *notificationRepositoryImpl) CountUnread(ctx context.Context, userID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// MarkRead implements notification.Repository.
func (r *notificationRepositoryImpl) MarkRead(ctx context.Context, id, userID string) (*notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND recipient_id = $2
		RETURNING id, recipient_id, sender_id, title, message, target, is_read, created_at
	`

	var n notification.Notification
	err := q.QueryRow(ctx, query, id, userID).Scan(
		&n.ID, &n.RecipientID, &n.SenderID, &n.Title, &n.Message, &n.Target,
		&n.IsRead, &n.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, notification.ErrNotificationNotFound
		}
		return nil, err
	}

	return &n, nil
}

// ClearForUser implements notification.Repository.
func (r *notificationRepositoryImpl) ClearForUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM notifications WHERE recipient_id = $1`, userID)
	return err
}

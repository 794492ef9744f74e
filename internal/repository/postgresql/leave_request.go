package postgresql

import (
	"context"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/leave"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.Repository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.Repository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (user_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, start_date, end_date, reason, status, rejection_reason, created_at
	`

	var created leave.LeaveRequest
	err := q.QueryRow(ctx, query, l.UserID, l.StartDate, l.EndDate, l.Reason, l.Status).Scan(
		&created.ID,
		&created.UserID,
		&created.StartDate,
		&created.EndDate,
		&created.Reason,
		&created.Status,
		&created.RejectionReason,
		&created.CreatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return created, nil
}

// GetByID implements leave.Repository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, reason, status, rejection_reason, created_at
		FROM leave_requests
		WHERE id = $1
	`

	var found leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.UserID,
		&found.StartDate,
		&found.EndDate,
		&found.Reason,
		&found.Status,
		&found.RejectionReason,
		&found.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return found, nil
}

// ListByUser implements leave.Repository.
func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, reason, status, rejection_reason, created_at
		FROM leave_requests
		WHERE user_id = $1
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var l leave.LeaveRequest
		err := rows.Scan(
			&l.ID, &l.UserID, &l.StartDate, &l.EndDate, &l.Reason,
			&l.Status, &l.RejectionReason, &l.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, l)
	}

	return requests, rows.Err()
}

const leaveWithUserQuery = `
	SELECT l.id, l.user_id, l.start_date, l.end_date, l.reason, l.status,
		   l.rejection_reason, l.created_at,
		   u.first_name, u.last_name, u.email, u.profile_image,
		   u.contact_number, u.university
	FROM leave_requests l
	JOIN users u ON u.id = l.user_id
`

func scanLeaveRowsWithUser(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		var l leave.LeaveRequest
		err := rows.Scan(
			&l.ID, &l.UserID, &l.StartDate, &l.EndDate, &l.Reason,
			&l.Status, &l.RejectionReason, &l.CreatedAt,
			&l.FirstName, &l.LastName, &l.Email, &l.ProfileImage,
			&l.ContactNumber, &l.University,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, l)
	}

	return requests, rows.Err()
}

// ListUpcoming implements leave.Repository.
func (r *leaveRequestRepositoryImpl) ListUpcoming(ctx context.Context, today time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		leaveWithUserQuery+` WHERE l.start_date >= $1 ORDER BY l.start_date ASC`,
		today,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRowsWithUser(rows)
}

// ListHistorical implements leave.Repository.
func (r *leaveRequestRepositoryImpl) ListHistorical(ctx context.Context, today time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		leaveWithUserQuery+` WHERE l.start_date < $1 ORDER BY l.start_date DESC`,
		today,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRowsWithUser(rows)
}

// ListActiveOn implements leave.Repository.
func (r *leaveRequestRepositoryImpl) ListActiveOn(ctx context.Context, date time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		leaveWithUserQuery+`
		WHERE l.status = $1 AND l.start_date <= $2 AND l.end_date >= $2
		ORDER BY l.start_date ASC`,
		leave.StatusApproved, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRowsWithUser(rows)
}

// UpdateStatus implements leave.Repository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, rejectionReason *string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, rejection_reason = $2
		WHERE id = $3
		RETURNING id, user_id, start_date, end_date, reason, status, rejection_reason, created_at
	`

	var updated leave.LeaveRequest
	err := q.QueryRow(ctx, query, status, rejectionReason, id).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.StartDate,
		&updated.EndDate,
		&updated.Reason,
		&updated.Status,
		&updated.RejectionReason,
		&updated.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return updated, nil
}

// Delete implements leave.Repository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// CountByStatus implements leave.Repository.
func (r *leaveRequestRepositoryImpl) CountByStatus(ctx context.Context, status leave.Status) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

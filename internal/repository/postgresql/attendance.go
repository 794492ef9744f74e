package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/attendance"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.Repository. The table carries
// UNIQUE(user_id, date); a duplicate insert surfaces as ErrAlreadyMarked.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (user_id, date, check_in, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, date, check_in, status, created_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query, a.UserID, a.Date, a.CheckIn, a.Status).Scan(
		&created.ID,
		&created.UserID,
		&created.Date,
		&created.CheckIn,
		&created.Status,
		&created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyMarked
		}
		return attendance.Attendance{}, err
	}

	return created, nil
}

// GetByUserAndDate implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, check_in, status, created_at
		FROM attendances
		WHERE user_id = $1 AND date = $2
	`

	var found attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&found.ID,
		&found.UserID,
		&found.Date,
		&found.CheckIn,
		&found.Status,
		&found.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &found, nil
}

// ListByUser implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, check_in, status, created_at
		FROM attendances
		WHERE user_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(&a.ID, &a.UserID, &a.Date, &a.CheckIn, &a.Status, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

// ListByDate implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.check_in, a.status, a.created_at,
			   u.first_name, u.last_name, u.email, u.profile_image
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.date = $1
		ORDER BY a.created_at ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendanceRows(rows, false)
}

// ListAll implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListAll(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.check_in, a.status, a.created_at,
			   u.first_name, u.last_name, u.email, u.profile_image,
			   t.name AS team_name
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		LEFT JOIN teams t ON t.id = u.team_id
		ORDER BY a.date DESC, a.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendanceRows(rows, true)
}

func scanAttendanceRows(rows pgx.Rows, withTeam bool) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		dest := []interface{}{
			&a.ID, &a.UserID, &a.Date, &a.CheckIn, &a.Status, &a.CreatedAt,
			&a.FirstName, &a.LastName, &a.Email, &a.ProfileImage,
		}
		if withTeam {
			dest = append(dest, &a.TeamName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

// CountByUserAndStatus implements attendance.Repository.
func (r *attendanceRepositoryImpl) CountByUserAndStatus(ctx context.Context, userID string, status attendance.Status) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendances WHERE user_id = $1 AND status = $2`,
		userID, status,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CountByDate implements attendance.Repository.
func (r *attendanceRepositoryImpl) CountByDate(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances WHERE date = $1`, date).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CountByDateAndStatus implements attendance.Repository.
func (r *attendanceRepositoryImpl) CountByDateAndStatus(ctx context.Context, date time.Time, status attendance.Status) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendances WHERE date = $1 AND status = $2`,
		date, status,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

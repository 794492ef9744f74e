package postgresql

import (
	"context"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/calendar"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/database"
)

type calendarEventRepositoryImpl struct {
	db *database.DB
}

func NewCalendarEventRepository(db *database.DB) calendar.Repository {
	return &calendarEventRepositoryImpl{db: db}
}

// Create implements calendar.Repository.
func (r *calendarEventRepositoryImpl) Create(ctx context.Context, e calendar.Event) (calendar.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO calendar_events (date, is_leave_day, description)
		VALUES ($1, $2, $3)
		RETURNING id, date, is_leave_day, description, created_at
	`

	var created calendar.Event
	err := q.QueryRow(ctx, query, e.Date, e.IsLeaveDay, e.Description).Scan(
		&created.ID,
		&created.Date,
		&created.IsLeaveDay,
		&created.Description,
		&created.CreatedAt,
	)
	if err != nil {
		return calendar.Event{}, err
	}

	return created, nil
}

// List implements calendar.Repository.
func (r *calendarEventRepositoryImpl) List(ctx context.Context) ([]calendar.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, is_leave_day, description, created_at
		FROM calendar_events
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []calendar.Event
	for rows.Next() {
		var e calendar.Event
		err := rows.Scan(&e.ID, &e.Date, &e.IsLeaveDay, &e.Description, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

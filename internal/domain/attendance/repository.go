package attendance

import (
	"context"
	"time"
)

// Overview aggregates attendance counts for one user.
type Overview struct {
	UserID        string `json:"user_id"`
	TotalAttended int    `json:"total_attendance"`
	TotalLeave    int    `json:"total_leave"`
	TotalLate     int    `json:"total_late"`
}

// Repository defines data access methods for attendance records.
type Repository interface {
	// Create inserts a record. The schema carries UNIQUE(user_id, date), so a
	// concurrent duplicate surfaces as ErrAlreadyMarked rather than a second row.
	Create(ctx context.Context, a Attendance) (Attendance, error)

	// GetByUserAndDate returns nil when no record exists for that day.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// ListByUser returns a user's records, newest date first.
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)

	// ListByDate returns every record for a calendar day, with user fields joined.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListAll returns the full sheet with user and team fields joined, newest first.
	ListAll(ctx context.Context) ([]Attendance, error)

	// CountByUserAndStatus powers the per-user overview.
	CountByUserAndStatus(ctx context.Context, userID string, status Status) (int, error)

	// CountByDate and CountByDateAndStatus power the admin dashboard.
	CountByDate(ctx context.Context, date time.Time) (int, error)
	CountByDateAndStatus(ctx context.Context, date time.Time, status Status) (int, error)
}

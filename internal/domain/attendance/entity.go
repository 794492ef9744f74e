package attendance

import (
	"time"
)

type Status string

const (
	StatusAttended Status = "Attended"
	StatusLate     Status = "Late"
	StatusAbsent   Status = "Absent"
	StatusOnLeave  Status = "OnLeave"
)

// Check-in cutoffs in minutes from midnight.
const (
	onTimeThreshold = 8*60 + 15 // 08:15
)

// DeriveStatus buckets a check-in wall-clock time. Anything at or before
// 08:15 is Attended, everything after is Late. Absent and OnLeave are never
// produced by check-in; other flows set those.
func DeriveStatus(t time.Time) Status {
	m := t.Hour()*60 + t.Minute()
	if m <= onTimeThreshold {
		return StatusAttended
	}
	return StatusLate
}

type Attendance struct {
	ID        string
	UserID    string
	Date      time.Time
	CheckIn   string // 12-hour wall-clock string, e.g. "08:07 AM"
	Status    Status
	CreatedAt time.Time

	// DTO / Join
	FirstName    *string
	LastName     *string
	Email        *string
	ProfileImage *string
	TeamName     *string
}

// FormatCheckIn renders the stored 12-hour check-in string for a time.
func FormatCheckIn(t time.Time) string {
	return t.Format("03:04 PM")
}

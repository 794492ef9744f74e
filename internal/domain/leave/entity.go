package leave

import (
	"math"
	"time"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ValidStatuses are the states an admin may set. Pending re-opens a decided
// request; there is no terminal lock.
func ValidStatuses() []string {
	return []string{string(StatusApproved), string(StatusRejected), string(StatusPending)}
}

type LeaveRequest struct {
	ID              string
	UserID          string
	StartDate       time.Time
	EndDate         time.Time
	Reason          string
	Status          Status
	RejectionReason *string
	CreatedAt       time.Time

	// DTO / Join
	FirstName     *string
	LastName      *string
	Email         *string
	ProfileImage  *string
	ContactNumber *string
	University    *string
}

// DayCount is the inclusive day span of a request, derived on every read and
// never stored. Dates are persisted midnight-truncated, so the ceil never
// picks up a time-of-day fraction.
func DayCount(start, end time.Time) int {
	d := end.Sub(start)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours()/24)) + 1
}

// Days returns the request's inclusive day count.
func (l LeaveRequest) Days() int {
	return DayCount(l.StartDate, l.EndDate)
}

// ActiveOn reports whether the request covers date and has been approved.
func (l LeaveRequest) ActiveOn(date time.Time) bool {
	return l.Status == StatusApproved && !date.Before(l.StartDate) && !date.After(l.EndDate)
}

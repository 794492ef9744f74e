package calendar

import "time"

// Event is a company calendar entry; leave days block nothing, they only
// annotate the shared calendar.
type Event struct {
	ID          string
	Date        time.Time
	IsLeaveDay  bool
	Description *string
	CreatedAt   time.Time
}

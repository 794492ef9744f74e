package notification

import (
	"time"
)

// Target selects who a notification addresses.
type Target string

const (
	TargetUser Target = "user" // one recipient
	TargetAll  Target = "all"  // broadcast, resolved at read time
)

// Notification is an append-only message row. A broadcast is a single
// target=all row rather than one copy per user, so sending stays O(1) in the
// user population.
type Notification struct {
	ID          string
	RecipientID *string // nil for broadcasts
	SenderID    *string
	Title       string
	Message     string
	Target      Target
	IsRead      bool
	CreatedAt   time.Time

	// DTO / Join
	SenderFirstName *string
	SenderLastName  *string
	SenderUserCode  *string
}

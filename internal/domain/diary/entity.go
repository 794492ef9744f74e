package diary

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusReplied  Status = "Replied"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ValidStatuses are the states an admin decision may set.
func ValidStatuses() []string {
	return []string{string(StatusReplied), string(StatusPending), string(StatusApproved), string(StatusRejected)}
}

type DailyDiary struct {
	ID          string
	UserID      string
	Name        string
	Description string
	FilePath    *string
	FileLink    *string
	Date        time.Time
	Time        string // 12-hour submission clock string
	Status      Status

	// Reply fields, set only when an admin acts.
	ReplyMessage  *string
	ReplyDate     *time.Time
	RepliedBy     *string
	ReplyFilePath *string
	ReplyFileName *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	FirstName        *string
	LastName         *string
	Email            *string
	ProfileImage     *string
	TeamName         *string
	JobRoleName      *string
	ReplierFirstName *string
	ReplierLastName  *string
	ReplierEmail     *string
}

package task

import (
	"time"
)

type Status string

const (
	StatusAssigned  Status = "Assigned"
	StatusProgress  Status = "Progress"
	StatusCompleted Status = "Completed"

	// StatusPending appears in legacy rows and list filters but is never
	// writable through the status update path.
	StatusPending Status = "Pending"
)

// WritableStatuses are the states an admin override may set.
func WritableStatuses() []string {
	return []string{string(StatusAssigned), string(StatusCompleted), string(StatusProgress)}
}

// OpenStatuses are the states counted as not-yet-finished in listings.
func OpenStatuses() []Status {
	return []Status{StatusProgress, StatusAssigned, StatusPending}
}

type Task struct {
	ID          string
	AssignedTo  string
	Name        string
	Description string
	Deadline    *time.Time
	Status      Status

	// Assignment artifact: either an external PDF URL or an uploaded file.
	AssignFileURL    *string
	AssignFileName   *string
	AssignFileStored *string

	// Submission artifact.
	SubmitDate    *time.Time
	SubmitFileURL *string
	SubmitFile    *string

	CreatedAt time.Time

	// DTO / Join
	FirstName    *string
	LastName     *string
	Email        *string
	ProfileImage *string
}

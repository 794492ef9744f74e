package task

import "errors"

// Task domain errors
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrAssigneeNotFound  = errors.New("assigned user not found")
	ErrInvalidStatus     = errors.New("invalid task status")
	ErrInvalidFileURL    = errors.New("invalid file path, must be a valid pdf url")
	ErrInvalidFileType   = errors.New("only pdf files are allowed")
	ErrDeadlineInThePast = errors.New("deadline cannot be in the past")
	ErrNotAssignedToUser = errors.New("task not found or not assigned to you")
)

package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidStatus        = errors.New("invalid leave status")
)

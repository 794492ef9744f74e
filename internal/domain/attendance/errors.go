package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyMarked      = errors.New("attendance already recorded for today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

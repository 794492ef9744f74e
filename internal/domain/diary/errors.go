package diary

import "errors"

// Diary domain errors
var (
	ErrDiaryNotFound = errors.New("diary not found")
	ErrInvalidStatus = errors.New("invalid diary status")
)

package record

import "errors"

// Record domain errors
var (
	ErrRecordNotFound = errors.New("attendance record not found")

	// Creation errors
	ErrDuplicateRecord = errors.New("an attendance record already exists for this employee and day")

	// Decision errors
	ErrRecordAlreadyDecided = errors.New("attendance record has already been approved or rejected")
)

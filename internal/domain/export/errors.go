package export

import "errors"

var (
	// ErrEmptyResult signals that no employee has an approved record in the
	// requested month. Nothing is published in that case.
	ErrEmptyResult = errors.New("no approved attendance records for the requested month")
)

package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrDuplicateIdentifier = errors.New("an employee with this login already exists")
	ErrInvalidRole         = errors.New("role must be employee or admin")
)

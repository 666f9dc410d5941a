package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// Create persists a new employee. Returns ErrDuplicateIdentifier when the
	// login is already taken.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by login
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves all employees ordered by last name, first name
	List(ctx context.Context) ([]Employee, error)

	// HasAdmin reports whether at least one admin account exists
	HasAdmin(ctx context.Context) (bool, error)
}

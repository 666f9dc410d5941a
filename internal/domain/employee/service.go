package employee

import "context"

// EmployeeService defines business logic for employee provisioning
type EmployeeService interface {
	// Create provisions a new employee account, deriving the login from the
	// employee's names
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetByID retrieves a single employee by login
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)

	// List retrieves all employees
	List(ctx context.Context) ([]EmployeeResponse, error)

	// SeedAdmin creates a default admin account when none exists. Returns the
	// admin login and whether an account was created.
	SeedAdmin(ctx context.Context, password string) (string, bool, error)
}

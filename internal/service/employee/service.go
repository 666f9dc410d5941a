package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/becom/pointage-backend-go/internal/domain/employee"
	"github.com/becom/pointage-backend-go/internal/pkg/database"
	"github.com/becom/pointage-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// Default admin seeded on first run, same convention as any other employee
// login.
const (
	seedAdminFirstName = "admin"
	seedAdminLastName  = "admin"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

// NewEmployeeService builds the provisioning service. db may be nil when the
// repository is not database-backed; SeedAdmin then runs without a
// transaction.
func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	role := employee.Role(req.Role)
	if req.Role == "" {
		role = employee.RoleEmployee
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	emp := employee.Employee{
		ID:           employee.Login(req.LastName, req.FirstName),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		Role:         role,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// SeedAdmin implements employee.EmployeeService. The has-admin check and the
// insert run inside one transaction when a database is attached; either way
// the login's primary key makes a concurrent duplicate seed a no-op rather
// than a second admin.
func (s *EmployeeServiceImpl) SeedAdmin(ctx context.Context, password string) (string, bool, error) {
	if s.db == nil {
		return s.seedAdmin(ctx, password)
	}

	var login string
	var created bool
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		var err error
		login, created, err = s.seedAdmin(txCtx, password)
		return err
	})
	if err != nil {
		return "", false, err
	}
	return login, created, nil
}

func (s *EmployeeServiceImpl) seedAdmin(ctx context.Context, password string) (string, bool, error) {
	hasAdmin, err := s.employeeRepo.HasAdmin(ctx)
	if err != nil {
		return "", false, err
	}
	if hasAdmin {
		return "", false, nil
	}

	resp, err := s.Create(ctx, employee.CreateEmployeeRequest{
		FirstName: seedAdminFirstName,
		LastName:  seedAdminLastName,
		Password:  password,
		Role:      string(employee.RoleAdmin),
	})
	if err != nil {
		// Another seeder won the insert between the check and here
		if errors.Is(err, employee.ErrDuplicateIdentifier) {
			return "", false, nil
		}
		return "", false, err
	}

	return resp.ID, true, nil
}

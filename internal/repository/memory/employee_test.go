package memory

import (
	"context"
	"testing"

	"github.com/becom/pointage-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_Create_DuplicateIdentifier(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewStore())

	_, err := repo.Create(ctx, employee.Employee{ID: "dupont.jean", FirstName: "Jean", LastName: "Dupont", Role: employee.RoleEmployee})
	require.NoError(t, err)

	// A homonym collides on the generated login
	_, err = repo.Create(ctx, employee.Employee{ID: "dupont.jean", FirstName: "Jeanne", LastName: "Dupont", Role: employee.RoleEmployee})
	assert.ErrorIs(t, err, employee.ErrDuplicateIdentifier)
}

func TestEmployeeRepository_List_Sorted(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewStore())

	for _, emp := range []employee.Employee{
		{ID: "martin.claire", FirstName: "Claire", LastName: "Martin", Role: employee.RoleEmployee},
		{ID: "dupont.jean", FirstName: "Jean", LastName: "Dupont", Role: employee.RoleEmployee},
	} {
		_, err := repo.Create(ctx, emp)
		require.NoError(t, err)
	}

	employees, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "dupont.jean", employees[0].ID)
	assert.Equal(t, "martin.claire", employees[1].ID)
}

func TestEmployeeRepository_HasAdmin(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewStore())

	hasAdmin, err := repo.HasAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, hasAdmin)

	_, err = repo.Create(ctx, employee.Employee{ID: "admin.admin", FirstName: "admin", LastName: "admin", Role: employee.RoleAdmin})
	require.NoError(t, err)

	hasAdmin, err = repo.HasAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, hasAdmin)
}

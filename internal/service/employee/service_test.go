package employee

import (
	"context"
	"sync"
	"testing"

	"github.com/becom/pointage-backend-go/internal/domain/employee"
	"github.com/becom/pointage-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := memory.NewEmployeeRepository(store)
	svc := NewEmployeeService(nil, repo)

	resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName: "Jean",
		LastName:  "Dupont",
		Password:  "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "dupont.jean", resp.ID)
	assert.Equal(t, "Jean DUPONT", resp.DisplayName)
	assert.Equal(t, string(employee.RoleEmployee), resp.Role)

	// The stored credential is a bcrypt hash, never the plaintext
	stored, err := repo.GetByID(ctx, "dupont.jean")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))

	// A homonym collides on the derived login
	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName: "Jean",
		LastName:  "Dupont",
		Password:  "other-pass",
	})
	assert.ErrorIs(t, err, employee.ErrDuplicateIdentifier)
}

func TestEmployeeService_Create_ShortPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(nil, memory.NewEmployeeRepository(memory.NewStore()))

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName: "Jean",
		LastName:  "Dupont",
		Password:  "short",
	})
	assert.Error(t, err)
}

func TestEmployeeService_SeedAdmin(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(nil, memory.NewEmployeeRepository(memory.NewStore()))

	login, created, err := svc.SeedAdmin(ctx, "admin-password")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "admin.admin", login)

	// Second run is a no-op
	login, created, err = svc.SeedAdmin(ctx, "admin-password")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, login)
}

func TestEmployeeService_SeedAdmin_ConcurrentSingleAdmin(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEmployeeRepository(memory.NewStore())
	svc := NewEmployeeService(nil, repo)

	type outcome struct {
		created bool
		err     error
	}

	const seeders = 10
	var wg sync.WaitGroup
	results := make(chan outcome, seeders)

	for i := 0; i < seeders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, created, err := svc.SeedAdmin(ctx, "admin-password")
			results <- outcome{created: created, err: err}
		}()
	}
	wg.Wait()
	close(results)

	var wins int
	for res := range results {
		require.NoError(t, res.err)
		if res.created {
			wins++
		}
	}
	assert.Equal(t, 1, wins)

	employees, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, employee.RoleAdmin, employees[0].Role)
}

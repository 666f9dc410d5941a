package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/becom/pointage-backend-go/internal/pkg/validator"
)

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	req := CreateEmployeeRequest{
		FirstName: "Jean",
		LastName:  "Dupont",
		Password:  "s3cret-pass",
		Role:      "employee",
	}
	assert.NoError(t, req.Validate())
}

func TestCreateEmployeeRequest_Validate_MissingFields(t *testing.T) {
	req := CreateEmployeeRequest{Password: "short"}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "last_name")
	assert.Contains(t, fields, "password")
}

func TestCreateEmployeeRequest_Validate_UnusableLogin(t *testing.T) {
	tests := []struct {
		name      string
		lastName  string
		firstName string
	}{
		{"all-hyphen last name", "-", "Jean"},
		{"all-hyphen first name", "Dupont", "--"},
		{"accented last name", "Müller", "Hans"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateEmployeeRequest{
				FirstName: tt.firstName,
				LastName:  tt.lastName,
				Password:  "s3cret-pass",
			}

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), "last_name")
		})
	}
}

func TestCreateEmployeeRequest_Validate_BadRole(t *testing.T) {
	req := CreateEmployeeRequest{
		FirstName: "Jean",
		LastName:  "Dupont",
		Password:  "s3cret-pass",
		Role:      "manager",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "role")
}

package response

import (
	"errors"
	"net/http"

	"github.com/becom/pointage-backend-go/internal/domain/employee"
	"github.com/becom/pointage-backend-go/internal/domain/record"
	"github.com/becom/pointage-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Record domain errors
	case errors.Is(err, record.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, record.ErrDuplicateRecord):
		Conflict(w, "An attendance record already exists for this day")
	case errors.Is(err, record.ErrRecordAlreadyDecided):
		Conflict(w, "Attendance record has already been decided")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDuplicateIdentifier):
		Conflict(w, "An employee with this login already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

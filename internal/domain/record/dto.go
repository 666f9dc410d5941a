package record

import (
	"time"

	"github.com/becom/pointage-backend-go/internal/pkg/validator"
)

// ========================================
// RECORD DTOs
// ========================================

type CreateRecordRequest struct {
	EmployeeID string `json:"-"`
	Day        string `json:"day"`
	Type       string `json:"type"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Day); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be a valid date in YYYY-MM-DD format",
		})
	}

	if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: day, night, travel",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideRecordRequest struct {
	RecordID string `json:"-"`
	AdminID  string `json:"-"`
	Decision string `json:"-"`
}

func (r *DecideRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_id",
			Message: "record_id is required",
		})
	}

	if validator.IsEmpty(r.AdminID) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_id",
			Message: "admin_id is required",
		})
	}

	if !Decision(r.Decision).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be approve or reject",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RangeFilter struct {
	EmployeeID string
	From       time.Time
	To         time.Time
}

type PendingFilter struct {
	Page  int
	Limit int
}

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Day          string  `json:"day"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	DecidedBy    *string `json:"decided_by,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
}

type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int64            `json:"total"`
}

func ToResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Day:          rec.Day.Format("2006-01-02"),
		Type:         string(rec.Type),
		Status:       string(rec.Status),
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
		DecidedBy:    rec.DecidedBy,
	}
	if rec.DecidedAt != nil {
		decidedAt := rec.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}
	return resp
}

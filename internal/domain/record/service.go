package record

import (
	"context"
)

// RecordService defines business logic for the attendance record lifecycle
type RecordService interface {
	// Create registers a new pending record for an employee and day
	Create(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)

	// Decide applies an admin approve/reject decision to a pending record
	Decide(ctx context.Context, req DecideRecordRequest) (RecordResponse, error)

	// ListPending retrieves records awaiting a decision (admin view)
	ListPending(ctx context.Context, filter PendingFilter) (ListRecordsResponse, error)

	// ListByEmployeeAndRange retrieves an employee's records in a date range
	ListByEmployeeAndRange(ctx context.Context, filter RangeFilter) (ListRecordsResponse, error)

	// Delete removes a record (admin only)
	Delete(ctx context.Context, id string) error
}

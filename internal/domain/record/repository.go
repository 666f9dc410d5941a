package record

import (
	"context"
	"time"
)

// RecordRepository defines data access methods for attendance records.
type RecordRepository interface {
	// Create persists a pending record. Returns ErrDuplicateRecord when a
	// record for the same (employee, day) pair already exists in any status.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByID retrieves a record by its identifier
	GetByID(ctx context.Context, id string) (Record, error)

	// Decide transitions a pending record to the given terminal status,
	// stamping adminID and decidedAt. The transition is a compare-and-set on
	// the current status: of two concurrent calls on the same record exactly
	// one succeeds, the other gets ErrRecordAlreadyDecided.
	Decide(ctx context.Context, id string, status Status, adminID string, decidedAt time.Time) (Record, error)

	// ListPending retrieves pending records ordered by day then id
	ListPending(ctx context.Context, filter PendingFilter) ([]Record, int64, error)

	// ListByEmployeeAndRange retrieves an employee's records with day inside
	// [from, to], ordered by day then id
	ListByEmployeeAndRange(ctx context.Context, filter RangeFilter) ([]Record, error)

	// ListApprovedInRange retrieves all approved records with day inside
	// [from, to] as one consistent snapshot: mutations committed after the
	// call started are not reflected in the result set.
	ListApprovedInRange(ctx context.Context, from, to time.Time) ([]Record, error)

	// Delete removes a record (administrative delete)
	Delete(ctx context.Context, id string) error
}

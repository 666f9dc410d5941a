package memory

import (
	"context"
	"time"

	"github.com/becom/pointage-backend-go/internal/domain/record"
)

type recordRepository struct {
	store *Store
}

func NewRecordRepository(store *Store) record.RecordRepository {
	return &recordRepository{store: store}
}

// Create implements record.RecordRepository.
func (r *recordRepository) Create(ctx context.Context, rec record.Record) (record.Record, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(rec.EmployeeID, rec.Day.Format("2006-01-02"))
	if _, exists := s.byDay[k]; exists {
		return record.Record{}, record.ErrDuplicateRecord
	}

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	s.records[rec.ID] = rec
	s.byDay[k] = rec.ID

	return rec, nil
}

// GetByID implements record.RecordRepository.
func (r *recordRepository) GetByID(ctx context.Context, id string) (record.Record, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return record.Record{}, record.ErrRecordNotFound
	}
	return rec, nil
}

// Decide implements record.RecordRepository. The whole check-and-update runs
// under the write lock, so racing decisions serialize and exactly one wins.
func (r *recordRepository) Decide(ctx context.Context, id string, status record.Status, adminID string, decidedAt time.Time) (record.Record, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return record.Record{}, record.ErrRecordNotFound
	}
	if rec.Status != record.StatusPending {
		return record.Record{}, record.ErrRecordAlreadyDecided
	}

	rec.Status = status
	rec.DecidedBy = &adminID
	rec.DecidedAt = &decidedAt
	s.records[id] = rec

	return rec, nil
}

// ListPending implements record.RecordRepository.
func (r *recordRepository) ListPending(ctx context.Context, filter record.PendingFilter) ([]record.Record, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pending []record.Record
	for _, rec := range s.records {
		if rec.Status == record.StatusPending {
			if emp, ok := s.employees[rec.EmployeeID]; ok {
				name := emp.LastName + " " + emp.FirstName
				rec.EmployeeName = &name
			}
			pending = append(pending, rec)
		}
	}
	sortRecords(pending)

	total := int64(len(pending))

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit
	if offset >= len(pending) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(pending) {
		end = len(pending)
	}

	return pending[offset:end], total, nil
}

// ListByEmployeeAndRange implements record.RecordRepository.
func (r *recordRepository) ListByEmployeeAndRange(ctx context.Context, filter record.RangeFilter) ([]record.Record, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []record.Record
	for _, rec := range s.records {
		if rec.EmployeeID != filter.EmployeeID {
			continue
		}
		if rec.Day.Before(filter.From) || rec.Day.After(filter.To) {
			continue
		}
		result = append(result, rec)
	}
	sortRecords(result)

	return result, nil
}

// ListApprovedInRange implements record.RecordRepository. The copy is taken
// under the read lock, so the caller gets a stable snapshot.
func (r *recordRepository) ListApprovedInRange(ctx context.Context, from, to time.Time) ([]record.Record, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []record.Record
	for _, rec := range s.records {
		if rec.Status != record.StatusApproved {
			continue
		}
		if rec.Day.Before(from) || rec.Day.After(to) {
			continue
		}
		result = append(result, rec)
	}
	sortRecords(result)

	return result, nil
}

// Delete implements record.RecordRepository.
func (r *recordRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return record.ErrRecordNotFound
	}

	delete(s.records, id)
	delete(s.byDay, key(rec.EmployeeID, rec.Day.Format("2006-01-02")))

	return nil
}

package record

import (
	"context"
	"fmt"
	"time"

	"github.com/becom/pointage-backend-go/internal/domain/employee"
	"github.com/becom/pointage-backend-go/internal/domain/record"
	"github.com/google/uuid"
)

type RecordServiceImpl struct {
	recordRepo   record.RecordRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewRecordService(recordRepo record.RecordRepository, employeeRepo employee.EmployeeRepository) record.RecordService {
	return &RecordServiceImpl{
		recordRepo:   recordRepo,
		employeeRepo: employeeRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create implements record.RecordService.
func (s *RecordServiceImpl) Create(ctx context.Context, req record.CreateRecordRequest) (record.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return record.RecordResponse{}, err
	}

	day, err := time.ParseInLocation("2006-01-02", req.Day, time.UTC)
	if err != nil {
		// Validate already vetted the format; a parse failure here is a bug
		return record.RecordResponse{}, fmt.Errorf("failed to parse day %q: %w", req.Day, err)
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return record.RecordResponse{}, err
	}

	rec := record.Record{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Day:        day,
		Type:       record.Type(req.Type),
		Status:     record.StatusPending,
		CreatedAt:  s.now(),
	}

	created, err := s.recordRepo.Create(ctx, rec)
	if err != nil {
		return record.RecordResponse{}, err
	}

	return record.ToResponse(created), nil
}

// Decide implements record.RecordService. The repository performs the
// compare-and-set; the service never re-reads and writes back, so there is
// no window for a double decision.
func (s *RecordServiceImpl) Decide(ctx context.Context, req record.DecideRecordRequest) (record.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return record.RecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.AdminID); err != nil {
		return record.RecordResponse{}, err
	}

	decision := record.Decision(req.Decision)
	decided, err := s.recordRepo.Decide(ctx, req.RecordID, decision.Status(), req.AdminID, s.now())
	if err != nil {
		return record.RecordResponse{}, err
	}

	return record.ToResponse(decided), nil
}

// ListPending implements record.RecordService.
func (s *RecordServiceImpl) ListPending(ctx context.Context, filter record.PendingFilter) (record.ListRecordsResponse, error) {
	records, total, err := s.recordRepo.ListPending(ctx, filter)
	if err != nil {
		return record.ListRecordsResponse{}, err
	}

	return toListResponse(records, total), nil
}

// ListByEmployeeAndRange implements record.RecordService.
func (s *RecordServiceImpl) ListByEmployeeAndRange(ctx context.Context, filter record.RangeFilter) (record.ListRecordsResponse, error) {
	records, err := s.recordRepo.ListByEmployeeAndRange(ctx, filter)
	if err != nil {
		return record.ListRecordsResponse{}, err
	}

	return toListResponse(records, int64(len(records))), nil
}

// Delete implements record.RecordService.
func (s *RecordServiceImpl) Delete(ctx context.Context, id string) error {
	return s.recordRepo.Delete(ctx, id)
}

func toListResponse(records []record.Record, total int64) record.ListRecordsResponse {
	resp := record.ListRecordsResponse{
		Records: make([]record.RecordResponse, 0, len(records)),
		Total:   total,
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, record.ToResponse(rec))
	}
	return resp
}

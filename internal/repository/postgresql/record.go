package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/becom/pointage-backend-go/internal/domain/record"
	"github.com/becom/pointage-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type recordRepository struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) record.RecordRepository {
	return &recordRepository{db: db}
}

const recordColumns = `
	r.id, r.employee_id, r.day, r.type, r.status,
	r.created_at, r.decided_by, r.decided_at
`

func scanRecord(row pgx.Row) (record.Record, error) {
	var rec record.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Day, &rec.Type, &rec.Status,
		&rec.CreatedAt, &rec.DecidedBy, &rec.DecidedAt,
	)
	return rec, err
}

// Create implements record.RecordRepository. The unique index on
// (employee_id, day) enforces the one-record-per-day invariant at the point
// of mutation.
func (r *recordRepository) Create(ctx context.Context, newRecord record.Record) (record.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, day, type, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		newRecord.ID,
		newRecord.EmployeeID,
		newRecord.Day,
		newRecord.Type,
		newRecord.Status,
	).Scan(&newRecord.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return record.Record{}, record.ErrDuplicateRecord
		}
		return record.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return newRecord, nil
}

// GetByID implements record.RecordRepository.
func (r *recordRepository) GetByID(ctx context.Context, id string) (record.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records r
		WHERE r.id = $1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return record.Record{}, record.ErrRecordNotFound
		}
		return record.Record{}, fmt.Errorf("failed to get attendance record by ID: %w", err)
	}

	return rec, nil
}

// Decide implements record.RecordRepository. The status predicate makes the
// UPDATE a compare-and-set: whichever of two racing decisions commits first
// wins, the other matches zero rows.
func (r *recordRepository) Decide(ctx context.Context, id string, status record.Status, adminID string, decidedAt time.Time) (record.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records r
		SET status = $2, decided_by = $3, decided_at = $4
		WHERE r.id = $1 AND r.status = 'pending'
		RETURNING ` + recordColumns + `
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, id, status, adminID, decidedAt))
	if err == nil {
		return rec, nil
	}

	if err != pgx.ErrNoRows {
		return record.Record{}, fmt.Errorf("failed to decide attendance record: %w", err)
	}

	// Zero rows: either the record does not exist or it is already terminal.
	existsQuery := `SELECT EXISTS (SELECT 1 FROM attendance_records WHERE id = $1)`
	var exists bool
	if err := q.QueryRow(ctx, existsQuery, id).Scan(&exists); err != nil {
		return record.Record{}, fmt.Errorf("failed to check attendance record existence: %w", err)
	}
	if !exists {
		return record.Record{}, record.ErrRecordNotFound
	}
	return record.Record{}, record.ErrRecordAlreadyDecided
}

// ListPending implements record.RecordRepository.
func (r *recordRepository) ListPending(ctx context.Context, filter record.PendingFilter) ([]record.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := `SELECT COUNT(*) FROM attendance_records WHERE status = 'pending'`
	var total int64
	if err := q.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count pending records: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := `
		SELECT ` + recordColumns + `,
			e.last_name || ' ' || e.first_name AS employee_name
		FROM attendance_records r
		LEFT JOIN employees e ON e.id = r.employee_id
		WHERE r.status = 'pending'
		ORDER BY r.day ASC, r.id ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query pending records: %w", err)
	}
	defer rows.Close()

	var records []record.Record
	for rows.Next() {
		var rec record.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Day, &rec.Type, &rec.Status,
			&rec.CreatedAt, &rec.DecidedBy, &rec.DecidedAt,
			&rec.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}

// ListByEmployeeAndRange implements record.RecordRepository.
func (r *recordRepository) ListByEmployeeAndRange(ctx context.Context, filter record.RangeFilter) ([]record.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records r
		WHERE r.employee_id = $1
		  AND r.day >= $2
		  AND r.day <= $3
		ORDER BY r.day ASC, r.id ASC
	`

	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query records by employee and range: %w", err)
	}
	defer rows.Close()

	var records []record.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// ListApprovedInRange implements record.RecordRepository. The read runs in
// its own repeatable-read transaction so the export sees one consistent
// snapshot without blocking concurrent creations and decisions.
func (r *recordRepository) ListApprovedInRange(ctx context.Context, from, to time.Time) ([]record.Record, error) {
	tx, err := r.db.BeginSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records r
		WHERE r.status = 'approved'
		  AND r.day >= $1
		  AND r.day <= $2
		ORDER BY r.employee_id ASC, r.day ASC, r.id ASC
	`

	rows, err := tx.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved records: %w", err)
	}
	defer rows.Close()

	var records []record.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	rows.Close()

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit snapshot transaction: %w", err)
	}

	return records, nil
}

// Delete implements record.RecordRepository.
func (r *recordRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM attendance_records WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return record.ErrRecordNotFound
	}

	return nil
}

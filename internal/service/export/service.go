package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/becom/pointage-backend-go/internal/domain/employee"
	"github.com/becom/pointage-backend-go/internal/domain/export"
	"github.com/becom/pointage-backend-go/internal/domain/record"
	"github.com/becom/pointage-backend-go/internal/pkg/archive"
	"github.com/becom/pointage-backend-go/internal/pkg/report"
	"github.com/becom/pointage-backend-go/internal/pkg/storage"
)

type ExportServiceImpl struct {
	recordRepo   record.RecordRepository
	employeeRepo employee.EmployeeRepository
	renderer     report.Renderer
	bundler      archive.Bundler
	storage      storage.FileStorage
	now          func() time.Time
}

func NewExportService(
	recordRepo record.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	renderer report.Renderer,
	bundler archive.Bundler,
	fileStorage storage.FileStorage,
) export.ExportService {
	return &ExportServiceImpl{
		recordRepo:   recordRepo,
		employeeRepo: employeeRepo,
		renderer:     renderer,
		bundler:      bundler,
		storage:      fileStorage,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// GenerateMonthlyExport implements export.ExportService.
//
// The job is all-or-nothing: every report is rendered in memory first, then
// the bundle is handed to the storage layer, which stages it in a temp file
// and renames on success. No partial archive is ever visible to callers.
func (s *ExportServiceImpl) GenerateMonthlyExport(ctx context.Context, year, month int) (export.ExportResult, error) {
	req := export.GenerateExportRequest{Year: year, Month: month}
	if err := req.Validate(); err != nil {
		return export.ExportResult{}, err
	}

	generatedAt := s.now()

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	// Snapshot read: records approved after this point are not included.
	records, err := s.recordRepo.ListApprovedInRange(ctx, first, last)
	if err != nil {
		return export.ExportResult{}, fmt.Errorf("failed to read approved records for %d-%02d: %w", year, month, err)
	}
	if len(records) == 0 {
		return export.ExportResult{}, export.ErrEmptyResult
	}

	groups := groupByEmployee(records)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return export.ExportResult{}, fmt.Errorf("failed to list employees for %d-%02d: %w", year, month, err)
	}
	byLogin := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		byLogin[emp.ID] = emp
	}

	logins := make([]string, 0, len(groups))
	for login := range groups {
		logins = append(logins, login)
	}
	sort.Strings(logins)

	files := make([]archive.File, 0, len(logins))
	for _, login := range logins {
		group := groups[login]

		displayName := login
		if emp, ok := byLogin[login]; ok {
			displayName = emp.DisplayName()
		}

		rep := report.Report{
			Login:       login,
			DisplayName: displayName,
			Year:        year,
			Month:       month,
			GeneratedAt: generatedAt,
			Entries:     toEntries(group),
		}

		content, err := s.renderer.Render(rep)
		if err != nil {
			// One bad report aborts the whole job; nothing was published yet.
			return export.ExportResult{}, fmt.Errorf("failed to render report for %s (%d-%02d): %w", login, year, month, err)
		}

		files = append(files, archive.File{
			Name:    fmt.Sprintf("%s-%d-%02d%s", login, year, month, s.renderer.Ext()),
			Content: content,
		})
	}

	bundle, err := s.bundler.Bundle(files, generatedAt)
	if err != nil {
		return export.ExportResult{}, fmt.Errorf("failed to bundle reports for %d-%02d: %w", year, month, err)
	}

	archivePath := fmt.Sprintf("%d-%02d/recap-%d-%02d%s", year, month, year, month, s.bundler.Ext())
	published, err := s.storage.Publish(ctx, archivePath, bytes.NewReader(bundle))
	if err != nil {
		return export.ExportResult{}, fmt.Errorf("failed to publish archive for %d-%02d: %w", year, month, err)
	}

	slog.Info("Monthly export published",
		"year", year,
		"month", month,
		"archive", published,
		"employees", len(logins),
		"records", len(records))

	return export.ExportResult{
		Year:        year,
		Month:       month,
		ArchivePath: published,
		ArchiveURL:  s.storage.URL(published),
		Employees:   logins,
		GeneratedAt: generatedAt,
	}, nil
}

// groupByEmployee partitions the snapshot per employee. Each group keeps the
// repository order: day ascending, then record id ascending, which makes
// same-day entries (a re-created corrective record, for example) come out in
// a stable order.
func groupByEmployee(records []record.Record) map[string][]record.Record {
	groups := make(map[string][]record.Record)
	for _, rec := range records {
		groups[rec.EmployeeID] = append(groups[rec.EmployeeID], rec)
	}
	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			if !group[i].Day.Equal(group[j].Day) {
				return group[i].Day.Before(group[j].Day)
			}
			return group[i].ID < group[j].ID
		})
	}
	return groups
}

func toEntries(records []record.Record) []report.Entry {
	entries := make([]report.Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, report.Entry{
			Day:  rec.Day,
			Type: string(rec.Type),
		})
	}
	return entries
}

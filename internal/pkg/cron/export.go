package cron

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/becom/pointage-backend-go/internal/domain/export"
)

// ExportJobs owns the periodic monthly export trigger. The engine itself is
// idempotent-safe for a given month, so re-running after a crash or restart
// just replaces the archive.
type ExportJobs struct {
	exportService export.ExportService
}

func NewExportJobs(exportService export.ExportService) *ExportJobs {
	return &ExportJobs{
		exportService: exportService,
	}
}

func (j *ExportJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("monthly_export", 1*time.Hour, j.GeneratePreviousMonthExport)
}

func (j *ExportJobs) GeneratePreviousMonthExport(ctx context.Context) error {
	// Only run on the 1st of the month, between 02:00 and 02:59 UTC
	now := time.Now().UTC()
	if now.Day() != 1 || now.Hour() != 2 {
		return nil
	}

	prev := now.AddDate(0, -1, 0)
	year, month := prev.Year(), int(prev.Month())

	slog.Info("Cron: Starting monthly export job", "year", year, "month", month)

	result, err := j.exportService.GenerateMonthlyExport(ctx, year, month)
	if err != nil {
		if errors.Is(err, export.ErrEmptyResult) {
			slog.Info("Cron: No approved records to export", "year", year, "month", month)
			return nil
		}
		return err
	}

	slog.Info("Cron: Monthly export published",
		"year", year,
		"month", month,
		"archive", result.ArchivePath,
		"employees", len(result.Employees))
	return nil
}

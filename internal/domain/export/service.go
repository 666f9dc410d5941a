package export

import "context"

// ExportService defines the monthly export/aggregation engine
type ExportService interface {
	// GenerateMonthlyExport aggregates the month's approved records per
	// employee, renders one report per employee and publishes a single
	// archive. The publication is all-or-nothing: a failure while rendering
	// any report leaves no partial archive behind. Safe to call repeatedly
	// for the same year/month; a re-run atomically replaces the prior
	// archive.
	GenerateMonthlyExport(ctx context.Context, year, month int) (ExportResult, error)
}

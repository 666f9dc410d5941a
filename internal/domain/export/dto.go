package export

import (
	"time"

	"github.com/becom/pointage-backend-go/internal/pkg/validator"
)

type GenerateExportRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *GenerateExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ExportResult describes one completed monthly export job.
type ExportResult struct {
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	ArchivePath string    `json:"archive_path"`
	ArchiveURL  string    `json:"archive_url,omitempty"`
	Employees   []string  `json:"employees"`
	GeneratedAt time.Time `json:"generated_at"`
}

package cron

import (
	"context"
	"testing"
	"time"

	"github.com/becom/pointage-backend-go/internal/domain/export"
	"github.com/stretchr/testify/assert"
)

type stubExportService struct {
	calls []struct{ year, month int }
	err   error
}

func (s *stubExportService) GenerateMonthlyExport(ctx context.Context, year, month int) (export.ExportResult, error) {
	s.calls = append(s.calls, struct{ year, month int }{year, month})
	if s.err != nil {
		return export.ExportResult{}, s.err
	}
	return export.ExportResult{Year: year, Month: month}, nil
}

func TestExportJobs_GatedOutsideWindow(t *testing.T) {
	now := time.Now().UTC()
	if now.Day() == 1 && now.Hour() == 2 {
		t.Skip("running inside the export window")
	}

	stub := &stubExportService{}
	jobs := NewExportJobs(stub)

	assert.NoError(t, jobs.GeneratePreviousMonthExport(context.Background()))
	assert.Empty(t, stub.calls)
}

func TestExportJobs_RegisterJobs(t *testing.T) {
	scheduler := NewScheduler()
	NewExportJobs(&stubExportService{}).RegisterJobs(scheduler)

	if assert.Len(t, scheduler.jobs, 1) {
		assert.Equal(t, "monthly_export", scheduler.jobs[0].name)
		assert.Equal(t, time.Hour, scheduler.jobs[0].interval)
	}
}

func TestScheduler_StartRunsJobsAndStops(t *testing.T) {
	scheduler := NewScheduler()
	ran := make(chan struct{}, 1)
	scheduler.AddJob("sentinel", time.Hour, func(ctx context.Context) error {
		ran <- struct{}{}
		return nil
	})

	scheduler.Start(context.Background())

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not run on start")
	}

	// Stop waits for the job goroutine to exit
	scheduler.Stop()
}

func TestScheduler_StopsOnParentCancel(t *testing.T) {
	scheduler := NewScheduler()
	ran := make(chan struct{}, 1)
	scheduler.AddJob("sentinel", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not run on start")
	}

	cancel()
	// Returns once the job goroutine observes the cancelled parent
	scheduler.Stop()
}

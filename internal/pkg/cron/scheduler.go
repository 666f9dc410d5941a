package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// JobFunc is one periodic unit of background work.
type JobFunc func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       JobFunc
}

// Scheduler drives the background jobs of the export pipeline. Register jobs
// with AddJob, then Start; each job runs once immediately and then on its
// interval until the parent context is cancelled or Stop is called.
type Scheduler struct {
	jobs   []job
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AddJob registers a job. Must be called before Start.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn JobFunc) {
	s.jobs = append(s.jobs, job{name: name, interval: interval, fn: fn})
	slog.Info("Scheduled job registered", "name", name, "interval", interval)
}

// Start launches one goroutine per registered job under ctx.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.run(ctx, j)
	}

	slog.Info("Scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all running jobs and waits for them to return.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context, j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	s.execute(ctx, j)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.execute(ctx, j)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, j job) {
	start := time.Now()

	if err := j.fn(ctx); err != nil {
		slog.Error("Scheduled job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Scheduled job completed", "name", j.name, "duration", time.Since(start))
}

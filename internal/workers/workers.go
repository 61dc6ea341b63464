package workers

import (
	"context"
	"time"
)

// Workers runs a set of jobs with one lifecycle.
type Workers struct {
	jobs []Job
}

func NewWorkers(jobs ...Job) *Workers {
	return &Workers{jobs: jobs}
}

// Start launches every job with the given poll interval.
func (w *Workers) Start(ctx context.Context, interval time.Duration) {
	for _, job := range w.jobs {
		job.Start(ctx, interval)
	}
}

// Stop stops every job, blocking until all goroutines have exited.
func (w *Workers) Stop() {
	for _, job := range w.jobs {
		job.Stop()
	}
}

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/Premdhumal/go-tweet-client/internal/logger"
	"github.com/Premdhumal/go-tweet-client/internal/service"
)

type notificationJob struct {
	notifications service.NotificationService
	logger        *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewNotificationJob creates a job that refreshes the notification feed on a
// ticker. Each tick fetches the feed, which also updates the local cache and
// the unread counter. The job is idle until Start is called.
func NewNotificationJob(notifications service.NotificationService, log *logger.Logger) Job {
	return &notificationJob{notifications: notifications, logger: log}
}

// Start stops any previously running poll loop, then launches a goroutine
// that fetches notifications every interval. If interval is zero or negative
// it defaults to 1 minute. The goroutine exits when ctx is cancelled or Stop
// is called.
func (j *notificationJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.notifications.List(jobCtx); err != nil {
					j.logger.Debug().Err(err).Msg("notification poll failed")
				}
			}
		}
	}()
}

// Stop cancels the poll goroutine's context and blocks until it has fully
// exited. Safe to call when the job is not running (no-op in that case).
func (j *notificationJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

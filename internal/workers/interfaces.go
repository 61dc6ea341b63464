// Package workers provides the client's background jobs. A job runs on its
// own goroutine between Start and Stop; the Workers aggregate starts and
// stops a set of jobs together, following the session lifecycle (jobs run
// while a user is signed in).
package workers

import (
	"context"
	"time"
)

// Job is a restartable background task. Start launches the goroutine and
// returns immediately; Stop cancels it and blocks until it has fully exited.
// Stop is safe to call when the job is not running.
type Job interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

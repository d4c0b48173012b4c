package video

import (
	"context"
	"time"

	"github.com/Weslleykacau1/AvatarForge/generation"
)

const (
	// DefaultPollInterval matches the cadence the video service expects.
	// Do not change it without revisiting quota: a tighter loop burns
	// status-check quota with no faster completion.
	DefaultPollInterval = 5 * time.Second

	// DefaultMaxAttempts bounds the wait at 5 minutes on the default
	// interval. Generation is usually done within a minute.
	DefaultMaxAttempts = 60
)

// Poller drives a long-running operation to a terminal state by checking
// its status at a fixed interval. The zero value is not usable; construct
// with NewPoller.
type Poller struct {
	checker     StatusChecker
	interval    time.Duration
	maxAttempts int
}

// NewPoller builds a poller. interval <= 0 and maxAttempts <= 0 fall back
// to the defaults.
func NewPoller(checker StatusChecker, interval time.Duration, maxAttempts int) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Poller{checker: checker, interval: interval, maxAttempts: maxAttempts}
}

// Await polls until the operation completes, fails, or the attempt budget
// runs out. Cancelling ctx stops polling, but cannot un-submit the remote
// job.
//
// Terminal outcomes:
//   - done with an error message: RemoteOperationError
//   - done with no media asset: MissingMediaError
//   - attempt budget exceeded: TimeoutError
func (p *Poller) Await(ctx context.Context, op Operation) (Operation, error) {
	attempts := 0
	for !op.Done {
		updated, err := p.checker.CheckOperation(ctx, op)
		if err != nil {
			return op, err
		}
		attempts++
		op = updated

		if op.Done {
			break
		}

		// Budget exhausted: report the timeout now rather than sleeping
		// through one more interval first.
		if attempts >= p.maxAttempts {
			return op, &generation.TimeoutError{Attempts: attempts, Interval: p.interval}
		}

		select {
		case <-ctx.Done():
			return op, &generation.TransportError{Op: "polling cancelled", Err: ctx.Err()}
		case <-time.After(p.interval):
		}
	}

	if op.ErrorMessage != "" {
		return op, &generation.RemoteOperationError{Message: op.ErrorMessage}
	}
	if !op.HasMedia() {
		return op, &generation.MissingMediaError{Operation: op.Name}
	}
	return op, nil
}

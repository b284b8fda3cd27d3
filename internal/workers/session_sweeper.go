package workers

import (
	"context"
	"time"

	"github.com/periodicapp/periodic/internal/logger"
)

// ExpiredSessionDeleter removes sessions whose expiry has passed and
// reports how many were deleted. Implemented by the PostgreSQL session
// repository; the Redis backend expires keys natively and needs no sweeper.
type ExpiredSessionDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// SessionSweeper periodically deletes expired session rows. Expiry is
// already enforced on read, so the sweeper only keeps the table from
// accumulating rows for clients that never came back.
type SessionSweeper struct {
	deleter  ExpiredSessionDeleter
	interval time.Duration
	logger   *logger.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSessionSweeper constructs a SessionSweeper that sweeps every interval.
func NewSessionSweeper(deleter ExpiredSessionDeleter, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		deleter:  deleter,
		interval: interval,
		logger:   logger,
	}
}

// Run implements [Worker]. It starts the sweep loop in its own goroutine
// and returns immediately.
func (s *SessionSweeper) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.loop(ctx)
}

// Stop implements [Worker]. It cancels the sweep loop and waits for it to
// finish. Stopping a sweeper that was never run is a no-op.
func (s *SessionSweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *SessionSweeper) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	deleted, err := s.deleter.DeleteExpired(ctx)
	if err != nil {
		s.logger.Err(err).Msg("sweeping expired sessions failed")
		return
	}
	if deleted > 0 {
		s.logger.Debug().Int64("deleted", deleted).Msg("expired sessions swept")
	}
}

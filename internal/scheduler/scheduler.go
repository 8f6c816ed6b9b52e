package scheduler

import (
	"context"
	"log/slog"
	"time"
)

type SessionExpirer interface {
	ExpireIdle(now time.Time) int
}

// SessionSweeper periodically drops idle controller sessions.
type SessionSweeper struct {
	sessions SessionExpirer
	interval time.Duration
	done     chan struct{}
}

func NewSessionSweeper(sessions SessionExpirer, interval time.Duration) *SessionSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SessionSweeper{sessions: sessions, interval: interval, done: make(chan struct{})}
}

// Start runs the sweep loop until ctx is cancelled.
func (s *SessionSweeper) Start(ctx context.Context) {
	if s.sessions == nil {
		slog.Warn("session sweeper skipped: no registry configured")
		close(s.done)
		return
	}
	ticker := time.NewTicker(s.interval)
	go func() {
		defer close(s.done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.run()
			}
		}
	}()
}

// Done is closed once the sweep loop has exited.
func (s *SessionSweeper) Done() <-chan struct{} {
	return s.done
}

func (s *SessionSweeper) run() {
	if expired := s.sessions.ExpireIdle(time.Now()); expired > 0 {
		slog.Info("idle sessions expired", "count", expired)
	}
}

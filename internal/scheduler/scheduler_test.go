package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingExpirer struct {
	calls atomic.Int32
}

func (e *countingExpirer) ExpireIdle(time.Time) int {
	e.calls.Add(1)
	return 1
}

func TestSweeperRunsUntilCancelled(t *testing.T) {
	expirer := &countingExpirer{}
	sweeper := NewSessionSweeper(expirer, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	sweeper.Start(ctx)

	deadline := time.After(2 * time.Second)
	for expirer.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("sweeper never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-sweeper.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestSweeperWithoutRegistry(t *testing.T) {
	sweeper := NewSessionSweeper(nil, time.Millisecond)
	sweeper.Start(context.Background())
	select {
	case <-sweeper.Done():
	default:
		t.Fatal("done should be closed immediately")
	}
}

func TestSweeperDefaultInterval(t *testing.T) {
	sweeper := NewSessionSweeper(&countingExpirer{}, 0)
	if sweeper.interval != time.Minute {
		t.Fatalf("interval = %v, want 1m", sweeper.interval)
	}
}

package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeExpirer struct {
	gotTTL  time.Duration
	expired int64
	err     error
	calls   int
}

func (f *fakeExpirer) ExpirePendingOlderThan(ctx context.Context, ttl time.Duration) (int64, error) {
	f.calls++
	f.gotTTL = ttl
	return f.expired, f.err
}

func TestRunPendingExpiryPassesTTL(t *testing.T) {
	expirer := &fakeExpirer{expired: 3}
	manager := NewManager(expirer, 72*time.Hour, "0 */10 * * * *", zerolog.Nop())

	manager.runPendingExpiry()

	if expirer.calls != 1 {
		t.Fatalf("expirer called %d times, want 1", expirer.calls)
	}
	if expirer.gotTTL != 72*time.Hour {
		t.Errorf("ttl = %v, want %v", expirer.gotTTL, 72*time.Hour)
	}
}

func TestRunPendingExpirySwallowsErrors(t *testing.T) {
	expirer := &fakeExpirer{err: errors.New("db down")}
	manager := NewManager(expirer, time.Hour, "0 */10 * * * *", zerolog.Nop())

	// Must not panic; the scheduler keeps running after a failed sweep.
	manager.runPendingExpiry()

	if expirer.calls != 1 {
		t.Fatalf("expirer called %d times, want 1", expirer.calls)
	}
}

func TestStartRejectsBadSpec(t *testing.T) {
	manager := NewManager(&fakeExpirer{}, time.Hour, "not a cron spec", zerolog.Nop())

	if err := manager.Start(); err == nil {
		manager.Stop()
		t.Fatal("Start() accepted an invalid cron expression")
	}
}

func TestStartAndStop(t *testing.T) {
	manager := NewManager(&fakeExpirer{}, time.Hour, "0 0 3 * * *", zerolog.Nop())

	if err := manager.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	manager.Stop()
}

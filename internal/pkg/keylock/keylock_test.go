package keylock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestAcquireRelease(t *testing.T) {
	m := New()

	release, err := m.Acquire(context.Background(), 1)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	release()

	// the key must be reacquirable immediately after release
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	release2, err := m.Acquire(ctx, 1)
	if err != nil {
		t.Fatalf("Acquire() after release error = %v", err)
	}
	release2()
}

func TestSameKeyExcludes(t *testing.T) {
	m := New()

	release, err := m.Acquire(context.Background(), 42)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := m.Acquire(ctx, 42); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Acquire() on held key error = %v, want deadline exceeded", err)
	}
}

func TestDifferentKeysIndependent(t *testing.T) {
	m := New()

	release1, err := m.Acquire(context.Background(), 1)
	if err != nil {
		t.Fatalf("Acquire(1) error = %v", err)
	}
	defer release1()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	release2, err := m.Acquire(ctx, 2)
	if err != nil {
		t.Fatalf("Acquire(2) while 1 is held error = %v", err)
	}
	release2()
}

func TestReleaseIsIdempotent(t *testing.T) {
	m := New()

	release, err := m.Acquire(context.Background(), 7)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	release()
	release() // must not panic or over-release

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	release2, err := m.Acquire(ctx, 7)
	if err != nil {
		t.Fatalf("Acquire() after double release error = %v", err)
	}
	defer release2()

	// a second acquire must still block, proving the lock was not released twice
	ctx2, cancel2 := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel2()
	if _, err := m.Acquire(ctx2, 7); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Acquire() on held key error = %v, want deadline exceeded", err)
	}
}

func TestContendedCounter(t *testing.T) {
	m := New()

	const goroutines = 32
	var counter int // protected only by the keyed lock

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			release, err := m.Acquire(context.Background(), 9)
			if err != nil {
				t.Errorf("Acquire() error = %v", err)
				return
			}
			counter++
			release()
		}()
	}
	wg.Wait()

	if counter != goroutines {
		t.Errorf("counter = %d, want %d", counter, goroutines)
	}
}

func TestEntriesAreDropped(t *testing.T) {
	m := New()

	release, err := m.Acquire(context.Background(), 5)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	release()

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.locks) != 0 {
		t.Errorf("locks map has %d entries after release, want 0", len(m.locks))
	}
}

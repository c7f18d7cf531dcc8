// Package keylock provides mutual exclusion scoped to a key. Callers locking
// different keys never contend; callers locking the same key are granted the
// lock one at a time in arrival order.
package keylock

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// KeyedMutex is a set of per-key locks that are created on first use and
// dropped once no caller holds or waits on them.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*lockEntry
}

type lockEntry struct {
	sem  *semaphore.Weighted
	refs int
}

// New creates an empty KeyedMutex.
func New() *KeyedMutex {
	return &KeyedMutex{locks: make(map[int64]*lockEntry)}
}

// Acquire blocks until the key's lock is granted or ctx ends, whichever comes
// first. A deadline on ctx bounds the wait. On success the returned release
// function must be called exactly once; calling it again is a no-op.
func (m *KeyedMutex) Acquire(ctx context.Context, key int64) (release func(), err error) {
	m.mu.Lock()
	e, ok := m.locks[key]
	if !ok {
		e = &lockEntry{sem: semaphore.NewWeighted(1)}
		m.locks[key] = e
	}
	e.refs++
	m.mu.Unlock()

	if err := e.sem.Acquire(ctx, 1); err != nil {
		m.put(key, e)
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			e.sem.Release(1)
			m.put(key, e)
		})
	}, nil
}

// put drops one reference to the key's entry and removes it when unused.
func (m *KeyedMutex) put(key int64, e *lockEntry) {
	m.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(m.locks, key)
	}
	m.mu.Unlock()
}

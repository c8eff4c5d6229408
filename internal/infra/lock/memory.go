// Package lock provides in-process named locking. The Postgres advisory
// lock in the persistence layer is preferred when more than one process
// shares the database.
package lock

import (
	"context"
	"sync"
	"time"

	"vtpgate/internal/domain/service"
	"vtpgate/internal/errors"
)

const pollInterval = 200 * time.Millisecond

// Memory is a process-local NamedLock. It serializes goroutines in one
// process only; use it in tests and single-instance deployments.
type Memory struct {
	mu   sync.Mutex
	held map[string]bool
}

// NewMemory creates an in-process named lock.
func NewMemory() *Memory {
	return &Memory{held: make(map[string]bool)}
}

// TryAcquire implements service.NamedLock.
func (m *Memory) TryAcquire(ctx context.Context, key string, wait time.Duration) (bool, error) {
	deadline := time.Now().Add(wait)

	for {
		if m.tryOnce(key) {
			return true, nil
		}
		if time.Now().After(deadline) {
			return false, nil
		}

		select {
		case <-ctx.Done():
			return false, errors.Wrap(ctx.Err(), "named lock wait")
		case <-time.After(pollInterval):
		}
	}
}

// Release implements service.NamedLock.
func (m *Memory) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.held[key] {
		return errors.Errorf("lock %q is not held", key)
	}
	delete(m.held, key)

	return nil
}

func (m *Memory) tryOnce(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.held[key] {
		return false
	}
	m.held[key] = true

	return true
}

var _ service.NamedLock = (*Memory)(nil)

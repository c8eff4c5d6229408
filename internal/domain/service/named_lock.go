package service

import (
	"context"
	"time"
)

// NamedLock is a cooperative lock keyed by string, used to serialize token
// refreshes across processes. TryAcquire polls until the lock is obtained
// or the wait elapses; it never blocks longer than wait.
type NamedLock interface {
	// TryAcquire attempts to take the lock, polling for up to wait.
	// It returns false, without error, when the lock stays held elsewhere.
	TryAcquire(ctx context.Context, key string, wait time.Duration) (bool, error)

	// Release frees a lock previously acquired with the same key.
	Release(ctx context.Context, key string) error
}

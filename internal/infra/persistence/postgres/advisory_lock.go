package postgres

import (
	"context"
	"database/sql"
	"hash/fnv"
	"sync"
	"time"

	"vtpgate/internal/domain/service"
	"vtpgate/internal/errors"

	"gorm.io/gorm"
)

const lockPollInterval = 200 * time.Millisecond

// advisoryLock implements service.NamedLock on top of Postgres advisory
// locks, so refreshes are serialized across every process sharing the
// database. Advisory locks are session-scoped, so each held lock pins one
// connection until it is released.
type advisoryLock struct {
	sqlDB *sql.DB

	mu    sync.Mutex
	conns map[string]*sql.Conn
}

// NewAdvisoryLock is the constructor for advisoryLock.
func NewAdvisoryLock(db *gorm.DB) (service.NamedLock, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB for advisory lock")
	}

	return &advisoryLock{
		sqlDB: sqlDB,
		conns: make(map[string]*sql.Conn),
	}, nil
}

// TryAcquire implements service.NamedLock. It polls pg_try_advisory_lock
// until the lock is obtained or wait elapses.
func (l *advisoryLock) TryAcquire(ctx context.Context, key string, wait time.Duration) (bool, error) {
	deadline := time.Now().Add(wait)
	lockID := LockID(key)

	for {
		ok, err := l.tryOnce(ctx, key, lockID)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		if time.Now().After(deadline) {
			return false, nil
		}

		select {
		case <-ctx.Done():
			return false, errors.Wrap(ctx.Err(), "advisory lock wait")
		case <-time.After(lockPollInterval):
		}
	}
}

// Release implements service.NamedLock.
func (l *advisoryLock) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	conn, ok := l.conns[key]
	delete(l.conns, key)
	l.mu.Unlock()

	if !ok {
		return errors.Errorf("advisory lock %q is not held by this process", key)
	}

	defer conn.Close()

	var released bool
	if err := conn.QueryRowContext(ctx, "SELECT pg_advisory_unlock($1)", LockID(key)).Scan(&released); err != nil {
		return errors.Wrap(err, "failed to release advisory lock")
	}
	if !released {
		return errors.Errorf("advisory lock %q was not held by this session", key)
	}

	return nil
}

func (l *advisoryLock) tryOnce(ctx context.Context, key string, lockID int64) (bool, error) {
	conn, err := l.sqlDB.Conn(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to get connection for advisory lock")
	}

	var acquired bool
	if err := conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", lockID).Scan(&acquired); err != nil {
		conn.Close()

		return false, errors.Wrap(err, "failed to try advisory lock")
	}

	if !acquired {
		conn.Close()

		return false, nil
	}

	l.mu.Lock()
	l.conns[key] = conn
	l.mu.Unlock()

	return true, nil
}

// LockID maps a lock key onto the positive int32 range Postgres advisory
// locks accept.
func LockID(key string) int64 {
	h := fnv.New64a()
	h.Write([]byte(key))

	return int64(h.Sum64() % 2147483647)
}

package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAcquireRelease(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	ok, err := m.TryAcquire(ctx, "refresh:a", 0)
	require.NoError(t, err)
	assert.True(t, ok)

	// Same key is busy, a different key is free.
	ok, err = m.TryAcquire(ctx, "refresh:a", 0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = m.TryAcquire(ctx, "refresh:b", 0)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, m.Release(ctx, "refresh:a"))

	ok, err = m.TryAcquire(ctx, "refresh:a", 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryReleaseUnheld(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	assert.Error(t, m.Release(context.Background(), "never-held"))
}

func TestMemoryWaitsForHolder(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	ok, err := m.TryAcquire(ctx, "refresh:a", 0)
	require.NoError(t, err)
	require.True(t, ok)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		time.Sleep(250 * time.Millisecond)
		_ = m.Release(ctx, "refresh:a")
	}()

	ok, err = m.TryAcquire(ctx, "refresh:a", 2*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	wg.Wait()
}

func TestMemoryContextCancel(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())

	ok, err := m.TryAcquire(ctx, "refresh:a", 0)
	require.NoError(t, err)
	require.True(t, ok)

	cancel()
	_, err = m.TryAcquire(ctx, "refresh:a", time.Second)
	assert.Error(t, err)
}

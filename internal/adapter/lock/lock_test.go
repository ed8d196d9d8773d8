package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comparee/internal/core/port"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedis(rdb, "comparee:"), mr
}

func TestRedis_SecondAcquireFailsUntilReleased(t *testing.T) {
	ctx := context.Background()
	l, mr := newTestRedis(t)

	release, ok, err := l.TryAcquire(ctx, "gsc-sync", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, mr.Exists("comparee:lock:gsc-sync"))

	_, ok, err = l.TryAcquire(ctx, "gsc-sync", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, release(ctx))
	assert.False(t, mr.Exists("comparee:lock:gsc-sync"))

	_, ok, err = l.TryAcquire(ctx, "gsc-sync", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedis_ExpiredLeaseIsNotReleasedByOldHolder(t *testing.T) {
	ctx := context.Background()
	l, mr := newTestRedis(t)

	oldRelease, ok, err := l.TryAcquire(ctx, "job", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	_, ok, err = l.TryAcquire(ctx, "job", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, oldRelease(ctx))
	assert.True(t, mr.Exists("comparee:lock:job"), "new holder's lease must survive")
}

func TestRedis_ConnectionError(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	l := NewRedis(rdb, "comparee:")
	mr.Close()

	_, ok, err := l.TryAcquire(context.Background(), "job", time.Minute)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestLocal_LeaseAndExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewLocal()
	l.now = func() time.Time { return now }

	release, ok, _ := l.TryAcquire(ctx, "job", time.Minute)
	require.True(t, ok)

	_, ok, _ = l.TryAcquire(ctx, "job", time.Minute)
	assert.False(t, ok)

	_, ok, _ = l.TryAcquire(ctx, "other", time.Minute)
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	var newRelease port.ReleaseFunc
	newRelease, ok, _ = l.TryAcquire(ctx, "job", time.Minute)
	require.True(t, ok)

	// The stale holder must not drop the new lease.
	require.NoError(t, release(ctx))
	_, ok, _ = l.TryAcquire(ctx, "job", time.Minute)
	assert.False(t, ok)

	require.NoError(t, newRelease(ctx))
	_, ok, _ = l.TryAcquire(ctx, "job", time.Minute)
	assert.True(t, ok)
}

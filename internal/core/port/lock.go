package port

import (
	"context"
	"time"
)

// ReleaseFunc releases a lock acquired with JobLock.TryAcquire.
type ReleaseFunc func(ctx context.Context) error

// JobLock is a non-blocking mutual exclusion for named jobs. Implementations
// backed by shared storage hold across instances; the lease expires after
// ttl if the holder dies.
type JobLock interface {
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (release ReleaseFunc, acquired bool, err error)
}

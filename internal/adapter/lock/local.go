package lock

import (
	"context"
	"sync"
	"time"

	"comparee/internal/core/port"
)

// Local is an in-process lease lock used when Redis is not configured. It
// only excludes runs within one process.
type Local struct {
	mu   sync.Mutex
	held map[string]localLease
	now  func() time.Time
	seq  uint64
}

type localLease struct {
	id      uint64
	expires time.Time
}

func NewLocal() *Local {
	return &Local{held: make(map[string]localLease), now: time.Now}
}

func (l *Local) TryAcquire(_ context.Context, key string, ttl time.Duration) (port.ReleaseFunc, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if lease, ok := l.held[key]; ok && now.Before(lease.expires) {
		return nil, false, nil
	}
	l.seq++
	id := l.seq
	l.held[key] = localLease{id: id, expires: now.Add(ttl)}

	release := func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if lease, ok := l.held[key]; ok && lease.id == id {
			delete(l.held, key)
		}
		return nil
	}
	return release, true, nil
}

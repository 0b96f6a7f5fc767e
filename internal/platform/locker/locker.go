// Package locker provides the bounded-wait mutual exclusion guarding the
// persist-and-export path: at most one submission is written system-wide,
// and a caller that cannot acquire the lock within the bound reports
// "server busy" instead of blocking indefinitely.
package locker

import (
	"context"
	"time"
)

type Locker struct {
	sem chan struct{}
}

func New() *Locker {
	return &Locker{sem: make(chan struct{}, 1)}
}

// TryLock waits up to the given bound for the lock. It returns false when the
// bound elapses or the context is cancelled first.
func (l *Locker) TryLock(ctx context.Context, wait time.Duration) bool {
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case l.sem <- struct{}{}:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}

// Unlock releases the lock. Calling it without holding the lock panics,
// which is a programming error, not a runtime condition.
func (l *Locker) Unlock() {
	select {
	case <-l.sem:
	default:
		panic("locker: unlock of unlocked locker")
	}
}

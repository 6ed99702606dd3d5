// Package lock provides exclusive access regions keyed by account id.
//
// A Locker hands out one weighted semaphore per key. Multi-key acquisitions
// always take keys in ascending order, so two callers asking for {A, B} and
// {B, A} can never wait on each other in a cycle.
package lock

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/semaphore"
)

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

type Locker struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func NewLocker() *Locker {
	return &Locker{entries: make(map[string]*entry)}
}

// Lock blocks until every key is held by the caller or ctx is done. On
// failure nothing stays held. The returned release func is safe to call more
// than once.
func (l *Locker) Lock(ctx context.Context, keys ...string) (release func(), err error) {
	ordered := slices.Clone(keys)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	held := make([]string, 0, len(ordered))
	for _, key := range ordered {
		e := l.acquireEntry(key)
		if err := e.sem.Acquire(ctx, 1); err != nil {
			l.releaseEntry(key)
			l.unlock(held)
			return nil, err
		}
		held = append(held, key)
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.unlock(held) })
	}, nil
}

// Len reports how many keys currently have holders or waiters.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Locker) unlock(held []string) {
	for i := len(held) - 1; i >= 0; i-- {
		l.mu.Lock()
		e := l.entries[held[i]]
		l.mu.Unlock()

		e.sem.Release(1)
		l.releaseEntry(held[i])
	}
}

func (l *Locker) acquireEntry(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		l.entries[key] = e
	}
	e.refs++
	return e
}

func (l *Locker) releaseEntry(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		return
	}
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}

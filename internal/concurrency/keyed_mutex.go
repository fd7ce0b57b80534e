package concurrency

import (
	"context"
	"sync"
)

// KeyedMutex serializes work per key. Entries are reference counted and
// removed once the last holder or waiter leaves, so the map only holds keys in use.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedEntry
}

// sem has capacity one; holding the lock means owning its only slot
type keyedEntry struct {
	sem  chan struct{}
	refs int
}

// NewKeyedMutex creates an empty KeyedMutex
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*keyedEntry)}
}

// Lock blocks until the lock for key is held and returns its unlock func
func (k *KeyedMutex) Lock(key string) (unlock func()) {
	entry := k.acquire(key)
	entry.sem <- struct{}{}
	return k.unlocker(key, entry)
}

// LockContext is Lock, but gives up when ctx is done while waiting
func (k *KeyedMutex) LockContext(ctx context.Context, key string) (unlock func(), err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry := k.acquire(key)
	select {
	case entry.sem <- struct{}{}:
		return k.unlocker(key, entry), nil
	case <-ctx.Done():
		k.release(key, entry)
		return nil, ctx.Err()
	}
}

// Len returns the number of keys currently locked or waited on
func (k *KeyedMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}

func (k *KeyedMutex) acquire(key string) *keyedEntry {
	k.mu.Lock()
	defer k.mu.Unlock()

	entry, ok := k.locks[key]
	if !ok {
		entry = &keyedEntry{sem: make(chan struct{}, 1)}
		k.locks[key] = entry
	}
	entry.refs++
	return entry
}

func (k *KeyedMutex) release(key string, entry *keyedEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(k.locks, key)
	}
}

func (k *KeyedMutex) unlocker(key string, entry *keyedEntry) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.sem
			k.release(key, entry)
		})
	}
}

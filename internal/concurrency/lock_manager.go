package concurrency

import "sync"

// LockManager hands out one mutex per key. Sessions key it by player id so
// every session of a player shares a lock, even after a cache eviction
// reopens it. Locks are never released.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLockManager creates an empty lock manager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*sync.Mutex)}
}

// GetLock returns the mutex for key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	lock, ok := lm.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		lm.locks[key] = lock
	}
	return lock
}

// Len returns the number of keys seen so far
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}

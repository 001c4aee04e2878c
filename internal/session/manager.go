package session

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/RogueMods_Go/internal/commit"
	"github.com/osse101/RogueMods_Go/internal/concurrency"
	"github.com/osse101/RogueMods_Go/internal/ledger"
	"github.com/osse101/RogueMods_Go/internal/metrics"
	"github.com/osse101/RogueMods_Go/internal/repository"
)

// Manager keeps live sessions in an LRU with time-based expiration.
// An evicted session is simply reopened from the store on next use; both
// share the player's lock.
type Manager struct {
	mu      sync.Mutex
	lru     *expirable.LRU[string, *Session]
	locks   *concurrency.LockManager
	species ledger.SpeciesInfo
	saves   repository.Saves
	gateway commit.Gateway
}

// NewManager creates a session manager
func NewManager(species ledger.SpeciesInfo, saves repository.Saves, gateway commit.Gateway, size int, ttl time.Duration) *Manager {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	onEvict := func(string, *Session) { metrics.SessionsLive.Dec() }
	return &Manager{
		lru:     expirable.NewLRU[string, *Session](size, onEvict, ttl),
		locks:   concurrency.NewLockManager(),
		species: species,
		saves:   saves,
		gateway: gateway,
	}
}

// Get returns the live session for a player, opening it on first use
func (m *Manager) Get(ctx context.Context, playerID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.lru.Get(playerID); ok {
		return s, nil
	}
	s, err := Open(ctx, playerID, m.species, m.saves, m.gateway, WithLock(m.locks.GetLock(playerID)))
	if err != nil {
		return nil, err
	}
	m.lru.Add(playerID, s)
	metrics.SessionsLive.Inc()
	return s, nil
}

// Evict drops a player's session
func (m *Manager) Evict(playerID string) {
	m.lru.Remove(playerID)
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	return m.lru.Len()
}

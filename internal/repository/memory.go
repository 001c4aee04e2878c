package repository

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/osse101/RogueMods_Go/internal/domain"
)

// MemorySaves keeps saves in process memory. Saves are copied on the way in and out.
type MemorySaves struct {
	mu    sync.RWMutex
	saves map[string]*domain.Save
}

// NewMemorySaves creates an empty in-memory store
func NewMemorySaves() *MemorySaves {
	return &MemorySaves{saves: make(map[string]*domain.Save)}
}

// LoadSave implements Saves
func (m *MemorySaves) LoadSave(_ context.Context, playerID string) (*domain.Save, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	save, ok := m.saves[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, playerID)
	}
	return save.Clone(), nil
}

// StoreSave implements Saves
func (m *MemorySaves) StoreSave(_ context.Context, save *domain.Save) error {
	if save == nil || save.PlayerID == "" {
		return fmt.Errorf("%w: save without player id", domain.ErrInvalidInput)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves[save.PlayerID] = save.Clone()
	return nil
}

// Players implements PlayerLister, sorted by id
func (m *MemorySaves) Players(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.saves)), nil
}

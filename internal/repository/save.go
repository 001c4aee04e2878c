package repository

import (
	"context"

	"github.com/osse101/RogueMods_Go/internal/domain"
)

// Saves defines the interface for player save persistence.
// LoadSave returns domain.ErrSaveNotFound for unknown players.
type Saves interface {
	LoadSave(ctx context.Context, playerID string) (*domain.Save, error)
	StoreSave(ctx context.Context, save *domain.Save) error
}

// PlayerLister is implemented by stores that can enumerate their players
type PlayerLister interface {
	Players(ctx context.Context) ([]string, error)
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/repository"
)

// DBTX is the subset of pgxpool.Pool and pgx.Tx the repository needs
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SaveRepository stores saves as JSONB rows keyed by player
type SaveRepository struct {
	db DBTX
}

var _ repository.Saves = (*SaveRepository)(nil)

// NewSaveRepository creates a repository over db
func NewSaveRepository(db DBTX) *SaveRepository {
	return &SaveRepository{db: db}
}

// LoadSave implements repository.Saves
func (r *SaveRepository) LoadSave(ctx context.Context, playerID string) (*domain.Save, error) {
	var data []byte
	if err := r.db.QueryRow(ctx, queryLoadSave, playerID).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, playerID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadSave, err)
	}

	save := domain.NewSave(playerID)
	if err := json.Unmarshal(data, save); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeSave, err)
	}
	return save, nil
}

// StoreSave implements repository.Saves. A save whose version is not newer
// than the stored row is rejected with domain.ErrCommitFailed.
func (r *SaveRepository) StoreSave(ctx context.Context, save *domain.Save) error {
	if save == nil || save.PlayerID == "" {
		return fmt.Errorf("%w: save without player id", domain.ErrInvalidInput)
	}
	data, err := json.Marshal(save)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeSave, err)
	}

	tag, err := r.db.Exec(ctx, queryStoreSave, save.PlayerID, save.Version, data, save.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToStoreSave, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: "+ErrMsgStaleSave, domain.ErrCommitFailed, save.Version)
	}
	return nil
}

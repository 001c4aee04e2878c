package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/repository"
)

const (
	saveKeyFormat = "save:%s"
	// playersKey indexes every player with a stored save
	playersKey = "saves:players"
)

// SaveRepository keeps each save as a JSON string under save:<player>
type SaveRepository struct {
	client *redis.Client
}

var _ repository.Saves = (*SaveRepository)(nil)

// NewSaveRepository creates a repository over client
func NewSaveRepository(client *redis.Client) *SaveRepository {
	return &SaveRepository{client: client}
}

func saveKey(playerID string) string {
	return fmt.Sprintf(saveKeyFormat, playerID)
}

// LoadSave implements repository.Saves
func (r *SaveRepository) LoadSave(ctx context.Context, playerID string) (*domain.Save, error) {
	data, err := r.client.Get(ctx, saveKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, playerID)
		}
		return nil, fmt.Errorf("failed to get save from Redis: %w", err)
	}

	save := domain.NewSave(playerID)
	if err := json.Unmarshal(data, save); err != nil {
		return nil, fmt.Errorf("failed to unmarshal save: %w", err)
	}
	return save, nil
}

// StoreSave implements repository.Saves
func (r *SaveRepository) StoreSave(ctx context.Context, save *domain.Save) error {
	if save == nil || save.PlayerID == "" {
		return fmt.Errorf("%w: save without player id", domain.ErrInvalidInput)
	}

	data, err := json.Marshal(save)
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, saveKey(save.PlayerID), string(data), 0)
	pipe.SAdd(ctx, playersKey, save.PlayerID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store save in Redis: %w", err)
	}
	return nil
}

// Players lists every player with a stored save
func (r *SaveRepository) Players(ctx context.Context) ([]string, error) {
	players, err := r.client.SMembers(ctx, playersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list players from Redis: %w", err)
	}
	return players, nil
}

package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/RogueMods_Go/internal/config"
	"github.com/osse101/RogueMods_Go/internal/database"
	"github.com/osse101/RogueMods_Go/internal/database/postgres"
	"github.com/osse101/RogueMods_Go/internal/database/redisstore"
	"github.com/osse101/RogueMods_Go/internal/handler"
	"github.com/osse101/RogueMods_Go/internal/repository"
)

// Store bundles the selected save backend with what the API needs around it
type Store struct {
	Saves repository.Saves
	// Players is nil when the backend cannot enumerate saves
	Players repository.PlayerLister
	// Pinger is nil for the in-process backend
	Pinger handler.Pinger

	close func() error
}

// Close releases the backend's connections
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// InitializeStore connects the backend named by cfg.StoreBackend. The postgres
// backend migrates its schema before use.
func InitializeStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	var (
		store *Store
		err   error
	)
	switch cfg.StoreBackend {
	case StoreMemory, "":
		saves := repository.NewMemorySaves()
		store = &Store{Saves: saves, Players: saves}
	case StorePostgres:
		store, err = postgresStore(ctx, cfg)
	case StoreRedis:
		store, err = redisStore(ctx, cfg)
	default:
		err = fmt.Errorf(ErrMsgUnknownStore, cfg.StoreBackend)
	}
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgStoreInitialized, "backend", cfg.StoreBackend)
	return store, nil
}

func postgresStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), int(cfg.DBMaxConns), DBMaxConnIdleTime, DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	var p database.Pool = pool
	return &Store{
		Saves:  postgres.NewSaveRepository(pool),
		Pinger: p,
		close: func() error {
			p.Close()
			return nil
		},
	}, nil
}

func redisStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ping := handler.PingFunc(func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	if err := ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
	}

	saves := redisstore.NewSaveRepository(client)
	return &Store{
		Saves:   saves,
		Players: saves,
		Pinger:  ping,
		close:   client.Close,
	}, nil
}

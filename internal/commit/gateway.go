package commit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/event"
	"github.com/osse101/RogueMods_Go/internal/logger"
	"github.com/osse101/RogueMods_Go/internal/metrics"
	"github.com/osse101/RogueMods_Go/internal/repository"
	"github.com/osse101/RogueMods_Go/internal/worker"
)

// Gateway persists a save. A nil error means the whole save was stored.
type Gateway interface {
	Commit(ctx context.Context, save *domain.Save) error
}

type gateway struct {
	pool      *worker.Pool
	saves     repository.Saves
	publisher event.Publisher
	timeout   time.Duration
	now       func() time.Time
}

// NewGateway creates a Gateway that stores saves on the worker pool
func NewGateway(pool *worker.Pool, saves repository.Saves, publisher event.Publisher, timeout time.Duration) Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if publisher == nil {
		publisher = event.Nop{}
	}
	return &gateway{
		pool:      pool,
		saves:     saves,
		publisher: publisher,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Commit stores a snapshot of save and waits for the result. On success the
// save's version and timestamp advance; on failure the save is left as is and
// the caller is expected to reload.
func (g *gateway) Commit(ctx context.Context, save *domain.Save) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCommitStarted, "player_id", save.PlayerID, "version", save.Version)

	snapshot := save.Clone()
	snapshot.Version++
	snapshot.UpdatedAt = g.now().UTC()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	err := g.pool.Do(ctx, worker.JobFunc(func(ctx context.Context) error {
		return g.saves.StoreSave(ctx, snapshot)
	}))
	metrics.CommitDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		log.Error(LogMsgCommitFailed, "player_id", save.PlayerID, "error", err)
		if pubErr := g.publisher.Publish(context.WithoutCancel(ctx), event.NewCommitFailedEvent(save.PlayerID, err)); pubErr != nil {
			log.Warn(LogMsgPublishFailed, "error", pubErr)
		}
		if errors.Is(err, domain.ErrCommitFailed) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrCommitFailed, err)
	}

	save.Version = snapshot.Version
	save.UpdatedAt = snapshot.UpdatedAt
	log.Info(LogMsgCommitSucceeded, "player_id", save.PlayerID, "version", save.Version)
	return nil
}

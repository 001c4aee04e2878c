package session

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RogueMods_Go/internal/commit"
	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/ledger"
	"github.com/osse101/RogueMods_Go/internal/repository"
	"github.com/osse101/RogueMods_Go/internal/worker"
)

type speciesTable map[domain.SpeciesID]*domain.Species

func (t speciesTable) Species(id domain.SpeciesID) (*domain.Species, error) {
	s, ok := t[id]
	if !ok {
		return nil, domain.ErrSpeciesNotFound
	}
	return s, nil
}

var testSpecies = speciesTable{
	7: {ID: 7, Name: "Squirtle", StarterCost: 3, Ability1: 67},
}

type gatewayFunc func(ctx context.Context, save *domain.Save) error

func (f gatewayFunc) Commit(ctx context.Context, save *domain.Save) error { return f(ctx, save) }

func newGateway(t *testing.T, saves repository.Saves) commit.Gateway {
	t.Helper()
	pool := worker.NewPool(1, 4)
	pool.Start()
	t.Cleanup(pool.Stop)
	return commit.NewGateway(pool, saves, nil, time.Second)
}

func TestSession_CommitAndReload(t *testing.T) {
	ctx := context.Background()
	saves := repository.NewMemorySaves()
	s, err := Open(ctx, "ash", testSpecies, saves, newGateway(t, saves))
	require.NoError(t, err)
	assert.Equal(t, "ash", s.PlayerID())

	require.NoError(t, s.Ledger().AddCandy(7, 30))
	require.NoError(t, s.Commit(ctx))

	require.NoError(t, s.Ledger().SpendCandy(7, 10))
	candy, _ := s.Ledger().Candy(7)
	require.Equal(t, 20, candy)

	require.NoError(t, s.Reload(ctx))
	candy, err = s.Ledger().Candy(7)
	require.NoError(t, err)
	assert.Equal(t, 30, candy, "reload discards uncommitted changes")
	assert.Equal(t, 1, s.Save().Version)
}

func TestSession_CommitFailure(t *testing.T) {
	ctx := context.Background()
	saves := repository.NewMemorySaves()
	failing := gatewayFunc(func(context.Context, *domain.Save) error {
		return errors.Join(domain.ErrCommitFailed, errors.New("disk full"))
	})
	s, err := Open(ctx, "gary", testSpecies, saves, failing)
	require.NoError(t, err)

	err = s.Committer().Commit(ctx)
	assert.ErrorIs(t, err, domain.ErrCommitFailed)
}

func TestSession_SingleCommitInFlight(t *testing.T) {
	ctx := context.Background()
	entered := make(chan struct{})
	release := make(chan struct{})
	blocking := gatewayFunc(func(context.Context, *domain.Save) error {
		close(entered)
		<-release
		return nil
	})
	s := New(domain.NewSave("red"), testSpecies, repository.NewMemorySaves(), blocking)

	done := make(chan error, 1)
	go func() { done <- s.Commit(ctx) }()
	<-entered

	assert.ErrorIs(t, s.Commit(ctx), domain.ErrCommitPending)
	close(release)
	assert.NoError(t, <-done)
}

func TestManager_Get(t *testing.T) {
	ctx := context.Background()
	saves := repository.NewMemorySaves()
	m := NewManager(testSpecies, saves, newGateway(t, saves), 2, time.Minute)

	first, err := m.Get(ctx, "ash")
	require.NoError(t, err)
	again, err := m.Get(ctx, "ash")
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, 1, m.Len())

	_, _ = m.Get(ctx, "misty")
	_, _ = m.Get(ctx, "brock")
	assert.Equal(t, 2, m.Len(), "least recently used session evicted")

	m.Evict("brock")
	assert.Equal(t, 1, m.Len())
}

func TestSession_DoWaitsForCommit(t *testing.T) {
	ctx := context.Background()
	entered := make(chan struct{})
	release := make(chan struct{})
	blocking := gatewayFunc(func(context.Context, *domain.Save) error {
		close(entered)
		<-release
		return nil
	})
	s := New(domain.NewSave("red"), testSpecies, repository.NewMemorySaves(), blocking)

	committed := make(chan error, 1)
	go func() { committed <- s.Commit(ctx) }()
	<-entered

	var ran atomic.Bool
	go func() {
		_ = s.Do(func(l *ledger.Ledger) error {
			ran.Store(true)
			return l.AddCandy(7, 5)
		})
	}()

	assert.Never(t, ran.Load, 50*time.Millisecond, 5*time.Millisecond, "ledger access waits for the commit")
	close(release)
	require.NoError(t, <-committed)
	assert.Eventually(t, ran.Load, time.Second, 5*time.Millisecond)
}

func TestSession_SaveIsACopy(t *testing.T) {
	s := New(domain.NewSave("red"), testSpecies, repository.NewMemorySaves(), nil)

	s.Save().Starter(7).CandyCount = 99

	candy, err := s.Ledger().Candy(7)
	require.NoError(t, err)
	assert.Zero(t, candy)
}

func TestManager_ReopenedSessionSharesLock(t *testing.T) {
	ctx := context.Background()
	saves := repository.NewMemorySaves()
	m := NewManager(testSpecies, saves, newGateway(t, saves), 2, time.Minute)

	first, err := m.Get(ctx, "ash")
	require.NoError(t, err)
	m.Evict("ash")
	second, err := m.Get(ctx, "ash")
	require.NoError(t, err)
	other, err := m.Get(ctx, "misty")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Same(t, first.mu, second.mu)
	assert.NotSame(t, first.mu, other.mu)
}

package commit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/event"
	"github.com/osse101/RogueMods_Go/internal/repository"
	"github.com/osse101/RogueMods_Go/internal/worker"
)

type mockSaves struct {
	mock.Mock
}

func (m *mockSaves) LoadSave(ctx context.Context, playerID string) (*domain.Save, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Save), args.Error(1)
}

func (m *mockSaves) StoreSave(ctx context.Context, save *domain.Save) error {
	return m.Called(ctx, save).Error(0)
}

func newPool(t *testing.T) *worker.Pool {
	t.Helper()
	pool := worker.NewPool(1, 4)
	pool.Start()
	t.Cleanup(pool.Stop)
	return pool
}

func TestGateway_Commit(t *testing.T) {
	ctx := context.Background()
	saves := repository.NewMemorySaves()
	g := NewGateway(newPool(t), saves, nil, time.Second)

	save := domain.NewSave("misty")
	save.Starter(7).CandyCount = 12
	require.NoError(t, g.Commit(ctx, save))
	assert.Equal(t, 1, save.Version)
	assert.False(t, save.UpdatedAt.IsZero())

	stored, err := saves.LoadSave(ctx, "misty")
	require.NoError(t, err)
	assert.Equal(t, 12, stored.Starter(7).CandyCount)
	assert.Equal(t, 1, stored.Version)
}

func TestGateway_CommitFailure(t *testing.T) {
	saves := &mockSaves{}
	saves.On("StoreSave", mock.Anything, mock.AnythingOfType("*domain.Save")).Return(errors.New("connection refused"))

	bus := event.NewMemoryBus()
	var failed []event.CommitFailedPayloadV1
	bus.Subscribe(event.CommitFailed, func(_ context.Context, evt event.Event) error {
		p, err := event.DecodePayload[event.CommitFailedPayloadV1](evt.Payload)
		failed = append(failed, p)
		return err
	})

	g := NewGateway(newPool(t), saves, bus, time.Second)
	save := domain.NewSave("brock")

	err := g.Commit(context.Background(), save)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommitFailed)
	assert.Equal(t, 0, save.Version, "failed commit leaves the save untouched")
	require.Len(t, failed, 1)
	assert.Equal(t, "brock", failed[0].PlayerID)
	saves.AssertExpectations(t)
}

func TestGateway_CommitTimeout(t *testing.T) {
	saves := &mockSaves{}
	saves.On("StoreSave", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		<-args.Get(0).(context.Context).Done()
	}).Return(context.DeadlineExceeded)

	g := NewGateway(newPool(t), saves, nil, 10*time.Millisecond)
	err := g.Commit(context.Background(), domain.NewSave("erika"))
	assert.ErrorIs(t, err, domain.ErrCommitFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

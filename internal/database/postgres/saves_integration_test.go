package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RogueMods_Go/internal/database"
	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/testing/pgtest"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	stop := func() {}
	if !testing.Short() {
		ctx := context.Background()
		var err error
		var connStr string
		connStr, stop, err = pgtest.Start(ctx)
		if err == nil {
			testPool, err = migratedPool(ctx, connStr)
		}
		if err != nil {
			fmt.Printf("WARNING: postgres unavailable: %v\n", err)
		}
	}

	code := m.Run()
	if testPool != nil {
		testPool.Close()
	}
	stop()
	os.Exit(code)
}

func migratedPool(ctx context.Context, connStr string) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, connStr, 5, time.Minute, 5*time.Minute)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func requireDatabase(t *testing.T) {
	t.Helper()
	pgtest.Skip(t, testPool != nil)
}

func sampleSave(playerID string, version int) *domain.Save {
	save := domain.NewSave(playerID)
	save.Version = version
	save.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)
	save.DexEntry(7).IVs[domain.StatHP] = 15
	save.Starter(7).CandyCount = 42
	return save
}

func TestSaveRepository_RoundTrip(t *testing.T) {
	requireDatabase(t)
	repo := NewSaveRepository(testPool)
	ctx := context.Background()

	want := sampleSave("roundtrip", 1)
	require.NoError(t, repo.StoreSave(ctx, want))

	got, err := repo.LoadSave(ctx, "roundtrip")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Version)
	assert.Equal(t, 15, got.Dex[7].IVs[domain.StatHP])
	assert.Equal(t, 42, got.Starters[7].CandyCount)
}

func TestSaveRepository_NotFound(t *testing.T) {
	requireDatabase(t)
	repo := NewSaveRepository(testPool)

	_, err := repo.LoadSave(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrSaveNotFound)
}

func TestSaveRepository_RejectsStaleVersion(t *testing.T) {
	requireDatabase(t)
	repo := NewSaveRepository(testPool)
	ctx := context.Background()

	require.NoError(t, repo.StoreSave(ctx, sampleSave("stale", 2)))

	err := repo.StoreSave(ctx, sampleSave("stale", 2))
	assert.ErrorIs(t, err, domain.ErrCommitFailed)

	require.NoError(t, repo.StoreSave(ctx, sampleSave("stale", 3)))
	got, err := repo.LoadSave(ctx, "stale")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Version)
}

func TestSaveRepository_InvalidSave(t *testing.T) {
	repo := NewSaveRepository(nil)
	err := repo.StoreSave(context.Background(), &domain.Save{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

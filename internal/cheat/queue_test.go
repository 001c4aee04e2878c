package cheat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RogueMods_Go/internal/domain"
)

func TestQueue(t *testing.T) {
	ctx := context.Background()
	q := NewQueue(2)
	item := &domain.Descriptor{Key: "potion", Kind: domain.KindHPRestore}

	for i := range 3 {
		require.NoError(t, q.Apply(ctx, Modifier{PlayerID: "ash", Item: item, Target: i}))
	}
	require.NoError(t, q.Apply(ctx, Modifier{PlayerID: "misty", Item: item}))

	assert.Equal(t, 2, q.Len("ash"))
	got := q.Drain("ash")
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Target, "oldest modifier dropped")
	assert.Equal(t, 2, got[1].Target)

	assert.Empty(t, q.Drain("ash"))
	assert.Equal(t, 1, q.Len("misty"))
}

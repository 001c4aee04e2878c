package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RogueMods_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got UnlockPurchasedPayloadV1

	bus.Subscribe(UnlockPurchased, func(ctx context.Context, evt Event) error {
		payload, err := DecodePayload[UnlockPurchasedPayloadV1](evt.Payload)
		got = payload
		return err
	})

	err := bus.Publish(context.Background(), NewUnlockPurchasedEvent("p1", 133, domain.UnlockShiny, "rare shiny", 45))
	require.NoError(t, err)

	assert.Equal(t, "p1", got.PlayerID)
	assert.Equal(t, domain.SpeciesID(133), got.Species)
	assert.Equal(t, domain.UnlockShiny, got.Kind)
	assert.Equal(t, 45, got.Price)
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, evt Event) error {
		count++
		return nil
	}

	bus.Subscribe(CatalogBuilt, handler)
	bus.Subscribe(CatalogBuilt, handler)
	bus.Subscribe(CommitFailed, handler)

	require.NoError(t, bus.Publish(context.Background(), NewCatalogBuiltEvent(2, 10, 5, true)))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	handlerErr := errors.New("handler error")

	bus.Subscribe(CommitFailed, func(ctx context.Context, evt Event) error {
		return handlerErr
	})

	err := bus.Publish(context.Background(), NewCommitFailedEvent("p1", errors.New("disk full")))
	require.Error(t, err)
	assert.ErrorIs(t, err, handlerErr)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	assert.NoError(t, NewMemoryBus().Publish(context.Background(), NewSettingChangedEvent("SHINY", 1, "2")))
}

func TestDecodePayload(t *testing.T) {
	want := SettingChangedPayloadV1{Key: "SHINY", Option: 2, Value: "4"}

	tests := []struct {
		name    string
		payload any
		wantErr bool
	}{
		{"typed", want, false},
		{"pointer", &want, false},
		{"map", map[string]any{"key": "SHINY", "option": 2, "value": "4"}, false},
		{"raw json", json.RawMessage(`{"key":"SHINY","option":2,"value":"4"}`), false},
		{"nil", nil, true},
		{"nil pointer", (*SettingChangedPayloadV1)(nil), true},
		{"wrong shape", "not an object", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePayload[SettingChangedPayloadV1](tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

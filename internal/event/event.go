package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/RogueMods_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Event types
const (
	UnlockPurchased Type = domain.EventTypeUnlockPurchased
	CommitFailed    Type = domain.EventTypeCommitFailed
	CatalogBuilt    Type = domain.EventTypeCatalogBuilt
	ModifierApplied Type = domain.EventTypeModifierApplied
	SettingChanged  Type = domain.EventTypeSettingChanged
)

// Typed event payloads for type safety

// UnlockPurchasedPayloadV1 is published after a candy purchase mutates the ledger
type UnlockPurchasedPayloadV1 struct {
	PlayerID  string            `json:"player_id"`
	Species   domain.SpeciesID  `json:"species"`
	Kind      domain.UnlockKind `json:"kind"`
	Label     string            `json:"label"`
	Price     int               `json:"price"`
	Timestamp int64             `json:"timestamp"`
}

// CommitFailedPayloadV1 is published when persisting a save fails
type CommitFailedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
}

// CatalogBuiltPayloadV1 summarises one catalog construction
type CatalogBuiltPayloadV1 struct {
	PartySize  int  `json:"party_size"`
	Items      int  `json:"items"`
	Categories int  `json:"categories"`
	Available  bool `json:"available"`
}

// ModifierAppliedPayloadV1 is published when a catalog item is applied
type ModifierAppliedPayloadV1 struct {
	ItemKey  string `json:"item_key"`
	Kind     string `json:"kind"`
	Target   int    `json:"target,omitempty"`
	Fusion   int    `json:"fusion,omitempty"`
	MoveSlot int    `json:"move_slot,omitempty"`
}

// SettingChangedPayloadV1 is published when a mod setting changes
type SettingChangedPayloadV1 struct {
	Key    string `json:"key"`
	Option int    `json:"option"`
	Value  string `json:"value"`
}

// NewUnlockPurchasedEvent creates a purchase event
func NewUnlockPurchasedEvent(playerID string, species domain.SpeciesID, kind domain.UnlockKind, label string, price int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UnlockPurchased,
		Payload: UnlockPurchasedPayloadV1{
			PlayerID:  playerID,
			Species:   species,
			Kind:      kind,
			Label:     label,
			Price:     price,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCommitFailedEvent creates a commit failure event
func NewCommitFailedEvent(playerID string, err error) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CommitFailed,
		Payload: CommitFailedPayloadV1{
			PlayerID:  playerID,
			Error:     err.Error(),
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCatalogBuiltEvent creates a catalog summary event
func NewCatalogBuiltEvent(partySize, items, categories int, available bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatalogBuilt,
		Payload: CatalogBuiltPayloadV1{
			PartySize:  partySize,
			Items:      items,
			Categories: categories,
			Available:  available,
		},
	}
}

// NewModifierAppliedEvent creates a modifier event
func NewModifierAppliedEvent(payload ModifierAppliedPayloadV1) Event {
	return Event{Version: EventSchemaVersion, Type: ModifierApplied, Payload: payload}
}

// NewSettingChangedEvent creates a settings event
func NewSettingChangedEvent(key string, option int, value string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SettingChanged,
		Payload: SettingChangedPayloadV1{Key: key, Option: option, Value: value},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Nop discards every event
type Nop struct{}

// Publish implements Publisher
func (Nop) Publish(context.Context, Event) error { return nil }

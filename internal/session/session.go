package session

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/RogueMods_Go/internal/commit"
	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/ledger"
	"github.com/osse101/RogueMods_Go/internal/logger"
	"github.com/osse101/RogueMods_Go/internal/menu"
	"github.com/osse101/RogueMods_Go/internal/repository"
)

// Session owns one player's in-memory save and ledger. mu is held for every
// read, mutation and commit of the save.
type Session struct {
	mu       *sync.Mutex
	playerID string
	save     *domain.Save
	ledger   *ledger.Ledger

	species ledger.SpeciesInfo
	saves   repository.Saves
	gateway commit.Gateway

	// commitSem allows one in-flight commit per session
	commitSem chan struct{}
}

// Option customizes a session
type Option func(*Session)

// WithLock makes the session use a shared lock, typically one per player
func WithLock(mu *sync.Mutex) Option {
	return func(s *Session) { s.mu = mu }
}

// New creates a session over an already loaded save
func New(save *domain.Save, species ledger.SpeciesInfo, saves repository.Saves, gateway commit.Gateway, opts ...Option) *Session {
	s := &Session{
		mu:        &sync.Mutex{},
		playerID:  save.PlayerID,
		save:      save,
		ledger:    ledger.New(save, species),
		species:   species,
		saves:     saves,
		gateway:   gateway,
		commitSem: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads a player's save, starting an empty one when none is stored
func Open(ctx context.Context, playerID string, species ledger.SpeciesInfo, saves repository.Saves, gateway commit.Gateway, opts ...Option) (*Session, error) {
	save, err := load(ctx, saves, playerID)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgSessionOpened, "player_id", playerID, "version", save.Version)
	return New(save, species, saves, gateway, opts...), nil
}

func load(ctx context.Context, saves repository.Saves, playerID string) (*domain.Save, error) {
	save, err := saves.LoadSave(ctx, playerID)
	if errors.Is(err, domain.ErrSaveNotFound) {
		logger.FromContext(ctx).Info(LogMsgNewSave, "player_id", playerID)
		return domain.NewSave(playerID), nil
	}
	return save, err
}

// PlayerID returns the owning player
func (s *Session) PlayerID() string { return s.playerID }

// Do runs fn with the session lock held. Every read or change of the ledger
// made by a shared session goes through Do; fn must not call back into the session.
func (s *Session) Do(fn func(l *ledger.Ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.ledger)
}

// Ledger returns the ledger over the current save. It changes after Reload.
// Calls made through it are not locked, so only single goroutine callers use it directly.
func (s *Session) Ledger() *ledger.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger
}

// Save returns a copy of the current in-memory save
func (s *Session) Save() *domain.Save {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save.Clone()
}

// Commit persists the current save, holding the session lock until the store
// answers. A second commit while one is in flight fails with domain.ErrCommitPending.
func (s *Session) Commit(ctx context.Context) error {
	select {
	case s.commitSem <- struct{}{}:
		defer func() { <-s.commitSem }()
	default:
		logger.FromContext(ctx).Warn(LogMsgCommitSkipped, "player_id", s.playerID)
		return domain.ErrCommitPending
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gateway.Commit(ctx, s.save)
}

// Committer adapts Commit for a menu navigator
func (s *Session) Committer() menu.Committer {
	return menu.CommitFunc(s.Commit)
}

// Reload discards in-memory state and reads the stored save again.
// This is the recovery path after a failed commit.
func (s *Session) Reload(ctx context.Context) error {
	save, err := load(ctx, s.saves, s.playerID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.save = save
	s.ledger = ledger.New(save, s.species)
	s.mu.Unlock()
	logger.FromContext(ctx).Info(LogMsgSessionReloaded, "player_id", s.playerID, "version", save.Version)
	return nil
}

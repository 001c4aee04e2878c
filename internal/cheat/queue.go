package cheat

import (
	"context"
	"sync"
)

// Queue holds applied modifiers per player until the game client drains them
type Queue struct {
	mu      sync.Mutex
	pending map[string][]Modifier
	limit   int
}

// NewQueue creates a queue that keeps at most limit modifiers per player,
// dropping the oldest first. A limit of 0 keeps everything.
func NewQueue(limit int) *Queue {
	return &Queue{pending: make(map[string][]Modifier), limit: limit}
}

// Apply implements ModifierSink
func (q *Queue) Apply(_ context.Context, m Modifier) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	list := append(q.pending[m.PlayerID], m)
	if q.limit > 0 && len(list) > q.limit {
		list = list[len(list)-q.limit:]
	}
	q.pending[m.PlayerID] = list
	return nil
}

// Drain returns and forgets the player's pending modifiers in apply order
func (q *Queue) Drain(playerID string) []Modifier {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending[playerID]
	delete(q.pending, playerID)
	return out
}

// Len reports how many modifiers are waiting for the player
func (q *Queue) Len(playerID string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending[playerID])
}

package game

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

func newID() string { return uuid.NewString() }

// Registry is the process-wide lookup from match id to match. It is an
// explicit object handed to the transport rather than a package global, and
// it evicts matches that sit idle past the configured timeout — matches are
// otherwise never removed.
type Registry struct {
	mu      sync.RWMutex
	matches map[string]*Game

	rng         *rand.Rand
	importer    DeckImporter
	idleTimeout time.Duration
}

// NewRegistry builds a registry. idleTimeout <= 0 disables eviction.
func NewRegistry(rng *rand.Rand, importer DeckImporter, idleTimeout time.Duration) *Registry {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Registry{
		matches:     make(map[string]*Game),
		rng:         rng,
		importer:    importer,
		idleTimeout: idleTimeout,
	}
}

// CreateMatch allocates a match with the requesting human in seat 0 and the
// built-in bot in seat 1, and registers it.
func (r *Registry) CreateMatch(playerName, sessionID string) *Game {
	g := NewGame(newID(), r.rng, r.importer, nil)
	g.AddPlayer(PlayerConfig{
		Name:      playerName,
		SessionID: sessionID,
		IsHuman:   true,
		Starter:   StarterA,
	})
	g.AddPlayer(PlayerConfig{
		Name:            "BOT",
		IsHuman:         false,
		Starter:         StarterCustom,
		CustomDeckNames: BotDeckNames,
	})

	r.mu.Lock()
	r.matches[g.ID] = g
	r.mu.Unlock()
	return g
}

// Get returns the match with the given id, or nil.
func (r *Registry) Get(id string) *Game {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.matches[id]
}

// Len returns the number of registered matches.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matches)
}

// SweepIdle drops every match whose last activity is older than the idle
// timeout and returns how many were removed.
func (r *Registry) SweepIdle(now time.Time) int {
	if r.idleTimeout <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, g := range r.matches {
		g.mu.Lock()
		idle := now.Sub(g.LastActivity) > r.idleTimeout
		g.mu.Unlock()
		if idle {
			delete(r.matches, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle matches on the given interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.SweepIdle(now)
		}
	}
}

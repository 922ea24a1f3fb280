package game

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

const (
	startingLife     = 20
	openingHandSize  = 7
	defaultDrawCount = 1
)

// DeckSource identifies a deck to import: free decklist text or a URL to a
// supported deck-building site.
type DeckSource struct {
	Text string
	URL  string
}

// DeckImporter resolves a deck source into concrete cards. Implemented by the
// deckimport package; the engine only sees the boundary.
type DeckImporter interface {
	ImportDeck(ctx context.Context, src DeckSource) ([]Card, error)
}

// Decider produces the ordered actions a bot seat takes on its turn.
type Decider interface {
	DecideTurn(active *Player) []Action
}

// Game is one running match: its seats, phase cursor, turn counter, and
// pending-effects stack. It is safe for concurrent use; every entry point
// takes the match lock, so actions apply run-to-completion even while a deck
// import is waiting on the network.
type Game struct {
	ID string

	mu       sync.Mutex
	rng      *rand.Rand
	importer DeckImporter
	decider  Decider

	Players           []*Player
	ActivePlayerIndex int
	Phase             Phase
	Turn              int
	Stack             []StackItem

	LastActivity time.Time
}

// NewGame constructs an empty match. A nil rng gets a time-seeded default; a
// nil decider gets the built-in heuristic bot.
func NewGame(id string, rng *rand.Rand, importer DeckImporter, decider Decider) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		ID:           id,
		rng:          rng,
		importer:     importer,
		Phase:        PhaseUntap,
		Turn:         1,
		Stack:        []StackItem{},
		LastActivity: time.Now(),
	}
	g.decider = decider
	if g.decider == nil {
		g.decider = newHeuristicBot(g)
	}
	return g
}

// PlayerConfig describes a seat to add to a match.
type PlayerConfig struct {
	Name            string
	SessionID       string
	IsHuman         bool
	Starter         StarterDeck
	CustomDeckNames []string
}

// AddPlayer builds a seat: picks the base list, shuffles it, moves the
// commander to the command zone, deals the opening hand, and appends the seat
// to the match. Short decks simply deal a smaller hand.
func (g *Game) AddPlayer(cfg PlayerConfig) *Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	var base []Card
	switch {
	case cfg.Starter == StarterCustom && len(cfg.CustomDeckNames) > 0:
		base = CreateDeckFromNames(cfg.CustomDeckNames)
	case cfg.Starter == StarterB:
		base = StarterDeckB()
	default:
		base = StarterDeckA()
	}

	library := make([]Card, len(base))
	copy(library, base)
	shuffleCards(g.rng, library)

	p := &Player{
		ID:          newID(),
		Name:        cfg.Name,
		SessionID:   cfg.SessionID,
		IsHuman:     cfg.IsHuman,
		Life:        startingLife,
		Library:     library,
		Hand:        []Card{},
		Battlefield: []BattlefieldCard{},
		Graveyard:   []Card{},
		CommandZone: []Card{},
	}

	if commander, idx := findCommander(p.Library); idx >= 0 {
		p.Library = append(p.Library[:idx], p.Library[idx+1:]...)
		p.CommandZone = []Card{commander}
	}

	p.draw(openingHandSize)
	g.Players = append(g.Players, p)
	return p
}

// findCommander returns the first card flagged as commander, else the first
// card in the list.
func findCommander(cards []Card) (Card, int) {
	for i, c := range cards {
		if c.IsCommander {
			return c, i
		}
	}
	if len(cards) > 0 {
		return cards[0], 0
	}
	return Card{}, -1
}

func (g *Game) activePlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.ActivePlayerIndex%len(g.Players)]
}

func (g *Game) findPlayerBySession(sessionID string) *Player {
	if sessionID == "" {
		return nil
	}
	for _, p := range g.Players {
		if p.SessionID == sessionID {
			return p
		}
	}
	return nil
}

// ShouldBotAct reports whether the seat whose turn it is belongs to the bot.
func (g *Game) ShouldBotAct() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	active := g.activePlayer()
	return active != nil && !active.IsHuman
}

// RunBotTurn asks the decision component for the active bot's actions and
// applies them in order through the trusted path: the actor is the resolved
// active player, never a session carried by the actions themselves. Returns
// the actions taken.
func (g *Game) RunBotTurn(ctx context.Context) ([]Action, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	active := g.activePlayer()
	if active == nil || active.IsHuman {
		return nil, nil
	}

	actions := g.decider.DecideTurn(active)
	for i, a := range actions {
		if err := g.apply(ctx, active, a); err != nil {
			return actions[:i], err
		}
	}
	return actions, nil
}

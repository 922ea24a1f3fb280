package game

import (
	"context"
	"fmt"
	"time"
)

// ApplyAction validates and applies one action on behalf of the session that
// sent it. This is the authenticated entry point; bot actions go through
// RunBotTurn instead, which resolves the actor itself.
func (g *Game) ApplyAction(ctx context.Context, a Action, sessionID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.LastActivity = time.Now()

	player := g.findPlayerBySession(sessionID)
	if player == nil {
		return ErrPlayerNotFound
	}
	return g.apply(ctx, player, a)
}

// apply is the single mutation core both call paths feed into. Every handler
// finishes its precondition checks before touching any zone; there is no
// rollback. Callers hold the match lock.
func (g *Game) apply(ctx context.Context, player *Player, a Action) error {
	switch a.Type {
	case ActionShuffle:
		shuffleCards(g.rng, player.Library)
		return nil

	case ActionDraw:
		count := a.Count
		if count <= 0 {
			count = defaultDrawCount
		}
		player.draw(count)
		return nil

	case ActionPlayLand:
		return g.playLand(player, a)

	case ActionCast:
		return g.castSpell(player, a)

	case ActionPass:
		g.advancePhase()
		return nil

	case ActionImportDeck:
		return g.importDeck(ctx, player, a)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
}

// playLand moves a land from hand to the battlefield, at most once per turn
// and only during a main phase.
func (g *Game) playLand(player *Player, a Action) error {
	idx := player.handIndex(a.CardID)
	if idx == -1 {
		return ErrCardNotInHand
	}
	if player.LandsPlayedThisTurn >= 1 {
		return ErrLandLimitReached
	}
	if g.Phase != PhaseMain1 && g.Phase != PhaseMain2 {
		return ErrWrongPhase
	}
	if !player.Hand[idx].IsLand() {
		return ErrNotALand
	}

	card := player.removeFromHand(idx)
	player.Battlefield = append(player.Battlefield, BattlefieldCard{Card: card})
	player.LandsPlayedThisTurn++
	return nil
}

// castSpell moves a card out of hand: permanents enter the battlefield
// untapped, everything else resolves straight to the graveyard. No costs are
// paid and nothing uses the stack yet.
func (g *Game) castSpell(player *Player, a Action) error {
	idx := player.handIndex(a.CardID)
	if idx == -1 {
		return ErrCardNotInHand
	}

	card := player.removeFromHand(idx)
	if card.IsPermanent() {
		player.Battlefield = append(player.Battlefield, BattlefieldCard{Card: card})
	} else {
		player.Graveyard = append(player.Graveyard, card)
	}
	return nil
}

// importDeck replaces the player's library with an imported list, redraws a
// fresh hand, and swaps in the imported commander if the list has one. The
// import round trip happens under the match lock, so no other action can
// interleave with the replacement.
func (g *Game) importDeck(ctx context.Context, player *Player, a Action) error {
	if g.importer == nil {
		return fmt.Errorf("%w: no importer configured", ErrDeckImportFailed)
	}

	cards, err := g.importer.ImportDeck(ctx, DeckSource{Text: a.DeckText, URL: a.DeckURL})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeckImportFailed, err)
	}
	if len(cards) == 0 {
		return fmt.Errorf("%w: no cards imported", ErrDeckImportFailed)
	}

	library := make([]Card, len(cards))
	copy(library, cards)

	// An imported commander moves to the command zone; it must not also be
	// shuffled into the library.
	for i, c := range library {
		if c.IsCommander {
			player.CommandZone = []Card{c}
			library = append(library[:i], library[i+1:]...)
			break
		}
	}

	shuffleCards(g.rng, library)
	player.Library = library
	player.Hand = []Card{}
	player.draw(openingHandSize)
	return nil
}

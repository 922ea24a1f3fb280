// bot.go - built-in opponent for solo matches
package game

// heuristicBot is the default turn decider for the bot seat. It plans a whole
// turn up front: step to the first main phase (drawing on the way), make its
// land drop, cast the cheapest thing it can, then pass the turn back.
type heuristicBot struct {
	g *Game
}

func newHeuristicBot(g *Game) *heuristicBot {
	return &heuristicBot{g: g}
}

// DecideTurn returns the ordered actions for the active bot player. The
// caller applies them through the trusted path, so no action carries a
// session identity. DecideTurn runs under the match lock.
func (b *heuristicBot) DecideTurn(active *Player) []Action {
	actions := []Action{}

	// Walk the phase cursor forward to main1, drawing when the draw phase
	// comes up. The engine has no automatic draw step.
	phase := b.g.Phase
	for phase != PhaseMain1 {
		if phase == PhaseDraw {
			actions = append(actions, Action{Type: ActionDraw, Count: 1})
		}
		actions = append(actions, Action{Type: ActionPass})
		phase = NextPhase(phase)
		if phase == PhaseUntap {
			// Wrapped a whole turn without hitting main1; bail out rather
			// than loop.
			return actions
		}
	}

	if active.LandsPlayedThisTurn < 1 {
		if land := firstLandInHand(active); land != nil {
			actions = append(actions, Action{Type: ActionPlayLand, CardID: land.ID})
		}
	}

	if spell := firstSpellInHand(active); spell != nil {
		actions = append(actions, Action{Type: ActionCast, CardID: spell.ID})
	}

	// Pass through combat, main2 and end. The final pass hands the turn to
	// the next seat.
	for p := PhaseMain1; p != PhaseUntap; p = NextPhase(p) {
		actions = append(actions, Action{Type: ActionPass})
	}
	return actions
}

func firstLandInHand(p *Player) *Card {
	for i := range p.Hand {
		if p.Hand[i].IsLand() {
			return &p.Hand[i]
		}
	}
	return nil
}

func firstSpellInHand(p *Player) *Card {
	for i := range p.Hand {
		if !p.Hand[i].IsLand() && p.Hand[i].TypeLine != "Unknown" {
			return &p.Hand[i]
		}
	}
	return nil
}

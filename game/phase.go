package game

// Phase is one of the seven fixed stages a turn cycles through.
type Phase string

const (
	PhaseUntap  Phase = "untap"
	PhaseUpkeep Phase = "upkeep"
	PhaseDraw   Phase = "draw"
	PhaseMain1  Phase = "main1"
	PhaseCombat Phase = "combat"
	PhaseMain2  Phase = "main2"
	PhaseEnd    Phase = "end"
)

// phaseOrder is the fixed cycle. After the end phase the turn passes to the
// next seat and the cycle restarts at untap.
var phaseOrder = []Phase{
	PhaseUntap, PhaseUpkeep, PhaseDraw, PhaseMain1, PhaseCombat, PhaseMain2, PhaseEnd,
}

func phaseIndex(p Phase) int {
	for i, ph := range phaseOrder {
		if ph == p {
			return i
		}
	}
	return -1
}

// NextPhase returns the phase that follows p within a single turn, wrapping
// from end back to untap.
func NextPhase(p Phase) Phase {
	idx := phaseIndex(p)
	if idx < 0 || idx == len(phaseOrder)-1 {
		return PhaseUntap
	}
	return phaseOrder[idx+1]
}

// advancePhase moves the phase cursor one step. Leaving the end phase is the
// turn boundary: the turn counter increments, the active seat rotates, and the
// incoming active player's land count resets. Callers hold the match lock.
func (g *Game) advancePhase() {
	idx := phaseIndex(g.Phase)
	if idx == len(phaseOrder)-1 {
		g.Phase = phaseOrder[0]
		g.ActivePlayerIndex = (g.ActivePlayerIndex + 1) % len(g.Players)
		g.Turn++

		if active := g.activePlayer(); active != nil {
			active.LandsPlayedThisTurn = 0
		}
		return
	}
	g.Phase = phaseOrder[idx+1]
}

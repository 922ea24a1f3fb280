package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseCycleOrder(t *testing.T) {
	g, _, _ := newTwoSeatGame(t)
	want := []Phase{PhaseUpkeep, PhaseDraw, PhaseMain1, PhaseCombat, PhaseMain2, PhaseEnd, PhaseUntap}

	for _, next := range want {
		err := g.ApplyAction(context.Background(), Action{Type: ActionPass}, "sess-0")
		require.NoError(t, err)
		assert.Equal(t, next, g.Phase)
	}
}

func TestSevenPassesRotateTurn(t *testing.T) {
	g, _, _ := newTwoSeatGame(t)

	for i := 0; i < 7; i++ {
		require.NoError(t, g.ApplyAction(context.Background(), Action{Type: ActionPass}, "sess-0"))
	}
	assert.Equal(t, PhaseUntap, g.Phase)
	assert.Equal(t, 2, g.Turn)
	assert.Equal(t, 1, g.ActivePlayerIndex)

	// Another full turn hands the match back to seat 0.
	for i := 0; i < 7; i++ {
		require.NoError(t, g.ApplyAction(context.Background(), Action{Type: ActionPass}, "sess-1"))
	}
	assert.Equal(t, PhaseUntap, g.Phase)
	assert.Equal(t, 3, g.Turn)
	assert.Equal(t, 0, g.ActivePlayerIndex)
}

func TestTurnBoundaryResetsIncomingLandCount(t *testing.T) {
	g, p0, p1 := newTwoSeatGame(t)
	p0.LandsPlayedThisTurn = 1
	p1.LandsPlayedThisTurn = 1

	for i := 0; i < 7; i++ {
		require.NoError(t, g.ApplyAction(context.Background(), Action{Type: ActionPass}, "sess-0"))
	}

	// Only the incoming active player resets.
	assert.Equal(t, 0, p1.LandsPlayedThisTurn)
	assert.Equal(t, 1, p0.LandsPlayedThisTurn)
}

func TestMidTurnPassHasNoSideEffects(t *testing.T) {
	g, p0, _ := newTwoSeatGame(t)
	p0.LandsPlayedThisTurn = 1

	require.NoError(t, g.ApplyAction(context.Background(), Action{Type: ActionPass}, "sess-0"))
	assert.Equal(t, PhaseUpkeep, g.Phase)
	assert.Equal(t, 1, g.Turn)
	assert.Equal(t, 0, g.ActivePlayerIndex)
	assert.Equal(t, 1, p0.LandsPlayedThisTurn)
}

func TestNextPhaseWraps(t *testing.T) {
	assert.Equal(t, PhaseUpkeep, NextPhase(PhaseUntap))
	assert.Equal(t, PhaseUntap, NextPhase(PhaseEnd))
	assert.Equal(t, PhaseUntap, NextPhase(Phase("bogus")))
}

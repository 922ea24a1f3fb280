package game

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand { return rand.New(rand.NewSource(1)) }

// newTwoSeatGame builds a match with two human seats so tests can drive both
// sides through the session path.
func newTwoSeatGame(t *testing.T) (*Game, *Player, *Player) {
	t.Helper()
	g := NewGame("g-test", testRNG(), nil, nil)
	p0 := g.AddPlayer(PlayerConfig{Name: "alice", SessionID: "sess-0", IsHuman: true, Starter: StarterA})
	p1 := g.AddPlayer(PlayerConfig{Name: "bob", SessionID: "sess-1", IsHuman: true, Starter: StarterB})
	return g, p0, p1
}

func namedCard(name, typeLine string) Card {
	return Card{ID: newID(), Name: name, TypeLine: typeLine}
}

func TestAddPlayerOpeningHand(t *testing.T) {
	tests := []struct {
		name     string
		deckSize int
		wantHand int
	}{
		{"full deck", 30, 7},
		{"exactly seven after commander", 8, 7},
		{"short deck", 4, 3},
		{"single card", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := make([]string, tt.deckSize)
			for i := range names {
				names[i] = "Forest"
			}

			g := NewGame("g", testRNG(), nil, nil)
			p := g.AddPlayer(PlayerConfig{
				Name:            "p",
				IsHuman:         true,
				Starter:         StarterCustom,
				CustomDeckNames: names,
			})

			// One card moves to the command zone before the deal.
			require.Len(t, p.CommandZone, 1)
			assert.Len(t, p.Hand, tt.wantHand)
			assert.Equal(t, tt.deckSize, len(p.Hand)+len(p.Library)+len(p.CommandZone))
			assert.Equal(t, startingLife, p.Life)
		})
	}
}

func TestAddPlayerSelectsFlaggedCommander(t *testing.T) {
	g := NewGame("g", testRNG(), nil, nil)
	p := g.AddPlayer(PlayerConfig{Name: "p", IsHuman: true, Starter: StarterA})

	require.Len(t, p.CommandZone, 1)
	assert.Equal(t, "Trostani, Selesnya's Voice", p.CommandZone[0].Name)
	assert.True(t, p.CommandZone[0].IsCommander)

	// The commander lives in exactly one zone.
	for _, c := range p.Library {
		assert.NotEqual(t, p.CommandZone[0].ID, c.ID)
	}
	for _, c := range p.Hand {
		assert.NotEqual(t, p.CommandZone[0].ID, c.ID)
	}
}

func TestNewGameInitialState(t *testing.T) {
	g := NewGame("g", testRNG(), nil, nil)
	assert.Equal(t, PhaseUntap, g.Phase)
	assert.Equal(t, 1, g.Turn)
	assert.Equal(t, 0, g.ActivePlayerIndex)
	assert.Empty(t, g.Stack)
}

func TestShuffleIsPermutation(t *testing.T) {
	g, p0, _ := newTwoSeatGame(t)

	before := make(map[string]int)
	for _, c := range p0.Library {
		before[c.ID]++
	}

	err := g.ApplyAction(context.Background(), Action{Type: ActionShuffle}, "sess-0")
	require.NoError(t, err)

	after := make(map[string]int)
	for _, c := range p0.Library {
		after[c.ID]++
	}
	assert.Equal(t, before, after)
}

func TestPublicStateHidesHandsAndLibraries(t *testing.T) {
	g, p0, _ := newTwoSeatGame(t)
	require.NotEmpty(t, p0.Hand)

	state := g.PublicState()
	payload, err := json.Marshal(state)
	require.NoError(t, err)

	raw := string(payload)
	assert.NotContains(t, raw, `"hand":`)
	assert.NotContains(t, raw, `"library"`)
	for _, c := range p0.Hand {
		assert.NotContains(t, raw, c.ID)
	}
	for _, c := range p0.Library {
		assert.NotContains(t, raw, c.ID)
	}

	require.Len(t, state.Players, 2)
	assert.Equal(t, len(p0.Hand), state.Players[0].HandCount)
	assert.True(t, strings.Contains(raw, `"handCount"`))
}

func TestHandForReturnsOwnHandOnly(t *testing.T) {
	g, p0, _ := newTwoSeatGame(t)

	hand := g.HandFor("sess-0")
	require.Len(t, hand, len(p0.Hand))
	assert.Nil(t, g.HandFor("sess-unknown"))
	assert.Nil(t, g.HandFor(""))
}

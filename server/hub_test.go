package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHubGameMembership(t *testing.T) {
	h := NewHub()
	a := &Connection{SessionID: "a"}
	b := &Connection{SessionID: "b"}

	h.Register(a)
	h.Register(b)
	h.JoinGame(a, "g1")
	h.JoinGame(b, "g1")

	assert.Equal(t, "g1", a.GameID)
	assert.Len(t, h.gameConns["g1"], 2)

	h.LeaveGame(a)
	assert.Empty(t, a.GameID)
	assert.Len(t, h.gameConns["g1"], 1)

	// leaving twice is a no-op
	h.LeaveGame(a)
	assert.Len(t, h.gameConns["g1"], 1)
}

func TestHubUnregisterDropsGameMembership(t *testing.T) {
	h := NewHub()
	c := &Connection{SessionID: "c"}

	h.Register(c)
	h.JoinGame(c, "g1")
	h.Unregister(c)

	assert.Empty(t, h.gameConns["g1"])
	assert.NotContains(t, h.connections, c)
}

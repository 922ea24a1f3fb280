// handlers.go - WebSocket message handlers
package server

import (
	"context"
	"time"

	"cardtable/game"
)

// actionTimeout bounds one action application, including the network round
// trip a deck import performs.
const actionTimeout = 30 * time.Second

func (gw *Gateway) handleCreateGame(c *Connection, msg clientMessage) {
	g := gw.registry.CreateMatch(msg.PlayerName, c.SessionID)
	gw.hub.JoinGame(c, g.ID)

	gw.log.Info("match created", "game_id", g.ID, "player", msg.PlayerName)
	c.send(event{Type: "game-created", Data: map[string]any{
		"gameId": g.ID,
		"state":  g.PublicState(),
		"hand":   g.HandFor(c.SessionID),
	}})
}

func (gw *Gateway) handleJoinGame(c *Connection, msg clientMessage) {
	g := gw.registry.Get(msg.GameID)
	if g == nil {
		c.send(event{Type: "error", Data: "game not found"})
		return
	}

	g.AddPlayer(game.PlayerConfig{
		Name:      msg.PlayerName,
		SessionID: c.SessionID,
		IsHuman:   true,
		Starter:   game.StarterA,
	})
	gw.hub.JoinGame(c, g.ID)

	gw.log.Info("player joined", "game_id", g.ID, "player", msg.PlayerName)
	c.send(event{Type: "hand", Data: g.HandFor(c.SessionID)})
	gw.hub.Broadcast(g.ID, event{Type: "game-updated", Data: g.PublicState()})
}

// handlePlayerAction applies one action, broadcasts the new public state, and
// runs the bot's turn if the action handed it the active seat. Engine
// failures go back to the acting client only; other participants see nothing.
func (gw *Gateway) handlePlayerAction(c *Connection, msg clientMessage) {
	g := gw.registry.Get(msg.GameID)
	if g == nil {
		c.send(event{Type: "error", Data: "game not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()

	if err := g.ApplyAction(ctx, msg.Action, c.SessionID); err != nil {
		c.send(event{Type: "error", Data: err.Error()})
		return
	}

	c.send(event{Type: "hand", Data: g.HandFor(c.SessionID)})
	gw.hub.Broadcast(g.ID, event{Type: "game-updated", Data: g.PublicState()})

	if g.ShouldBotAct() {
		if _, err := g.RunBotTurn(ctx); err != nil {
			gw.log.Warn("bot turn failed", "game_id", g.ID, "error", err)
		}
		gw.hub.Broadcast(g.ID, event{Type: "game-updated", Data: g.PublicState()})
	}
}

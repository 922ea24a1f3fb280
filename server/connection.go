// connection.go - WebSocket connection management
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"cardtable/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Connection is one WebSocket client. Its SessionID is the identity the
// engine resolves actions against.
type Connection struct {
	ws        *websocket.Conn
	writeMu   sync.Mutex
	SessionID string
	GameID    string
}

// event is one outbound message to a client.
type event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

func (c *Connection) send(evt event) {
	data, err := json.Marshal(evt)
	if err != nil {
		return
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.ws.WriteMessage(websocket.TextMessage, data) //nolint:errcheck // dead conns are reaped by the read loop
}

// clientMessage is one inbound wire message.
type clientMessage struct {
	Type       string      `json:"type"`
	PlayerName string      `json:"playerName,omitempty"`
	GameID     string      `json:"gameId,omitempty"`
	Action     game.Action `json:"action,omitempty"`
}

// Gateway maps wire events to engine calls and broadcasts the results.
type Gateway struct {
	hub      *Hub
	registry *game.Registry
	log      *slog.Logger
}

func NewGateway(registry *game.Registry, log *slog.Logger) *Gateway {
	return &Gateway{
		hub:      NewHub(),
		registry: registry,
		log:      log.With(slog.String("component", "gateway")),
	}
}

// ServeWs handles WebSocket upgrade requests.
func (gw *Gateway) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		gw.log.Warn("upgrade failed", "error", err)
		return
	}

	c := &Connection{ws: conn, SessionID: uuid.NewString()}
	gw.hub.Register(c)
	gw.log.Info("client connected", "session_id", c.SessionID)
	go gw.readLoop(c)
}

// readLoop reads messages from the WebSocket and routes them to handlers.
// Messages for one connection are handled strictly in order.
func (gw *Gateway) readLoop(c *Connection) {
	defer func() {
		gw.hub.Unregister(c)
		c.ws.Close()
		gw.log.Info("client disconnected", "session_id", c.SessionID)
	}()

	for {
		_, msgBytes, err := c.ws.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(msgBytes, &msg); err != nil {
			gw.log.Warn("bad message", "session_id", c.SessionID, "error", err)
			continue
		}

		switch msg.Type {
		case "create-game":
			gw.handleCreateGame(c, msg)
		case "join-game":
			gw.handleJoinGame(c, msg)
		case "player-action":
			gw.handlePlayerAction(c, msg)
		case "leave-game":
			gw.hub.LeaveGame(c)
		default:
			c.send(event{Type: "error", Data: "unknown message type: " + msg.Type})
		}
	}
}

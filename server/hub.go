package server

import "sync"

// Hub tracks live connections and which match each one is watching, so match
// updates can be broadcast to every participant.
type Hub struct {
	mu          sync.RWMutex
	connections map[*Connection]bool
	// gameID -> connections in that match
	gameConns map[string][]*Connection
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*Connection]bool),
		gameConns:   make(map[string][]*Connection),
	}
}

func (h *Hub) Register(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c] = true
}

func (h *Hub) Unregister(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.connections, c)

	if c.GameID != "" {
		conns := h.gameConns[c.GameID]
		for i, conn := range conns {
			if conn == c {
				h.gameConns[c.GameID] = append(conns[:i], conns[i+1:]...)
				break
			}
		}
	}
}

func (h *Hub) JoinGame(c *Connection, gameID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.GameID = gameID
	h.gameConns[gameID] = append(h.gameConns[gameID], c)
}

// Broadcast sends an event to every connection in a match.
func (h *Hub) Broadcast(gameID string, evt event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.gameConns[gameID] {
		c.send(evt)
	}
}

// LeaveGame removes a connection from its match.
func (h *Hub) LeaveGame(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c.GameID == "" {
		return
	}
	conns := h.gameConns[c.GameID]
	for i, conn := range conns {
		if conn == c {
			h.gameConns[c.GameID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	c.GameID = ""
}

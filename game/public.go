package game

// PublicPlayer is the opponent-safe view of a seat. Hand and library contents
// never appear here; only the hand count does.
type PublicPlayer struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Life        int               `json:"life"`
	HandCount   int               `json:"handCount"`
	Battlefield []BattlefieldCard `json:"battlefield"`
	Graveyard   []Card            `json:"graveyard"`
	CommandZone []Card            `json:"commandZone"`
}

// PublicStateView is the sanitized match snapshot broadcast to every client.
type PublicStateView struct {
	ID      string         `json:"id"`
	Phase   Phase          `json:"phase"`
	Turn    int            `json:"turn"`
	Players []PublicPlayer `json:"players"`
	Stack   []StackItem    `json:"stack"`
}

// PublicState projects the match into what any client may see.
func (g *Game) PublicState() PublicStateView {
	g.mu.Lock()
	defer g.mu.Unlock()

	players := make([]PublicPlayer, 0, len(g.Players))
	for _, p := range g.Players {
		players = append(players, PublicPlayer{
			ID:          p.ID,
			Name:        p.Name,
			Life:        p.Life,
			HandCount:   len(p.Hand),
			Battlefield: p.Battlefield,
			Graveyard:   p.Graveyard,
			CommandZone: p.CommandZone,
		})
	}
	return PublicStateView{
		ID:      g.ID,
		Phase:   g.Phase,
		Turn:    g.Turn,
		Players: players,
		Stack:   g.Stack,
	}
}

// HandFor returns the private hand for the seat bound to sessionID. The
// transport sends this only to that one connection.
func (g *Game) HandFor(sessionID string) []Card {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.findPlayerBySession(sessionID)
	if p == nil {
		return nil
	}
	hand := make([]Card, len(p.Hand))
	copy(hand, p.Hand)
	return hand
}

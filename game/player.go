package game

// Player holds every zone and counter belonging to one seat.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SessionID string `json:"-"` // empty for bot and disconnected seats
	IsHuman   bool   `json:"isHuman"`
	Life      int    `json:"life"`

	// Ordered zones. The tail of Library is the top of the deck.
	Library     []Card            `json:"-"`
	Hand        []Card            `json:"-"`
	Battlefield []BattlefieldCard `json:"battlefield"`
	Graveyard   []Card            `json:"graveyard"`
	CommandZone []Card            `json:"commandZone"`

	// Tracked but not consumed by any current rule.
	CommanderTax int      `json:"commanderTax"`
	ManaPool     ManaPool `json:"manaPool"`

	LandsPlayedThisTurn int `json:"landsPlayedThisTurn"`
}

// draw moves up to count cards from the top of the library into hand and
// returns how many actually moved. Drawing from a short library truncates
// silently; running out of cards is not a loss condition here.
func (p *Player) draw(count int) int {
	drawn := 0
	for i := 0; i < count && len(p.Library) > 0; i++ {
		top := p.Library[len(p.Library)-1]
		p.Library = p.Library[:len(p.Library)-1]
		p.Hand = append(p.Hand, top)
		drawn++
	}
	return drawn
}

// handIndex returns the position of cardID in hand, or -1.
func (p *Player) handIndex(cardID string) int {
	for i, c := range p.Hand {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}

func (p *Player) removeFromHand(idx int) Card {
	c := p.Hand[idx]
	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
	return c
}

package game

import "strings"

// Card is an immutable description of a single physical card. Every copy in a
// deck gets its own ID so zone transfers can track identity.
type Card struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	TypeLine    string   `json:"type"`
	ManaCost    string   `json:"manaCost"`
	ManaValue   float64  `json:"manaValue,omitempty"`
	Text        string   `json:"text,omitempty"`
	Power       string   `json:"power,omitempty"`
	Toughness   string   `json:"toughness,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Image       string   `json:"image,omitempty"`
	IsCommander bool     `json:"isCommander,omitempty"`
}

func (c Card) typeContains(word string) bool {
	return strings.Contains(strings.ToLower(c.TypeLine), word)
}

// IsLand reports whether the type line classifies the card as a land.
func (c Card) IsLand() bool { return c.typeContains("land") }

// IsPermanent reports whether casting the card puts it onto the battlefield
// rather than into the graveyard.
func (c Card) IsPermanent() bool {
	return c.typeContains("creature") || c.typeContains("artifact") || c.typeContains("enchantment")
}

// BattlefieldCard wraps a card with the transient state it picks up on the
// battlefield. The underlying card keeps its identity.
type BattlefieldCard struct {
	Card
	Tapped bool `json:"tapped"`
}

// ManaColors is a per-color mana breakdown.
type ManaColors struct {
	White int `json:"white"`
	Blue  int `json:"blue"`
	Black int `json:"black"`
	Red   int `json:"red"`
	Green int `json:"green"`
}

// ManaPool tracks available mana. No handler spends from it yet; the pool is
// declared state for a future rules layer.
type ManaPool struct {
	Total  int        `json:"total"`
	Colors ManaColors `json:"colors"`
}

// StackItem is a pending effect awaiting resolution. Nothing pushes one today;
// the stack exists so a priority system can be added without changing the
// match shape.
type StackItem struct {
	Card       Card   `json:"card"`
	Controller string `json:"controller"`
}

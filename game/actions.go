package game

// ActionType enumerates the closed set of player actions. Anything else
// arriving off the wire is a malformed message and fails dispatch.
type ActionType string

const (
	ActionShuffle    ActionType = "shuffle"
	ActionDraw       ActionType = "draw"
	ActionPlayLand   ActionType = "play-land"
	ActionCast       ActionType = "cast"
	ActionPass       ActionType = "pass"
	ActionImportDeck ActionType = "import-deck"
)

// Action is one tagged player or bot action. Only the fields relevant to the
// tag are read.
type Action struct {
	Type     ActionType `json:"type"`
	CardID   string     `json:"cardId,omitempty"`
	Count    int        `json:"count,omitempty"`
	DeckText string     `json:"deckText,omitempty"`
	DeckURL  string     `json:"deckUrl,omitempty"`
}

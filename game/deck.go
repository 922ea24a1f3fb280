package game

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// StarterDeck selects which base card list a new player starts with.
type StarterDeck string

const (
	StarterA      StarterDeck = "A"
	StarterB      StarterDeck = "B"
	StarterCustom StarterDeck = "CUSTOM"
)

type cardSpec struct {
	name      string
	typeLine  string
	manaCost  string
	power     string
	toughness string
	colors    []string
	commander bool
}

// catalog is the built-in card pool the starter decks draw from. Imported
// decks resolve against the external card lookup instead.
var catalog = []cardSpec{
	{name: "Forest", typeLine: "Basic Land — Forest"},
	{name: "Plains", typeLine: "Basic Land — Plains"},
	{name: "Island", typeLine: "Basic Land — Island"},
	{name: "Swamp", typeLine: "Basic Land — Swamp"},
	{name: "Mountain", typeLine: "Basic Land — Mountain"},
	{name: "Llanowar Elves", typeLine: "Creature — Elf Druid", manaCost: "{G}", power: "1", toughness: "1", colors: []string{"G"}},
	{name: "Grizzly Bears", typeLine: "Creature — Bear", manaCost: "{1}{G}", power: "2", toughness: "2", colors: []string{"G"}},
	{name: "Kalonian Tusker", typeLine: "Creature — Beast", manaCost: "{G}{G}", power: "3", toughness: "3", colors: []string{"G"}},
	{name: "Serra Angel", typeLine: "Creature — Angel", manaCost: "{3}{W}{W}", power: "4", toughness: "4", colors: []string{"W"}},
	{name: "Pacifism", typeLine: "Enchantment — Aura", manaCost: "{1}{W}", colors: []string{"W"}},
	{name: "Giant Growth", typeLine: "Instant", manaCost: "{G}", colors: []string{"G"}},
	{name: "Trostani, Selesnya's Voice", typeLine: "Legendary Creature — Dryad", manaCost: "{G}{G}{W}{W}", power: "2", toughness: "5", colors: []string{"G", "W"}, commander: true},
	{name: "Merfolk Looter", typeLine: "Creature — Merfolk Rogue", manaCost: "{1}{U}", power: "1", toughness: "1", colors: []string{"U"}},
	{name: "Vampire Nighthawk", typeLine: "Creature — Vampire Shaman", manaCost: "{1}{B}{B}", power: "2", toughness: "3", colors: []string{"B"}},
	{name: "Doom Blade", typeLine: "Instant", manaCost: "{1}{B}", colors: []string{"B"}},
	{name: "Divination", typeLine: "Sorcery", manaCost: "{2}{U}", colors: []string{"U"}},
	{name: "Sol Ring", typeLine: "Artifact", manaCost: "{1}"},
	{name: "Lightning Bolt", typeLine: "Instant", manaCost: "{R}", colors: []string{"R"}},
	{name: "Shivan Dragon", typeLine: "Creature — Dragon", manaCost: "{4}{R}{R}", power: "5", toughness: "5", colors: []string{"R"}},
	{name: "Talrand, Sky Summoner", typeLine: "Legendary Creature — Merfolk Wizard", manaCost: "{2}{U}{U}", power: "2", toughness: "2", colors: []string{"U"}, commander: true},
}

var catalogByName = func() map[string]cardSpec {
	m := make(map[string]cardSpec, len(catalog))
	for _, spec := range catalog {
		m[strings.ToLower(spec.name)] = spec
	}
	return m
}()

func (s cardSpec) instantiate() Card {
	return Card{
		ID:          uuid.NewString(),
		Name:        s.name,
		TypeLine:    s.typeLine,
		ManaCost:    s.manaCost,
		Power:       s.power,
		Toughness:   s.toughness,
		Colors:      s.colors,
		IsCommander: s.commander,
	}
}

type deckEntry struct {
	name  string
	count int
}

func buildDeck(entries []deckEntry) []Card {
	deck := make([]Card, 0, 32)
	for _, e := range entries {
		spec, ok := catalogByName[strings.ToLower(e.name)]
		if !ok {
			continue
		}
		for i := 0; i < e.count; i++ {
			deck = append(deck, spec.instantiate())
		}
	}
	return deck
}

// StarterDeckA is a green-white list built from the in-repo catalog. Each call
// returns fresh card instances.
func StarterDeckA() []Card {
	return buildDeck([]deckEntry{
		{"Trostani, Selesnya's Voice", 1},
		{"Forest", 8},
		{"Plains", 5},
		{"Llanowar Elves", 3},
		{"Grizzly Bears", 4},
		{"Kalonian Tusker", 3},
		{"Serra Angel", 2},
		{"Pacifism", 2},
		{"Giant Growth", 3},
		{"Sol Ring", 1},
	})
}

// StarterDeckB is a blue-black list built from the in-repo catalog.
func StarterDeckB() []Card {
	return buildDeck([]deckEntry{
		{"Talrand, Sky Summoner", 1},
		{"Island", 8},
		{"Swamp", 5},
		{"Merfolk Looter", 4},
		{"Vampire Nighthawk", 4},
		{"Doom Blade", 3},
		{"Divination", 4},
		{"Sol Ring", 1},
	})
}

// BotDeckNames is the fixed list the built-in bot seat plays. Names resolve
// against the local catalog so match creation never touches the network.
var BotDeckNames = []string{
	"Shivan Dragon",
	"Mountain", "Mountain", "Mountain", "Mountain", "Mountain", "Mountain", "Mountain", "Mountain",
	"Forest", "Forest", "Forest", "Forest", "Forest",
	"Llanowar Elves", "Llanowar Elves", "Llanowar Elves",
	"Grizzly Bears", "Grizzly Bears", "Grizzly Bears", "Grizzly Bears",
	"Kalonian Tusker", "Kalonian Tusker",
	"Lightning Bolt", "Lightning Bolt", "Lightning Bolt",
	"Giant Growth", "Giant Growth",
	"Sol Ring",
}

// CreateDeckFromNames resolves a name list against the catalog. Unknown names
// become placeholder cards rather than failing the whole deck.
func CreateDeckFromNames(names []string) []Card {
	deck := make([]Card, 0, len(names))
	for _, name := range names {
		if spec, ok := catalogByName[strings.ToLower(name)]; ok {
			deck = append(deck, spec.instantiate())
			continue
		}
		deck = append(deck, Card{
			ID:       uuid.NewString(),
			Name:     name,
			TypeLine: "Unknown",
		})
	}
	return deck
}

// shuffleCards is a uniform Fisher-Yates shuffle in place.
func shuffleCards(rng *rand.Rand, cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

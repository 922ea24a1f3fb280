package deckimport

import (
	"fmt"
	"strings"

	"cardtable/game"
)

var basicLands = map[string]bool{
	"plains":   true,
	"island":   true,
	"swamp":    true,
	"mountain": true,
	"forest":   true,
}

// ValidateDeck applies constructed-format legality checks: a 60-card minimum
// and at most 4 copies of anything that is not a basic land.
func ValidateDeck(cards []game.Card) (bool, []string) {
	var errs []string
	if len(cards) < 60 {
		errs = append(errs, fmt.Sprintf("Deck must have at least 60 cards (has %d)", len(cards)))
	}

	counts := make(map[string]int)
	order := []string{}
	for _, c := range cards {
		key := strings.ToLower(c.Name)
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}
	for _, name := range order {
		if counts[name] > 4 && !basicLands[name] {
			errs = append(errs, fmt.Sprintf("Too many copies of %s (%d, max 4)", name, counts[name]))
		}
	}

	return len(errs) == 0, errs
}

// AnalyzeDeck returns advisory warnings about deck composition: mana base
// size, creature density, curve height, and color spread.
func AnalyzeDeck(cards []game.Card) []string {
	var warnings []string

	colors := make(map[string]bool)
	landCount := 0
	creatureCount := 0
	totalMV := 0.0
	nonlandCount := 0

	for _, c := range cards {
		for _, col := range c.Colors {
			colors[col] = true
		}
		switch {
		case c.IsLand():
			landCount++
		default:
			nonlandCount++
			totalMV += c.ManaValue
			if strings.Contains(strings.ToLower(c.TypeLine), "creature") {
				creatureCount++
			}
		}
	}

	if landCount < 15 {
		warnings = append(warnings, fmt.Sprintf("Low land count (%d). Consider adding more lands for consistent mana.", landCount))
	}
	if landCount > 28 {
		warnings = append(warnings, fmt.Sprintf("High land count (%d). Consider adding more spells.", landCount))
	}
	if creatureCount < 10 {
		warnings = append(warnings, fmt.Sprintf("Low creature count (%d). May struggle with board presence.", creatureCount))
	}

	if nonlandCount > 0 {
		avg := totalMV / float64(nonlandCount)
		if avg > 4 {
			warnings = append(warnings, fmt.Sprintf("High average mana cost (%.1f). Deck may be slow.", avg))
		}
		if avg < 2 {
			warnings = append(warnings, fmt.Sprintf("Low average mana cost (%.1f). May run out of gas in long games.", avg))
		}
	}

	if len(colors) > 3 {
		warnings = append(warnings, fmt.Sprintf("Many colors (%d). Mana base may be inconsistent.", len(colors)))
	}

	return warnings
}

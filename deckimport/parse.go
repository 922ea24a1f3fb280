package deckimport

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

var cardLineRE = regexp.MustCompile(`^(\d+)\s*x?\s*(.+)$`)

// isCardLine reports whether a decklist line names cards: non-empty, not a
// comment, not a section marker, and starting with a quantity.
func isCardLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "//") {
		return false
	}
	if strings.Contains(strings.ToLower(line), "sideboard") {
		return false
	}
	return line[0] >= '0' && line[0] <= '9'
}

// parseCardLine splits "<quantity>[x] <name>". Lines without a leading
// quantity count as one copy.
func parseCardLine(line string) (int, string) {
	line = strings.TrimSpace(line)
	if m := cardLineRE.FindStringSubmatch(line); m != nil {
		qty, err := strconv.Atoi(m[1])
		if err == nil && qty > 0 {
			return qty, strings.TrimSpace(m[2])
		}
	}
	return 1, line
}

// importFromText resolves a free-text decklist. A "sideboard" marker line
// switches the section the following cards land in.
func (s *Service) importFromText(ctx context.Context, deckText string) (*Deck, error) {
	deck := &Deck{}
	section := "main"

	for _, raw := range strings.Split(deckText, "\n") {
		line := strings.TrimSpace(raw)
		if strings.Contains(strings.ToLower(line), "sideboard") {
			section = "sideboard"
			continue
		}
		if !isCardLine(line) {
			continue
		}

		qty, name := parseCardLine(line)
		card := s.lookupCard(ctx, name)
		for i := 0; i < qty; i++ {
			if section == "sideboard" {
				deck.Sideboard = append(deck.Sideboard, card.instance())
			} else {
				deck.Cards = append(deck.Cards, card.instance())
			}
		}
	}

	deck.Valid, deck.Errors = ValidateDeck(deck.Cards)
	deck.Warnings = AnalyzeDeck(deck.Cards)
	return deck, nil
}

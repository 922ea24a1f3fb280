package deckimport

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"cardtable/game"
)

var supportedSites = map[string]string{
	"moxfield":  "moxfield.com",
	"tappedout": "tappedout.net",
	"scryfall":  "scryfall.com",
}

var (
	moxfieldDeckRE  = regexp.MustCompile(`moxfield\.com/decks/([a-zA-Z0-9_-]+)`)
	tappedOutDeckRE = regexp.MustCompile(`tappedout\.net/mtg-decks/([a-zA-Z0-9_-]+)`)
	scryfallCardRE  = regexp.MustCompile(`scryfall\.com/card/[^/]+/[^/]+/([^/]+)`)
)

// identifySite matches a deck URL to a supported site key, or "".
func identifySite(rawURL string) string {
	for site, domain := range supportedSites {
		if strings.Contains(rawURL, domain) {
			return site
		}
	}
	return ""
}

func (s *Service) importFromURL(ctx context.Context, rawURL string) (*Deck, error) {
	switch identifySite(rawURL) {
	case "moxfield":
		return s.importFromMoxfield(ctx, rawURL)
	case "tappedout":
		return s.importFromTappedOut(ctx, rawURL)
	case "scryfall":
		return s.importFromScryfall(ctx, rawURL)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSite, rawURL)
	}
}

// moxfieldDeck is the slice of the Moxfield deck schema this service reads.
type moxfieldDeck struct {
	Name      string                   `json:"name"`
	Author    string                   `json:"author"`
	Mainboard map[string]moxfieldEntry `json:"mainboard"`
	Sideboard map[string]moxfieldEntry `json:"sideboard"`
}

type moxfieldEntry struct {
	Quantity int `json:"quantity"`
	Card     struct {
		Name string `json:"name"`
	} `json:"card"`
}

func (s *Service) importFromMoxfield(ctx context.Context, rawURL string) (*Deck, error) {
	m := moxfieldDeckRE.FindStringSubmatch(rawURL)
	if m == nil {
		return nil, fmt.Errorf("invalid Moxfield URL format: %s", rawURL)
	}

	body, err := s.makeRequest(ctx, fmt.Sprintf("%s/v1/decks/all/%s", s.moxfieldBaseURL, m[1]))
	if err != nil {
		return nil, fmt.Errorf("moxfield import failed: %w", err)
	}

	var md moxfieldDeck
	if err := json.Unmarshal(body, &md); err != nil {
		return nil, fmt.Errorf("moxfield import failed: %w", err)
	}

	deck := &Deck{Name: md.Name, Author: md.Author, Site: "moxfield"}
	for _, entry := range md.Mainboard {
		card := s.lookupCard(ctx, entry.Card.Name)
		for i := 0; i < entry.Quantity; i++ {
			deck.Cards = append(deck.Cards, card.instance())
		}
	}
	for _, entry := range md.Sideboard {
		card := s.lookupCard(ctx, entry.Card.Name)
		for i := 0; i < entry.Quantity; i++ {
			deck.Sideboard = append(deck.Sideboard, card.instance())
		}
	}

	deck.Valid, deck.Errors = ValidateDeck(deck.Cards)
	deck.Warnings = AnalyzeDeck(deck.Cards)
	return deck, nil
}

// tappedOutDeck is the slice of the TappedOut deck schema this service reads.
// Board contents come back as decklist text.
type tappedOutDeck struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	Board     string `json:"board"`
	Sideboard string `json:"sideboard"`
}

func (s *Service) importFromTappedOut(ctx context.Context, rawURL string) (*Deck, error) {
	m := tappedOutDeckRE.FindStringSubmatch(rawURL)
	if m == nil {
		return nil, fmt.Errorf("invalid TappedOut URL format: %s", rawURL)
	}

	body, err := s.makeRequest(ctx, fmt.Sprintf("%s/api/deck/get/%s/?fmt=json", s.tappedOutBaseURL, m[1]))
	if err != nil {
		return nil, fmt.Errorf("tappedout import failed: %w", err)
	}

	var td tappedOutDeck
	if err := json.Unmarshal(body, &td); err != nil {
		return nil, fmt.Errorf("tappedout import failed: %w", err)
	}

	text := td.Board
	if td.Sideboard != "" {
		text += "\nSideboard\n" + td.Sideboard
	}

	deck, err := s.importFromText(ctx, text)
	if err != nil {
		return nil, err
	}
	deck.Name = td.Name
	deck.Author = td.Username
	deck.Site = "tappedout"
	return deck, nil
}

// importFromScryfall resolves a single-card Scryfall URL into a one-card deck.
func (s *Service) importFromScryfall(ctx context.Context, rawURL string) (*Deck, error) {
	m := scryfallCardRE.FindStringSubmatch(rawURL)
	if m == nil {
		return nil, fmt.Errorf("invalid Scryfall URL format: %s", rawURL)
	}

	name := strings.ReplaceAll(m[1], "-", " ")
	card := s.lookupCard(ctx, name)
	return &Deck{
		Cards: []game.Card{card.instance()},
		Site:  "scryfall",
		Valid: true,
	}, nil
}

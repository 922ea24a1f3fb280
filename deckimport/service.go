// Package deckimport resolves decklists into concrete card records using the
// Scryfall catalog, with support for importing from deck-building sites.
package deckimport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"cardtable/game"
)

const (
	defaultScryfallBaseURL  = "https://api.scryfall.com"
	defaultMoxfieldBaseURL  = "https://api.moxfield.com"
	defaultTappedOutBaseURL = "https://tappedout.net"
	defaultUserAgent        = "cardtable/1.0"
	defaultRequestDelay     = 100 * time.Millisecond
	defaultCacheTTL         = 5 * time.Minute
)

var (
	// ErrNoSource means neither decklist text nor a URL was supplied.
	ErrNoSource = errors.New("no deck text or URL provided")
	// ErrUnsupportedSite means the URL does not belong to a supported deck site.
	ErrUnsupportedSite = errors.New("unsupported deck site")
	// ErrNotFound maps an upstream 404.
	ErrNotFound = errors.New("deck or card not found")
	// ErrRateLimited maps an upstream 429.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Config carries the knobs for a Service. Zero values get defaults.
type Config struct {
	HTTPClient       *http.Client
	ScryfallBaseURL  string
	MoxfieldBaseURL  string
	TappedOutBaseURL string
	UserAgent        string
	RequestDelay     time.Duration
	CacheTTL         time.Duration
	Logger           *slog.Logger
}

// Service looks up cards and imports decks. Lookups are cached and spaced out
// so a 100-card import stays inside the upstream rate limit.
type Service struct {
	client           *http.Client
	scryfallBaseURL  string
	moxfieldBaseURL  string
	tappedOutBaseURL string
	userAgent        string
	requestDelay     time.Duration
	cacheTTL         time.Duration
	log              *slog.Logger

	mu          sync.Mutex
	cache       map[string]cacheEntry
	lastRequest time.Time
}

type cacheEntry struct {
	card    scryfallCard
	fetched time.Time
}

// NewService builds a Service from cfg, filling in defaults.
func NewService(cfg Config) *Service {
	s := &Service{
		client:           cfg.HTTPClient,
		scryfallBaseURL:  cfg.ScryfallBaseURL,
		moxfieldBaseURL:  cfg.MoxfieldBaseURL,
		tappedOutBaseURL: cfg.TappedOutBaseURL,
		userAgent:        cfg.UserAgent,
		requestDelay:     cfg.RequestDelay,
		cacheTTL:         cfg.CacheTTL,
		log:              cfg.Logger,
		cache:            make(map[string]cacheEntry),
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: 10 * time.Second}
	}
	if s.scryfallBaseURL == "" {
		s.scryfallBaseURL = defaultScryfallBaseURL
	}
	if s.moxfieldBaseURL == "" {
		s.moxfieldBaseURL = defaultMoxfieldBaseURL
	}
	if s.tappedOutBaseURL == "" {
		s.tappedOutBaseURL = defaultTappedOutBaseURL
	}
	if s.userAgent == "" {
		s.userAgent = defaultUserAgent
	}
	if s.requestDelay == 0 {
		s.requestDelay = defaultRequestDelay
	}
	if s.cacheTTL == 0 {
		s.cacheTTL = defaultCacheTTL
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.log = s.log.With(slog.String("component", "deckimport"))
	return s
}

// Source identifies a deck to import.
type Source struct {
	Text string `json:"deckText,omitempty"`
	URL  string `json:"deckUrl,omitempty"`
}

// Deck is the result of an import: resolved mainboard and sideboard cards
// plus validation and analysis output.
type Deck struct {
	Cards     []game.Card `json:"cards"`
	Sideboard []game.Card `json:"sideboard"`
	Name      string      `json:"deckName,omitempty"`
	Author    string      `json:"author,omitempty"`
	Site      string      `json:"source,omitempty"`
	Valid     bool        `json:"valid"`
	Errors    []string    `json:"validationErrors,omitempty"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// Import resolves a deck source into cards. Individual card names that fail
// to resolve become placeholder cards; the import as a whole fails only on
// missing input, an unsupported site, or a dead upstream.
func (s *Service) Import(ctx context.Context, src Source) (*Deck, error) {
	switch {
	case src.Text != "":
		return s.importFromText(ctx, src.Text)
	case src.URL != "":
		return s.importFromURL(ctx, src.URL)
	default:
		return nil, ErrNoSource
	}
}

// ImportDeck satisfies game.DeckImporter: the engine only needs the mainboard.
func (s *Service) ImportDeck(ctx context.Context, src game.DeckSource) ([]game.Card, error) {
	deck, err := s.Import(ctx, Source{Text: src.Text, URL: src.URL})
	if err != nil {
		return nil, err
	}
	return deck.Cards, nil
}

// scryfallCard is the slice of the Scryfall card schema this service reads.
type scryfallCard struct {
	Name      string   `json:"name"`
	TypeLine  string   `json:"type_line"`
	ManaCost  string   `json:"mana_cost"`
	CMC       float64  `json:"cmc"`
	OracleTxt string   `json:"oracle_text"`
	Power     string   `json:"power"`
	Toughness string   `json:"toughness"`
	Colors    []string `json:"colors"`
	ImageURIs struct {
		Normal string `json:"normal"`
	} `json:"image_uris"`
	CardFaces []struct {
		ImageURIs struct {
			Normal string `json:"normal"`
		} `json:"image_uris"`
	} `json:"card_faces"`
}

func (sc scryfallCard) image() string {
	if sc.ImageURIs.Normal != "" {
		return sc.ImageURIs.Normal
	}
	if len(sc.CardFaces) > 0 {
		return sc.CardFaces[0].ImageURIs.Normal
	}
	return ""
}

// instance mints one physical copy with its own id.
func (sc scryfallCard) instance() game.Card {
	return game.Card{
		ID:        uuid.NewString(),
		Name:      sc.Name,
		TypeLine:  sc.TypeLine,
		ManaCost:  sc.ManaCost,
		ManaValue: sc.CMC,
		Text:      sc.OracleTxt,
		Power:     sc.Power,
		Toughness: sc.Toughness,
		Colors:    sc.Colors,
		Image:     sc.image(),
	}
}

func placeholderCard(name string) scryfallCard {
	return scryfallCard{Name: name, TypeLine: "Unknown"}
}

// lookupCard fetches a card by exact name, serving from cache when fresh. A
// failed lookup returns a placeholder instead of an error so a single bad
// name never sinks a whole import.
func (s *Service) lookupCard(ctx context.Context, name string) scryfallCard {
	key := "card:" + strings.ToLower(name)
	if card, ok := s.cached(key); ok {
		return card
	}

	lookup := fmt.Sprintf("%s/cards/named?exact=%s", s.scryfallBaseURL, url.QueryEscape(name))
	body, err := s.makeRequest(ctx, lookup)
	if err != nil {
		s.log.Warn("card lookup failed", "name", name, "error", err)
		return placeholderCard(name)
	}

	var card scryfallCard
	if err := json.Unmarshal(body, &card); err != nil {
		s.log.Warn("card lookup returned bad payload", "name", name, "error", err)
		return placeholderCard(name)
	}

	s.store(key, card)
	return card
}

// CardImage returns an image URL for a card, looked up fuzzily so slightly
// mangled names still resolve. Empty string means no image is available.
func (s *Service) CardImage(ctx context.Context, name string) (string, error) {
	key := "image:" + strings.ToLower(name)
	if card, ok := s.cached(key); ok {
		return card.image(), nil
	}

	lookup := fmt.Sprintf("%s/cards/named?fuzzy=%s", s.scryfallBaseURL, url.QueryEscape(name))
	body, err := s.makeRequest(ctx, lookup)
	if err != nil {
		return "", err
	}

	var card scryfallCard
	if err := json.Unmarshal(body, &card); err != nil {
		return "", err
	}

	s.store(key, card)
	return card.image(), nil
}

func (s *Service) cached(key string) (scryfallCard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.cache[key]
	if !ok || time.Since(entry.fetched) > s.cacheTTL {
		return scryfallCard{}, false
	}
	return entry.card, true
}

func (s *Service) store(key string, card scryfallCard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = cacheEntry{card: card, fetched: time.Now()}
}

// reserveSlot spaces upstream requests at least requestDelay apart.
func (s *Service) reserveSlot() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	wait := s.requestDelay - now.Sub(s.lastRequest)
	if wait < 0 {
		wait = 0
	}
	s.lastRequest = now.Add(wait)
	return wait
}

func (s *Service) makeRequest(ctx context.Context, rawURL string) ([]byte, error) {
	if wait := s.reserveSlot(); wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

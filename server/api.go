// api.go - REST endpoints for deck import and card lookup
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"cardtable/deckimport"
	"cardtable/game"
)

const previewCount = 20

// APIHandler serves the deck-import and card-image HTTP API.
type APIHandler struct {
	importer *deckimport.Service
	validate *validator.Validate
	log      *slog.Logger
}

func NewAPIHandler(importer *deckimport.Service, log *slog.Logger) *APIHandler {
	return &APIHandler{
		importer: importer,
		validate: validator.New(),
		log:      log.With(slog.String("component", "api")),
	}
}

// Routes mounts the API on a chi router.
func (h *APIHandler) Routes(r chi.Router) {
	r.Post("/deck/import", h.ImportDeck)
	r.Post("/deck/preview", h.PreviewDeck)
	r.Get("/deck/bot", h.BotDeck)
	r.Get("/card/{name}", h.CardImage)
	r.Get("/card-image-placeholder", h.CardImagePlaceholder)
}

type importRequest struct {
	DeckText string `json:"deckText" validate:"required_without=DeckURL"`
	DeckURL  string `json:"deckUrl"  validate:"required_without=DeckText,omitempty,url"`
}

func (h *APIHandler) decodeImportRequest(w http.ResponseWriter, r *http.Request) (*importRequest, bool) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid request body"})
		return nil, false
	}
	if err := h.validate.Struct(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "deckText or a valid deckUrl is required"})
		return nil, false
	}
	return &req, true
}

// ImportDeck resolves a full decklist and returns the cards with validation
// and analysis results.
func (h *APIHandler) ImportDeck(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeImportRequest(w, r)
	if !ok {
		return
	}

	deck, err := h.importer.Import(r.Context(), deckimport.Source{Text: req.DeckText, URL: req.DeckURL})
	if err != nil {
		h.log.Error("deck import failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": err.Error()})
		return
	}
	if len(deck.Cards) == 0 {
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "no cards found in the imported deck",
			"cards":   []game.Card{},
		})
		return
	}

	h.log.Info("deck imported", "cards", len(deck.Cards), "sideboard", len(deck.Sideboard))
	respondJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"message":          fmt.Sprintf("imported %d cards", len(deck.Cards)),
		"cards":            deck.Cards,
		"sideboard":        deck.Sideboard,
		"totalCards":       len(deck.Cards),
		"warnings":         deck.Warnings,
		"validationErrors": deck.Errors,
	})
}

// PreviewDeck resolves a decklist and returns only the first few cards.
func (h *APIHandler) PreviewDeck(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeImportRequest(w, r)
	if !ok {
		return
	}

	deck, err := h.importer.Import(r.Context(), deckimport.Source{Text: req.DeckText, URL: req.DeckURL})
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": err.Error()})
		return
	}

	preview := deck.Cards
	if len(preview) > previewCount {
		preview = preview[:previewCount]
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"previewCount": previewCount,
		"cards":        preview,
		"totalCards":   len(deck.Cards),
	})
}

// BotDeck imports the static bot list and splits it into a 99-card library
// plus its commander.
func (h *APIHandler) BotDeck(w http.ResponseWriter, r *http.Request) {
	deck, err := h.importer.Import(r.Context(), deckimport.Source{Text: botDeckText})
	if err != nil || len(deck.Cards) == 0 {
		h.log.Error("bot deck build failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "failed to build bot deck"})
		return
	}

	cards := append([]game.Card(nil), deck.Cards...)

	// The commander is listed last; find it by name with a fallback to the
	// final card.
	commanderIdx := len(cards) - 1
	for i, c := range cards {
		lower := strings.ToLower(c.Name)
		if strings.Contains(lower, "slimefoot") && strings.Contains(lower, "squee") {
			commanderIdx = i
			break
		}
	}
	commander := cards[commanderIdx]
	library := append(cards[:commanderIdx], cards[commanderIdx+1:]...)

	// Keep the library at exactly 99 so the client renders a legal commander
	// deck even when some names failed to resolve.
	if len(library) > 99 {
		library = library[:99]
	}
	for len(library) > 0 && len(library) < 99 {
		library = append(library, library[len(library)%len(library)])
	}

	rand.Shuffle(len(library), func(i, j int) {
		library[i], library[j] = library[j], library[i]
	})

	respondJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"source":     "bot-static",
		"totalCards": len(library),
		"library":    library,
		"commander":  commander,
	})
}

// CardImage looks up a card image by name, redirecting to the image unless
// the client asks for JSON. Unresolvable names get the SVG placeholder.
func (h *APIHandler) CardImage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	acceptsJSON := strings.Contains(r.Header.Get("Accept"), "application/json")

	imageURL, err := h.importer.CardImage(r.Context(), name)
	if err != nil || imageURL == "" {
		placeholder := "/api/card-image-placeholder?name=" + name
		if acceptsJSON {
			respondJSON(w, http.StatusOK, map[string]any{"name": name, "image": placeholder})
			return
		}
		http.Redirect(w, r, placeholder, http.StatusFound)
		return
	}

	if acceptsJSON {
		respondJSON(w, http.StatusOK, map[string]any{"name": name, "image": imageURL})
		return
	}
	http.Redirect(w, r, imageURL, http.StatusFound)
}

// CardImagePlaceholder renders a simple SVG card back with the card name.
func (h *APIHandler) CardImagePlaceholder(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "Unknown"
	}
	if len(name) > 24 {
		name = name[:24]
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	fmt.Fprintf(w, `<svg width="300" height="420" xmlns="http://www.w3.org/2000/svg">
  <rect width="100%%" height="100%%" fill="#111" stroke="#444" stroke-width="3"/>
  <text x="50%%" y="10%%" dominant-baseline="middle" text-anchor="middle" fill="#fff" font-family="Arial" font-size="20" font-weight="bold">%s</text>
  <text x="50%%" y="95%%" text-anchor="middle" fill="#666" font-family="Arial" font-size="12">Image not available</text>
</svg>`, htmlEscape(name))
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload) //nolint:errcheck // response already committed
}

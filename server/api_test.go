package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardtable/deckimport"
)

// fakeScryfall resolves any requested name into a minimal card so API tests
// run against a real importer without the network.
func fakeScryfall(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("exact")
		if name == "" {
			name = r.URL.Query().Get("fuzzy")
		}
		if strings.Contains(strings.ToLower(name), "missing") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprintf(w, `{"name":%q,"type_line":"Creature — Test","cmc":2,"image_uris":{"normal":"https://img.example/%s.jpg"}}`,
			name, strings.ReplaceAll(strings.ToLower(name), " ", "-"))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func newTestAPI(t *testing.T) *chi.Mux {
	t.Helper()
	scry := fakeScryfall(t)
	importer := deckimport.NewService(deckimport.Config{
		ScryfallBaseURL: scry.URL,
		RequestDelay:    time.Millisecond,
	})
	api := NewAPIHandler(importer, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := chi.NewRouter()
	r.Route("/api", api.Routes)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImportDeckEndpoint(t *testing.T) {
	r := newTestAPI(t)

	w := doRequest(t, r, http.MethodPost, "/api/deck/import", `{"deckText":"2 Alpha Strike\n1 Beta Blocker"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success    bool              `json:"success"`
		Cards      []json.RawMessage `json:"cards"`
		TotalCards int               `json:"totalCards"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.TotalCards)
	assert.Len(t, resp.Cards, 3)
}

func TestImportDeckEndpointRejectsBadRequests(t *testing.T) {
	r := newTestAPI(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"deckText": `},
		{"neither text nor url", `{}`},
		{"url not a url", `{"deckUrl":"not a url"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodPost, "/api/deck/import", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestImportDeckEndpointEmptyDeck(t *testing.T) {
	r := newTestAPI(t)

	w := doRequest(t, r, http.MethodPost, "/api/deck/import", `{"deckText":"// nothing but comments"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no cards found")
}

func TestPreviewDeckEndpointTruncates(t *testing.T) {
	r := newTestAPI(t)

	var list strings.Builder
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&list, "1 Card Number %d\\n", i)
	}
	w := doRequest(t, r, http.MethodPost, "/api/deck/preview", fmt.Sprintf(`{"deckText":"%s"}`, list.String()), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success    bool              `json:"success"`
		Cards      []json.RawMessage `json:"cards"`
		TotalCards int               `json:"totalCards"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 30, resp.TotalCards)
	assert.Len(t, resp.Cards, previewCount)
}

func TestBotDeckEndpoint(t *testing.T) {
	r := newTestAPI(t)

	w := doRequest(t, r, http.MethodGet, "/api/deck/bot", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success   bool `json:"success"`
		Commander struct {
			Name string `json:"name"`
		} `json:"commander"`
		Library    []json.RawMessage `json:"library"`
		TotalCards int               `json:"totalCards"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Slimefoot and Squee", resp.Commander.Name)
	assert.Len(t, resp.Library, 99)
	assert.Equal(t, 99, resp.TotalCards)
}

func TestCardImageEndpoint(t *testing.T) {
	r := newTestAPI(t)

	t.Run("redirects to the image", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/card/Test%20Card", "", nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://img.example/test-card.jpg", w.Header().Get("Location"))
	})

	t.Run("returns json when asked", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/card/Test%20Card", "", map[string]string{"Accept": "application/json"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "https://img.example/test-card.jpg")
	})

	t.Run("falls back to the placeholder", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/card/Missing%20Card", "", nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Contains(t, w.Header().Get("Location"), "/api/card-image-placeholder")
	})
}

func TestCardImagePlaceholder(t *testing.T) {
	r := newTestAPI(t)

	w := doRequest(t, r, http.MethodGet, "/api/card-image-placeholder?name=Forest", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Forest")

	w = doRequest(t, r, http.MethodGet, "/api/card-image-placeholder?name=%3Cscript%3E", "", nil)
	assert.Contains(t, w.Body.String(), "&lt;script&gt;")
	assert.NotContains(t, w.Body.String(), "<script>")
}

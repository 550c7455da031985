package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkurilov/flashdeck/internal/config"
	"github.com/dkurilov/flashdeck/internal/logger"
	"github.com/dkurilov/flashdeck/models"
)

func newTestClient(t *testing.T, handler http.Handler) DeckClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logger.Nop()
	client, err := NewHTTPDeckClient(config.Adapter{
		ServerURL:      srv.URL,
		RequestTimeout: 5 * time.Second,
	}, log)
	require.NoError(t, err)

	return client
}

// ─── url normalisation ───────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host gets http scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", raw: "http://example.com/", want: "http://example.com"},
		{name: "https kept", raw: "https://api.example.com", want: "https://api.example.com"},
		{name: "empty rejected", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ─── requests ────────────────────────────────────────────────────────────────

func TestHTTPDeckClient_GetPublicDecks(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/decks/public", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"d-1","userId":"system","title":"Capitals","cards":[],"isPublic":true,"createdAt":1700000000000,"lastModified":1700000000000}]`))
	}))

	decks, err := client.GetPublicDecks(context.Background())
	require.NoError(t, err)

	require.Len(t, decks, 1)
	assert.Equal(t, "d-1", decks[0].ID)
	assert.True(t, decks[0].IsPublic)
}

func TestHTTPDeckClient_GetUserDecksSendsBearerToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	client.SetToken("  test-token  ")

	decks, err := client.GetUserDecks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, decks)
}

func TestHTTPDeckClient_GetUserDecksUnauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.ErrorResponse{Message: "token expired"})
	}))

	_, err := client.GetUserDecks(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "token expired")
}

func TestHTTPDeckClient_CreateDeck(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/decks/create", r.URL.Path)

		var req models.CreateDeckRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Spanish verbs", req.Title)
		assert.True(t, req.IsPublic)

		json.NewEncoder(w).Encode(models.Deck{
			ID: "srv-1", UserID: "u-1", Title: req.Title, IsPublic: req.IsPublic,
			CreatedAt: 1_700_000_000_000, LastModified: 1_700_000_000_000,
		})
	}))
	client.SetToken("tok")

	deck, err := client.CreateDeck(context.Background(), "Spanish verbs", true)
	require.NoError(t, err)
	assert.Equal(t, "srv-1", deck.ID)
}

func TestHTTPDeckClient_SyncDeckConflict(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(models.ErrorResponse{Message: "deck was modified by another request"})
	}))
	client.SetToken("tok")

	_, err := client.SyncDeck(context.Background(), models.Deck{ID: "d-1", Title: "stale"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestHTTPDeckClient_SyncDeckReplacesLocalID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var deck models.Deck
		require.NoError(t, json.NewDecoder(r.Body).Decode(&deck))
		assert.Equal(t, "local-abc", deck.ID)

		deck.ID = "srv-abc"
		deck.UserID = "u-1"
		json.NewEncoder(w).Encode(deck)
	}))
	client.SetToken("tok")

	got, err := client.SyncDeck(context.Background(), models.Deck{
		ID: "local-abc", Title: "Chemistry", CreatedAt: 1, LastModified: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "srv-abc", got.ID)
}

func TestHTTPDeckClient_GetDeckNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.ErrorResponse{Message: "deck was not found"})
	}))

	_, err := client.GetDeck(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/dkurilov/flashdeck/internal/config"
	"github.com/dkurilov/flashdeck/internal/logger"
	"github.com/dkurilov/flashdeck/models"
)

type httpDeckClient struct {
	client *resty.Client
	token  string

	logger *logger.Logger
}

// NewHTTPDeckClient constructs an HTTP/REST implementation of [DeckClient].
// It normalises and validates the base URL from cfg.ServerURL and bounds
// every request with cfg.RequestTimeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPDeckClient(cfg config.Adapter, logger *logger.Logger) (DeckClient, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpDeckClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [DeckClient]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpDeckClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [DeckClient].
func (h *httpDeckClient) Token() string {
	return h.token
}

// GetPublicDecks implements [DeckClient]. It GETs /decks/public and decodes
// the response into a slice of decks.
func (h *httpDeckClient) GetPublicDecks(ctx context.Context) ([]models.Deck, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/decks/public")
	if err != nil {
		return nil, fmt.Errorf("get public decks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeDeckList(resp.Body())
}

// GetUserDecks implements [DeckClient]. It GETs /decks/user-decks with the
// stored bearer token.
func (h *httpDeckClient) GetUserDecks(ctx context.Context) ([]models.Deck, error) {
	resp, err := h.authedRequest(ctx).Get("/decks/user-decks")
	if err != nil {
		return nil, fmt.Errorf("get user decks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeDeckList(resp.Body())
}

// GetDeck implements [DeckClient]. It GETs /decks/{id}.
func (h *httpDeckClient) GetDeck(ctx context.Context, id string) (models.Deck, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Get("/decks/{id}")
	if err != nil {
		return models.Deck{}, fmt.Errorf("get deck request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Deck{}, err
	}

	return models.DecodeDeck(resp.Body())
}

// CreateDeck implements [DeckClient]. It POSTs the title and visibility to
// /decks/create and returns the server-minted deck. Requires a valid
// bearer token.
func (h *httpDeckClient) CreateDeck(ctx context.Context, title string, isPublic bool) (models.Deck, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateDeckRequest{Title: title, IsPublic: isPublic}).
		Post("/decks/create")
	if err != nil {
		return models.Deck{}, fmt.Errorf("create deck request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Deck{}, err
	}

	return models.DecodeDeck(resp.Body())
}

// SyncDeck implements [DeckClient]. It POSTs one deck to /decks/sync and
// returns the record as the server stored it. Requires a valid bearer
// token. Returns [ErrConflict] (wrapped) on HTTP 409.
func (h *httpDeckClient) SyncDeck(ctx context.Context, deck models.Deck) (models.Deck, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(deck).
		Post("/decks/sync")
	if err != nil {
		return models.Deck{}, fmt.Errorf("sync deck request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Deck{}, err
	}

	return models.DecodeDeck(resp.Body())
}

func (h *httpDeckClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func decodeDeckList(body []byte) ([]models.Deck, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode deck list: %w", err)
	}

	decks := make([]models.Deck, 0, len(raw))
	for _, item := range raw {
		deck, err := models.DecodeDeck(item)
		if err != nil {
			return nil, fmt.Errorf("decode deck list: %w", err)
		}
		decks = append(decks, deck)
	}

	return decks, nil
}

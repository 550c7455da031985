// Package adapter holds the client-side view of the flashdeck server REST
// API. The reconciler and the client app talk to the server exclusively
// through [DeckClient] so that tests can substitute a mock.
package adapter

import (
	"context"

	"github.com/dkurilov/flashdeck/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/deck_client_mock.go -package=mock

// DeckClient is the outbound contract to the flashdeck server.
type DeckClient interface {
	// GetPublicDecks fetches all public decks. No token required.
	GetPublicDecks(ctx context.Context) ([]models.Deck, error)

	// GetUserDecks fetches the decks owned by the token's user.
	GetUserDecks(ctx context.Context) ([]models.Deck, error)

	// GetDeck fetches a single deck by its server id. No token required;
	// the server decides visibility.
	GetDeck(ctx context.Context, id string) (models.Deck, error)

	// CreateDeck asks the server to mint a new empty deck and returns the
	// stored record with its server-assigned id and timestamps.
	CreateDeck(ctx context.Context, title string, isPublic bool) (models.Deck, error)

	// SyncDeck pushes one deck for reconciliation and returns the record
	// as the server stored it. Decks carrying a provisional local id come
	// back with a fresh server id.
	SyncDeck(ctx context.Context, deck models.Deck) (models.Deck, error)

	// SetToken installs the bearer token for subsequent authenticated
	// calls. An empty token clears authentication.
	SetToken(token string)

	// Token returns the currently installed bearer token.
	Token() string
}

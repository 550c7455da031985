// Package service holds the business rules on both ends of the sync
// protocol: the server-side deck service (ownership, validation, id
// minting, last-writer-wins routing) and the client-side reconciler that
// drains the local deck store after sign-in.
package service

import (
	"context"

	"github.com/dkurilov/flashdeck/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DeckService is the server-side contract consumed by the HTTP handlers.
type DeckService interface {
	// GetPublicDecks returns all public decks.
	GetPublicDecks(ctx context.Context) ([]models.Deck, error)

	// GetUserDecks returns the decks owned by userID.
	GetUserDecks(ctx context.Context, userID string) ([]models.Deck, error)

	// GetDeck returns one deck by id.
	GetDeck(ctx context.Context, id string) (models.Deck, error)

	// CreateDeck mints a new empty deck owned by userID with a
	// server-assigned id and timestamps.
	CreateDeck(ctx context.Context, userID, title string, isPublic bool) (models.Deck, error)

	// SyncDeck reconciles one client-pushed deck into the server store and
	// returns the record as stored. Ownership always comes from userID,
	// never from the deck payload.
	SyncDeck(ctx context.Context, userID string, deck models.Deck) (models.Deck, error)
}

// Package store implements the server-side persistence layer: a PostgreSQL
// repository of deck records with the conditional-write conflict check the
// sync protocol depends on.
package store

import (
	"context"

	"github.com/dkurilov/flashdeck/models"
)

// DeckRepository is the contract the deck service consumes.
type DeckRepository interface {
	// GetPublicDecks returns every deck with is_public = true, regardless
	// of owner, ordered by created_at.
	GetPublicDecks(ctx context.Context) ([]models.Deck, error)

	// GetUserDecks returns every deck owned by userID.
	GetUserDecks(ctx context.Context, userID string) ([]models.Deck, error)

	// GetDeck returns the deck with the given id or ErrDeckNotFound.
	GetDeck(ctx context.Context, id string) (models.Deck, error)

	// InsertDeck creates a new deck record. Returns ErrDuplicateDeck when
	// the id is already present.
	InsertDeck(ctx context.Context, deck models.Deck) error

	// UpsertDeck performs the conditional last-writer-wins write: the row
	// is created when absent, replaced when deck.LastModified is greater
	// than or equal to the stored last_modified, and left untouched
	// otherwise. Returns ErrDeckConflict for a stale write and
	// ErrForeignDeck when the stored row belongs to a different user.
	UpsertDeck(ctx context.Context, deck models.Deck) error
}

// Storages bundles the repositories handed to the service layer.
type Storages struct {
	Decks DeckRepository
}

func NewStorages(db *DB) *Storages {
	return &Storages{
		Decks: NewDeckRepository(db),
	}
}

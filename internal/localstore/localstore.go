// Package localstore implements the on-device deck store: the durable home
// of decks created while signed out, and the queue the sync reconciler
// drains on sign-in. Two backends exist, a single JSON document and a
// SQLite database, with identical semantics: every mutating call persists
// the full updated collection synchronously before returning.
package localstore

import (
	"context"
	"errors"

	"github.com/dkurilov/flashdeck/internal/config"
	"github.com/dkurilov/flashdeck/internal/logger"
	"github.com/dkurilov/flashdeck/models"
)

//go:generate mockgen -source=localstore.go -destination=../mock/deck_store_mock.go -package=mock

var (
	// ErrDuplicateID is returned by Create when the deck id is already
	// present in the store.
	ErrDuplicateID = errors.New("deck id already exists in local store")

	// ErrDeckNotFound is returned by Update when no stored deck matches
	// the given id.
	ErrDeckNotFound = errors.New("deck was not found in local store")
)

// DeckStore is the Local Deck Store contract. The store holds primary
// custody of its decks: only the reconciler and direct user edits may
// mutate it, and a deck leaves the store exactly once, on successful sync.
type DeckStore interface {
	// List returns all stored decks. Order is unspecified but stable
	// across calls absent mutation.
	List(ctx context.Context) ([]models.Deck, error)

	// Create appends a deck; fails with ErrDuplicateID if the id is taken.
	Create(ctx context.Context, deck models.Deck) error

	// Update replaces the stored deck with a matching id; fails with
	// ErrDeckNotFound if absent.
	Update(ctx context.Context, deck models.Deck) error

	// Delete removes the deck with the given id. Idempotent: deleting an
	// absent id is not an error.
	Delete(ctx context.Context, id string) error
}

// New selects a backend from the client configuration.
func New(cfg config.Local, log *logger.Logger) (DeckStore, error) {
	if cfg.Backend == "sqlite" {
		db, err := OpenSQLite(cfg.Path, log)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(db), nil
	}

	return NewFileStore(cfg.Path)
}

// markLocal restamps the derived flags on load: everything in the local
// store is by definition local and unsynced.
func markLocal(deck *models.Deck) {
	deck.Normalize()
	deck.IsLocal = true
	if deck.SyncStatus == "" || deck.SyncStatus == models.StatusSynced {
		deck.SyncStatus = models.StatusLocal
	}
}

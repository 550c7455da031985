// Package client holds the application-side state container: the single
// struct owning the deck collections, the current selection, and the sync
// machinery. It is constructed at the application root and passed by
// handle to UI components, so the reconciler stays testable without a UI
// runtime.
package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dkurilov/flashdeck/internal/adapter"
	"github.com/dkurilov/flashdeck/internal/localstore"
	"github.com/dkurilov/flashdeck/internal/logger"
	"github.com/dkurilov/flashdeck/internal/service"
	"github.com/dkurilov/flashdeck/internal/utils"
	"github.com/dkurilov/flashdeck/models"
)

// ErrDeckNotFound is returned by deck operations addressing an id absent
// from the aggregate view.
var ErrDeckNotFound = errors.New("deck was not found")

// App owns the client-side deck state. All mutating methods persist local
// decks synchronously through the local store before returning.
type App struct {
	client     adapter.DeckClient
	local      localstore.DeckStore
	reconciler *service.Reconciler
	idGen      *utils.LocalIDGenerator

	// now is epoch milliseconds; swapped in tests
	now func() int64

	logger *logger.Logger

	mu          sync.Mutex
	userDecks   []models.Deck
	publicDecks []models.Deck
	localDecks  []models.Deck
	selectedID  string
}

func NewApp(client adapter.DeckClient, local localstore.DeckStore, logger *logger.Logger) *App {
	return &App{
		client:     client,
		local:      local,
		reconciler: service.NewReconciler(client, local, logger),
		idGen:      utils.NewLocalIDGenerator(),
		now:        func() int64 { return time.Now().UnixMilli() },
		logger:     logger,
	}
}

// SignedIn reports whether a bearer token is installed.
func (a *App) SignedIn() bool {
	return a.client.Token() != ""
}

// SignIn installs the bearer token, drains the local deck store into the
// server, and refreshes all collections. The sync report is returned so
// the UI can notify per deck; a partial sync is not an error.
func (a *App) SignIn(ctx context.Context, token string) (models.SyncReport, error) {
	a.client.SetToken(token)

	report, err := a.reconciler.Sync(ctx)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("sign-in sync: %w", err)
	}

	if err := a.Refresh(ctx); err != nil {
		return report, err
	}

	return report, nil
}

// SignOut clears the token and the user's server decks. Local decks stay.
func (a *App) SignOut() {
	a.client.SetToken("")

	a.mu.Lock()
	defer a.mu.Unlock()
	a.userDecks = nil
}

// Sync pushes the not-yet-synced decks to the server and refreshes the
// collections. It is invoked by an explicit user action; failed decks stay
// local until the user retries.
func (a *App) Sync(ctx context.Context) (models.SyncReport, error) {
	report, err := a.reconciler.Sync(ctx)
	if err != nil {
		return models.SyncReport{}, err
	}

	if err := a.Refresh(ctx); err != nil {
		return report, err
	}

	return report, nil
}

// Refresh reloads all three deck collections. A 401 on the user decks is
// treated as "signed out, no decks" rather than a hard failure.
func (a *App) Refresh(ctx context.Context) error {
	publicDecks, err := a.client.GetPublicDecks(ctx)
	if err != nil {
		return fmt.Errorf("loading public decks: %w", err)
	}

	var userDecks []models.Deck
	if a.SignedIn() {
		userDecks, err = a.client.GetUserDecks(ctx)
		if errors.Is(err, adapter.ErrUnauthorized) {
			a.logger.Warn().Str("func", "Refresh").Msg("token rejected, treating as signed out")
			userDecks = nil
		} else if err != nil {
			return fmt.Errorf("loading user decks: %w", err)
		}
	}

	localDecks, err := a.local.List(ctx)
	if err != nil {
		return fmt.Errorf("loading local decks: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.publicDecks = publicDecks
	a.userDecks = userDecks
	a.localDecks = localDecks

	return nil
}

// Decks returns the merged, deduplicated collection the UI renders.
func (a *App) Decks() []models.Deck {
	a.mu.Lock()
	defer a.mu.Unlock()

	return service.AggregateDecks(a.userDecks, a.publicDecks, a.localDecks)
}

// DecksByCategory returns the merged collection narrowed to one category.
func (a *App) DecksByCategory(category models.Category) []models.Deck {
	return service.FilterByCategory(a.Decks(), category)
}

// Select remembers the deck the UI is focused on.
func (a *App) Select(id string) error {
	if _, err := a.deckByID(id); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.selectedID = id

	return nil
}

// Selected returns the focused deck, refreshed from the current
// collections.
func (a *App) Selected() (models.Deck, bool) {
	a.mu.Lock()
	id := a.selectedID
	a.mu.Unlock()

	if id == "" {
		return models.Deck{}, false
	}

	deck, err := a.deckByID(id)
	if err != nil {
		return models.Deck{}, false
	}

	return deck, true
}

// CreateDeck creates a deck. Signed in, the server mints it; signed out,
// it lands in the local store under a provisional id and waits for the
// next sync.
func (a *App) CreateDeck(ctx context.Context, title string, isPublic bool) (models.Deck, error) {
	if a.SignedIn() {
		deck, err := a.client.CreateDeck(ctx, title, isPublic)
		if err != nil {
			return models.Deck{}, fmt.Errorf("creating deck: %w", err)
		}

		a.mu.Lock()
		a.userDecks = append(a.userDecks, deck)
		a.mu.Unlock()

		return deck, nil
	}

	return a.createLocalDeck(ctx, title, isPublic)
}

func (a *App) createLocalDeck(ctx context.Context, title string, isPublic bool) (models.Deck, error) {
	now := a.now()
	deck := models.Deck{
		ID:           a.idGen.Generate(),
		Title:        title,
		Cards:        []models.Card{},
		IsPublic:     isPublic,
		CreatedAt:    now,
		LastModified: now,
		IsLocal:      true,
		SyncStatus:   models.StatusLocal,
	}
	if err := deck.Validate(); err != nil {
		return models.Deck{}, err
	}

	if err := a.local.Create(ctx, deck); err != nil {
		return models.Deck{}, fmt.Errorf("creating local deck: %w", err)
	}

	a.mu.Lock()
	a.localDecks = append(a.localDecks, deck)
	a.mu.Unlock()

	a.logger.Info().
		Str("func", "createLocalDeck").
		Str("local_id", deck.ID).
		Msg("deck created locally")

	return deck, nil
}

// AddCard appends a card to the deck with the given id.
func (a *App) AddCard(ctx context.Context, deckID, question, answer string) (models.Deck, error) {
	return a.mutateDeck(ctx, deckID, func(deck *models.Deck) {
		deck.AddCard(question, answer)
	})
}

// RemoveCard removes a card from the deck with the given id.
func (a *App) RemoveCard(ctx context.Context, deckID string, cardID int64) (models.Deck, error) {
	return a.mutateDeck(ctx, deckID, func(deck *models.Deck) {
		deck.RemoveCard(cardID)
	})
}

// RenameDeck changes the deck title.
func (a *App) RenameDeck(ctx context.Context, deckID, title string) (models.Deck, error) {
	return a.mutateDeck(ctx, deckID, func(deck *models.Deck) {
		deck.Rename(title)
	})
}

// mutateDeck applies fn to a copy of the addressed deck and persists the
// result: local decks through the local store, server decks through a
// sync push. The mutated copy replaces the cached entry only after the
// write succeeds.
func (a *App) mutateDeck(ctx context.Context, deckID string, fn func(*models.Deck)) (models.Deck, error) {
	deck, err := a.deckByID(deckID)
	if err != nil {
		return models.Deck{}, err
	}

	updated := deck.Clone()
	fn(&updated)
	if err := updated.Validate(); err != nil {
		return models.Deck{}, err
	}

	if updated.IsLocal {
		if err := a.local.Update(ctx, updated); err != nil {
			return models.Deck{}, fmt.Errorf("updating local deck: %w", err)
		}
		a.replaceCached(updated)
		return updated, nil
	}

	stored, err := a.client.SyncDeck(ctx, updated)
	if err != nil {
		return models.Deck{}, fmt.Errorf("pushing deck update: %w", err)
	}
	a.replaceCached(stored)

	return stored, nil
}

func (a *App) deckByID(id string) (models.Deck, error) {
	for _, deck := range a.Decks() {
		if deck.ID == id {
			return deck, nil
		}
	}
	return models.Deck{}, fmt.Errorf("%w: %s", ErrDeckNotFound, id)
}

func (a *App) replaceCached(deck models.Deck) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, group := range []*[]models.Deck{&a.userDecks, &a.publicDecks, &a.localDecks} {
		for i := range *group {
			if (*group)[i].ID == deck.ID {
				(*group)[i] = deck
				return
			}
		}
	}
}

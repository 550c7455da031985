package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dkurilov/flashdeck/internal/logger"
	"github.com/dkurilov/flashdeck/internal/store"
	"github.com/dkurilov/flashdeck/internal/utils"
	"github.com/dkurilov/flashdeck/models"
)

type deckService struct {
	repo  store.DeckRepository
	idGen utils.ServerIDGenerator

	// now is epoch milliseconds; swapped in tests
	now func() int64

	logger *logger.Logger
}

// NewDeckService constructs the server-side [DeckService] over the given
// repository.
func NewDeckService(repo store.DeckRepository, logger *logger.Logger) DeckService {
	return &deckService{
		repo:   repo,
		now:    func() int64 { return time.Now().UnixMilli() },
		logger: logger,
	}
}

func (s *deckService) GetPublicDecks(ctx context.Context) ([]models.Deck, error) {
	return s.repo.GetPublicDecks(ctx)
}

func (s *deckService) GetUserDecks(ctx context.Context, userID string) ([]models.Deck, error) {
	return s.repo.GetUserDecks(ctx, userID)
}

func (s *deckService) GetDeck(ctx context.Context, id string) (models.Deck, error) {
	return s.repo.GetDeck(ctx, id)
}

// CreateDeck implements [DeckService]. The deck starts empty; both
// timestamps carry the server clock.
func (s *deckService) CreateDeck(ctx context.Context, userID, title string, isPublic bool) (models.Deck, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Deck{}, fmt.Errorf("%w: %w", ErrValidation, models.ErrEmptyTitle)
	}

	now := s.now()
	deck := models.Deck{
		ID:           s.idGen.Generate(),
		UserID:       userID,
		Title:        title,
		Cards:        []models.Card{},
		IsPublic:     isPublic,
		CreatedAt:    now,
		LastModified: now,
		SyncStatus:   models.StatusSynced,
	}

	if err := s.repo.InsertDeck(ctx, deck); err != nil {
		return models.Deck{}, fmt.Errorf("create deck: %w", err)
	}

	s.logger.Info().
		Str("func", "CreateDeck").
		Str("deck_id", deck.ID).
		Str("user_id", userID).
		Msg("deck created")

	return deck, nil
}

// SyncDeck implements [DeckService]. Decks arriving with a provisional
// local id are inserted under a fresh server id; decks with a durable id
// go through the conditional last-writer-wins upsert. The client's
// lastModified is preserved: it is the ordering key of the whole protocol,
// so the server never restamps it.
func (s *deckService) SyncDeck(ctx context.Context, userID string, deck models.Deck) (models.Deck, error) {
	deck.Normalize()
	if deck.LastModified == 0 {
		deck.CreatedAt = s.now()
		deck.LastModified = deck.CreatedAt
	}
	if err := deck.Validate(); err != nil {
		return models.Deck{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	// ownership comes from the verified token, never from the payload
	deck.UserID = userID

	localID := deck.ID
	if deck.HasLocalID() {
		deck.ID = s.idGen.Generate()
		if err := s.repo.InsertDeck(ctx, deck); err != nil {
			return models.Deck{}, fmt.Errorf("sync deck: %w", err)
		}

		s.logger.Info().
			Str("func", "SyncDeck").
			Str("local_id", localID).
			Str("deck_id", deck.ID).
			Str("user_id", userID).
			Msg("local deck promoted to server deck")

		return s.stored(deck), nil
	}

	if err := s.repo.UpsertDeck(ctx, deck); err != nil {
		return models.Deck{}, fmt.Errorf("sync deck: %w", err)
	}

	s.logger.Info().
		Str("func", "SyncDeck").
		Str("deck_id", deck.ID).
		Str("user_id", userID).
		Int64("last_modified", deck.LastModified).
		Msg("deck upserted")

	return s.stored(deck), nil
}

// stored restamps the derived flags on the record handed back to the
// client.
func (s *deckService) stored(deck models.Deck) models.Deck {
	deck.IsLocal = false
	deck.SyncStatus = models.StatusSynced
	return deck
}

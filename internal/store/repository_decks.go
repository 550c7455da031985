package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dkurilov/flashdeck/internal/logger"
	"github.com/dkurilov/flashdeck/models"
)

// deckRepository is the PostgreSQL-backed implementation of
// [DeckRepository]. Cards are stored as a JSONB document inside the deck
// row; legacy card payloads are normalized when scanned.
type deckRepository struct {
	*DB
}

func NewDeckRepository(db *DB) DeckRepository {
	return &deckRepository{DB: db}
}

// GetPublicDecks implements [DeckRepository].
func (r *deckRepository) GetPublicDecks(ctx context.Context) ([]models.Deck, error) {
	return r.selectDecks(ctx, DeckFilter{OnlyPublic: true})
}

// GetUserDecks implements [DeckRepository].
func (r *deckRepository) GetUserDecks(ctx context.Context, userID string) ([]models.Deck, error) {
	return r.selectDecks(ctx, DeckFilter{UserID: userID})
}

// GetDeck implements [DeckRepository].
func (r *deckRepository) GetDeck(ctx context.Context, id string) (models.Deck, error) {
	decks, err := r.selectDecks(ctx, DeckFilter{ID: id})
	if err != nil {
		return models.Deck{}, err
	}
	if len(decks) == 0 {
		return models.Deck{}, ErrDeckNotFound
	}

	return decks[0], nil
}

// InsertDeck implements [DeckRepository].
func (r *deckRepository) InsertDeck(ctx context.Context, deck models.Deck) error {
	log := logger.FromContext(ctx)

	cards, err := encodeCards(deck.Cards)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, insertDeck,
		deck.ID,
		deck.UserID,
		deck.Title,
		cards,
		deck.NextCardID,
		deck.IsPublic,
		deck.CreatedAt,
		deck.LastModified,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateDeck, deck.ID)
		}
		log.Err(err).
			Str("func", "deckRepository.InsertDeck").
			Str("deck_id", deck.ID).
			Msg("failed to insert deck")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// UpsertDeck implements [DeckRepository]. The conditional write updates
// zero rows when the stored record is strictly newer or owned by someone
// else; a follow-up read decides which of the two happened.
func (r *deckRepository) UpsertDeck(ctx context.Context, deck models.Deck) error {
	log := logger.FromContext(ctx)

	cards, err := encodeCards(deck.Cards)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, upsertDeck,
		deck.ID,
		deck.UserID,
		deck.Title,
		cards,
		deck.NextCardID,
		deck.IsPublic,
		deck.CreatedAt,
		deck.LastModified,
	)
	if err != nil {
		log.Err(err).
			Str("func", "deckRepository.UpsertDeck").
			Str("deck_id", deck.ID).
			Msg("failed to upsert deck")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected > 0 {
		return nil
	}

	// Zero rows: the stored record refused the write. Tell conflict apart
	// from a cross-user write so the handler can answer 409 vs 403.
	stored, getErr := r.GetDeck(ctx, deck.ID)
	if getErr != nil {
		if errors.Is(getErr, ErrDeckNotFound) {
			// Row vanished between the two statements; treat as conflict
			// and let the client retry.
			return ErrDeckConflict
		}
		return getErr
	}
	if stored.UserID != deck.UserID {
		return ErrForeignDeck
	}

	return fmt.Errorf("%w: stored last_modified %d is newer than %d",
		ErrDeckConflict, stored.LastModified, deck.LastModified)
}

func (r *deckRepository) selectDecks(ctx context.Context, filter DeckFilter) ([]models.Deck, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDecksQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "deckRepository.selectDecks").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "deckRepository.selectDecks").
			Str("user_id", filter.UserID).
			Msg("failed to execute deck select")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	decks := make([]models.Deck, 0, 16)
	for rows.Next() {
		deck, scanErr := scanDeck(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "deckRepository.selectDecks").Msg("failed to scan deck row")
			return nil, scanErr
		}
		decks = append(decks, deck)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "deckRepository.selectDecks").Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return decks, nil
}

func scanDeck(rows *sql.Rows) (models.Deck, error) {
	var (
		deck  models.Deck
		cards []byte
	)

	err := rows.Scan(
		&deck.ID,
		&deck.UserID,
		&deck.Title,
		&cards,
		&deck.NextCardID,
		&deck.IsPublic,
		&deck.CreatedAt,
		&deck.LastModified,
	)
	if err != nil {
		return models.Deck{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if len(cards) > 0 {
		if err = json.Unmarshal(cards, &deck.Cards); err != nil {
			return models.Deck{}, fmt.Errorf("%w: cards payload: %w", ErrScanningRow, err)
		}
	}

	// Rows written by earlier schema revisions may miss the counter or
	// carry inverted timestamps.
	deck.Normalize()
	deck.SyncStatus = models.StatusSynced

	return deck, nil
}

func encodeCards(cards []models.Card) ([]byte, error) {
	if cards == nil {
		cards = []models.Card{}
	}

	payload, err := json.Marshal(cards)
	if err != nil {
		return nil, fmt.Errorf("%w: encode cards: %w", ErrBuildingSQLQuery, err)
	}
	return payload, nil
}

package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/dkurilov/flashdeck/internal/logger"
	"github.com/dkurilov/flashdeck/models"
)

const createLocalDecksTable = `
CREATE TABLE IF NOT EXISTS local_decks (
	id            TEXT PRIMARY KEY,
	title         TEXT NOT NULL,
	cards         TEXT NOT NULL DEFAULT '[]',
	next_card_id  INTEGER NOT NULL DEFAULT 0,
	is_public     INTEGER NOT NULL DEFAULT 0,
	created_at    INTEGER NOT NULL,
	last_modified INTEGER NOT NULL
);`

const (
	selectLocalDecks = `SELECT id, title, cards, next_card_id, is_public, created_at, last_modified
		FROM local_decks ORDER BY rowid;`
	insertLocalDeck = `INSERT INTO local_decks (id, title, cards, next_card_id, is_public, created_at, last_modified)
		VALUES (?, ?, ?, ?, ?, ?, ?);`
	updateLocalDeck = `UPDATE local_decks SET title = ?, cards = ?, next_card_id = ?, is_public = ?, last_modified = ?
		WHERE id = ?;`
	deleteLocalDeck = `DELETE FROM local_decks WHERE id = ?;`
)

// OpenSQLite opens the SQLite database at path and ensures the schema.
func OpenSQLite(path string, log *logger.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	if _, err := db.Exec(createLocalDecksTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating local_decks table: %w", err)
	}

	log.Info().Str("func", "OpenSQLite").Str("path", path).Msg("local sqlite store ready")

	return db, nil
}

// SQLiteStore persists the local deck collection in a SQLite database, one
// row per deck with the card list stored as JSON.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) List(ctx context.Context) ([]models.Deck, error) {
	rows, err := s.db.QueryContext(ctx, selectLocalDecks)
	if err != nil {
		return nil, fmt.Errorf("selecting local decks: %w", err)
	}
	defer rows.Close()

	var decks []models.Deck
	for rows.Next() {
		deck, err := scanLocalDeck(rows)
		if err != nil {
			return nil, err
		}
		decks = append(decks, deck)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating local decks: %w", err)
	}

	return decks, nil
}

func (s *SQLiteStore) Create(ctx context.Context, deck models.Deck) error {
	markLocal(&deck)

	cards, err := encodeLocalCards(deck.Cards)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, insertLocalDeck,
		deck.ID, deck.Title, cards, deck.NextCardID, deck.IsPublic, deck.CreatedAt, deck.LastModified)
	if isSQLiteConstraint(err) {
		return fmt.Errorf("%w: %s", ErrDuplicateID, deck.ID)
	}
	if err != nil {
		return fmt.Errorf("inserting local deck: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Update(ctx context.Context, deck models.Deck) error {
	markLocal(&deck)

	cards, err := encodeLocalCards(deck.Cards)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, updateLocalDeck,
		deck.Title, cards, deck.NextCardID, deck.IsPublic, deck.LastModified, deck.ID)
	if err != nil {
		return fmt.Errorf("updating local deck: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrDeckNotFound, deck.ID)
	}

	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, deleteLocalDeck, id); err != nil {
		return fmt.Errorf("deleting local deck: %w", err)
	}
	return nil
}

func scanLocalDeck(rows *sql.Rows) (models.Deck, error) {
	var (
		deck  models.Deck
		cards []byte
	)
	if err := rows.Scan(&deck.ID, &deck.Title, &cards, &deck.NextCardID,
		&deck.IsPublic, &deck.CreatedAt, &deck.LastModified); err != nil {
		return models.Deck{}, fmt.Errorf("scanning local deck row: %w", err)
	}

	if len(cards) > 0 {
		if err := json.Unmarshal(cards, &deck.Cards); err != nil {
			return models.Deck{}, fmt.Errorf("decoding cards of local deck %s: %w", deck.ID, err)
		}
	}

	markLocal(&deck)

	return deck, nil
}

func encodeLocalCards(cards []models.Card) ([]byte, error) {
	if cards == nil {
		cards = []models.Card{}
	}
	data, err := json.Marshal(cards)
	if err != nil {
		return nil, fmt.Errorf("encoding cards: %w", err)
	}
	return data, nil
}

func isSQLiteConstraint(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const insertDeck = `
	INSERT INTO decks (
		id,
		user_id,
		title,
		cards,
		next_card_id,
		is_public,
		created_at,
		last_modified
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

// upsertDeck is the conditional last-writer-wins write. The WHERE clause on
// the conflict branch implements the acceptance rule: an existing row is
// replaced only when it belongs to the same user and its last_modified is
// not newer than the incoming value. A stale or foreign write updates zero
// rows, which the repository turns into ErrDeckConflict / ErrForeignDeck.
const upsertDeck = `
	INSERT INTO decks (
		id,
		user_id,
		title,
		cards,
		next_card_id,
		is_public,
		created_at,
		last_modified
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE SET
		title         = EXCLUDED.title,
		cards         = EXCLUDED.cards,
		next_card_id  = EXCLUDED.next_card_id,
		is_public     = EXCLUDED.is_public,
		last_modified = EXCLUDED.last_modified
	WHERE decks.user_id = EXCLUDED.user_id
	  AND decks.last_modified <= EXCLUDED.last_modified;`

// DeckFilter narrows a deck SELECT. Zero-valued fields are skipped.
type DeckFilter struct {
	ID         string
	UserID     string
	OnlyPublic bool
}

// buildSelectDecksQuery assembles a filtered SELECT over the decks table
// with Postgres ($N) placeholders.
func buildSelectDecksQuery(filter DeckFilter) (string, []any, error) {
	builder := sq.Select(
		"id",
		"user_id",
		"title",
		"cards",
		"next_card_id",
		"is_public",
		"created_at",
		"last_modified",
	).
		From("decks").
		PlaceholderFormat(sq.Dollar)

	if filter.ID != "" {
		builder = builder.Where(sq.Eq{"id": filter.ID})
	}
	if filter.UserID != "" {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.OnlyPublic {
		builder = builder.Where(sq.Eq{"is_public": true})
	}

	query, args, err := builder.OrderBy("created_at ASC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

package localstore

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkurilov/flashdeck/models"
)

func newTestSQLiteStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSQLiteStore(db), mock
}

// ─── sqlite backend ──────────────────────────────────────────────────────────

func TestSQLiteStore_List(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	rows := sqlmock.NewRows([]string{
		"id", "title", "cards", "next_card_id", "is_public", "created_at", "last_modified",
	}).AddRow(
		"local-1", "Capitals",
		`[{"id":0,"question":"France","answer":"Paris"}]`,
		int64(1), false, int64(1_700_000_000_000), int64(1_700_000_000_000),
	)
	mock.ExpectQuery(`SELECT id, title, cards`).WillReturnRows(rows)

	decks, err := s.List(context.Background())
	require.NoError(t, err)

	require.Len(t, decks, 1)
	assert.Equal(t, "local-1", decks[0].ID)
	assert.True(t, decks[0].IsLocal)
	assert.Equal(t, models.StatusLocal, decks[0].SyncStatus)
	require.Len(t, decks[0].Cards, 1)
	assert.Equal(t, "Paris", decks[0].Cards[0].Answer)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Create(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	deck := localDeck("local-1", "Capitals")
	deck.Cards = []models.Card{{ID: 0, Question: "France", Answer: "Paris"}}
	deck.NextCardID = 1

	mock.ExpectExec(`INSERT INTO local_decks`).
		WithArgs("local-1", "Capitals",
			[]byte(`[{"id":0,"question":"France","answer":"Paris"}]`),
			int64(1), false, int64(1_700_000_000_000), int64(1_700_000_000_000)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Create(context.Background(), deck))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_CreateDuplicateID(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectExec(`INSERT INTO local_decks`).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint})

	err := s.Create(context.Background(), localDeck("local-1", "dupe"))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestSQLiteStore_UpdateMissing(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectExec(`UPDATE local_decks SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Update(context.Background(), localDeck("local-absent", "x"))
	assert.ErrorIs(t, err, ErrDeckNotFound)
}

func TestSQLiteStore_DeleteIsIdempotent(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectExec(`DELETE FROM local_decks`).
		WithArgs("local-ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, s.Delete(context.Background(), "local-ghost"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

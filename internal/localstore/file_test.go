package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkurilov/flashdeck/models"
)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "decks.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	return s, path
}

func localDeck(id, title string) models.Deck {
	return models.Deck{
		ID:           id,
		Title:        title,
		CreatedAt:    1_700_000_000_000,
		LastModified: 1_700_000_000_000,
	}
}

// ─── file backend ────────────────────────────────────────────────────────────

func TestFileStore_EmptyOnFirstOpen(t *testing.T) {
	s, _ := newTestFileStore(t)

	decks, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, decks)
}

func TestFileStore_CreateAndReload(t *testing.T) {
	s, path := newTestFileStore(t)
	ctx := context.Background()

	deck := localDeck("local-1", "Spanish verbs")
	deck.Cards = []models.Card{{ID: 0, Question: "hablar", Answer: "to speak"}}
	deck.NextCardID = 1

	require.NoError(t, s.Create(ctx, deck))

	// a fresh store over the same file sees the persisted deck
	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	decks, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, decks, 1)
	assert.Equal(t, "local-1", decks[0].ID)
	assert.Equal(t, "Spanish verbs", decks[0].Title)
	assert.True(t, decks[0].IsLocal)
	assert.Equal(t, models.StatusLocal, decks[0].SyncStatus)
	require.Len(t, decks[0].Cards, 1)
	assert.Equal(t, "hablar", decks[0].Cards[0].Question)
}

func TestFileStore_CreateDuplicateID(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, localDeck("local-1", "first")))

	err := s.Create(ctx, localDeck("local-1", "second"))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestFileStore_Update(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, localDeck("local-1", "old title")))

	updated := localDeck("local-1", "new title")
	updated.LastModified = 1_700_000_001_000
	require.NoError(t, s.Update(ctx, updated))

	decks, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, decks, 1)
	assert.Equal(t, "new title", decks[0].Title)
	assert.Equal(t, int64(1_700_000_001_000), decks[0].LastModified)
}

func TestFileStore_UpdateMissing(t *testing.T) {
	s, _ := newTestFileStore(t)

	err := s.Update(context.Background(), localDeck("local-absent", "x"))
	assert.ErrorIs(t, err, ErrDeckNotFound)
}

func TestFileStore_DeleteIsIdempotent(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, localDeck("local-1", "doomed")))
	require.NoError(t, s.Delete(ctx, "local-1"))
	require.NoError(t, s.Delete(ctx, "local-1"))

	decks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, decks)
}

func TestFileStore_ListReturnsCopies(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	deck := localDeck("local-1", "original")
	deck.Cards = []models.Card{{ID: 0, Question: "q", Answer: "a"}}
	require.NoError(t, s.Create(ctx, deck))

	decks, err := s.List(ctx)
	require.NoError(t, err)
	decks[0].Title = "mutated"
	decks[0].Cards[0].Question = "mutated"

	again, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Title)
	assert.Equal(t, "q", again[0].Cards[0].Question)
}

func TestFileStore_NormalizesLegacyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decks.json")

	// an older revision stored isPublic as a string and omitted counters
	legacy := `{"flashcards_decks": [{
		"id": "local-old",
		"title": "legacy",
		"cards": [{"id": 0, "question": "q", "answer": "a"}],
		"isPublic": "false",
		"createdAt": 1700000000000,
		"lastModified": 1700000000000
	}]}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	s, err := NewFileStore(path)
	require.NoError(t, err)

	decks, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, decks, 1)
	assert.Equal(t, int64(1), decks[0].NextCardID)
	assert.True(t, decks[0].IsLocal)
}

func TestFileStore_RejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decks.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelectDecksQuery_NoFilter(t *testing.T) {
	query, args, err := buildSelectDecksQuery(DeckFilter{})
	require.NoError(t, err)

	assert.Empty(t, args)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select")
	assert.Contains(t, q, "from decks")
	assert.Contains(t, q, "order by created_at asc")
	assert.NotContains(t, q, "where")
}

func TestBuildSelectDecksQuery_ByUser(t *testing.T) {
	query, args, err := buildSelectDecksQuery(DeckFilter{UserID: "u1"})
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, "u1", args[0])

	// placeholder format should be $1 (Postgres)
	assert.Contains(t, query, "$1")
	assert.Contains(t, strings.ToLower(query), "user_id")
}

func TestBuildSelectDecksQuery_PublicOnly(t *testing.T) {
	query, args, err := buildSelectDecksQuery(DeckFilter{OnlyPublic: true})
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, true, args[0])
	assert.Contains(t, strings.ToLower(query), "is_public")
}

func TestBuildSelectDecksQuery_CombinedFilters(t *testing.T) {
	query, args, err := buildSelectDecksQuery(DeckFilter{ID: "d1", UserID: "u1"})
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.Contains(t, query, "$1")
	assert.Contains(t, query, "$2")

	q := strings.ToLower(query)
	assert.Contains(t, q, "id =")
	assert.Contains(t, q, "user_id =")
}

func TestBuildSelectDecksQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildSelectDecksQuery(DeckFilter{})
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, col := range []string{
		"id",
		"user_id",
		"title",
		"cards",
		"next_card_id",
		"is_public",
		"created_at",
		"last_modified",
	} {
		assert.Contains(t, q, col)
	}
}

func TestUpsertDeckQuery_ConditionalWriteClauses(t *testing.T) {
	q := strings.ToLower(upsertDeck)

	// the LWW acceptance rule must be part of the statement itself
	assert.Contains(t, q, "on conflict (id) do update")
	assert.Contains(t, q, "decks.last_modified <= excluded.last_modified")
	assert.Contains(t, q, "decks.user_id = excluded.user_id")
	// created_at is set once and never overwritten by the update branch
	assert.NotContains(t, q, "created_at = excluded.created_at")
}

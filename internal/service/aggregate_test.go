package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkurilov/flashdeck/models"
)

func TestAggregateDecks_Precedence(t *testing.T) {
	userDecks := []models.Deck{
		{ID: "d-1", UserID: "u-1", Title: "mine, private"},
	}
	publicDecks := []models.Deck{
		{ID: "d-1", UserID: "u-1", Title: "mine, as listed publicly", IsPublic: true},
		{ID: "d-2", UserID: "system", Title: "public", IsPublic: true},
	}
	localDecks := []models.Deck{
		{ID: "d-2", Title: "stale local copy of public deck", IsLocal: true},
		{ID: "local-3", Title: "unsynced", IsLocal: true},
	}

	out := AggregateDecks(userDecks, publicDecks, localDecks)

	require.Len(t, out, 3)
	assert.Equal(t, "mine, private", out[0].Title)
	assert.Equal(t, "public", out[1].Title)
	assert.Equal(t, "unsynced", out[2].Title)
}

func TestAggregateDecks_AllEmpty(t *testing.T) {
	assert.Empty(t, AggregateDecks(nil, nil, nil))
}

func TestFilterByCategory(t *testing.T) {
	decks := []models.Deck{
		{ID: "a", UserID: "u-1", Title: "private"},
		{ID: "b", UserID: "system", Title: "public", IsPublic: true},
		{ID: "local-c", Title: "local", IsLocal: true},
		{ID: "d", UserID: "u-1", Title: "shared", IsPublic: true},
	}

	// private bucket also carries local decks
	private := FilterByCategory(decks, models.CategoryPrivate)
	require.Len(t, private, 2)
	assert.Equal(t, "a", private[0].ID)
	assert.Equal(t, "local-c", private[1].ID)

	public := FilterByCategory(decks, models.CategoryPublic)
	require.Len(t, public, 2)

	local := FilterByCategory(decks, models.CategoryLocal)
	require.Len(t, local, 1)
	assert.Equal(t, "local-c", local[0].ID)
}

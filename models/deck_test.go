package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Card id assignment
// ─────────────────────────────────────────────

func TestDeck_AddCard_AssignsSequentialIDs(t *testing.T) {
	var d Deck

	first := d.AddCard("q1", "a1")
	second := d.AddCard("q2", "a2")

	assert.Equal(t, int64(0), first.ID)
	assert.Equal(t, int64(1), second.ID)
	assert.Equal(t, int64(2), d.NextCardID)
}

// Deleting a card and re-adding one must never reuse the deleted id.
// Older revisions assigned ids by array position and broke this.
func TestDeck_AddCard_IDStableAcrossDeleteReAdd(t *testing.T) {
	var d Deck
	d.AddCard("q1", "a1")
	kept := d.AddCard("q2", "a2")

	require.True(t, d.RemoveCard(0))
	readded := d.AddCard("q3", "a3")

	assert.Equal(t, int64(2), readded.ID)
	assert.NotEqual(t, int64(0), readded.ID, "deleted id must not be reused")

	ids := map[int64]bool{}
	for _, c := range d.Cards {
		require.False(t, ids[c.ID], "duplicate card id %d", c.ID)
		ids[c.ID] = true
	}
	assert.Equal(t, []Card{kept, readded}, d.Cards)
}

func TestDeck_AddCard_RepairsLegacyCounter(t *testing.T) {
	// Deck persisted by a revision without NextCardID.
	d := Deck{Cards: []Card{{ID: 0}, {ID: 1}, {ID: 2}}}

	card := d.AddCard("q", "a")

	assert.Equal(t, int64(3), card.ID)
}

func TestDeck_RemoveCard_UnknownID(t *testing.T) {
	d := Deck{Cards: []Card{{ID: 1}}}

	assert.False(t, d.RemoveCard(42))
	assert.Len(t, d.Cards, 1)
}

// ─────────────────────────────────────────────
// Timestamps
// ─────────────────────────────────────────────

func TestDeck_Touch_KeepsLastModifiedAboveCreatedAt(t *testing.T) {
	d := Deck{CreatedAt: 1_700_000_000_000}

	d.Touch()

	assert.GreaterOrEqual(t, d.LastModified, d.CreatedAt)
}

func TestDeck_Mutations_BumpLastModified(t *testing.T) {
	var d Deck

	d.AddCard("q", "a")
	require.NotZero(t, d.LastModified)

	before := d.LastModified
	d.Rename("renamed")
	assert.GreaterOrEqual(t, d.LastModified, before)
}

// ─────────────────────────────────────────────
// Category
// ─────────────────────────────────────────────

func TestDeck_Category(t *testing.T) {
	tests := []struct {
		name string
		deck Deck
		want Category
	}{
		{"local unsynced", Deck{IsLocal: true}, CategoryLocal},
		{"public flag", Deck{UserID: "u1", IsPublic: true}, CategoryPublic},
		{"system owner", Deck{UserID: SystemUserID}, CategoryPublic},
		{"private", Deck{UserID: "u1"}, CategoryPrivate},
		{"local wins over public", Deck{IsLocal: true, IsPublic: true}, CategoryLocal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.deck.Category())
		})
	}
}

// ─────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────

func TestDeck_Validate(t *testing.T) {
	tests := []struct {
		name    string
		deck    Deck
		wantErr error
	}{
		{"valid", Deck{Title: "Capitals", Cards: []Card{{ID: 0}, {ID: 1}}}, nil},
		{"empty title", Deck{Title: "   "}, ErrEmptyTitle},
		{"negative card id", Deck{Title: "t", Cards: []Card{{ID: -1}}}, ErrMalformedCard},
		{"duplicate card ids", Deck{Title: "t", Cards: []Card{{ID: 1}, {ID: 1}}}, ErrMalformedCard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.deck.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// Clone
// ─────────────────────────────────────────────

func TestDeck_Clone_DoesNotShareCards(t *testing.T) {
	d := Deck{Title: "t", Cards: []Card{{ID: 0, Question: "q"}}}

	clone := d.Clone()
	clone.Cards[0].Question = "changed"

	assert.Equal(t, "q", d.Cards[0].Question)
}

func TestDeck_HasLocalID(t *testing.T) {
	assert.True(t, (&Deck{ID: LocalIDPrefix + "abc"}).HasLocalID())
	assert.False(t, (&Deck{ID: "0198c2f2"}).HasLocalID())
}

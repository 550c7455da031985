package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDeck_CanonicalShape(t *testing.T) {
	payload := `{
		"id": "d1",
		"userId": "u1",
		"title": "Capitals",
		"cards": [{"id": 0, "question": "q", "answer": "a"}],
		"nextCardId": 1,
		"isPublic": true,
		"createdAt": 100,
		"lastModified": 200
	}`

	deck, err := DecodeDeck([]byte(payload))
	require.NoError(t, err)

	assert.Equal(t, "d1", deck.ID)
	assert.Equal(t, "u1", deck.UserID)
	assert.True(t, deck.IsPublic)
	assert.Equal(t, int64(100), deck.CreatedAt)
	assert.Equal(t, int64(200), deck.LastModified)
	assert.Equal(t, int64(1), deck.NextCardID)
}

// The stored data shows at least five incompatible revisions; the decoder
// must fold all of them into the canonical shape.
func TestDecodeDeck_LegacyRevisions(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		check   func(t *testing.T, d Deck)
	}{
		{
			name:    "string isPublic true",
			payload: `{"id":"d","title":"t","isPublic":"true","createdAt":1}`,
			check: func(t *testing.T, d Deck) {
				assert.True(t, d.IsPublic)
			},
		},
		{
			name:    "string isPublic false",
			payload: `{"id":"d","title":"t","isPublic":"false","createdAt":1}`,
			check: func(t *testing.T, d Deck) {
				assert.False(t, d.IsPublic)
			},
		},
		{
			name:    "missing lastModified falls back to createdAt",
			payload: `{"id":"d","title":"t","createdAt":1234}`,
			check: func(t *testing.T, d Deck) {
				assert.Equal(t, int64(1234), d.LastModified)
			},
		},
		{
			name:    "RFC3339 createdAt",
			payload: `{"id":"d","title":"t","createdAt":"2024-01-02T03:04:05Z"}`,
			check: func(t *testing.T, d Deck) {
				assert.Equal(t, int64(1704164645000), d.CreatedAt)
			},
		},
		{
			name:    "numeric string timestamp",
			payload: `{"id":"d","title":"t","createdAt":"1700000000000"}`,
			check: func(t *testing.T, d Deck) {
				assert.Equal(t, int64(1700000000000), d.CreatedAt)
			},
		},
		{
			name:    "missing nextCardId derived from positional card ids",
			payload: `{"id":"d","title":"t","createdAt":1,"cards":[{"id":0},{"id":1},{"id":2}]}`,
			check: func(t *testing.T, d Deck) {
				assert.Equal(t, int64(3), d.NextCardID)
			},
		},
		{
			name:    "system owner implies public",
			payload: `{"id":"d","userId":"system","title":"t","createdAt":1}`,
			check: func(t *testing.T, d Deck) {
				assert.True(t, d.IsPublic)
			},
		},
		{
			name:    "lastModified behind createdAt is clamped",
			payload: `{"id":"d","title":"t","createdAt":200,"lastModified":100}`,
			check: func(t *testing.T, d Deck) {
				assert.Equal(t, int64(200), d.LastModified)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			deck, err := DecodeDeck([]byte(tc.payload))
			require.NoError(t, err)
			tc.check(t, deck)
		})
	}
}

func TestDecodeDeck_RejectsGarbage(t *testing.T) {
	_, err := DecodeDeck([]byte(`{"isPublic": 12}`))
	require.Error(t, err)

	_, err = DecodeDeck([]byte(`{"createdAt": "not-a-time"}`))
	require.Error(t, err)

	_, err = DecodeDeck([]byte(`not json`))
	require.Error(t, err)
}

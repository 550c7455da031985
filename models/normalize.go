package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DecodeDeck is the explicit normalization step applied at repository
// boundaries. The stored data went through several incompatible schema
// revisions (string vs boolean isPublic, RFC3339 vs epoch timestamps,
// missing lastModified, card ids assigned by array position); this decoder
// accepts all of them and produces the single canonical [Deck] shape.
func DecodeDeck(data []byte) (Deck, error) {
	var raw legacyDeck

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return Deck{}, fmt.Errorf("decode deck: %w", err)
	}

	deck := Deck{
		ID:           raw.ID,
		UserID:       raw.UserID,
		Title:        raw.Title,
		Cards:        raw.Cards,
		NextCardID:   raw.NextCardID,
		IsPublic:     bool(raw.IsPublic),
		CreatedAt:    int64(raw.CreatedAt),
		LastModified: int64(raw.LastModified),
		IsLocal:      raw.IsLocal,
		SyncStatus:   raw.SyncStatus,
	}
	deck.Normalize()

	return deck, nil
}

// Normalize repairs fields that legacy records leave absent or
// inconsistent. It never invents timestamps out of thin air: when both
// timestamps are missing the caller (repository or service) stamps them.
func (d *Deck) Normalize() {
	if d.CreatedAt == 0 {
		d.CreatedAt = d.LastModified
	}
	if d.LastModified < d.CreatedAt {
		d.LastModified = d.CreatedAt
	}
	if d.UserID == SystemUserID {
		d.IsPublic = true
	}
	d.ensureCounter()
}

// legacyDeck mirrors Deck with permissive field types so that any of the
// historical schema revisions can be decoded.
type legacyDeck struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Title        string     `json:"title"`
	Cards        []Card     `json:"cards"`
	NextCardID   int64      `json:"nextCardId"`
	IsPublic     flexBool   `json:"isPublic"`
	CreatedAt    flexMillis `json:"createdAt"`
	LastModified flexMillis `json:"lastModified"`
	IsLocal      bool       `json:"isLocal"`
	SyncStatus   SyncStatus `json:"syncStatus"`
}

// flexBool accepts JSON booleans and the string forms "true"/"false"/""
// found in older records.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*b = false
	case bool:
		*b = flexBool(value)
	case string:
		*b = flexBool(strings.EqualFold(strings.TrimSpace(value), "true"))
	default:
		return fmt.Errorf("unsupported isPublic value %q", string(data))
	}
	return nil
}

// flexMillis accepts epoch milliseconds as a JSON number, a numeric
// string, or an RFC3339 string.
type flexMillis int64

func (m *flexMillis) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*m = 0
	case float64:
		*m = flexMillis(int64(value))
	case string:
		value = strings.TrimSpace(value)
		if value == "" {
			*m = 0
			return nil
		}
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			*m = flexMillis(n)
			return nil
		}
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return fmt.Errorf("unsupported timestamp value %q", value)
		}
		*m = flexMillis(t.UnixMilli())
	default:
		return fmt.Errorf("unsupported timestamp value %q", string(data))
	}
	return nil
}

package models

import (
	"errors"
	"strings"
	"time"
)

// SystemUserID is the reserved owner of seed decks that are readable by
// every user regardless of authentication.
const SystemUserID = "system"

// LocalIDPrefix marks deck identifiers generated on-device before the deck
// was ever synced. The server replaces prefixed ids with its own on first
// sync, which keeps the client and server id namespaces from colliding.
const LocalIDPrefix = "local-"

// SyncStatus tells the UI where a deck sits in the reconciliation state
// machine. It is a transient projection and is never persisted server-side.
type SyncStatus string

const (
	// StatusLocal means the deck exists only in the local deck store.
	StatusLocal SyncStatus = "local"

	// StatusSyncing means reconciliation is in flight for this deck.
	StatusSyncing SyncStatus = "syncing"

	// StatusSynced means the deck has been durably written to the server
	// and removed from the local deck store.
	StatusSynced SyncStatus = "synced"
)

// Category is the explicit tagged variant computed once at ingestion,
// replacing the ad-hoc isPublic/userId/isLocal combinations of older
// schema revisions.
type Category string

const (
	CategoryPublic  Category = "public"
	CategoryPrivate Category = "private"
	CategoryLocal   Category = "local"
)

// Validation errors produced by [Deck.Validate]. Matched with [errors.Is].
var (
	ErrEmptyTitle    = errors.New("deck title must not be empty")
	ErrMalformedCard = errors.New("malformed card")
)

// Deck is the central entity: a named, ordered collection of cards.
type Deck struct {
	// ID is the deck identifier. Locally created decks carry a provisional
	// id with the [LocalIDPrefix]; the server assigns a permanent id on
	// first sync.
	ID string `json:"id"`

	// UserID is the owner identifier derived from the verified credential.
	// [SystemUserID] marks publicly readable seed decks.
	UserID string `json:"userId"`

	// Title is required and non-empty.
	Title string `json:"title"`

	// Cards in insertion order; insertion order is display order.
	Cards []Card `json:"cards"`

	// NextCardID is the per-deck monotonic counter used to assign card ids.
	// Persisted so that ids stay unique across delete/re-add sequences.
	NextCardID int64 `json:"nextCardId"`

	// IsPublic makes the deck readable by all users regardless of owner.
	IsPublic bool `json:"isPublic"`

	// CreatedAt is an epoch-millisecond timestamp set once at first
	// persistence (local or remote) and never overwritten.
	CreatedAt int64 `json:"createdAt"`

	// LastModified is an epoch-millisecond timestamp updated on every
	// mutation and on every successful sync. Always >= CreatedAt.
	LastModified int64 `json:"lastModified"`

	// IsLocal is true while the deck exists only in the local deck store
	// and has no confirmed server counterpart.
	IsLocal bool `json:"isLocal,omitempty"`

	// SyncStatus is the UI-facing reconciliation state.
	SyncStatus SyncStatus `json:"syncStatus,omitempty"`
}

// HasLocalID reports whether the deck still carries a provisional
// client-generated identifier.
func (d *Deck) HasLocalID() bool {
	return strings.HasPrefix(d.ID, LocalIDPrefix)
}

// Category computes the deck's tagged variant once; read sites must use
// this instead of re-deriving from field combinations.
func (d *Deck) Category() Category {
	switch {
	case d.IsLocal:
		return CategoryLocal
	case d.IsPublic || d.UserID == SystemUserID:
		return CategoryPublic
	default:
		return CategoryPrivate
	}
}

// AddCard appends a new card using the per-deck counter and bumps
// LastModified. Returns the created card.
func (d *Deck) AddCard(question, answer string) Card {
	d.ensureCounter()

	card := Card{ID: d.NextCardID, Question: question, Answer: answer}
	d.NextCardID++
	d.Cards = append(d.Cards, card)
	d.Touch()

	return card
}

// RemoveCard deletes the card with the given id, preserving the order of
// the remaining cards. The counter is never rewound, so a later AddCard
// cannot reuse the removed id. Returns false if no card matched.
func (d *Deck) RemoveCard(cardID int64) bool {
	for i, c := range d.Cards {
		if c.ID == cardID {
			d.Cards = append(d.Cards[:i], d.Cards[i+1:]...)
			d.Touch()
			return true
		}
	}
	return false
}

// Rename sets the deck title and bumps LastModified.
func (d *Deck) Rename(title string) {
	d.Title = title
	d.Touch()
}

// Touch stamps LastModified with the current wall clock, keeping the
// LastModified >= CreatedAt invariant.
func (d *Deck) Touch() {
	now := time.Now().UnixMilli()
	if now < d.CreatedAt {
		now = d.CreatedAt
	}
	d.LastModified = now
}

// Validate checks the canonical shape rules shared by the local store and
// the server repository: non-empty title and well-formed cards.
func (d *Deck) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}

	seen := make(map[int64]struct{}, len(d.Cards))
	for _, c := range d.Cards {
		if c.ID < 0 {
			return ErrMalformedCard
		}
		if _, dup := seen[c.ID]; dup {
			return ErrMalformedCard
		}
		seen[c.ID] = struct{}{}
	}

	return nil
}

// Clone returns a deep copy; the cards slice is not shared with the
// receiver.
func (d *Deck) Clone() Deck {
	out := *d
	if d.Cards != nil {
		out.Cards = make([]Card, len(d.Cards))
		copy(out.Cards, d.Cards)
	}
	return out
}

// ensureCounter repairs NextCardID for decks that predate the counter
// (older revisions assigned card ids by array position).
func (d *Deck) ensureCounter() {
	var maxID int64 = -1
	for _, c := range d.Cards {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	if d.NextCardID <= maxID {
		d.NextCardID = maxID + 1
	}
}

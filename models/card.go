package models

// Card is a single question/answer pair inside a deck.
// Card ids come from the owning deck's NextCardID counter and are unique
// within that deck only; they are not globally unique.
type Card struct {
	// ID is the deck-local identifier of the card. Stable across edits and
	// across delete/re-add sequences.
	ID int64 `json:"id"`

	// Question is the front side of the card.
	Question string `json:"question"`

	// Answer is the back side of the card.
	Answer string `json:"answer"`
}

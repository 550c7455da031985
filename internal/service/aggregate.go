package service

import "github.com/dkurilov/flashdeck/models"

// AggregateDecks merges the three deck sources the client displays into a
// single list, deduplicated by id. Precedence on collision: the user's own
// server decks win over public decks, which win over local decks. A deck
// that was just synced therefore shadows its stale local copy even before
// the local store catches up.
func AggregateDecks(userDecks, publicDecks, localDecks []models.Deck) []models.Deck {
	seen := make(map[string]struct{}, len(userDecks)+len(publicDecks)+len(localDecks))
	out := make([]models.Deck, 0, len(userDecks)+len(publicDecks)+len(localDecks))

	for _, group := range [][]models.Deck{userDecks, publicDecks, localDecks} {
		for _, deck := range group {
			if _, ok := seen[deck.ID]; ok {
				continue
			}
			seen[deck.ID] = struct{}{}
			out = append(out, deck)
		}
	}

	return out
}

// FilterByCategory returns the decks whose derived category matches. The
// private bucket is the union of the user's server decks and everything
// still local: a deck not yet on the server is never browsable by others,
// whatever its isPublic flag says.
func FilterByCategory(decks []models.Deck, category models.Category) []models.Deck {
	out := make([]models.Deck, 0, len(decks))
	for _, deck := range decks {
		got := deck.Category()
		if got == category || (category == models.CategoryPrivate && got == models.CategoryLocal) {
			out = append(out, deck)
		}
	}
	return out
}

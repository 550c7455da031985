package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrDeckNotFound is returned when a query targets a deck id that does
	// not exist in the table.
	ErrDeckNotFound = errors.New("deck was not found")

	// ErrDeckConflict is returned when the conditional write check fails:
	// the stored record carries a strictly newer last_modified than the
	// incoming one, meaning another device wrote the deck since the caller
	// last saw it.
	ErrDeckConflict = errors.New("deck was modified by another request")

	// ErrDuplicateDeck is returned when an INSERT violates the deck id
	// uniqueness constraint.
	ErrDuplicateDeck = errors.New("deck id already exists")

	// ErrForeignDeck is returned when a write targets a deck owned by a
	// different user. Writes are scoped to the identity resolved from the
	// verified credential.
	ErrForeignDeck = errors.New("deck belongs to another user")
)

// Low-level database operation errors, wrapped around driver failures.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan deck row")
	ErrScanningRows     = errors.New("failed to scan deck rows")
)

package models

// ErrorResponse is the standard JSON body for failed requests. The HTTP
// status code carries the error kind; Message is a human-readable detail.
type ErrorResponse struct {
	Message string `json:"message"`

	// TraceID echoes the request trace identifier so that a failure
	// surfaced to the user can be found in the server logs.
	TraceID string `json:"traceId,omitempty"`
}

// CreateDeckRequest is the body of POST /decks/create.
type CreateDeckRequest struct {
	Title    string `json:"title"`
	IsPublic bool   `json:"isPublic,omitempty"`
}

// SyncOutcome describes the result of reconciling a single local deck.
type SyncOutcome struct {
	// LocalID is the provisional id the deck had in the local store.
	LocalID string `json:"localId"`

	// Deck is the authoritative server record. Nil when the sync failed.
	Deck *Deck `json:"deck,omitempty"`

	// Err is the failure for this deck, nil on success. Errors are scoped
	// to one deck and never abort the rest of the batch.
	Err error `json:"-"`
}

// SyncReport aggregates the outcomes of one reconciliation run.
type SyncReport struct {
	Synced []SyncOutcome
	Failed []SyncOutcome
}

// Total returns the number of decks the run attempted.
func (r *SyncReport) Total() int {
	return len(r.Synced) + len(r.Failed)
}

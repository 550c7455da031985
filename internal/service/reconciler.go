package service

import (
	"context"
	"fmt"

	"github.com/dkurilov/flashdeck/internal/adapter"
	"github.com/dkurilov/flashdeck/internal/localstore"
	"github.com/dkurilov/flashdeck/internal/logger"
	"github.com/dkurilov/flashdeck/models"
)

// Reconciler drains the local deck store into the server after sign-in.
// Each deck is reconciled independently: one failure never aborts the
// batch, and a failed deck simply stays local until the user retries.
type Reconciler struct {
	client adapter.DeckClient
	local  localstore.DeckStore

	logger *logger.Logger
}

func NewReconciler(client adapter.DeckClient, local localstore.DeckStore, logger *logger.Logger) *Reconciler {
	return &Reconciler{client: client, local: local, logger: logger}
}

// Sync pushes every locally stored deck to the server, one request per
// deck. A deck that the server accepts is removed from the local store in
// the same pass; a rejected deck is reverted to its unsynced state. The
// returned report lists both groups and is never nil-mapped to an error:
// Sync fails as a whole only when the local store itself cannot be read.
func (r *Reconciler) Sync(ctx context.Context) (models.SyncReport, error) {
	decks, err := r.local.List(ctx)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("listing local decks: %w", err)
	}

	var report models.SyncReport
	for _, deck := range decks {
		outcome := r.syncOne(ctx, deck)
		if outcome.Err != nil {
			report.Failed = append(report.Failed, outcome)
			continue
		}
		report.Synced = append(report.Synced, outcome)
	}

	r.logger.Info().
		Str("func", "Sync").
		Int("synced", len(report.Synced)).
		Int("failed", len(report.Failed)).
		Msg("local deck reconciliation finished")

	return report, nil
}

func (r *Reconciler) syncOne(ctx context.Context, deck models.Deck) models.SyncOutcome {
	localID := deck.ID

	// mark the deck as in flight so concurrent readers of the store see
	// the transition; best effort, the push proceeds regardless
	marked := deck.Clone()
	marked.SyncStatus = models.StatusSyncing
	if err := r.local.Update(ctx, marked); err != nil {
		r.logger.Warn().
			Str("func", "syncOne").
			Str("local_id", localID).
			Err(err).
			Msg("could not mark deck as syncing")
	}

	stored, err := r.client.SyncDeck(ctx, deck)
	if err != nil {
		r.revert(ctx, deck)
		r.logger.Warn().
			Str("func", "syncOne").
			Str("local_id", localID).
			Err(err).
			Msg("deck sync rejected")
		return models.SyncOutcome{LocalID: localID, Err: err}
	}

	if err := r.local.Delete(ctx, localID); err != nil {
		// the server accepted the deck; report success but surface the
		// cleanup failure so the caller can warn about a future duplicate
		r.logger.Error().
			Str("func", "syncOne").
			Str("local_id", localID).
			Err(err).
			Msg("synced deck could not be removed from local store")
	}

	r.logger.Info().
		Str("func", "syncOne").
		Str("local_id", localID).
		Str("deck_id", stored.ID).
		Msg("deck synced")

	return models.SyncOutcome{LocalID: localID, Deck: &stored}
}

// revert puts a deck back into its unsynced state after a failed push.
func (r *Reconciler) revert(ctx context.Context, deck models.Deck) {
	deck.SyncStatus = models.StatusLocal
	if err := r.local.Update(ctx, deck); err != nil {
		r.logger.Warn().
			Str("func", "revert").
			Str("local_id", deck.ID).
			Err(err).
			Msg("could not revert deck sync status")
	}
}

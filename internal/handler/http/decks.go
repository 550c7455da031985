package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkurilov/flashdeck/internal/logger"
	"github.com/dkurilov/flashdeck/internal/utils"
	"github.com/dkurilov/flashdeck/models"
)

func (h *Handler) getPublicDecks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	decks, err := h.services.Decks.GetPublicDecks(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPublicDecks").Msg("error getting public decks")
		h.writeError(w, "error getting public decks", statusFromError(err))
		return
	}

	utils.WriteJSON(w, decks, http.StatusOK)
}

func (h *Handler) getUserDecks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getUserDecks").Msg("no user ID was given")
		h.writeError(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	decks, err := h.services.Decks.GetUserDecks(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUserDecks").Msg("error getting user decks")
		h.writeError(w, "error getting user decks", statusFromError(err))
		return
	}

	utils.WriteJSON(w, decks, http.StatusOK)
}

func (h *Handler) getDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeError(w, "no deck id was given", http.StatusBadRequest)
		return
	}

	deck, err := h.services.Decks.GetDeck(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDeck").Str("deck_id", id).Msg("error getting deck")
		h.writeError(w, "deck was not found", statusFromError(err))
		return
	}

	utils.WriteJSON(w, deck, http.StatusOK)
}

func (h *Handler) createDeck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createDeck").Msg("no user ID was given")
		h.writeError(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	var req models.CreateDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createDeck").Msg("invalid JSON was passed")
		h.writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	deck, err := h.services.Decks.CreateDeck(ctx, userID, req.Title, req.IsPublic)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createDeck").Msg("error creating deck")
		h.writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, deck, http.StatusCreated)
}

func (h *Handler) syncDeck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.syncDeck").Msg("no user ID was given")
		h.writeError(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncDeck").Msg("error reading request body")
		h.writeError(w, "error reading request body", http.StatusBadRequest)
		return
	}

	// payloads from older client revisions use drifted field types, so
	// the body goes through the tolerant decoder
	deck, err := models.DecodeDeck(body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncDeck").Msg("invalid JSON was passed")
		h.writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	stored, err := h.services.Decks.SyncDeck(ctx, userID, deck)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncDeck").Str("deck_id", deck.ID).Msg("error syncing deck")
		h.writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, stored, http.StatusOK)
}

// writeError sends the JSON error body shared by all endpoints. The trace
// id was stamped on the response header by the trace middleware.
func (h *Handler) writeError(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{
		Message: message,
		TraceID: w.Header().Get(traceIDHeader),
	}, status)
}

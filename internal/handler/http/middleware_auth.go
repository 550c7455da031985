package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/dkurilov/flashdeck/internal/auth"
	"github.com/dkurilov/flashdeck/internal/logger"
	"github.com/dkurilov/flashdeck/internal/utils"
)

// withAuth enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, resolves it to a
// user id via [auth.Provider], and stores the id in the request context
// under [utils.UserIDCtxKey] before delegating to the next handler.
// Requests without a usable token are rejected with HTTP 401; the signed-out
// client treats that as "no decks", not as a hard failure.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.writeError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.writeError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		userID, err := h.auth.Resolve(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				h.writeError(w, auth.ErrTokenExpired.Error(), http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during resolving token")
				h.writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			}
			return
		}

		// downstream handlers read the id without re-parsing the token
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

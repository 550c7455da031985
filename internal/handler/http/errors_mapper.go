package http

import (
	"errors"
	"net/http"

	"github.com/dkurilov/flashdeck/internal/auth"
	"github.com/dkurilov/flashdeck/internal/service"
	"github.com/dkurilov/flashdeck/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidation: http.StatusBadRequest,

	auth.ErrTokenExpired: http.StatusUnauthorized,
	auth.ErrInvalidToken: http.StatusUnauthorized,

	store.ErrDeckNotFound:  http.StatusNotFound,
	store.ErrForeignDeck:   http.StatusForbidden,
	store.ErrDeckConflict:  http.StatusConflict,
	store.ErrDuplicateDeck: http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

package adapter

import "errors"

// Sentinel errors mirroring the server's HTTP error statuses. Callers
// branch with errors.Is; the wrapped text carries the server's message.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("sync conflict")
	ErrInternalServerError = errors.New("internal server error")
)

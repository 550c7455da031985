package service

import "errors"

var (
	// ErrValidation marks a request rejected before touching storage.
	ErrValidation = errors.New("deck validation failed")
)

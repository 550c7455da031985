// Package http implements the HTTP transport layer of the flashdeck
// server. It provides middleware, route handlers, and request/response
// utilities for the REST API. Authentication, logging, tracing, and CORS
// concerns are handled at this layer before requests reach the deck
// service.
package http

import (
	"github.com/dkurilov/flashdeck/internal/auth"
	"github.com/dkurilov/flashdeck/internal/logger"
	"github.com/dkurilov/flashdeck/internal/service"
)

type Handler struct {
	services *service.Services
	auth     auth.Provider

	logger *logger.Logger
}

func NewHandler(services *service.Services, authProvider auth.Provider, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		auth:     authProvider,
		logger:   logger,
	}
}

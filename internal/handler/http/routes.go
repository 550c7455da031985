package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/decks", h.getPublicDecks)
		r.Get("/decks/public", h.getPublicDecks)
		r.Get("/decks/{id}", h.getDeck)
	})

	// routes requiring a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.withAuth)
		r.Get("/decks/user-decks", h.getUserDecks)
		r.Post("/decks/create", h.createDeck)
		r.Post("/decks/sync", h.syncDeck)
	})

	return router
}

package service

import (
	"github.com/dkurilov/flashdeck/internal/logger"
	"github.com/dkurilov/flashdeck/internal/store"
)

// Services bundles the server-side services handed to the HTTP handlers.
type Services struct {
	Decks DeckService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		Decks: NewDeckService(storages.Decks, logger),
	}
}

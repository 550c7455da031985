package utils

import (
	"github.com/google/uuid"

	"github.com/dkurilov/flashdeck/models"
)

// LocalIDGenerator produces provisional identifiers for decks created
// while signed out. The "local-" prefix keeps client-generated ids
// distinguishable from server-assigned ones; the server replaces prefixed
// ids on first sync.
type LocalIDGenerator struct{}

func NewLocalIDGenerator() *LocalIDGenerator {
	return &LocalIDGenerator{}
}

// Generate never fails: when UUIDv7 generation errors it falls back to a
// random UUIDv4.
func (g *LocalIDGenerator) Generate() string {
	return models.LocalIDPrefix + newUUID()
}

// ServerIDGenerator produces permanent deck identifiers on the server.
type ServerIDGenerator struct{}

func NewServerIDGenerator() *ServerIDGenerator {
	return &ServerIDGenerator{}
}

func (g *ServerIDGenerator) Generate() string {
	return newUUID()
}

func newUUID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

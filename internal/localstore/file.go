package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dkurilov/flashdeck/models"
)

// deckDocument is the on-disk shape of the file backend: the whole deck
// collection serialized as one JSON document under a single key.
type deckDocument struct {
	Decks []models.Deck `json:"flashcards_decks"`
}

// FileStore keeps all decks in one JSON file. Mutations rewrite the whole
// document through a temp-file rename, so a crash mid-write never leaves a
// torn collection behind.
type FileStore struct {
	mu    sync.Mutex
	path  string
	decks []models.Deck
}

// NewFileStore opens (or initializes) the JSON document at path and loads
// the collection into memory.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.decks = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading local deck document: %w", err)
	}

	// entries are decoded one by one through models.DecodeDeck so that
	// documents written by older revisions still load
	var doc struct {
		Decks []json.RawMessage `json:"flashcards_decks"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding local deck document: %w", err)
	}

	decks := make([]models.Deck, 0, len(doc.Decks))
	for _, raw := range doc.Decks {
		deck, err := models.DecodeDeck(raw)
		if err != nil {
			return fmt.Errorf("decoding local deck record: %w", err)
		}
		markLocal(&deck)
		decks = append(decks, deck)
	}
	s.decks = decks

	return nil
}

// persist writes the whole collection atomically. Callers hold s.mu.
func (s *FileStore) persist() error {
	data, err := json.MarshalIndent(deckDocument{Decks: s.decks}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding local deck document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating local store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".flashdeck-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp document: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp document: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing local deck document: %w", err)
	}

	return nil
}

func (s *FileStore) List(_ context.Context) ([]models.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Deck, 0, len(s.decks))
	for _, d := range s.decks {
		out = append(out, d.Clone())
	}

	return out, nil
}

func (s *FileStore) Create(_ context.Context, deck models.Deck) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(deck.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, deck.ID)
	}

	markLocal(&deck)
	s.decks = append(s.decks, deck)

	return s.persist()
}

func (s *FileStore) Update(_ context.Context, deck models.Deck) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(deck.ID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrDeckNotFound, deck.ID)
	}

	markLocal(&deck)
	s.decks[i] = deck

	return s.persist()
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.decks = append(s.decks[:i], s.decks[i+1:]...)

	return s.persist()
}

// indexOf returns the position of id in the collection, or -1. Callers
// hold s.mu.
func (s *FileStore) indexOf(id string) int {
	for i, d := range s.decks {
		if d.ID == id {
			return i
		}
	}
	return -1
}

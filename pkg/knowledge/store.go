// Package knowledge holds the single domain-knowledge document that grounds
// test-case generation and extracts its text from uploaded files.
package knowledge

import (
	"errors"
	"sync/atomic"
)

// ErrEmptyKnowledge is returned when an upload carries no text.
var ErrEmptyKnowledge = errors.New("no domain knowledge provided")

// Store is a single-slot holder for the most recently uploaded knowledge.
type Store interface {
	// Replace overwrites the stored text. Empty text is rejected and the
	// previous value stays in place.
	Replace(text string) error
	// Current returns the latest value, "" when nothing was uploaded yet.
	Current() string
}

// MemoryStore keeps the knowledge in process memory. Readers see the last
// completed Replace; a read racing a write may see either value.
type MemoryStore struct {
	text atomic.Pointer[string]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Replace(text string) error {
	if text == "" {
		return ErrEmptyKnowledge
	}
	s.text.Store(&text)
	return nil
}

func (s *MemoryStore) Current() string {
	if p := s.text.Load(); p != nil {
		return *p
	}
	return ""
}

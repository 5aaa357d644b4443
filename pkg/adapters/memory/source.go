package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/surveyshell/pkg/domain"
)

// Source implements ports.SourceLister using an in-memory map.
// Safe for concurrent use.
type Source struct {
	docs map[string][]byte
	mu   sync.RWMutex
}

// NewSource creates a Source with the provided raw documents (JSON strings).
func NewSource(data map[string]string) *Source {
	docs := make(map[string][]byte, len(data))
	for k, v := range data {
		docs[k] = []byte(v)
	}
	return &Source{docs: docs}
}

// NewFromSurveys creates a Source from domain objects.
// This handles serialization automatically, improving DX for tests.
func NewFromSurveys(surveys map[string]domain.Survey) (*Source, error) {
	docs := make(map[string][]byte, len(surveys))
	for name, s := range surveys {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("survey %s: %w", name, err)
		}
		bytes, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal survey %s: %w", name, err)
		}
		docs[name] = bytes
	}
	return &Source{docs: docs}, nil
}

// Put stores or replaces a document.
func (s *Source) Put(name string, data []byte) error {
	clean, err := domain.CleanSourceName(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[clean] = append([]byte(nil), data...)
	return nil
}

// Load retrieves a copy of the document stored under name.
func (s *Source) Load(ctx context.Context, name string) ([]byte, error) {
	clean, err := domain.CleanSourceName(name)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.docs[clean]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, clean)
	}
	return append([]byte(nil), content...), nil
}

// List returns all document names in sorted order.
func (s *Source) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.docs))
	for k := range s.docs {
		names = append(names, k)
	}
	sort.Strings(names) // Deterministic order
	return names, nil
}

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/protolab/protoboard/pkg/pipeline"
)

// MemoryStore is an in-memory Store for the CLI and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	layouts     map[uuid.UUID]pipeline.Layout
	corrections map[string]Correction
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		layouts:     make(map[uuid.UUID]pipeline.Layout),
		corrections: make(map[string]Correction),
	}
}

// SaveLayout stores a layout artifact.
func (s *MemoryStore) SaveLayout(ctx context.Context, l pipeline.Layout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layouts[l.ID] = l
	return nil
}

// GetLayout retrieves a layout by ID.
func (s *MemoryStore) GetLayout(ctx context.Context, id uuid.UUID) (pipeline.Layout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.layouts[id]
	if !ok {
		return pipeline.Layout{}, ErrNotFound
	}
	return l, nil
}

// ListLayouts returns up to limit layouts, newest first.
func (s *MemoryStore) ListLayouts(ctx context.Context, limit int) ([]pipeline.Layout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]pipeline.Layout, 0, len(s.layouts))
	for _, l := range s.layouts {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// SaveCorrection stores a correction keyed by kind and marking.
func (s *MemoryStore) SaveCorrection(ctx context.Context, c Correction) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.corrections[correctionKey(c.Kind, c.Marking)] = c
	return nil
}

// GetCorrection retrieves the correction for a kind and marking.
func (s *MemoryStore) GetCorrection(ctx context.Context, kind, marking string) (Correction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.corrections[correctionKey(kind, marking)]
	if !ok {
		return Correction{}, ErrNotFound
	}
	return c, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

func correctionKey(kind, marking string) string {
	return kind + "\x00" + marking
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

// Package store persists layout artifacts and user-submitted marking
// corrections.
//
// The core pipeline itself has no storage dependency; it receives
// already-loaded records and returns pure computed results. This package
// is the calling layer's datastore: MemoryStore for the CLI and tests,
// MongoStore for the server.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/protolab/protoboard/pkg/pipeline"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Correction is a user-submitted override for a marking the codecs decode
// wrongly or not at all. Corrections are consulted by callers before the
// codec, never inside it.
type Correction struct {
	ID        uuid.UUID              `json:"id" bson:"_id"`
	Kind      string                 `json:"kind" bson:"kind"`       // "resistor", "capacitor", "diode", "led"
	Marking   string                 `json:"marking" bson:"marking"` // the value text being corrected
	Spec      pipeline.CanonicalSpec `json:"spec" bson:"spec"`
	Note      string                 `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt time.Time              `json:"created_at" bson:"created_at"`
}

// Store persists layouts and corrections.
type Store interface {
	// SaveLayout stores a layout artifact, overwriting any layout with
	// the same ID.
	SaveLayout(ctx context.Context, l pipeline.Layout) error

	// GetLayout retrieves a layout by ID. Returns ErrNotFound when absent.
	GetLayout(ctx context.Context, id uuid.UUID) (pipeline.Layout, error)

	// ListLayouts returns up to limit layouts, newest first.
	ListLayouts(ctx context.Context, limit int) ([]pipeline.Layout, error)

	// SaveCorrection stores a correction, replacing any existing
	// correction for the same kind and marking.
	SaveCorrection(ctx context.Context, c Correction) error

	// GetCorrection retrieves the correction for a kind and marking.
	// Returns ErrNotFound when absent.
	GetCorrection(ctx context.Context, kind, marking string) (Correction, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

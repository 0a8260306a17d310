// Package cache provides pluggable caching for decoded component specs,
// computed layouts, and rendered artifacts.
//
// Every operation the cache fronts is a pure function of its inputs, so a
// cache entry never goes stale in the semantic sense; TTLs exist only to
// bound disk and memory usage. Backends: FileCache for CLI usage,
// RedisCache for the server, NullCache to disable caching.
package cache

import (
	"context"
	"time"
)

// TTL defaults per entry kind. Decoded specs are tiny and immutable, so
// they keep the longest TTL.
const (
	TTLSpec     = 30 * 24 * time.Hour
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was found; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// SpecKeyOpts parameterizes component-spec cache keys.
type SpecKeyOpts struct {
	Kind string // "resistor", "capacitor", "diode", "led"
	Hint string // optional decode hint, e.g. a capacitor type override
}

// LayoutKeyOpts parameterizes layout cache keys. Every field that changes
// placement output must appear here, or distinct layouts would collide.
type LayoutKeyOpts struct {
	Surface       string
	Rows          int
	Columns       int
	ColumnCeiling int
	Gap           int
	MaxPerType    int
}

// ArtifactKeyOpts parameterizes rendered-artifact cache keys.
type ArtifactKeyOpts struct {
	Format string
}

// Keyer generates cache keys for the three cacheable stages.
type Keyer interface {
	// SpecKey generates a key for a decoded component spec.
	SpecKey(input string, opts SpecKeyOpts) string

	// LayoutKey generates a key for a computed layout.
	LayoutKey(bomHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates hash-based keys with stable prefixes.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SpecKey generates a key for a decoded component spec.
func (k *DefaultKeyer) SpecKey(input string, opts SpecKeyOpts) string {
	return hashKey("spec", input, opts)
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(bomHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", bomHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)

package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// The server uses this to keep per-board-profile caches separate from the
// shared default namespace.
//
// Example usage:
//
//	// Profile-specific keys for a custom board size
//	profileKeyer := NewScopedKeyer(NewDefaultKeyer(), "profile:half-size:")
//
//	// Shared keys for the default boards
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SpecKey generates a prefixed key for a decoded component spec.
func (k *ScopedKeyer) SpecKey(input string, opts SpecKeyOpts) string {
	return k.prefix + k.inner.SpecKey(input, opts)
}

// LayoutKey generates a prefixed key for a computed layout.
func (k *ScopedKeyer) LayoutKey(bomHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(bomHash, opts)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}

package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/protolab/protoboard/pkg/bom"
	"github.com/protolab/protoboard/pkg/cache"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete enrich → place → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, records bom.BOM, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	if err := records.Validate(); err != nil {
		return nil, fmt.Errorf("invalid BOM: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	bomData, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("serialize BOM: %w", err)
	}
	result.BOMHash = cache.Hash(bomData)

	// Stage 1: Enrich
	enrichStart := time.Now()
	specs, specHits := Enrich(ctx, r.Cache, r.Keyer, records, opts)
	result.Stats.EnrichTime = time.Since(enrichStart)
	result.CacheInfo.SpecHits = specHits

	r.Logger.Info("enriched components",
		"records", len(records),
		"cache_hits", specHits,
		"duration", result.Stats.EnrichTime)

	// Stage 2: Place
	placeStart := time.Now()
	layout, layoutHit, err := r.buildLayoutWithCacheInfo(ctx, result.BOMHash, records, specs, opts)
	if err != nil {
		return nil, fmt.Errorf("place: %w", err)
	}
	result.Layout = layout
	result.Stats.PlaceTime = time.Since(placeStart)
	result.Stats.PlacedCount = layout.Placed()
	result.Stats.DroppedCount = layout.DroppedCount()
	result.Stats.ComponentCount = layout.Placed() + layout.DroppedCount()
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("placed components",
		"surface", layout.Surface,
		"placed", result.Stats.PlacedCount,
		"dropped", result.Stats.DroppedCount,
		"duration", result.Stats.PlaceTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.renderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Enrich decodes every record's value text with per-spec caching.
func (r *Runner) Enrich(ctx context.Context, records bom.BOM, opts Options) []CanonicalSpec {
	opts.SetPlaceDefaults()
	r.applyLogger(&opts)
	specs, _ := Enrich(ctx, r.Cache, r.Keyer, records, opts)
	return specs
}

// BuildLayout runs the placement stage with caching.
func (r *Runner) BuildLayout(ctx context.Context, records bom.BOM, specs []CanonicalSpec, opts Options) (Layout, error) {
	bomData, err := json.Marshal(records)
	if err != nil {
		return Layout{}, fmt.Errorf("serialize BOM: %w", err)
	}
	l, _, err := r.buildLayoutWithCacheInfo(ctx, cache.Hash(bomData), records, specs, opts)
	return l, err
}

// buildLayoutWithCacheInfo places with caching and returns cache hit info.
//
// Placement is pure, so a cached layout for the same BOM hash and options
// is always valid; only the artifact identity (ID, CreatedAt) is frozen at
// first computation.
func (r *Runner) buildLayoutWithCacheInfo(ctx context.Context, bomHash string, records bom.BOM, specs []CanonicalSpec, opts Options) (Layout, bool, error) {
	if err := opts.ValidateForPlace(); err != nil {
		return Layout{}, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LayoutKey(bomHash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, err := cache.Fetch(ctx, r.Cache, cacheKey); err == nil {
			cached, err := UnmarshalLayout(data)
			if err == nil {
				return cached, true, nil // Cache hit
			}
			// Deserialization failure falls through to recompute
		}
	}

	layout, err := BuildLayout(records, specs, opts)
	if err != nil {
		return Layout{}, false, err
	}

	if data, err := MarshalLayout(layout); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
	}

	return layout, false, nil // Cache miss
}

// renderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) renderWithCacheInfo(ctx context.Context, l Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	layoutData, err := MarshalLayout(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		data, err := cache.Fetch(ctx, r.Cache, cacheKey)
		if err != nil {
			allCached = false
			break
		}
		artifacts[format] = data
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	rendered, err := Render(l, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

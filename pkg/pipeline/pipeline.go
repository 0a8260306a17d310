// Package pipeline provides the core BOM-to-layout pipeline for Protoboard.
//
// This package implements the complete enrich → place → render pipeline
// that can be used by CLI and server components. Centralizing this logic
// keeps behavior consistent across all entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Enrich: Decode each BOM record's value text into a canonical spec
//  2. Place: Compute deterministic board positions for every instance
//  3. Render: Generate output in various formats (JSON, DOT, SVG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Surface: pipeline.SurfaceBreadboard,
//	    Formats: []string{"json"},
//	}
//	result, err := runner.Execute(ctx, records, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data := result.Artifacts["json"]
//
// Run individual stages:
//
//	// Enrich only
//	specs := runner.Enrich(ctx, records, opts)
//
//	// Place with enriched specs
//	layout, err := runner.BuildLayout(ctx, records, specs, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/protolab/protoboard/pkg/board"
	"github.com/protolab/protoboard/pkg/cache"
	"github.com/protolab/protoboard/pkg/place"
)

// Surface names the board topology a layout targets.
const (
	SurfaceBreadboard = "breadboard"
	SurfaceStripboard = "stripboard"
)

// DefaultSurface is the surface used when none is requested.
const DefaultSurface = SurfaceBreadboard

// ValidSurfaces is the set of supported board surfaces.
var ValidSurfaces = map[string]bool{
	SurfaceBreadboard: true,
	SurfaceStripboard: true,
}

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Place options
	Surface       string `json:"surface,omitempty"`
	Rows          int    `json:"rows,omitempty"`    // stripboard only
	Columns       int    `json:"columns,omitempty"` // board width
	ColumnCeiling int    `json:"column_ceiling,omitempty"`
	Gap           int    `json:"gap,omitempty"`
	MaxPerType    int    `json:"max_per_type,omitempty"`
	Refresh       bool   `json:"refresh,omitempty"` // bypass the cache

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // include singleton nets in diagrams

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the complete placed layout artifact.
	Layout Layout

	// BOMHash is the content hash of the validated input BOM.
	BOMHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ComponentCount int // instances requested by the BOM
	PlacedCount    int // instances that received addresses
	DroppedCount   int // instances truncated by space or per-type caps
	EnrichTime     time.Duration
	PlaceTime      time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SpecHits  int  // decoded specs served from cache
	LayoutHit bool // whether the layout came from cache
	RenderHit bool // whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSurface checks that a surface is valid.
func ValidateSurface(surface string) error {
	if !ValidSurfaces[surface] {
		return fmt.Errorf("invalid surface: %q (must be one of: breadboard, stripboard)", surface)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. Idempotent: calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForPlace(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForPlace validates and sets defaults for placement.
func (o *Options) ValidateForPlace() error {
	o.SetPlaceDefaults()
	return ValidateSurface(o.Surface)
}

// SetPlaceDefaults sets default values for placement.
func (o *Options) SetPlaceDefaults() {
	if o.Surface == "" {
		o.Surface = DefaultSurface
	}
	if o.Columns <= 0 {
		if o.Surface == SurfaceStripboard {
			o.Columns = board.DefaultStripboardColumns
		} else {
			o.Columns = board.DefaultBreadboardColumns
		}
	}
	if o.Rows <= 0 && o.Surface == SurfaceStripboard {
		o.Rows = board.DefaultStripboardRows
	}
	if o.MaxPerType <= 0 {
		o.MaxPerType = place.DefaultMaxPerType
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// IsBreadboard returns true if this targets the continuous-strip surface.
func (o *Options) IsBreadboard() bool {
	return o.Surface == "" || o.Surface == SurfaceBreadboard
}

// IsStripboard returns true if this targets the segmented-strip surface.
func (o *Options) IsStripboard() bool {
	return o.Surface == SurfaceStripboard
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Surface:       o.Surface,
		Rows:          o.Rows,
		Columns:       o.Columns,
		ColumnCeiling: o.ColumnCeiling,
		Gap:           o.Gap,
		MaxPerType:    o.MaxPerType,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
	}
}

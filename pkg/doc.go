// Package pkg provides the core libraries for Protoboard layout generation.
//
// # Overview
//
// Protoboard turns a bill of materials into a deterministic prototyping-board
// layout. The pkg directory is organized into five main areas:
//
//  1. [codec] - Component marking codecs (resistor bands, capacitor codes, diode parts)
//  2. [board] - Board surface topology (breadboard, stripboard)
//  3. [place] - Deterministic placement engines
//  4. [pipeline] - Orchestration (enrich → place → render)
//  5. [render] - Connectivity graphs and Graphviz output
//
// # Architecture
//
// The typical data flow through Protoboard:
//
//	BOM file (CSV/XLSX)
//	         ↓
//	    [bom] package (parse + validate records)
//	         ↓
//	    [codec] packages (decode values to canonical specs)
//	         ↓
//	    [place] engines (deterministic board placement)
//	         ↓
//	    [render] package (connectivity graph → DOT → SVG)
//
// # Quick Start
//
// Run the full pipeline over a BOM:
//
//	import (
//	    "context"
//	    "github.com/protolab/protoboard/pkg/bom"
//	    "github.com/protolab/protoboard/pkg/pipeline"
//	)
//
//	records, _ := (&bom.CSVReader{}).Read("timer.csv")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Execute(context.Background(), records, pipeline.Options{
//	    Surface: pipeline.SurfaceBreadboard,
//	    Formats: []string{pipeline.FormatSVG},
//	})
//
// # Main Packages
//
// [codec/resistor] - Color band decode/encode with E-series classification
// and free-text resistance parsing ("4k7", "0R22").
//
// [codec/capacitor] - Marking decode/encode: EIA three-digit codes,
// alphanumeric film codes, R-decimal values, electrolytic prints.
//
// [codec/diode] - Part-number resolution against a fixed diode/LED database
// with a lenient generic fallback.
//
// [board] - Address spaces and connectivity for the two surfaces: the
// breadboard's continuous strips and rails, the stripboard's cut-segmented
// copper rows.
//
// [place] - Shared instance expansion plus one engine per surface
// ([place/breadboard], [place/stripboard]). Placement is deterministic:
// equal inputs produce byte-equal layouts.
//
// [pipeline] - The enrich → place → render pipeline with per-stage caching.
// Used by both the CLI and the HTTP server so behavior stays consistent
// across entry points.
//
// [cache] - Content-addressed caching with file, Redis, and null backends.
//
// [store] - Layout and correction persistence (memory, MongoDB).
//
// [errors] - Structured errors with stable machine-readable codes.
//
// [codec]: https://pkg.go.dev/github.com/protolab/protoboard/pkg/codec
// [codec/resistor]: https://pkg.go.dev/github.com/protolab/protoboard/pkg/codec/resistor
// [codec/capacitor]: https://pkg.go.dev/github.com/protolab/protoboard/pkg/codec/capacitor
// [codec/diode]: https://pkg.go.dev/github.com/protolab/protoboard/pkg/codec/diode
// [board]: https://pkg.go.dev/github.com/protolab/protoboard/pkg/board
// [bom]: https://pkg.go.dev/github.com/protolab/protoboard/pkg/bom
// [place]: https://pkg.go.dev/github.com/protolab/protoboard/pkg/place
// [place/breadboard]: https://pkg.go.dev/github.com/protolab/protoboard/pkg/place/breadboard
// [place/stripboard]: https://pkg.go.dev/github.com/protolab/protoboard/pkg/place/stripboard
// [pipeline]: https://pkg.go.dev/github.com/protolab/protoboard/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/protolab/protoboard/pkg/render
// [cache]: https://pkg.go.dev/github.com/protolab/protoboard/pkg/cache
// [store]: https://pkg.go.dev/github.com/protolab/protoboard/pkg/store
// [errors]: https://pkg.go.dev/github.com/protolab/protoboard/pkg/errors
package pkg

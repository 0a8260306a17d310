// Package render draws board layouts as connectivity diagrams.
//
// # Overview
//
// This package transforms a placed layout into a net-level connectivity
// graph and renders it with Graphviz: components appear as boxes, shared
// connectivity nodes as small ellipses, and each component lead as an
// undirected edge between the two.
//
// # Usage
//
// Build a connectivity graph, convert it to DOT, then render:
//
//	dot := render.ToDOT(g, render.Options{Detailed: false})
//	svg, err := render.SVG(dot)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [SVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no external Graphviz installation is required.
package render

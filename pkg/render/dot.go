package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// Options configures connectivity diagram rendering.
type Options struct {
	// Detailed includes singleton nets in the diagram.
	// When false, only nets shared by two or more parts are drawn.
	Detailed bool
}

// ToDOT converts a connectivity graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [SVG].
//
// Parts resolved through the lenient generic fallback are rendered with
// dashed outlines and grey fill to distinguish them from database hits.
func ToDOT(g Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph connectivity {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, p := range g.Parts {
		attrs := []string{fmt.Sprintf("label=%q", p.Label)}
		if p.Generic {
			attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", p.ID, strings.Join(attrs, ", "))
	}

	nets := g.Nets
	if !opts.Detailed {
		nets = g.Shared()
	}

	buf.WriteString("\n")
	for _, n := range nets {
		fmt.Fprintf(&buf, "  %q [shape=ellipse, style=filled, fillcolor=\"#e8e8e8\", fontsize=10, label=%q];\n",
			netNodeID(n.ID), n.ID)
		for _, member := range n.Parts {
			fmt.Fprintf(&buf, "  %q -- %q;\n", member, netNodeID(n.ID))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// netNodeID namespaces net IDs so a net named like a reference designator
// can never collide with a part node.
func netNodeID(id string) string {
	return "net:" + id
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

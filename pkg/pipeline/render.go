package pipeline

import (
	"fmt"

	"github.com/protolab/protoboard/pkg/board"
	"github.com/protolab/protoboard/pkg/codec/capacitor"
	"github.com/protolab/protoboard/pkg/codec/resistor"
	"github.com/protolab/protoboard/pkg/render"
)

// Render generates output artifacts in the requested formats.
func Render(l Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)
	var dot string

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = MarshalLayout(l)
		case FormatDOT:
			if dot == "" {
				dot = render.ToDOT(ConnectivityGraph(l), render.Options{Detailed: opts.Detailed})
			}
			data = []byte(dot)
		case FormatSVG:
			if dot == "" {
				dot = render.ToDOT(ConnectivityGraph(l), render.Options{Detailed: opts.Detailed})
			}
			data, err = render.SVG(dot)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// ConnectivityGraph derives the net-level connectivity view of a layout:
// each part becomes a node, and each board connectivity node touched by at
// least one lead becomes a net.
func ConnectivityGraph(l Layout) render.Graph {
	var g render.Graph

	switch {
	case l.Breadboard != nil:
		surface := board.NewBreadboard(0)
		for _, p := range l.Breadboard.Placements {
			g.AddPart(render.Part{
				ID:      p.Instance.Ref,
				Label:   partLabel(l, p.Instance.Ref, p.Instance.Value),
				Generic: genericPart(l, p.Instance.Value),
			})
			for _, a := range p.Addresses {
				g.AddNet(render.Net{ID: breadboardNetID(surface, a), Parts: []string{p.Instance.Ref}})
			}
		}
		for _, j := range l.Breadboard.Jumpers {
			id := "W" + string(j.Rail)
			g.AddPart(render.Part{ID: id, Label: "jumper " + string(j.Rail)})
			g.AddNet(render.Net{ID: breadboardNetID(surface, j.From), Parts: []string{id}})
			g.AddNet(render.Net{ID: breadboardNetID(surface, j.To), Parts: []string{id}})
		}
	case l.Stripboard != nil:
		for _, p := range l.Stripboard.Placements {
			g.AddPart(render.Part{
				ID:      p.Instance.Ref,
				Label:   partLabel(l, p.Instance.Ref, p.Instance.Value),
				Generic: genericPart(l, p.Instance.Value),
			})
			for _, a := range p.Addresses {
				g.AddNet(render.Net{
					ID:    stripboardNetID(a, l.Stripboard.Cuts),
					Parts: []string{p.Instance.Ref},
				})
			}
		}
	}

	return g
}

// breadboardNetID names the connectivity node containing a. Rail nodes use
// the rail sign; grid nodes use the first address of the letter group.
func breadboardNetID(b *board.Breadboard, a board.BreadboardAddress) string {
	if a.IsRail() {
		return string(a.Rail)
	}
	node := b.Node(a)
	if len(node) == 0 {
		return a.String()
	}
	return node[0].String()
}

// stripboardNetID names the row segment containing a. Segments are
// numbered by how many cuts in the row sit at or left of the column;
// an address exactly on a cut is its own isolated node.
func stripboardNetID(a board.StripboardAddress, cuts []board.TrackCut) string {
	seg := 0
	for _, c := range cuts {
		if c.Row != a.Row {
			continue
		}
		if c.Column == a.Column {
			return fmt.Sprintf("r%dc%d", a.Row, a.Column)
		}
		if c.Column < a.Column {
			seg++
		}
	}
	return fmt.Sprintf("r%ds%d", a.Row, seg)
}

// partLabel builds a display label from the designator and, when the spec
// resolved, the normalized value.
func partLabel(l Layout, ref, value string) string {
	for _, s := range l.Specs {
		if s.Value != value {
			continue
		}
		switch {
		case s.Resistor != nil:
			return ref + "\n" + resistor.FormatOhms(s.Resistor.Ohms)
		case s.Capacitor != nil:
			return ref + "\n" + capacitor.FormatPicofarads(s.Capacitor.Picofarads)
		case s.Diode != nil:
			return ref + "\n" + s.Diode.PartNumber
		}
	}
	if value == "" {
		return ref
	}
	return ref + "\n" + value
}

// genericPart reports whether the record resolved through the lenient
// generic fallback.
func genericPart(l Layout, value string) bool {
	for _, s := range l.Specs {
		if s.Value == value && s.Diode != nil {
			return s.Diode.Generic
		}
	}
	return false
}

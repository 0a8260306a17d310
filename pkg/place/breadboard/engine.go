// Package breadboard places a BOM onto the continuous-strip surface.
//
// Packing is deterministic, greedy and left-to-right. Each component type
// owns a fixed row (or row pair) and packs sequentially with a fixed gap
// between instances. Resistors wrap to an alternate row when their first row
// fills past the column ceiling; every other type simply stops placing, and
// the extra instances are reported as dropped. After placement the engine
// derives at most one supply and one ground jumper; the derivation is a
// usability heuristic, not a verified electrical connection.
package breadboard

import (
	"github.com/protolab/protoboard/pkg/board"
	"github.com/protolab/protoboard/pkg/bom"
	"github.com/protolab/protoboard/pkg/place"
)

// Options configures a breadboard placement pass.
type Options struct {
	Columns       int // Board width in columns (default: 30)
	ColumnCeiling int // Packing stops or wraps past this column (default: Columns-1)
	Gap           int // Free columns between instances (default: 2)
	MaxPerType    int // Instance cap per component type (default: 8)
}

// WithDefaults returns a copy of Options with zero values replaced by
// defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Columns <= 0 {
		opts.Columns = board.DefaultBreadboardColumns
	}
	if opts.ColumnCeiling <= 0 || opts.ColumnCeiling > opts.Columns {
		opts.ColumnCeiling = opts.Columns - 1
	}
	if opts.Gap <= 0 {
		opts.Gap = 2
	}
	if opts.MaxPerType <= 0 {
		opts.MaxPerType = place.DefaultMaxPerType
	}
	return opts
}

// Placement is one component instance bound to its breadboard addresses.
type Placement struct {
	Instance    place.Instance            `json:"instance" bson:"instance"`
	Addresses   []board.BreadboardAddress `json:"addresses" bson:"addresses"`
	Orientation place.Orientation         `json:"orientation" bson:"orientation"`
}

// Jumper is a derived wire from a power rail to a grid address.
type Jumper struct {
	Rail board.Rail              `json:"rail" bson:"rail"`
	From board.BreadboardAddress `json:"from" bson:"from"`
	To   board.BreadboardAddress `json:"to" bson:"to"`
}

// Layout is the result of one placement pass.
type Layout struct {
	Placements []Placement               `json:"placements" bson:"placements"`
	Jumpers    []Jumper                  `json:"jumpers,omitempty" bson:"jumpers,omitempty"`
	Dropped    map[bom.ComponentType]int `json:"dropped,omitempty" bson:"dropped,omitempty"`
}

// Row assignments and spans per component type. Rows a-e sit below the
// center gap, f-j above it; ICs straddle the gap on rows e and f.
const (
	resistorRow    = byte('b')
	resistorAlt    = byte('i') // wrap target when row b fills
	capacitorRow   = byte('c')
	diodeRow       = byte('d')
	ledRow         = byte('g')
	transistorRow  = byte('h')
	icLowerRow     = byte('e')
	icUpperRow     = byte('f')
	startColumn    = 2
	resistorSpan   = 3 // columns between the two leads
	capacitorSpan  = 2
	diodeSpan      = 3
	ledSpan        = 1
	transistorSpan = 2 // three consecutive holes
)

// Place assigns breadboard addresses to every instance in the BOM.
//
// Types are processed in the fixed bom.PlacedTypes order and instances in
// BOM order, so an unchanged BOM always yields an identical layout. All
// cursor state lives in locals scoped to this call.
func Place(b bom.BOM, opts Options) Layout {
	opts = opts.WithDefaults()
	groups := b.ByType()

	layout := Layout{Dropped: map[bom.ComponentType]int{}}
	var firstIC, firstTransistor *Placement

	for _, t := range bom.PlacedTypes {
		records := groups[t]
		if len(records) == 0 {
			continue
		}
		instances, capped := place.Expand(records, opts.MaxPerType)
		if capped > 0 {
			layout.Dropped[t] += capped
		}

		switch t {
		case bom.TypeIC:
			placed, dropped := placeICs(instances, opts)
			layout.Placements = append(layout.Placements, placed...)
			layout.Dropped[t] += dropped
			if firstIC == nil && len(placed) > 0 {
				firstIC = &placed[0]
			}
		case bom.TypeTransistor:
			placed, dropped := placeRun(instances, transistorRow, transistorSpan, 0, opts)
			layout.Placements = append(layout.Placements, placed...)
			layout.Dropped[t] += dropped
			if firstTransistor == nil && len(placed) > 0 {
				firstTransistor = &placed[0]
			}
		case bom.TypeResistor:
			placed, dropped := placeRun(instances, resistorRow, resistorSpan, resistorAlt, opts)
			layout.Placements = append(layout.Placements, placed...)
			layout.Dropped[t] += dropped
		case bom.TypeCapacitor:
			placed, dropped := placeRun(instances, capacitorRow, capacitorSpan, 0, opts)
			layout.Placements = append(layout.Placements, placed...)
			layout.Dropped[t] += dropped
		case bom.TypeDiode:
			placed, dropped := placeRun(instances, diodeRow, diodeSpan, 0, opts)
			layout.Placements = append(layout.Placements, placed...)
			layout.Dropped[t] += dropped
		case bom.TypeLED:
			placed, dropped := placeRun(instances, ledRow, ledSpan, 0, opts)
			layout.Placements = append(layout.Placements, placed...)
			layout.Dropped[t] += dropped
		}
	}

	for t, n := range layout.Dropped {
		if n == 0 {
			delete(layout.Dropped, t)
		}
	}
	if len(layout.Dropped) == 0 {
		layout.Dropped = nil
	}

	layout.Jumpers = deriveJumpers(firstIC, firstTransistor)
	return layout
}

// placeRun packs two-lead (or three-hole transistor) instances along a
// single row, stepping left to right. A non-zero altRow enables one wrap to
// the alternate row when the primary row fills past the ceiling; otherwise
// further instances are dropped.
func placeRun(instances []place.Instance, row byte, span int, altRow byte, opts Options) ([]Placement, int) {
	var placed []Placement
	dropped := 0

	col := startColumn
	current := row
	for _, inst := range instances {
		if col+span > opts.ColumnCeiling {
			if altRow != 0 && current == row {
				current = altRow
				col = startColumn
			} else {
				dropped++
				continue
			}
		}

		var addrs []board.BreadboardAddress
		if inst.Type == bom.TypeTransistor {
			// Emitter, base, collector on three consecutive holes.
			for i := 0; i <= span; i++ {
				addrs = append(addrs, board.Grid(current, col+i))
			}
		} else {
			addrs = []board.BreadboardAddress{
				board.Grid(current, col),
				board.Grid(current, col+span),
			}
		}

		placed = append(placed, Placement{
			Instance:    inst,
			Addresses:   addrs,
			Orientation: place.Horizontal,
		})
		col += span + opts.Gap
	}

	return placed, dropped
}

// placeICs packs DIP packages straddling the center gap, one pin per column
// on rows e and f. Pin count is inferred from the value text.
func placeICs(instances []place.Instance, opts Options) ([]Placement, int) {
	var placed []Placement
	dropped := 0

	col := startColumn
	for _, inst := range instances {
		perSide := place.InferPinCount(inst.Value) / 2
		if col+perSide-1 > opts.ColumnCeiling {
			dropped++
			continue
		}

		addrs := make([]board.BreadboardAddress, 0, perSide*2)
		// Pins 1..N/2 left to right on the lower row, N/2+1..N right to
		// left on the upper row, matching DIP numbering.
		for i := 0; i < perSide; i++ {
			addrs = append(addrs, board.Grid(icLowerRow, col+i))
		}
		for i := perSide - 1; i >= 0; i-- {
			addrs = append(addrs, board.Grid(icUpperRow, col+i))
		}

		placed = append(placed, Placement{
			Instance:    inst,
			Addresses:   addrs,
			Orientation: place.Horizontal,
		})
		col += perSide + opts.Gap
	}

	return placed, dropped
}

// deriveJumpers returns at most one supply and one ground jumper.
//
// Routing preference: the first placed IC's inferred supply pins (VCC on
// the upper row, GND on the lower row, both at the first column), else the
// first transistor's outer pins, else none for passive-only BOMs. The
// result is a usability simplification, never a verified connection.
func deriveJumpers(firstIC, firstTransistor *Placement) []Jumper {
	switch {
	case firstIC != nil:
		first := firstIC.Addresses[0].Column
		return []Jumper{
			{
				Rail: board.RailPositive,
				From: board.RailAt(board.RailPositive, first),
				To:   board.Grid(icUpperRow, first),
			},
			{
				Rail: board.RailNegative,
				From: board.RailAt(board.RailNegative, first),
				To:   board.Grid(icLowerRow, first),
			},
		}
	case firstTransistor != nil:
		addrs := firstTransistor.Addresses
		return []Jumper{
			{
				Rail: board.RailPositive,
				From: board.RailAt(board.RailPositive, addrs[len(addrs)-1].Column),
				To:   addrs[len(addrs)-1],
			},
			{
				Rail: board.RailNegative,
				From: board.RailAt(board.RailNegative, addrs[0].Column),
				To:   addrs[0],
			},
		}
	default:
		return nil
	}
}

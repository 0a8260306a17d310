// Package stripboard places a BOM onto the segmented-strip surface.
//
// Copper strips run along rows, so the addressing rule is the inverse of
// the continuous-strip surface: the two leads of one component occupy the
// same column at two different rows. Packing order is transistors, then
// integrated circuits, then passives. The engine emits a deterministic set
// of track cuts: one pair isolating the supply row from the component
// area, plus two cuts flanking each transistor's base column. Cut
// derivation is a conservative fixed heuristic, not a short-circuit
// analysis.
package stripboard

import (
	"github.com/protolab/protoboard/pkg/board"
	"github.com/protolab/protoboard/pkg/bom"
	"github.com/protolab/protoboard/pkg/place"
)

// Options configures a stripboard placement pass.
type Options struct {
	Rows          int // Board height in rows (default: 16)
	Columns       int // Board width in columns (default: 39)
	ColumnCeiling int // Packing stops or wraps past this column (default: Columns-1)
	Gap           int // Free columns between instances (default: 2)
	MaxPerType    int // Instance cap per component type (default: 8)
}

// WithDefaults returns a copy of Options with zero values replaced by
// defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Rows <= 0 {
		opts.Rows = board.DefaultStripboardRows
	}
	if opts.Columns <= 0 {
		opts.Columns = board.DefaultStripboardColumns
	}
	if opts.ColumnCeiling <= 0 || opts.ColumnCeiling > opts.Columns-1 {
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

// Placement is one component instance bound to its stripboard addresses.
type Placement struct {
	Instance    place.Instance            `json:"instance" bson:"instance"`
	Addresses   []board.StripboardAddress `json:"addresses" bson:"addresses"`
	Orientation place.Orientation         `json:"orientation" bson:"orientation"`
}

// Layout is the result of one placement pass.
type Layout struct {
	Placements []Placement               `json:"placements" bson:"placements"`
	Cuts       []board.TrackCut          `json:"cuts,omitempty" bson:"cuts,omitempty"`
	Dropped    map[bom.ComponentType]int `json:"dropped,omitempty" bson:"dropped,omitempty"`
}

// Row assignments. Row 0 carries supply, row 1 takes the isolation cut
// pair, and the component area starts below it.
const (
	supplyRow         = 0
	isolationRow      = 1
	transistorTopRow  = 2 // collector, base, emitter on rows 2, 3, 4
	transistorBaseRow = 3
	icUpperRow        = 6
	icLowerRow        = 7
	passiveTopRow     = 9 // passives span rows 9-10, wrapping to 11-12, ...
	startColumn       = 1
	transistorStep    = 3
	passiveStep       = 2
)

// Place assigns stripboard addresses to every instance in the BOM and
// derives the track cuts the layout needs.
//
// Types are processed in the fixed bom.PlacedTypes order and instances in
// BOM order, so an unchanged BOM always yields an identical layout.
func Place(b bom.BOM, opts Options) Layout {
	opts = opts.WithDefaults()
	groups := b.ByType()

	layout := Layout{
		Dropped: map[bom.ComponentType]int{},
		Cuts: []board.TrackCut{
			{Row: isolationRow, Column: 0},
			{Row: isolationRow, Column: opts.Columns - 1},
		},
	}

	transistorCol := startColumn
	icCol := startColumn
	passiveCol := startColumn
	passiveRow := passiveTopRow

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
		case bom.TypeTransistor:
			for _, inst := range instances {
				if transistorCol+1 > opts.ColumnCeiling {
					layout.Dropped[t]++
					continue
				}
				layout.Placements = append(layout.Placements, Placement{
					Instance: inst,
					Addresses: []board.StripboardAddress{
						board.At(transistorTopRow, transistorCol),
						board.At(transistorBaseRow, transistorCol),
						board.At(transistorTopRow+2, transistorCol),
					},
					Orientation: place.Vertical,
				})
				layout.Cuts = append(layout.Cuts,
					board.TrackCut{Row: transistorBaseRow, Column: transistorCol - 1},
					board.TrackCut{Row: transistorBaseRow, Column: transistorCol + 1},
				)
				transistorCol += transistorStep
			}
		case bom.TypeIC:
			for _, inst := range instances {
				perSide := place.InferPinCount(inst.Value) / 2
				if icCol+perSide-1 > opts.ColumnCeiling {
					layout.Dropped[t]++
					continue
				}
				addrs := make([]board.StripboardAddress, 0, perSide*2)
				for i := 0; i < perSide; i++ {
					addrs = append(addrs, board.At(icLowerRow, icCol+i))
				}
				for i := perSide - 1; i >= 0; i-- {
					addrs = append(addrs, board.At(icUpperRow, icCol+i))
				}
				layout.Placements = append(layout.Placements, Placement{
					Instance:    inst,
					Addresses:   addrs,
					Orientation: place.Horizontal,
				})
				icCol += perSide + opts.Gap
			}
		case bom.TypeResistor, bom.TypeCapacitor, bom.TypeDiode, bom.TypeLED:
			for _, inst := range instances {
				if passiveCol > opts.ColumnCeiling {
					if passiveRow+3 < opts.Rows {
						passiveRow += 2
						passiveCol = startColumn
					} else {
						layout.Dropped[t]++
						continue
					}
				}
				layout.Placements = append(layout.Placements, Placement{
					Instance: inst,
					Addresses: []board.StripboardAddress{
						board.At(passiveRow, passiveCol),
						board.At(passiveRow+1, passiveCol),
					},
					Orientation: place.Vertical,
				})
				passiveCol += passiveStep
			}
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

	return layout
}

package pipeline

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/protolab/protoboard/pkg/bom"
	"github.com/protolab/protoboard/pkg/place/breadboard"
	"github.com/protolab/protoboard/pkg/place/stripboard"
)

// Layout is the serializable artifact of one placement pass: the validated
// BOM, its canonical specs, and the surface-specific placement result.
// Exactly one of Breadboard and Stripboard is set, matching Surface.
type Layout struct {
	ID         uuid.UUID          `json:"id" bson:"_id"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	Surface    string             `json:"surface" bson:"surface"`
	BOM        bom.BOM            `json:"bom" bson:"bom"`
	Specs      []CanonicalSpec    `json:"specs" bson:"specs"`
	Breadboard *breadboard.Layout `json:"breadboard,omitempty" bson:"breadboard,omitempty"`
	Stripboard *stripboard.Layout `json:"stripboard,omitempty" bson:"stripboard,omitempty"`
	Warnings   []string           `json:"warnings,omitempty" bson:"warnings,omitempty"`
}

// BuildLayout runs the placement engine for the requested surface and
// wraps the result in a Layout artifact. Truncated instances become
// warnings, never errors: a partial, legible layout beats none.
func BuildLayout(records bom.BOM, specs []CanonicalSpec, opts Options) (Layout, error) {
	if err := opts.ValidateForPlace(); err != nil {
		return Layout{}, err
	}

	l := Layout{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Surface:   opts.Surface,
		BOM:       records,
		Specs:     specs,
	}

	var dropped map[bom.ComponentType]int
	if opts.IsStripboard() {
		placed := stripboard.Place(records, stripboard.Options{
			Rows:          opts.Rows,
			Columns:       opts.Columns,
			ColumnCeiling: opts.ColumnCeiling,
			Gap:           opts.Gap,
			MaxPerType:    opts.MaxPerType,
		})
		l.Stripboard = &placed
		dropped = placed.Dropped
	} else {
		placed := breadboard.Place(records, breadboard.Options{
			Columns:       opts.Columns,
			ColumnCeiling: opts.ColumnCeiling,
			Gap:           opts.Gap,
			MaxPerType:    opts.MaxPerType,
		})
		l.Breadboard = &placed
		dropped = placed.Dropped
	}

	for _, t := range bom.PlacedTypes {
		if n := dropped[t]; n > 0 {
			l.Warnings = append(l.Warnings,
				fmt.Sprintf("%d %s instance(s) not placed: board space or per-type cap exhausted", n, t))
		}
	}
	for i, s := range specs {
		if s.Error != "" {
			l.Warnings = append(l.Warnings,
				fmt.Sprintf("record %d (%s %q): %s", i, s.Type, s.Value, s.Error))
		}
	}

	return l, nil
}

// Placed returns how many instances received addresses.
func (l Layout) Placed() int {
	switch {
	case l.Breadboard != nil:
		return len(l.Breadboard.Placements)
	case l.Stripboard != nil:
		return len(l.Stripboard.Placements)
	default:
		return 0
	}
}

// DroppedCount returns how many instances were truncated.
func (l Layout) DroppedCount() int {
	var dropped map[bom.ComponentType]int
	switch {
	case l.Breadboard != nil:
		dropped = l.Breadboard.Dropped
	case l.Stripboard != nil:
		dropped = l.Stripboard.Dropped
	}
	n := 0
	for _, d := range dropped {
		n += d
	}
	return n
}

// MarshalLayout serializes a layout artifact to JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.Marshal(l)
}

// UnmarshalLayout deserializes a layout artifact from JSON.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	return l, nil
}

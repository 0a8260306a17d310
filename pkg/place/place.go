// Package place holds the types shared by the two placement engines.
//
// Both engines consume a BOM grouped by declared type and deterministically
// assign board addresses to each component instance: identical input always
// produces an identical placement list. Running out of board space for a
// type truncates further placements of that type instead of failing the
// layout, because a partial, legible layout beats none.
package place

import (
	"strings"

	"github.com/protolab/protoboard/pkg/bom"
)

// Instance identifies one placed component: which BOM record it came from
// and which reference designator names it.
type Instance struct {
	Ref   string            `json:"ref" bson:"ref"`
	Type  bom.ComponentType `json:"type" bson:"type"`
	Value string            `json:"value" bson:"value"`
}

// Orientation describes how a placement sits on the board.
type Orientation string

// Orientations.
const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// DefaultMaxPerType caps how many instances of one component type a single
// placement pass accepts. The cap keeps the visual result legible; extra
// instances are counted as dropped, not errored.
const DefaultMaxPerType = 8

// highPinSubstrings maps value-text substrings of known larger packages to
// their pin count. Matching is case-insensitive and first-match-wins in the
// fixed order below.
var highPinSubstrings = []struct {
	substr string
	pins   int
}{
	{"4017", 16},
	{"4511", 16},
	{"4066", 14},
	{"324", 14},
	{"339", 14},
	{"556", 14},
	{"7400", 14},
	{"74hc", 14},
	{"74ls", 14},
}

// DefaultPinCount is the smallest supported IC package.
const DefaultPinCount = 8

// InferPinCount guesses an integrated circuit's pin count from its value
// text. Values matching none of the known high-pin-count substrings default
// to the smallest supported package.
func InferPinCount(value string) int {
	v := strings.ToLower(value)
	for _, e := range highPinSubstrings {
		if strings.Contains(v, e.substr) {
			return e.pins
		}
	}
	return DefaultPinCount
}

// Expand flattens a type group into its individual instances in BOM order,
// honoring each record's quantity and reference designators. The limit
// bounds the total instance count; the second return value reports how many
// instances the limit dropped.
func Expand(records []bom.ComponentRecord, limit int) ([]Instance, int) {
	var out []Instance
	dropped := 0
	for _, r := range records {
		for i := 0; i < r.Quantity; i++ {
			if len(out) >= limit {
				dropped++
				continue
			}
			out = append(out, Instance{Ref: r.Ref(i), Type: r.Type, Value: r.Value})
		}
	}
	return out, dropped
}

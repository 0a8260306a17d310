// Package resistor implements bidirectional conversion between resistor
// color-band sequences and resistance values.
//
// Decoding maps a 4- or 5-band color sequence to a resistance in ohms, a
// tolerance percentage, and a standard-series classification (E12 through
// E96). Encoding searches for a band sequence whose decoded value round-trips
// to the requested resistance within a tight relative error.
//
// All lookup tables are immutable constant data built once at package
// initialization; every operation is a pure function of its inputs.
package resistor

import (
	"strings"

	"github.com/protolab/protoboard/pkg/errors"
)

// Color identifies a resistor band color.
type Color string

// Band colors. Grey accepts the "gray" spelling via ParseColor.
const (
	Black  Color = "black"
	Brown  Color = "brown"
	Red    Color = "red"
	Orange Color = "orange"
	Yellow Color = "yellow"
	Green  Color = "green"
	Blue   Color = "blue"
	Violet Color = "violet"
	Grey   Color = "grey"
	White  Color = "white"
	Gold   Color = "gold"
	Silver Color = "silver"
)

// digitByColor maps significant-digit band colors to their digit value.
var digitByColor = map[Color]int{
	Black:  0,
	Brown:  1,
	Red:    2,
	Orange: 3,
	Yellow: 4,
	Green:  5,
	Blue:   6,
	Violet: 7,
	Grey:   8,
	White:  9,
}

// multiplierByColor maps multiplier band colors to their factor.
// Gold and silver are the sub-unity multipliers used for sub-10-ohm values.
var multiplierByColor = map[Color]float64{
	Black:  1,
	Brown:  1e1,
	Red:    1e2,
	Orange: 1e3,
	Yellow: 1e4,
	Green:  1e5,
	Blue:   1e6,
	Violet: 1e7,
	Grey:   1e8,
	White:  1e9,
	Gold:   0.1,
	Silver: 0.01,
}

// toleranceByColor maps tolerance band colors to their percentage.
var toleranceByColor = map[Color]float64{
	Brown:  1,
	Red:    2,
	Green:  0.5,
	Blue:   0.25,
	Violet: 0.1,
	Grey:   0.05,
	Gold:   5,
	Silver: 10,
}

// colorByMultiplier is the inverse of multiplierByColor, built once at init.
var colorByMultiplier = func() map[float64]Color {
	m := make(map[float64]Color, len(multiplierByColor))
	for c, f := range multiplierByColor {
		m[f] = c
	}
	return m
}()

// aliases maps alternate color spellings to their canonical form.
var aliases = map[string]Color{
	"gray":   Grey,
	"purple": Violet,
}

// ParseColor converts a free-text color name to its canonical Color.
// Matching is case-insensitive and accepts common alternate spellings
// ("gray", "purple"). Unknown names fail with UNSUPPORTED_COLOR.
func ParseColor(name string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if c, ok := aliases[s]; ok {
		return c, nil
	}
	c := Color(s)
	if _, ok := multiplierByColor[c]; ok {
		return c, nil
	}
	return "", errors.New(errors.ErrCodeUnsupportedColor, "unsupported band color %q", name)
}

// ParseColors converts a slice of free-text color names.
// The first unknown name fails the whole conversion.
func ParseColors(names []string) ([]Color, error) {
	out := make([]Color, len(names))
	for i, n := range names {
		c, err := ParseColor(n)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// Spec is the canonical decoded form of a resistor band sequence.
type Spec struct {
	Ohms             float64 `json:"ohms" bson:"ohms"`                                         // Resistance in ohms
	TolerancePercent float64 `json:"tolerance_percent,omitempty" bson:"tolerance_percent,omitempty"` // Tolerance as a percentage (e.g. 5 for ±5%)
	Series           Series  `json:"series,omitempty" bson:"series,omitempty"`                 // Matched standard series, or SeriesNone
	NearestE96       float64 `json:"nearest_e96,omitempty" bson:"nearest_e96,omitempty"`       // Nearest E96 ohm value when Series is SeriesNone
	Bands            []Color `json:"bands,omitempty" bson:"bands,omitempty"`                   // The bands that produced this spec
}

// Package capacitor implements bidirectional conversion between printed
// capacitor markings and capacitance values.
//
// Capacitor print codes are several overlapping, ambiguous grammars: an
// electrolytic direct form ("470uF 25V"), an R-decimal form where the unit
// letter stands in for the decimal point ("4n7"), an alphanumeric form with
// explicit unit letter ("47nK100"), and the EIA three-digit form ("473K100").
// Decoding tries them in that fixed order, most specific first, because each
// grammar is an ambiguous subset of the next.
//
// The capacitor type (ceramic, film, electrolytic) is inferred from the
// decoded magnitude by a documented heuristic unless the grammar already
// fixes it; callers with better knowledge can override the heuristic with an
// explicit hint.
package capacitor

import "math"

// Type classifies the capacitor construction.
type Type string

// Capacitor types. TypeUnknown means no grammar or heuristic applied.
const (
	TypeUnknown      Type = ""
	TypeCeramic      Type = "ceramic"
	TypeFilm         Type = "film"
	TypeElectrolytic Type = "electrolytic"
)

// Unit scale factors in picofarads.
const (
	Picofarad  = 1.0
	Nanofarad  = 1e3
	Microfarad = 1e6
)

// toleranceByLetter maps EIA tolerance code letters to percentages.
var toleranceByLetter = map[byte]float64{
	'D': 0.5,
	'F': 1,
	'G': 2,
	'J': 5,
	'K': 10,
	'M': 20,
	'Z': 80, // +80/-20, reported as the upper bound
}

// letterByTolerance is the inverse of toleranceByLetter, built once at init.
var letterByTolerance = func() map[float64]byte {
	m := make(map[float64]byte, len(toleranceByLetter))
	for l, pct := range toleranceByLetter {
		m[pct] = l
	}
	return m
}()

// Spec is the canonical decoded form of a capacitor marking.
type Spec struct {
	Picofarads       float64 `json:"picofarads" bson:"picofarads"`                                   // Capacitance in picofarads
	TolerancePercent float64 `json:"tolerance_percent,omitempty" bson:"tolerance_percent,omitempty"` // Tolerance percentage, 0 when the marking has none
	MaxVoltage       int     `json:"max_voltage,omitempty" bson:"max_voltage,omitempty"`             // Voltage rating in volts, 0 when the marking has none
	Type             Type    `json:"type,omitempty" bson:"type,omitempty"`                           // Construction type, fixed by grammar or inferred
	TypeInferred     bool    `json:"type_inferred,omitempty" bson:"type_inferred,omitempty"`         // True when Type came from the magnitude heuristic
	Marking          string  `json:"marking,omitempty" bson:"marking,omitempty"`                     // The marking that produced this spec
}

// classifyType infers the construction type from magnitude and voltage.
//
// The heuristic is deliberately approximate: at or above one microfarad the
// part is almost certainly electrolytic, below one nanofarad almost certainly
// ceramic, and the band between belongs to film. A voltage rating of 50V or
// more pushes borderline ceramic values toward film, since small ceramics are
// rarely voltage-marked.
func classifyType(picofarads float64, maxVoltage int) Type {
	switch {
	case picofarads >= Microfarad:
		return TypeElectrolytic
	case picofarads >= Nanofarad:
		return TypeFilm
	case maxVoltage >= 50:
		return TypeFilm
	default:
		return TypeCeramic
	}
}

// nearlyInteger reports whether v is within eps of a whole number.
func nearlyInteger(v, eps float64) bool {
	return math.Abs(v-math.Round(v)) <= eps
}

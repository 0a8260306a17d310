// Package diode resolves diode and LED part references to display attributes.
//
// Unlike the resistor and capacitor codecs, resolution is deliberately
// lenient: an unknown part number falls back to a generic signal-diode spec
// and an unknown LED color falls back to red, because showing a plausible
// part beats failing the whole layout over a reference the database does not
// carry. The fallback is distinguishable through the Generic flag.
package diode

import (
	"sort"
	"strings"
)

// Category classifies a diode part.
type Category string

// Diode categories.
const (
	CategorySignal    Category = "signal"
	CategoryRectifier Category = "rectifier"
	CategoryZener     Category = "zener"
	CategoryLED       Category = "led"
)

// Spec holds the resolved display attributes of a diode or LED.
type Spec struct {
	PartNumber  string   `json:"part_number" bson:"part_number"`                         // Canonical part number ("1N4148", "LED-RED-5MM")
	Category    Category `json:"category" bson:"category"`                               // Part category
	Voltage     float64  `json:"voltage,omitempty" bson:"voltage,omitempty"`             // Reverse or zener voltage in volts, 0 when n/a
	BodyColor   string   `json:"body_color,omitempty" bson:"body_color,omitempty"`       // Body color for display
	CathodeMark string   `json:"cathode_mark,omitempty" bson:"cathode_mark,omitempty"`   // Cathode marking color or style
	Generic     bool     `json:"generic,omitempty" bson:"generic,omitempty"`             // True when the lenient fallback produced this spec
}

// Body and mark color constants shared by the database entries.
const (
	bodyGlass  = "orange"
	bodyBlack  = "black"
	bodyZener  = "red"
	markBlack  = "black"
	markSilver = "silver"
	markFlat   = "flat"
)

// parts is the fixed part database. Keys are canonical part numbers after
// alias normalization.
var parts = map[string]Spec{
	// Small-signal diodes
	"1N4148": {PartNumber: "1N4148", Category: CategorySignal, Voltage: 100, BodyColor: bodyGlass, CathodeMark: markBlack},
	"1N914":  {PartNumber: "1N914", Category: CategorySignal, Voltage: 100, BodyColor: bodyGlass, CathodeMark: markBlack},
	"1N4448": {PartNumber: "1N4448", Category: CategorySignal, Voltage: 100, BodyColor: bodyGlass, CathodeMark: markBlack},
	"BAT85":  {PartNumber: "BAT85", Category: CategorySignal, Voltage: 30, BodyColor: bodyGlass, CathodeMark: markBlack},

	// Rectifiers, 1N400x with ascending reverse voltage
	"1N4001": {PartNumber: "1N4001", Category: CategoryRectifier, Voltage: 50, BodyColor: bodyBlack, CathodeMark: markSilver},
	"1N4002": {PartNumber: "1N4002", Category: CategoryRectifier, Voltage: 100, BodyColor: bodyBlack, CathodeMark: markSilver},
	"1N4003": {PartNumber: "1N4003", Category: CategoryRectifier, Voltage: 200, BodyColor: bodyBlack, CathodeMark: markSilver},
	"1N4004": {PartNumber: "1N4004", Category: CategoryRectifier, Voltage: 400, BodyColor: bodyBlack, CathodeMark: markSilver},
	"1N4005": {PartNumber: "1N4005", Category: CategoryRectifier, Voltage: 600, BodyColor: bodyBlack, CathodeMark: markSilver},
	"1N4006": {PartNumber: "1N4006", Category: CategoryRectifier, Voltage: 800, BodyColor: bodyBlack, CathodeMark: markSilver},
	"1N4007": {PartNumber: "1N4007", Category: CategoryRectifier, Voltage: 1000, BodyColor: bodyBlack, CathodeMark: markSilver},
	"1N5408": {PartNumber: "1N5408", Category: CategoryRectifier, Voltage: 1000, BodyColor: bodyBlack, CathodeMark: markSilver},

	// Zeners, 1N47xx with ascending zener voltage
	"1N4728": {PartNumber: "1N4728", Category: CategoryZener, Voltage: 3.3, BodyColor: bodyZener, CathodeMark: markBlack},
	"1N4729": {PartNumber: "1N4729", Category: CategoryZener, Voltage: 3.6, BodyColor: bodyZener, CathodeMark: markBlack},
	"1N4730": {PartNumber: "1N4730", Category: CategoryZener, Voltage: 3.9, BodyColor: bodyZener, CathodeMark: markBlack},
	"1N4731": {PartNumber: "1N4731", Category: CategoryZener, Voltage: 4.3, BodyColor: bodyZener, CathodeMark: markBlack},
	"1N4732": {PartNumber: "1N4732", Category: CategoryZener, Voltage: 4.7, BodyColor: bodyZener, CathodeMark: markBlack},
	"1N4733": {PartNumber: "1N4733", Category: CategoryZener, Voltage: 5.1, BodyColor: bodyZener, CathodeMark: markBlack},
	"1N4734": {PartNumber: "1N4734", Category: CategoryZener, Voltage: 5.6, BodyColor: bodyZener, CathodeMark: markBlack},
	"1N4735": {PartNumber: "1N4735", Category: CategoryZener, Voltage: 6.2, BodyColor: bodyZener, CathodeMark: markBlack},
	"1N4736": {PartNumber: "1N4736", Category: CategoryZener, Voltage: 6.8, BodyColor: bodyZener, CathodeMark: markBlack},
	"1N4737": {PartNumber: "1N4737", Category: CategoryZener, Voltage: 7.5, BodyColor: bodyZener, CathodeMark: markBlack},
	"1N4738": {PartNumber: "1N4738", Category: CategoryZener, Voltage: 8.2, BodyColor: bodyZener, CathodeMark: markBlack},
	"1N4739": {PartNumber: "1N4739", Category: CategoryZener, Voltage: 9.1, BodyColor: bodyZener, CathodeMark: markBlack},
	"1N4740": {PartNumber: "1N4740", Category: CategoryZener, Voltage: 10, BodyColor: bodyZener, CathodeMark: markBlack},
	"1N4742": {PartNumber: "1N4742", Category: CategoryZener, Voltage: 12, BodyColor: bodyZener, CathodeMark: markBlack},
	"1N4744": {PartNumber: "1N4744", Category: CategoryZener, Voltage: 15, BodyColor: bodyZener, CathodeMark: markBlack},
}

// ledColors is the set of LED colors the resolver knows how to display.
var ledColors = map[string]bool{
	"red":    true,
	"green":  true,
	"yellow": true,
	"orange": true,
	"blue":   true,
	"white":  true,
}

// ledSizes maps accepted size spellings to their canonical form.
var ledSizes = map[string]string{
	"3mm":  "3mm",
	"3":    "3mm",
	"5mm":  "5mm",
	"5":    "5mm",
	"10mm": "10mm",
	"10":   "10mm",
}

// genericSignal is the lenient fallback for unknown part numbers.
func genericSignal(part string) Spec {
	return Spec{
		PartNumber:  part,
		Category:    CategorySignal,
		Voltage:     100,
		BodyColor:   bodyGlass,
		CathodeMark: markBlack,
		Generic:     true,
	}
}

// Parts returns every entry of the fixed part database, sorted by category
// and then by ascending voltage so related parts group together.
func Parts() []Spec {
	out := make([]Spec, 0, len(parts))
	for _, spec := range parts {
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		if out[i].Voltage != out[j].Voltage {
			return out[i].Voltage < out[j].Voltage
		}
		return out[i].PartNumber < out[j].PartNumber
	})
	return out
}

// normalizePart canonicalizes a free-text part reference: uppercase, no
// spaces or dashes, and the common OCR confusion of a leading "IN" for "1N".
func normalizePart(part string) string {
	s := strings.ToUpper(strings.TrimSpace(part))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	if strings.HasPrefix(s, "IN") {
		s = "1N" + s[2:]
	}
	return s
}

// Resolve looks up a diode part number and returns its display attributes.
//
// Unknown part numbers return a generic signal-diode spec with Generic set
// rather than an error. A reference of the form "LED <color>" is routed to
// ResolveLED.
func Resolve(partNumber string) Spec {
	norm := normalizePart(partNumber)

	if strings.HasPrefix(norm, "LED") {
		rest := strings.TrimPrefix(norm, "LED")
		return ResolveLED(rest, "")
	}

	if spec, ok := parts[norm]; ok {
		return spec
	}
	return genericSignal(norm)
}

// ResolveLED returns the display attributes for an LED of the given color
// and size. Unknown colors default to red and unknown sizes to 5mm, both
// flagged through Generic.
func ResolveLED(color, size string) Spec {
	c := strings.ToLower(strings.TrimSpace(color))
	generic := false
	if !ledColors[c] {
		c = "red"
		generic = true
	}

	s, ok := ledSizes[strings.ToLower(strings.TrimSpace(size))]
	if !ok {
		s = "5mm"
	}

	return Spec{
		PartNumber:  "LED-" + strings.ToUpper(c) + "-" + strings.ToUpper(s),
		Category:    CategoryLED,
		BodyColor:   c,
		CathodeMark: markFlat,
		Generic:     generic,
	}
}

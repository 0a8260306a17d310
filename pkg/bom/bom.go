// Package bom defines the bill-of-materials records handed to the layout
// core and the readers that load them from files.
//
// A BOM is a list of component records: a declared type, free-text value,
// quantity and reference designators. Records are produced upstream (by the
// vision extraction step or a file reader) and are read-only inside the
// core; value text may be arbitrary free text and is only interpreted by the
// codecs.
package bom

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/protolab/protoboard/pkg/errors"
)

// ComponentType tags a BOM record with its declared component family.
type ComponentType string

// Component types. TypeUnknown marks records whose declared type could not
// be recognized; they are carried through but never placed.
const (
	TypeUnknown    ComponentType = ""
	TypeResistor   ComponentType = "resistor"
	TypeCapacitor  ComponentType = "capacitor"
	TypeDiode      ComponentType = "diode"
	TypeLED        ComponentType = "led"
	TypeTransistor ComponentType = "transistor"
	TypeIC         ComponentType = "ic"
)

// PlacedTypes lists the component types the placement engines handle, in
// the fixed order used for grouping. Order is load-bearing for deterministic
// layout output.
var PlacedTypes = []ComponentType{
	TypeResistor, TypeCapacitor, TypeDiode, TypeLED, TypeTransistor, TypeIC,
}

// typeAliases maps normalized free-text type tags to component types.
var typeAliases = map[string]ComponentType{
	"resistor":   TypeResistor,
	"resistors":  TypeResistor,
	"res":        TypeResistor,
	"r":          TypeResistor,
	"capacitor":  TypeCapacitor,
	"capacitors": TypeCapacitor,
	"cap":        TypeCapacitor,
	"c":          TypeCapacitor,
	"diode":      TypeDiode,
	"diodes":     TypeDiode,
	"d":          TypeDiode,
	"led":        TypeLED,
	"leds":       TypeLED,
	"transistor": TypeTransistor,
	"npn":        TypeTransistor,
	"pnp":        TypeTransistor,
	"q":          TypeTransistor,
	"ic":         TypeIC,
	"chip":       TypeIC,
	"u":          TypeIC,
}

// ParseType maps a free-text type tag to a ComponentType. Matching is
// case-insensitive and tolerates qualifiers ("electrolytic capacitor",
// "NPN transistor"). Unknown tags return TypeUnknown, not an error: the
// extraction step upstream produces arbitrary text.
func ParseType(text string) ComponentType {
	s := strings.ToLower(strings.TrimSpace(text))
	if t, ok := typeAliases[s]; ok {
		return t
	}
	// Qualified forms: the last word usually names the family.
	fields := strings.Fields(s)
	if len(fields) > 1 {
		if t, ok := typeAliases[fields[len(fields)-1]]; ok {
			return t
		}
	}
	return TypeUnknown
}

// ComponentRecord is one BOM line: a component family, its value text, how
// many are needed and which reference designators name the instances.
// Records are immutable inside the core.
type ComponentRecord struct {
	Type     ComponentType `json:"type" bson:"type"`
	Value    string        `json:"value" bson:"value"`
	Quantity int           `json:"quantity" bson:"quantity"`
	Refs     []string      `json:"refs,omitempty" bson:"refs,omitempty"`
}

// Validate checks the record invariants: quantity at least one and value
// text that passes the safety checks.
func (r ComponentRecord) Validate() error {
	if r.Quantity < 1 {
		return errors.New(errors.ErrCodeInvalidBOM,
			"quantity must be at least 1, got %d (value %q)", r.Quantity, r.Value)
	}
	if err := errors.ValidateValueText(r.Value); err != nil {
		return err
	}
	return nil
}

// Ref returns the reference designator for instance i of this record,
// falling back to a synthesized name when the BOM carries fewer designators
// than the quantity.
func (r ComponentRecord) Ref(i int) string {
	if i < len(r.Refs) {
		return r.Refs[i]
	}
	return fmt.Sprintf("%s%d", strings.ToUpper(prefixFor(r.Type)), i+1)
}

func prefixFor(t ComponentType) string {
	switch t {
	case TypeResistor:
		return "r"
	case TypeCapacitor:
		return "c"
	case TypeDiode:
		return "d"
	case TypeLED:
		return "led"
	case TypeTransistor:
		return "q"
	case TypeIC:
		return "ic"
	default:
		return "x"
	}
}

// BOM is an ordered list of component records.
type BOM []ComponentRecord

// Validate checks every record, reporting the first violation with its row.
func (b BOM) Validate() error {
	for i, r := range b {
		if err := r.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidBOM, err, "record %d", i)
		}
	}
	return nil
}

// ByType groups records by component type, preserving record order within
// each group. Iterate with PlacedTypes for deterministic output.
func (b BOM) ByType() map[ComponentType][]ComponentRecord {
	out := make(map[ComponentType][]ComponentRecord)
	for _, r := range b {
		out[r.Type] = append(out[r.Type], r)
	}
	return out
}

// Reader loads a BOM from a file.
type Reader interface {
	// Read loads the BOM at path.
	Read(path string) (BOM, error)
	// Supports reports whether this reader handles the given filename.
	Supports(filename string) bool
	// Format returns the format identifier (e.g. "csv", "xlsx").
	Format() string
}

// Detect finds a reader that supports the given file path.
// Returns an error if no reader matches.
func Detect(path string, readers ...Reader) (Reader, error) {
	name := filepath.Base(path)
	for _, r := range readers {
		if r.Supports(name) {
			return r, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported BOM file: %s", name)
}

// Readers returns the default reader set.
func Readers() []Reader {
	return []Reader{&CSVReader{}, &XLSXReader{}}
}

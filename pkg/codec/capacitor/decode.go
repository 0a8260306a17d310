package capacitor

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/protolab/protoboard/pkg/errors"
)

// Grammar regexes, most specific first. Each later grammar is an ambiguous
// superset of the earlier ones, so order is load-bearing.
var (
	// "470uF 25V", "4.7uF/50V", "10nF16V" — unit and voltage both mandatory.
	electrolyticRe = regexp.MustCompile(`^(?i)(\d+(?:\.\d+)?)\s*([pnuµ])F\s*[/,]?\s*(\d+)\s*V$`)

	// "4n7", "n47", "2u2" — the unit letter stands in for the decimal point.
	rDecimalRe = regexp.MustCompile(`^(?i)(\d*)([pnuµ])(\d+)$`)

	// "4R7", "4R7J" — R as decimal point, value in picofarads (EIA sub-10pF
	// style), optional tolerance letter and voltage.
	rPicofaradRe = regexp.MustCompile(`^(\d*)[rR](\d+)([BDFGJKMZ])?(\d{1,3})?[vV]?$`)

	// "47nK100", "0.1uF", "4n7J63", "u47K63" — explicit unit letter, optional
	// R-decimal digits, optional tolerance letter, optional voltage.
	alphanumericRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)?([pnuµPNU])(\d{1,3})?[fF]?([BDFGJKMZ])?(\d{1,3})?[vV]?$`)

	// "473K100", "104" — two significant digits plus a multiplier digit.
	eiaRe = regexp.MustCompile(`^(\d)(\d)(\d)([BDFGJKMZ])?(\d{1,3})?[vV]?$`)
)

// unitFactor maps a unit letter to its picofarad scale.
func unitFactor(letter string) float64 {
	switch strings.ToLower(letter) {
	case "p":
		return Picofarad
	case "n":
		return Nanofarad
	default: // "u" or "µ"
		return Microfarad
	}
}

// eiaMultiplier maps the EIA third digit to its factor. Digits 8 and 9 are
// the non-standard but defined sub-unity multipliers.
func eiaMultiplier(digit int) float64 {
	switch digit {
	case 8:
		return 0.01
	case 9:
		return 0.1
	default:
		return math.Pow(10, float64(digit))
	}
}

// Decode converts a printed capacitor marking to its canonical spec.
//
// Four grammars are attempted in fixed priority order: the electrolytic
// direct form, the R-decimal form, the alphanumeric form, and the EIA
// three-digit form. A marking that matches none of them fails with
// UNRECOGNIZED_MARKING carrying the offending input.
func Decode(marking string) (Spec, error) {
	return DecodeHint(marking, TypeUnknown)
}

// DecodeHint is Decode with an explicit construction-type hint. The hint
// overrides the magnitude heuristic but never a type fixed by the grammar
// itself (an electrolytic direct-form marking stays electrolytic).
func DecodeHint(marking string, hint Type) (Spec, error) {
	text := strings.TrimSpace(marking)
	if text == "" {
		return Spec{}, errors.New(errors.ErrCodeUnrecognizedMarking, "empty marking")
	}

	for _, try := range []func(string) (Spec, bool){
		decodeElectrolytic,
		decodeRDecimal,
		decodeAlphanumeric,
		decodeEIA,
	} {
		spec, ok := try(text)
		if !ok {
			continue
		}
		spec.Marking = marking
		if spec.TypeInferred && hint != TypeUnknown {
			spec.Type = hint
			spec.TypeInferred = false
		}
		return spec, nil
	}

	return Spec{}, errors.New(errors.ErrCodeUnrecognizedMarking,
		"no marking grammar matches %q", marking)
}

func decodeElectrolytic(text string) (Spec, bool) {
	m := electrolyticRe.FindStringSubmatch(text)
	if m == nil {
		return Spec{}, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Spec{}, false
	}
	voltage, err := strconv.Atoi(m[3])
	if err != nil {
		return Spec{}, false
	}
	return Spec{
		Picofarads:       value * unitFactor(m[2]),
		TolerancePercent: 20, // direct-form electrolytics carry no tolerance mark
		MaxVoltage:       voltage,
		Type:             TypeElectrolytic,
	}, true
}

func decodeRDecimal(text string) (Spec, bool) {
	if m := rDecimalRe.FindStringSubmatch(text); m != nil {
		pf, ok := rDecimalValue(m[1], m[3], unitFactor(m[2]))
		if !ok {
			return Spec{}, false
		}
		return Spec{
			Picofarads:   pf,
			Type:         classifyType(pf, 0),
			TypeInferred: true,
		}, true
	}
	if m := rPicofaradRe.FindStringSubmatch(text); m != nil {
		pf, ok := rDecimalValue(m[1], m[2], Picofarad)
		if !ok {
			return Spec{}, false
		}
		spec := Spec{Picofarads: pf}
		if m[3] != "" {
			spec.TolerancePercent = toleranceByLetter[m[3][0]]
		}
		if m[4] != "" {
			spec.MaxVoltage, _ = strconv.Atoi(m[4])
		}
		spec.Type = classifyType(pf, spec.MaxVoltage)
		spec.TypeInferred = true
		return spec, true
	}
	return Spec{}, false
}

// rDecimalValue assembles a value from the digits on either side of the
// unit letter, e.g. ("4", "7") → 4.7.
func rDecimalValue(whole, frac string, factor float64) (float64, bool) {
	if whole == "" {
		whole = "0"
	}
	v, err := strconv.ParseFloat(whole+"."+frac, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v * factor, true
}

func decodeAlphanumeric(text string) (Spec, bool) {
	m := alphanumericRe.FindStringSubmatch(text)
	if m == nil {
		return Spec{}, false
	}
	if m[1] == "" && m[3] == "" {
		return Spec{}, false
	}

	// A fractional significand and R-decimal digits are mutually exclusive.
	if m[3] != "" && strings.Contains(m[1], ".") {
		return Spec{}, false
	}

	number := m[1]
	if m[3] != "" {
		if number == "" {
			number = "0"
		}
		number = number + "." + m[3]
	}
	value, err := strconv.ParseFloat(number, 64)
	if err != nil || value <= 0 {
		return Spec{}, false
	}

	spec := Spec{Picofarads: value * unitFactor(m[2])}
	if m[4] != "" {
		spec.TolerancePercent = toleranceByLetter[m[4][0]]
	}
	if m[5] != "" {
		spec.MaxVoltage, _ = strconv.Atoi(m[5])
	}
	spec.Type = classifyType(spec.Picofarads, spec.MaxVoltage)
	spec.TypeInferred = true
	return spec, true
}

func decodeEIA(text string) (Spec, bool) {
	m := eiaRe.FindStringSubmatch(text)
	if m == nil {
		return Spec{}, false
	}

	d1 := int(m[1][0] - '0')
	d2 := int(m[2][0] - '0')
	d3 := int(m[3][0] - '0')

	pf := float64(d1*10+d2) * eiaMultiplier(d3)
	if pf <= 0 {
		return Spec{}, false
	}

	spec := Spec{Picofarads: pf}
	if m[4] != "" {
		spec.TolerancePercent = toleranceByLetter[m[4][0]]
	}
	if m[5] != "" {
		spec.MaxVoltage, _ = strconv.Atoi(m[5])
	}
	spec.Type = classifyType(spec.Picofarads, spec.MaxVoltage)
	spec.TypeInferred = true
	return spec, true
}

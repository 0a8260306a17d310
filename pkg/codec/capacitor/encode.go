package capacitor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/protolab/protoboard/pkg/errors"
)

// Value carries a capacitance magnitude in exactly one unit. Supplying zero
// or more than one unit is an error: the caller must commit to a unit rather
// than have the encoder guess.
type Value struct {
	Picofarads  float64
	Nanofarads  float64
	Microfarads float64
}

// picofarads resolves the single supplied unit to picofarads.
func (v Value) picofarads() (float64, error) {
	var pf float64
	supplied := 0
	if v.Picofarads > 0 {
		supplied++
		pf = v.Picofarads
	}
	if v.Nanofarads > 0 {
		supplied++
		pf = v.Nanofarads * Nanofarad
	}
	if v.Microfarads > 0 {
		supplied++
		pf = v.Microfarads * Microfarad
	}
	if supplied != 1 {
		return 0, errors.New(errors.ErrCodeAmbiguousUnit,
			"exactly one magnitude unit required, got %d", supplied)
	}
	return pf, nil
}

// Marking holds the printable codes produced by Encode.
type Marking struct {
	// EIA is the three-digit code ("473K100"), or the R-decimal sub-10pF
	// fallback ("4R7"). Empty when no decade multiplier rounds the
	// significand cleanly to an integer in [10,99].
	EIA string
	// Alphanumeric is the full film code ("47nK100"), using the most
	// natural unit and R-decimal style for non-integer significands.
	Alphanumeric string
}

// encodeEpsilon is the relative error accepted for a "clean" EIA significand.
const encodeEpsilon = 1e-6

// Encode produces the printable markings for a capacitance.
//
// tolerancePercent zero means the conventional 10% default. The tolerance
// must map to a code letter, otherwise UNSUPPORTED_TOLERANCE. maxVoltage
// zero omits the voltage digits. A value the alphanumeric grammar cannot
// express within 1% fails with VALUE_NOT_REPRESENTABLE.
func Encode(v Value, tolerancePercent float64, maxVoltage int) (Marking, error) {
	pf, err := v.picofarads()
	if err != nil {
		return Marking{}, err
	}

	if tolerancePercent == 0 {
		tolerancePercent = 10
	}
	letter, ok := letterByTolerance[tolerancePercent]
	if !ok {
		return Marking{}, errors.New(errors.ErrCodeUnsupportedTolerance,
			"no tolerance letter for %v%%", tolerancePercent)
	}

	suffix := string(letter)
	if maxVoltage > 0 {
		suffix += strconv.Itoa(maxVoltage)
	}

	alpha, err := encodeAlphanumeric(pf)
	if err != nil {
		return Marking{}, err
	}

	m := Marking{Alphanumeric: alpha + suffix}
	if eia, ok := encodeEIA(pf); ok {
		m.EIA = eia + suffix
	}
	return m, nil
}

// encodeEIA produces the bare three-digit code, or the R-decimal fallback
// for sub-10-picofarad values. Reports false when no decade multiplier
// rounds the significand cleanly to an integer in [10,99].
func encodeEIA(pf float64) (string, bool) {
	if pf < 10 {
		// Two significant digits with R as the decimal point ("4R7", "R47").
		rendered := renderPointed(pf, 'R')
		if rt, ok := parsePointed(rendered, 'R'); ok && relErr(rt, pf) <= 0.01 {
			return rendered, true
		}
		return "", false
	}

	for d := 0; d <= 7; d++ {
		mult := math.Pow(10, float64(d))
		sig := int(math.Round(pf / mult))
		if sig < 10 || sig > 99 {
			continue
		}
		if relErr(float64(sig)*mult, pf) > encodeEpsilon {
			continue
		}
		return fmt.Sprintf("%d%d", sig, d), true
	}
	return "", false
}

// encodeAlphanumeric produces the bare value-plus-unit code, choosing the
// most natural unit and R-decimal style for non-integer significands.
func encodeAlphanumeric(pf float64) (string, error) {
	var unit byte
	var factor float64
	switch {
	case pf >= 0.1*Microfarad:
		unit, factor = 'u', Microfarad
	case pf >= 0.1*Nanofarad:
		unit, factor = 'n', Nanofarad
	default:
		unit, factor = 'p', Picofarad
	}

	rendered := renderPointed(pf/factor, unit)
	rt, ok := parsePointed(rendered, unit)
	if !ok || relErr(rt*factor, pf) > 0.01 {
		return "", errors.New(errors.ErrCodeValueNotRepresentable,
			"%v pF has no alphanumeric representation", pf)
	}
	return rendered, nil
}

// renderPointed formats a significand with the given letter standing in for
// the decimal point: 4.7→"4n7", 47→"47n", 0.47→"n47". At most three
// fractional digits are kept.
func renderPointed(sig float64, letter byte) string {
	s := strconv.FormatFloat(sig, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	whole, frac, found := strings.Cut(s, ".")
	if whole == "0" {
		whole = ""
	}
	if !found || frac == "" {
		return whole + string(letter)
	}
	return whole + string(letter) + frac
}

// parsePointed reverses renderPointed for the round-trip check.
func parsePointed(s string, letter byte) (float64, bool) {
	whole, frac, found := strings.Cut(s, string(letter))
	if !found {
		return 0, false
	}
	if whole == "" {
		whole = "0"
	}
	if frac == "" {
		frac = "0"
	}
	v, err := strconv.ParseFloat(whole+"."+frac, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func relErr(got, want float64) float64 {
	if want == 0 {
		return math.Inf(1)
	}
	return math.Abs(got-want) / want
}

// FormatPicofarads renders a capacitance with a conventional unit suffix,
// e.g. "47nF" or "4.7µF". Used for display and error messages.
func FormatPicofarads(pf float64) string {
	switch {
	case pf >= Microfarad:
		return trimZero(pf/Microfarad) + "µF"
	case pf >= Nanofarad:
		return trimZero(pf/Nanofarad) + "nF"
	default:
		return trimZero(pf) + "pF"
	}
}

func trimZero(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

package resistor

import (
	"fmt"
	"math"

	"github.com/protolab/protoboard/pkg/errors"
)

// BandForm selects the band count the encoder targets.
type BandForm int

const (
	// FormAuto prefers the 4-band form and falls back to 5-band when the
	// value needs three significant digits.
	FormAuto BandForm = iota
	// Form4 forces a 4-band (two significant digit) encoding.
	Form4
	// Form5 forces a 5-band (three significant digit) encoding.
	Form5
)

// encodeEpsilon is the maximum relative error accepted when verifying that
// a candidate band sequence round-trips to the requested resistance.
const encodeEpsilon = 1e-6

// Encode produces the band sequence for a resistance and tolerance.
//
// The multiplier search covers integer powers of ten plus the ×0.1 and ×0.01
// bands used for sub-10-ohm values, accepting the first multiplier whose
// rounded significand lands in the target digit range and round-trips within
// encodeEpsilon. tolerancePercent must be one of the supported tolerance
// band values, otherwise UNSUPPORTED_TOLERANCE; a value no multiplier can
// represent fails with VALUE_NOT_REPRESENTABLE.
func Encode(ohms, tolerancePercent float64, form BandForm) ([]Color, error) {
	tolColor, err := toleranceColor(tolerancePercent)
	if err != nil {
		return nil, err
	}
	if ohms <= 0 || math.IsInf(ohms, 0) || math.IsNaN(ohms) {
		return nil, errors.New(errors.ErrCodeValueNotRepresentable,
			"resistance %v ohm is not encodable", ohms)
	}

	switch form {
	case Form4:
		return encodeDigits(ohms, 2, tolColor)
	case Form5:
		return encodeDigits(ohms, 3, tolColor)
	default:
		if bands, err := encodeDigits(ohms, 2, tolColor); err == nil {
			return bands, nil
		}
		return encodeDigits(ohms, 3, tolColor)
	}
}

// encodeDigits searches for a multiplier that normalizes ohms into an
// integer significand with the given digit count.
func encodeDigits(ohms float64, digits int, tolColor Color) ([]Color, error) {
	lo := int(math.Pow(10, float64(digits-1))) // 10 or 100
	hi := lo*10 - 1                            // 99 or 999
	if digits == 3 {
		// Sub-ohm values have no x0.001 band, so the 5-band form writes
		// them with a leading black digit (047 x silver = 0.47). The
		// ascending exponent scan still prefers a full significand when
		// one exists.
		lo /= 10
	}

	for exp := -2; exp <= 9; exp++ {
		mult := math.Pow(10, float64(exp))
		sig := int(math.Round(ohms / mult))
		if sig < lo || sig > hi {
			continue
		}
		if rel := math.Abs(float64(sig)*mult-ohms) / ohms; rel > encodeEpsilon {
			continue
		}
		mc, ok := colorByMultiplier[mult]
		if !ok {
			continue
		}
		bands := make([]Color, 0, digits+2)
		for _, d := range splitDigits(sig, digits) {
			bands = append(bands, digitColor(d))
		}
		bands = append(bands, mc, tolColor)
		return bands, nil
	}

	return nil, errors.New(errors.ErrCodeValueNotRepresentable,
		"no %d-digit multiplier represents %s", digits, FormatOhms(ohms))
}

// toleranceColor maps a tolerance percentage to its band color.
func toleranceColor(pct float64) (Color, error) {
	for c, v := range toleranceByColor {
		if math.Abs(v-pct) < 1e-9 {
			return c, nil
		}
	}
	return "", errors.New(errors.ErrCodeUnsupportedTolerance,
		"no tolerance band for %v%%", pct)
}

// splitDigits expands an integer into its decimal digits, most significant
// first.
func splitDigits(n, count int) []int {
	out := make([]int, count)
	for i := count - 1; i >= 0; i-- {
		out[i] = n % 10
		n /= 10
	}
	return out
}

// digitColor is the inverse digit lookup. The digit is always 0-9 here.
func digitColor(d int) Color {
	for c, v := range digitByColor {
		if v == d {
			return c
		}
	}
	return Black
}

// FormatOhms renders a resistance with a conventional magnitude suffix,
// e.g. "4.7kΩ" or "220Ω". Used for display and error messages.
func FormatOhms(ohms float64) string {
	switch {
	case ohms >= 1e6:
		return trimZero(ohms/1e6) + "MΩ"
	case ohms >= 1e3:
		return trimZero(ohms/1e3) + "kΩ"
	default:
		return trimZero(ohms) + "Ω"
	}
}

func trimZero(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

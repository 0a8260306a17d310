package resistor

import (
	"github.com/protolab/protoboard/pkg/errors"
)

// Decode converts a 4- or 5-band color sequence to its canonical spec.
//
// For 5 bands the first three are significant digits, the fourth is the
// multiplier and the fifth is the tolerance. For 4 bands the first two are
// significant digits, the third is the multiplier and the fourth is the
// tolerance. Any other band count fails with INVALID_BAND_COUNT; a color
// that cannot serve its position fails with UNSUPPORTED_COLOR.
func Decode(bands []Color) (Spec, error) {
	var digitCount int
	switch len(bands) {
	case 4:
		digitCount = 2
	case 5:
		digitCount = 3
	default:
		return Spec{}, errors.New(errors.ErrCodeInvalidBandCount,
			"expected 4 or 5 bands, got %d", len(bands))
	}

	sig := 0
	for _, b := range bands[:digitCount] {
		d, ok := digitByColor[b]
		if !ok {
			return Spec{}, errors.New(errors.ErrCodeUnsupportedColor,
				"color %q is not a digit band", b)
		}
		sig = sig*10 + d
	}

	mult, ok := multiplierByColor[bands[digitCount]]
	if !ok {
		return Spec{}, errors.New(errors.ErrCodeUnsupportedColor,
			"color %q is not a multiplier band", bands[digitCount])
	}

	tol, ok := toleranceByColor[bands[digitCount+1]]
	if !ok {
		return Spec{}, errors.New(errors.ErrCodeUnsupportedColor,
			"color %q is not a tolerance band", bands[digitCount+1])
	}

	ohms := float64(sig) * mult
	series, nearest := classify(ohms)

	return Spec{
		Ohms:             ohms,
		TolerancePercent: tol,
		Series:           series,
		NearestE96:       nearest,
		Bands:            append([]Color(nil), bands...),
	}, nil
}

// DecodeNames is Decode over free-text color names.
func DecodeNames(names []string) (Spec, error) {
	bands, err := ParseColors(names)
	if err != nil {
		return Spec{}, err
	}
	return Decode(bands)
}

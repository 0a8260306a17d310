package resistor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/protolab/protoboard/pkg/errors"
)

// Multipliers for resistance unit letters. R marks the decimal point in
// letter-as-point notation and scales by 1.
var unitMultipliers = map[byte]float64{
	'R': 1,
	'K': 1e3,
	'M': 1e6,
	'G': 1e9,
}

var (
	plainOhmsRe  = regexp.MustCompile(`^(\d+(?:\.\d+)?)$`)
	suffixOhmsRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)([rRkKmMgG])$`)
	pointOhmsRe  = regexp.MustCompile(`^(\d*)([rRkKmMgG])(\d+)$`)
)

// ParseOhms parses free-text resistance notation into ohms. Accepted forms:
// plain numbers ("4700", "4.7"), unit suffixes ("4.7k", "1M", "470R"), and
// letter-as-point notation ("4k7", "0R22"). A trailing ohm sign or "ohm"
// word is tolerated. Lowercase m is treated as mega, not milli; sub-ohm
// parts are written in R notation.
func ParseOhms(text string) (float64, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimSuffix(s, "Ω")
	s = strings.TrimSuffix(strings.ToLower(s), "ohm")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New(errors.ErrCodeInvalidInput, "empty resistance value")
	}

	if m := plainOhmsRe.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse resistance %s", text)
		}
		return v, nil
	}

	if m := suffixOhmsRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v * unitMultipliers[upper(m[2][0])], nil
	}

	if m := pointOhmsRe.FindStringSubmatch(s); m != nil {
		whole := m[1]
		if whole == "" {
			whole = "0"
		}
		v, err := strconv.ParseFloat(whole+"."+m[3], 64)
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse resistance %s", text)
		}
		return v * unitMultipliers[upper(m[2][0])], nil
	}

	return 0, errors.New(errors.ErrCodeInvalidInput, "unrecognized resistance value: %s", text)
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

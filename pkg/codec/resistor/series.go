package resistor

import "math"

// Series identifies a standard preferred-value series.
type Series string

// Standard series, coarsest first. Classification tests membership in this
// order and reports the first series that contains the value.
const (
	SeriesNone Series = ""
	E12        Series = "E12"
	E24        Series = "E24"
	E48        Series = "E48"
	E96        Series = "E96"
)

// e12 and e24 use the historically rounded published values, which deviate
// from the pure logarithmic formula (e.g. 2.7, 3.3, 4.7).
var e12 = []float64{1.0, 1.2, 1.5, 1.8, 2.2, 2.7, 3.3, 3.9, 4.7, 5.6, 6.8, 8.2}

var e24 = []float64{
	1.0, 1.1, 1.2, 1.3, 1.5, 1.6, 1.8, 2.0, 2.2, 2.4, 2.7, 3.0,
	3.3, 3.6, 3.9, 4.3, 4.7, 5.1, 5.6, 6.2, 6.8, 7.5, 8.2, 9.1,
}

// e48 and e96 follow the logarithmic formula rounded to three significant
// figures, which matches the published tables for every entry.
var (
	e48 = computedSeries(48)
	e96 = computedSeries(96)
)

func computedSeries(n int) []float64 {
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		v := math.Pow(10, float64(i)/float64(n))
		vals[i] = math.Round(v*100) / 100
	}
	return vals
}

// seriesOrder lists the series from coarsest to finest for classification.
var seriesOrder = []struct {
	series Series
	values []float64
}{
	{E12, e12},
	{E24, e24},
	{E48, e48},
	{E96, e96},
}

// seriesEpsilon is the relative error within which a normalized significand
// counts as a member of a series value. Series spacing is at least ~2.4%
// (E96), so 0.1% cannot straddle two adjacent entries.
const seriesEpsilon = 1e-3

// normalize splits a positive value into a significand in [1,10) and the
// matching power of ten.
func normalize(v float64) (sig float64, exp int) {
	exp = int(math.Floor(math.Log10(v)))
	sig = v / math.Pow(10, float64(exp))
	// Guard the boundaries against floating-point drift in Log10.
	if sig >= 10 {
		sig /= 10
		exp++
	}
	if sig < 1 {
		sig *= 10
		exp--
	}
	return sig, exp
}

// Classify returns the coarsest standard series containing ohms, or
// SeriesNone plus the nearest E96 ohm value as a display hint.
func Classify(ohms float64) (Series, float64) {
	return classify(ohms)
}

// classify returns the coarsest standard series containing ohms, or
// SeriesNone plus the nearest E96 ohm value as a display hint.
func classify(ohms float64) (Series, float64) {
	if ohms <= 0 {
		return SeriesNone, 0
	}
	sig, exp := normalize(ohms)

	for _, s := range seriesOrder {
		for _, v := range s.values {
			if math.Abs(sig-v)/v <= seriesEpsilon {
				return s.series, 0
			}
		}
	}

	nearest := e96[0]
	best := math.Abs(sig - nearest)
	for _, v := range e96[1:] {
		if d := math.Abs(sig - v); d < best {
			best = d
			nearest = v
		}
	}
	// The wrap case: a significand like 9.9 is closer to the next decade's 1.0.
	if d := math.Abs(sig - 10); d < best {
		nearest = 10
	}
	return SeriesNone, nearest * math.Pow(10, float64(exp))
}

package resistor

import (
	"math"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		bands   []Color
		ohms    float64
		tol     float64
		series  Series
		wantErr bool
	}{
		{
			name:   "47k 5% four band",
			bands:  []Color{Yellow, Violet, Orange, Gold},
			ohms:   47000,
			tol:    5,
			series: E12,
		},
		{
			name:   "10k 1% five band",
			bands:  []Color{Brown, Black, Black, Red, Brown},
			ohms:   10000,
			tol:    1,
			series: E12,
		},
		{
			name:   "4.7 ohm gold multiplier",
			bands:  []Color{Yellow, Violet, Gold, Gold},
			ohms:   4.7,
			tol:    5,
			series: E12,
		},
		{
			name:   "0.47 ohm silver multiplier",
			bands:  []Color{Yellow, Violet, Silver, Gold},
			ohms:   0.47,
			tol:    5,
			series: E12,
		},
		{
			name:   "5.1k E24",
			bands:  []Color{Green, Brown, Red, Gold},
			ohms:   5100,
			tol:    5,
			series: E24,
		},
		{
			name:   "4.64k E48 five band",
			bands:  []Color{Yellow, Blue, Yellow, Brown, Brown},
			ohms:   4640,
			tol:    1,
			series: E48,
		},
		{
			name:   "4.75k E96 five band",
			bands:  []Color{Yellow, Violet, Green, Brown, Brown},
			ohms:   4750,
			tol:    1,
			series: E96,
		},
		{
			name:    "three bands",
			bands:   []Color{Yellow, Violet, Orange},
			wantErr: true,
		},
		{
			name:    "six bands",
			bands:   []Color{Yellow, Violet, Orange, Gold, Gold, Gold},
			wantErr: true,
		},
		{
			name:    "gold digit band",
			bands:   []Color{Gold, Violet, Orange, Gold},
			wantErr: true,
		},
		{
			name:    "white tolerance band",
			bands:   []Color{Yellow, Violet, Orange, White},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Decode(tt.bands)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Decode(%v) succeeded, want error", tt.bands)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode(%v) failed: %v", tt.bands, err)
			}
			if math.Abs(spec.Ohms-tt.ohms) > tt.ohms*1e-9 {
				t.Errorf("Ohms = %v, want %v", spec.Ohms, tt.ohms)
			}
			if spec.TolerancePercent != tt.tol {
				t.Errorf("TolerancePercent = %v, want %v", spec.TolerancePercent, tt.tol)
			}
			if spec.Series != tt.series {
				t.Errorf("Series = %v, want %v", spec.Series, tt.series)
			}
		})
	}
}

func TestDecode_NearestE96Hint(t *testing.T) {
	// 4.44k is in no standard series; the nearest E96 significand is 4.42.
	spec, err := Decode([]Color{Yellow, Yellow, Yellow, Brown, Brown})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if spec.Series != SeriesNone {
		t.Fatalf("Series = %v, want SeriesNone", spec.Series)
	}
	if math.Abs(spec.NearestE96-4420) > 1 {
		t.Errorf("NearestE96 = %v, want 4420", spec.NearestE96)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		ohms    float64
		tol     float64
		form    BandForm
		want    []Color
		wantErr bool
	}{
		{
			name: "4.7k 5% auto picks four band",
			ohms: 4700,
			tol:  5,
			form: FormAuto,
			want: []Color{Yellow, Violet, Red, Gold},
		},
		{
			name: "47k 5% five band",
			ohms: 47000,
			tol:  5,
			form: Form5,
			want: []Color{Yellow, Violet, Black, Red, Gold},
		},
		{
			name: "4.7 ohm uses gold multiplier",
			ohms: 4.7,
			tol:  5,
			form: Form4,
			want: []Color{Yellow, Violet, Gold, Gold},
		},
		{
			name: "4.75k 1% needs five band",
			ohms: 4750,
			tol:  1,
			form: FormAuto,
			want: []Color{Yellow, Violet, Green, Brown, Brown},
		},
		{
			name: "sub-ohm five band leads with black",
			ohms: 0.47,
			tol:  5,
			form: Form5,
			want: []Color{Black, Yellow, Violet, Silver, Gold},
		},
		{
			name:    "unsupported tolerance",
			ohms:    4700,
			tol:     3,
			form:    FormAuto,
			wantErr: true,
		},
		{
			name:    "three digits do not fit four band",
			ohms:    4640,
			tol:     1,
			form:    Form4,
			wantErr: true,
		},
		{
			name:    "zero ohms",
			ohms:    0,
			tol:     5,
			form:    FormAuto,
			wantErr: true,
		},
		{
			name:    "four significant digits",
			ohms:    1234,
			tol:     1,
			form:    Form5,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.ohms, tt.tol, tt.form)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Encode(%v, %v) succeeded, want error", tt.ohms, tt.tol)
				}
				return
			}
			if err != nil {
				t.Fatalf("Encode(%v, %v) failed: %v", tt.ohms, tt.tol, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Encode = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Encode = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

// TestEncodeDecodeRoundTrip checks that decoding an encoded 5-band sequence
// recovers the resistance within 1% and the exact tolerance.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	tolerances := []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}
	values := []float64{0.47, 1, 4.7, 10, 22, 100, 330, 1000, 4640, 10000,
		47000, 221000, 1e6, 4.7e6, 10e6}

	for _, tol := range tolerances {
		for _, ohms := range values {
			bands, err := Encode(ohms, tol, Form5)
			if err != nil {
				t.Fatalf("Encode(%v, %v) failed: %v", ohms, tol, err)
			}
			spec, err := Decode(bands)
			if err != nil {
				t.Fatalf("Decode(%v) failed: %v", bands, err)
			}
			if rel := math.Abs(spec.Ohms-ohms) / ohms; rel > 0.01 {
				t.Errorf("round trip of %v ohm drifted to %v", ohms, spec.Ohms)
			}
			if spec.TolerancePercent != tol {
				t.Errorf("round trip tolerance = %v, want %v", spec.TolerancePercent, tol)
			}
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"red", Red, false},
		{"RED", Red, false},
		{" violet ", Violet, false},
		{"purple", Violet, false},
		{"gray", Grey, false},
		{"grey", Grey, false},
		{"pink", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		ohms   float64
		series Series
	}{
		{470, E12},
		{910, E24},
		{825, E48},
		{976, E96},
		{444, SeriesNone},
	}

	for _, tt := range tests {
		series, _ := classify(tt.ohms)
		if series != tt.series {
			t.Errorf("classify(%v) = %v, want %v", tt.ohms, series, tt.series)
		}
	}
}

func TestFormatOhms(t *testing.T) {
	tests := []struct {
		ohms float64
		want string
	}{
		{470, "470Ω"},
		{4700, "4.7kΩ"},
		{47000, "47kΩ"},
		{1e6, "1MΩ"},
		{4.7, "4.7Ω"},
	}

	for _, tt := range tests {
		if got := FormatOhms(tt.ohms); got != tt.want {
			t.Errorf("FormatOhms(%v) = %q, want %q", tt.ohms, got, tt.want)
		}
	}
}

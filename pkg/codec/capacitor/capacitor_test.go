package capacitor

import (
	"math"
	"testing"

	"github.com/protolab/protoboard/pkg/errors"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		marking string
		pf      float64
		tol     float64
		voltage int
		ctype   Type
		wantErr bool
	}{
		{
			name:    "EIA with tolerance and voltage",
			marking: "473K100",
			pf:      47000,
			tol:     10,
			voltage: 100,
			ctype:   TypeFilm,
		},
		{
			name:    "EIA plain ceramic",
			marking: "471",
			pf:      470,
			ctype:   TypeCeramic,
		},
		{
			name:    "EIA multiplier digit nine",
			marking: "229",
			pf:      2.2,
			ctype:   TypeCeramic,
		},
		{
			name:    "EIA multiplier digit eight",
			marking: "108",
			pf:      0.1,
			ctype:   TypeCeramic,
		},
		{
			name:    "r-decimal nanofarad",
			marking: "4n7",
			pf:      4700,
			ctype:   TypeFilm,
		},
		{
			name:    "r-decimal leading point",
			marking: "n47",
			pf:      470,
			ctype:   TypeCeramic,
		},
		{
			name:    "r-decimal microfarad",
			marking: "2u2",
			pf:      2.2e6,
			ctype:   TypeElectrolytic,
		},
		{
			name:    "r-decimal picofarad",
			marking: "4R7",
			pf:      4.7,
			ctype:   TypeCeramic,
		},
		{
			name:    "alphanumeric full film code",
			marking: "47nK100",
			pf:      47000,
			tol:     10,
			voltage: 100,
			ctype:   TypeFilm,
		},
		{
			name:    "alphanumeric decimal point",
			marking: "0.1uF",
			pf:      1e5,
			ctype:   TypeFilm,
		},
		{
			name:    "alphanumeric pointed with suffix",
			marking: "4n7J63",
			pf:      4700,
			tol:     5,
			voltage: 63,
			ctype:   TypeFilm,
		},
		{
			name:    "electrolytic direct form",
			marking: "470uF 25V",
			pf:      4.7e8,
			tol:     20,
			voltage: 25,
			ctype:   TypeElectrolytic,
		},
		{
			name:    "electrolytic compact",
			marking: "10uF16V",
			pf:      1e7,
			tol:     20,
			voltage: 16,
			ctype:   TypeElectrolytic,
		},
		{
			name:    "empty marking",
			marking: "",
			wantErr: true,
		},
		{
			name:    "unrecognized marking",
			marking: "hello",
			wantErr: true,
		},
		{
			name:    "bare digits too short",
			marking: "47",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Decode(tt.marking)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Decode(%q) succeeded, want error", tt.marking)
				}
				if !errors.Is(err, errors.ErrCodeUnrecognizedMarking) {
					t.Errorf("error code = %v, want UNRECOGNIZED_MARKING", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", tt.marking, err)
			}
			if math.Abs(spec.Picofarads-tt.pf) > tt.pf*1e-9 {
				t.Errorf("Picofarads = %v, want %v", spec.Picofarads, tt.pf)
			}
			if spec.TolerancePercent != tt.tol {
				t.Errorf("TolerancePercent = %v, want %v", spec.TolerancePercent, tt.tol)
			}
			if spec.MaxVoltage != tt.voltage {
				t.Errorf("MaxVoltage = %v, want %v", spec.MaxVoltage, tt.voltage)
			}
			if spec.Type != tt.ctype {
				t.Errorf("Type = %v, want %v", spec.Type, tt.ctype)
			}
		})
	}
}

func TestDecodeHint(t *testing.T) {
	t.Run("hint overrides heuristic", func(t *testing.T) {
		spec, err := DecodeHint("471", TypeFilm)
		if err != nil {
			t.Fatalf("DecodeHint failed: %v", err)
		}
		if spec.Type != TypeFilm {
			t.Errorf("Type = %v, want film", spec.Type)
		}
		if spec.TypeInferred {
			t.Error("TypeInferred = true after explicit hint")
		}
	})

	t.Run("hint does not override grammar-fixed type", func(t *testing.T) {
		spec, err := DecodeHint("470uF 25V", TypeCeramic)
		if err != nil {
			t.Fatalf("DecodeHint failed: %v", err)
		}
		if spec.Type != TypeElectrolytic {
			t.Errorf("Type = %v, want electrolytic", spec.Type)
		}
	})
}

func TestClassifyType(t *testing.T) {
	tests := []struct {
		name    string
		pf      float64
		voltage int
		want    Type
	}{
		{"one microfarad up is electrolytic", 1e6, 0, TypeElectrolytic},
		{"nanofarad band is film", 47000, 0, TypeFilm},
		{"sub-nanofarad is ceramic", 470, 0, TypeCeramic},
		{"voltage pushes small value to film", 470, 63, TypeFilm},
		{"low voltage stays ceramic", 470, 16, TypeCeramic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyType(tt.pf, tt.voltage); got != tt.want {
				t.Errorf("classifyType(%v, %v) = %v, want %v", tt.pf, tt.voltage, got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name      string
		value     Value
		tol       float64
		voltage   int
		wantEIA   string
		wantAlpha string
		wantCode  errors.Code
	}{
		{
			name:      "47n 10% 100V",
			value:     Value{Nanofarads: 47},
			tol:       10,
			voltage:   100,
			wantEIA:   "473K100",
			wantAlpha: "47nK100",
		},
		{
			name:      "default tolerance",
			value:     Value{Picofarads: 470},
			wantEIA:   "471K",
			wantAlpha: "n47K",
		},
		{
			name:      "pointed significand",
			value:     Value{Nanofarads: 4.7},
			tol:       5,
			voltage:   63,
			wantEIA:   "472J63",
			wantAlpha: "4n7J63",
		},
		{
			name:      "sub ten picofarad fallback",
			value:     Value{Picofarads: 4.7},
			tol:       5,
			wantEIA:   "4R7J",
			wantAlpha: "4p7J",
		},
		{
			name:      "microfarad range",
			value:     Value{Microfarads: 2.2},
			tol:       20,
			voltage:   25,
			wantEIA:   "225M25",
			wantAlpha: "2u2M25",
		},
		{
			name:      "no clean EIA multiplier",
			value:     Value{Nanofarads: 47.5},
			tol:       5,
			wantEIA:   "",
			wantAlpha: "47n5J",
		},
		{
			name:     "no unit supplied",
			value:    Value{},
			wantCode: errors.ErrCodeAmbiguousUnit,
		},
		{
			name:     "two units supplied",
			value:    Value{Picofarads: 470, Nanofarads: 47},
			wantCode: errors.ErrCodeAmbiguousUnit,
		},
		{
			name:     "unsupported tolerance",
			value:    Value{Nanofarads: 47},
			tol:      3,
			wantCode: errors.ErrCodeUnsupportedTolerance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Encode(tt.value, tt.tol, tt.voltage)
			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("Encode succeeded, want %v", tt.wantCode)
				}
				if !errors.Is(err, tt.wantCode) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if m.EIA != tt.wantEIA {
				t.Errorf("EIA = %q, want %q", m.EIA, tt.wantEIA)
			}
			if m.Alphanumeric != tt.wantAlpha {
				t.Errorf("Alphanumeric = %q, want %q", m.Alphanumeric, tt.wantAlpha)
			}
		})
	}
}

// TestEncodeDecodeRoundTrip checks that decoding the encoder's full film
// code recovers the picofarad value within 1%.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		value   Value
		tol     float64
		voltage int
	}{
		{Value{Picofarads: 22}, 5, 50},
		{Value{Picofarads: 470}, 10, 63},
		{Value{Nanofarads: 1}, 10, 100},
		{Value{Nanofarads: 4.7}, 5, 63},
		{Value{Nanofarads: 47}, 10, 100},
		{Value{Nanofarads: 220}, 20, 250},
		{Value{Microfarads: 1}, 20, 25},
		{Value{Microfarads: 4.7}, 20, 16},
	}

	for _, tt := range tests {
		m, err := Encode(tt.value, tt.tol, tt.voltage)
		if err != nil {
			t.Fatalf("Encode(%+v) failed: %v", tt.value, err)
		}
		want, err := tt.value.picofarads()
		if err != nil {
			t.Fatal(err)
		}

		spec, err := Decode(m.Alphanumeric)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", m.Alphanumeric, err)
		}
		if rel := math.Abs(spec.Picofarads-want) / want; rel > 0.01 {
			t.Errorf("film code %q round-tripped %v pF to %v pF", m.Alphanumeric, want, spec.Picofarads)
		}
		if spec.TolerancePercent != tt.tol {
			t.Errorf("film code %q tolerance = %v, want %v", m.Alphanumeric, spec.TolerancePercent, tt.tol)
		}
		if spec.MaxVoltage != tt.voltage {
			t.Errorf("film code %q voltage = %v, want %v", m.Alphanumeric, spec.MaxVoltage, tt.voltage)
		}

		if m.EIA != "" {
			spec, err := Decode(m.EIA)
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", m.EIA, err)
			}
			if rel := math.Abs(spec.Picofarads-want) / want; rel > 0.01 {
				t.Errorf("EIA code %q round-tripped %v pF to %v pF", m.EIA, want, spec.Picofarads)
			}
		}
	}
}

func TestFormatPicofarads(t *testing.T) {
	tests := []struct {
		pf   float64
		want string
	}{
		{470, "470pF"},
		{4700, "4.7nF"},
		{47000, "47nF"},
		{1e6, "1µF"},
		{4.7e8, "470µF"},
	}

	for _, tt := range tests {
		if got := FormatPicofarads(tt.pf); got != tt.want {
			t.Errorf("FormatPicofarads(%v) = %q, want %q", tt.pf, got, tt.want)
		}
	}
}

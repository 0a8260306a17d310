package resistor

import (
	"math"
	"strings"
	"testing"

	"github.com/protolab/protoboard/pkg/errors"
)

func TestParseOhms(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"4700", 4700},
		{"4.7", 4.7},
		{"4.7k", 4700},
		{"10K", 10000},
		{"1M", 1e6},
		{"470R", 470},
		{"4k7", 4700},
		{"0R22", 0.22},
		{"R33", 0.33},
		{"2M2", 2.2e6},
		{"10kΩ", 10000},
		{"470 ohm", 470},
		{" 1k ", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseOhms(tt.text)
			if err != nil {
				t.Fatalf("ParseOhms(%q) error: %v", tt.text, err)
			}
			if math.Abs(got-tt.want) > tt.want*1e-9 {
				t.Errorf("ParseOhms(%q) = %g, want %g", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseOhmsInvalid(t *testing.T) {
	for _, text := range []string{"", "abc", "k", "10x", "4.7.2k"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseOhms(text)
			if err == nil {
				t.Fatalf("ParseOhms(%q) should fail", text)
			}
			if errors.GetCode(err) != errors.ErrCodeInvalidInput {
				t.Errorf("error code = %v", errors.GetCode(err))
			}
			if text != "" && !strings.Contains(err.Error(), text) {
				t.Errorf("error %q should name the input %q", err, text)
			}
		})
	}
}

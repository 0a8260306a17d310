package diode

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		part     string
		category Category
		voltage  float64
		generic  bool
	}{
		{"signal diode", "1N4148", CategorySignal, 100, false},
		{"lowercase", "1n4148", CategorySignal, 100, false},
		{"with spaces", " 1N4148 ", CategorySignal, 100, false},
		{"ocr in prefix", "IN4148", CategorySignal, 100, false},
		{"rectifier", "1N4007", CategoryRectifier, 1000, false},
		{"zener", "1N4733", CategoryZener, 5.1, false},
		{"hyphenated", "1N-4733", CategoryZener, 5.1, false},
		{"unknown falls back generic", "XY999", CategorySignal, 100, true},
		{"empty falls back generic", "", CategorySignal, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Resolve(tt.part)
			if spec.Category != tt.category {
				t.Errorf("Category = %v, want %v", spec.Category, tt.category)
			}
			if spec.Voltage != tt.voltage {
				t.Errorf("Voltage = %v, want %v", spec.Voltage, tt.voltage)
			}
			if spec.Generic != tt.generic {
				t.Errorf("Generic = %v, want %v", spec.Generic, tt.generic)
			}
		})
	}
}

func TestResolve_LEDReference(t *testing.T) {
	spec := Resolve("LED RED")
	if spec.Category != CategoryLED {
		t.Fatalf("Category = %v, want led", spec.Category)
	}
	if spec.BodyColor != "red" {
		t.Errorf("BodyColor = %v, want red", spec.BodyColor)
	}
	if spec.Generic {
		t.Error("known LED color flagged generic")
	}
}

func TestResolveLED(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		size    string
		body    string
		part    string
		generic bool
	}{
		{"green 5mm", "green", "5mm", "green", "LED-GREEN-5MM", false},
		{"blue 3mm", "Blue", "3", "blue", "LED-BLUE-3MM", false},
		{"default size", "yellow", "", "yellow", "LED-YELLOW-5MM", false},
		{"unknown color defaults red", "ultraviolet", "5mm", "red", "LED-RED-5MM", true},
		{"empty color defaults red", "", "", "red", "LED-RED-5MM", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := ResolveLED(tt.color, tt.size)
			if spec.Category != CategoryLED {
				t.Errorf("Category = %v, want led", spec.Category)
			}
			if spec.BodyColor != tt.body {
				t.Errorf("BodyColor = %v, want %v", spec.BodyColor, tt.body)
			}
			if spec.PartNumber != tt.part {
				t.Errorf("PartNumber = %v, want %v", spec.PartNumber, tt.part)
			}
			if spec.Generic != tt.generic {
				t.Errorf("Generic = %v, want %v", spec.Generic, tt.generic)
			}
			if spec.CathodeMark != "flat" {
				t.Errorf("CathodeMark = %v, want flat", spec.CathodeMark)
			}
		})
	}
}

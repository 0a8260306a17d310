package capacitor_test

import (
	"fmt"

	"github.com/protolab/protoboard/pkg/codec/capacitor"
)

func ExampleDecode() {
	// EIA three-digit code with tolerance letter and voltage
	spec, _ := capacitor.Decode("473K100")

	fmt.Println("Value:", capacitor.FormatPicofarads(spec.Picofarads))
	fmt.Println("Tolerance:", spec.TolerancePercent)
	fmt.Println("Voltage:", spec.MaxVoltage)
	// Output:
	// Value: 47nF
	// Tolerance: 10
	// Voltage: 100
}

func ExampleEncode() {
	// Encode 47nF at ±10% rated 100V
	m, _ := capacitor.Encode(capacitor.Value{Nanofarads: 47}, 10, 100)

	fmt.Println("EIA:", m.EIA)
	fmt.Println("Alphanumeric:", m.Alphanumeric)
	// Output:
	// EIA: 473K100
	// Alphanumeric: 47nK100
}

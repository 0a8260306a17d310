package breadboard_test

import (
	"fmt"

	"github.com/protolab/protoboard/pkg/bom"
	"github.com/protolab/protoboard/pkg/place/breadboard"
)

func ExamplePlace() {
	// Two resistors pack left to right along row b
	records := bom.BOM{
		{Type: bom.TypeResistor, Value: "10k", Quantity: 2, Refs: []string{"R1", "R2"}},
	}

	layout := breadboard.Place(records, breadboard.Options{})
	for _, p := range layout.Placements {
		fmt.Println(p.Instance.Ref, p.Addresses[0].String(), p.Addresses[1].String())
	}
	// Output:
	// R1 b2 b5
	// R2 b7 b10
}

func ExamplePlace_jumpers() {
	// An IC straddles the center gap and gets supply and ground jumpers
	records := bom.BOM{
		{Type: bom.TypeIC, Value: "NE555", Quantity: 1, Refs: []string{"U1"}},
	}

	layout := breadboard.Place(records, breadboard.Options{})
	for _, j := range layout.Jumpers {
		fmt.Println(j.From.String(), "→", j.To.String())
	}
	// Output:
	// +2 → f2
	// -2 → e2
}

package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/protolab/protoboard/pkg/bom"
	"github.com/protolab/protoboard/pkg/cache"
)

func testBOM() bom.BOM {
	return bom.BOM{
		{Type: bom.TypeIC, Value: "NE555", Quantity: 1, Refs: []string{"U1"}},
		{Type: bom.TypeResistor, Value: "10k", Quantity: 2, Refs: []string{"R1", "R2"}},
		{Type: bom.TypeCapacitor, Value: "100n", Quantity: 1, Refs: []string{"C1"}},
		{Type: bom.TypeDiode, Value: "1N4148", Quantity: 1, Refs: []string{"D1"}},
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"invalid", true},
		{"JSON", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateSurface(t *testing.T) {
	tests := []struct {
		surface string
		wantErr bool
	}{
		{"breadboard", false},
		{"stripboard", false},
		{"perfboard", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateSurface(tt.surface)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateSurface(%q) error = %v, wantErr %v", tt.surface, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if opts.Surface != SurfaceBreadboard {
		t.Errorf("Surface = %q, want breadboard", opts.Surface)
	}
	if opts.Columns == 0 || opts.MaxPerType == 0 {
		t.Errorf("place defaults not applied: %+v", opts)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatJSON {
		t.Errorf("Formats = %v, want [json]", opts.Formats)
	}
}

func TestEnrich(t *testing.T) {
	ctx := context.Background()
	c := cache.NewNullCache()

	specs, hits := Enrich(ctx, c, cache.NewDefaultKeyer(), testBOM(), Options{})
	if hits != 0 {
		t.Errorf("null cache should never hit, got %d", hits)
	}
	if len(specs) != 4 {
		t.Fatalf("expected 4 specs, got %d", len(specs))
	}

	if specs[1].Resistor == nil || specs[1].Resistor.Ohms != 10000 {
		t.Errorf("resistor spec = %+v", specs[1])
	}
	if specs[2].Capacitor == nil || specs[2].Capacitor.Picofarads != 100000 {
		t.Errorf("capacitor spec = %+v", specs[2])
	}
	if specs[3].Diode == nil || specs[3].Diode.Generic {
		t.Errorf("diode spec = %+v", specs[3])
	}
	// ICs have no codec; the spec stays unresolved without an error.
	if specs[0].Resolved() || specs[0].Error != "" {
		t.Errorf("IC spec = %+v", specs[0])
	}
}

func TestEnrichToleratesFreeText(t *testing.T) {
	ctx := context.Background()
	records := bom.BOM{
		{Type: bom.TypeResistor, Value: "not a value", Quantity: 1},
	}

	specs, _ := Enrich(ctx, cache.NewNullCache(), cache.NewDefaultKeyer(), records, Options{})
	if len(specs) != 1 {
		t.Fatalf("expected 1 spec, got %d", len(specs))
	}
	if specs[0].Resolved() {
		t.Error("unparseable value should not resolve")
	}
	if specs[0].Error == "" {
		t.Error("unparseable value should carry the decode error")
	}
}

func TestEnrichCaches(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	keyer := cache.NewDefaultKeyer()

	_, hits := Enrich(ctx, c, keyer, testBOM(), Options{})
	if hits != 0 {
		t.Errorf("first run should miss, got %d hits", hits)
	}
	_, hits = Enrich(ctx, c, keyer, testBOM(), Options{})
	if hits != 4 {
		t.Errorf("second run should hit all 4 specs, got %d", hits)
	}
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(ctx, testBOM(), Options{Formats: []string{FormatJSON, FormatDOT}})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if result.Layout.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("layout should have an ID")
	}
	if result.Layout.Surface != SurfaceBreadboard {
		t.Errorf("surface = %q", result.Layout.Surface)
	}
	if result.Layout.Breadboard == nil {
		t.Fatal("breadboard layout missing")
	}
	if result.Stats.PlacedCount != 5 {
		t.Errorf("placed = %d, want 5", result.Stats.PlacedCount)
	}
	if result.BOMHash == "" {
		t.Error("BOM hash missing")
	}

	jsonData := result.Artifacts[FormatJSON]
	if len(jsonData) == 0 {
		t.Fatal("json artifact missing")
	}
	roundTrip, err := UnmarshalLayout(jsonData)
	if err != nil {
		t.Fatalf("round trip error: %v", err)
	}
	if roundTrip.ID != result.Layout.ID || roundTrip.Placed() != result.Layout.Placed() {
		t.Error("layout did not survive the JSON round trip")
	}

	dot := string(result.Artifacts[FormatDOT])
	if !strings.Contains(dot, "graph connectivity") {
		t.Errorf("dot artifact unexpected:\n%s", dot)
	}
}

func TestExecuteStripboard(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(ctx, testBOM(), Options{Surface: SurfaceStripboard})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if result.Layout.Stripboard == nil || result.Layout.Breadboard != nil {
		t.Fatalf("expected stripboard layout, got %+v", result.Layout)
	}
	if len(result.Layout.Stripboard.Cuts) < 2 {
		t.Error("stripboard layout missing isolation cuts")
	}
}

func TestExecuteInvalidBOM(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	bad := bom.BOM{{Type: bom.TypeResistor, Value: "1k", Quantity: 0}}
	if _, err := runner.Execute(ctx, bad, Options{}); err == nil {
		t.Error("zero quantity should fail validation")
	}
}

func TestExecuteWarnsOnTruncation(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	records := bom.BOM{{Type: bom.TypeCapacitor, Value: "100n", Quantity: 20}}
	result, err := runner.Execute(ctx, records, Options{MaxPerType: 4})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if result.Stats.DroppedCount == 0 {
		t.Fatal("expected dropped instances")
	}
	if len(result.Layout.Warnings) == 0 {
		t.Error("truncation should surface as a warning")
	}
}

func TestLayoutCaching(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, nil)
	defer runner.Close()

	first, err := runner.Execute(ctx, testBOM(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.LayoutHit {
		t.Error("first run should not hit the layout cache")
	}

	second, err := runner.Execute(ctx, testBOM(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit the layout cache")
	}
	if second.Layout.ID != first.Layout.ID {
		t.Error("cached layout should keep its identity")
	}
}

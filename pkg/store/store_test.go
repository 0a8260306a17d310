package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/protolab/protoboard/pkg/bom"
	"github.com/protolab/protoboard/pkg/pipeline"
)

func testLayout(t *testing.T, created time.Time) pipeline.Layout {
	t.Helper()
	records := bom.BOM{{Type: bom.TypeResistor, Value: "10k", Quantity: 1, Refs: []string{"R1"}}}
	l, err := pipeline.BuildLayout(records, nil, pipeline.Options{})
	if err != nil {
		t.Fatalf("BuildLayout error: %v", err)
	}
	l.CreatedAt = created
	return l
}

func TestMemoryStoreLayouts(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	l := testLayout(t, time.Now().UTC())
	if err := s.SaveLayout(ctx, l); err != nil {
		t.Fatalf("SaveLayout error: %v", err)
	}

	got, err := s.GetLayout(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetLayout error: %v", err)
	}
	if got.ID != l.ID || got.Surface != l.Surface {
		t.Errorf("GetLayout = %+v, want %+v", got, l)
	}

	if _, err := s.GetLayout(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing layout error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	base := time.Now().UTC()
	old := testLayout(t, base.Add(-time.Hour))
	recent := testLayout(t, base)
	for _, l := range []pipeline.Layout{old, recent} {
		if err := s.SaveLayout(ctx, l); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.ListLayouts(ctx, 0)
	if err != nil {
		t.Fatalf("ListLayouts error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 layouts, got %d", len(got))
	}
	if got[0].ID != recent.ID {
		t.Error("layouts should list newest first")
	}

	limited, err := s.ListLayouts(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Errorf("limit not honored, got %d", len(limited))
	}
}

func TestMemoryStoreCorrections(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	c := Correction{
		Kind:    "capacitor",
		Marking: "47OK", // mistyped letter O, commonly meant 470K
		Spec: pipeline.CanonicalSpec{
			Type:  bom.TypeCapacitor,
			Value: "470K",
		},
		Note: "OCR confusion between O and 0",
	}
	if err := s.SaveCorrection(ctx, c); err != nil {
		t.Fatalf("SaveCorrection error: %v", err)
	}

	got, err := s.GetCorrection(ctx, "capacitor", "47OK")
	if err != nil {
		t.Fatalf("GetCorrection error: %v", err)
	}
	if got.ID == uuid.Nil {
		t.Error("SaveCorrection should assign an ID")
	}
	if got.CreatedAt.IsZero() {
		t.Error("SaveCorrection should stamp CreatedAt")
	}
	if got.Spec.Value != "470K" {
		t.Errorf("correction spec = %+v", got.Spec)
	}

	// Same kind and marking replaces
	c.Note = "updated"
	if err := s.SaveCorrection(ctx, c); err != nil {
		t.Fatal(err)
	}
	got, err = s.GetCorrection(ctx, "capacitor", "47OK")
	if err != nil {
		t.Fatal(err)
	}
	if got.Note != "updated" {
		t.Errorf("correction not replaced: %+v", got)
	}

	if _, err := s.GetCorrection(ctx, "resistor", "47OK"); !errors.Is(err, ErrNotFound) {
		t.Errorf("different kind should miss, got %v", err)
	}
}

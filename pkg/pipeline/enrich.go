package pipeline

import (
	"context"
	"encoding/json"

	"github.com/protolab/protoboard/pkg/bom"
	"github.com/protolab/protoboard/pkg/cache"
	"github.com/protolab/protoboard/pkg/codec/capacitor"
	"github.com/protolab/protoboard/pkg/codec/diode"
	"github.com/protolab/protoboard/pkg/codec/resistor"
)

// CanonicalSpec is the fully resolved, unit-normalized view of one BOM
// record's value text. Exactly one of the typed spec fields is set when
// decoding succeeded; Error carries the decode failure otherwise. BOM
// value text arrives as arbitrary free text, so a failed decode enriches
// nothing but never fails the pipeline.
type CanonicalSpec struct {
	Type      bom.ComponentType `json:"type" bson:"type"`
	Value     string            `json:"value" bson:"value"`
	Resistor  *resistor.Spec    `json:"resistor,omitempty" bson:"resistor,omitempty"`
	Capacitor *capacitor.Spec   `json:"capacitor,omitempty" bson:"capacitor,omitempty"`
	Diode     *diode.Spec       `json:"diode,omitempty" bson:"diode,omitempty"`
	Error     string            `json:"error,omitempty" bson:"error,omitempty"`
}

// Resolved reports whether the value text decoded into a typed spec.
func (s CanonicalSpec) Resolved() bool {
	return s.Resistor != nil || s.Capacitor != nil || s.Diode != nil
}

// Enrich decodes every BOM record's value text into a canonical spec,
// memoizing per-record results in the cache. The returned slice is
// parallel to the input records; the second return counts cache hits.
//
// Decoding is pure, so cached specs never go stale; Refresh still forces
// recomputation for troubleshooting.
func Enrich(ctx context.Context, c cache.Cache, keyer cache.Keyer, records bom.BOM, opts Options) ([]CanonicalSpec, int) {
	specs := make([]CanonicalSpec, len(records))
	hits := 0

	for i, r := range records {
		key := keyer.SpecKey(r.Value, cache.SpecKeyOpts{Kind: string(r.Type)})

		if !opts.Refresh {
			if data, err := cache.Fetch(ctx, c, key); err == nil {
				var cached CanonicalSpec
				if err := json.Unmarshal(data, &cached); err == nil {
					specs[i] = cached
					hits++
					continue
				}
			}
		}

		spec := resolveRecord(r)
		specs[i] = spec

		if data, err := json.Marshal(spec); err == nil {
			_ = c.Set(ctx, key, data, cache.TTLSpec)
		}
	}

	return specs, hits
}

// resolveRecord dispatches one record to the codec matching its type.
func resolveRecord(r bom.ComponentRecord) CanonicalSpec {
	out := CanonicalSpec{Type: r.Type, Value: r.Value}

	switch r.Type {
	case bom.TypeResistor:
		ohms, err := resistor.ParseOhms(r.Value)
		if err != nil {
			out.Error = err.Error()
			return out
		}
		spec := resistor.Spec{Ohms: ohms}
		spec.Series, spec.NearestE96 = resistor.Classify(ohms)
		out.Resistor = &spec
	case bom.TypeCapacitor:
		spec, err := capacitor.Decode(r.Value)
		if err != nil {
			out.Error = err.Error()
			return out
		}
		out.Capacitor = &spec
	case bom.TypeDiode:
		spec := diode.Resolve(r.Value)
		out.Diode = &spec
	case bom.TypeLED:
		spec := diode.ResolveLED(r.Value, "")
		out.Diode = &spec
	}

	return out
}

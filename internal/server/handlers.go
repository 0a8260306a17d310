package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/protolab/protoboard/pkg/bom"
	"github.com/protolab/protoboard/pkg/codec/capacitor"
	"github.com/protolab/protoboard/pkg/codec/diode"
	"github.com/protolab/protoboard/pkg/codec/resistor"
	"github.com/protolab/protoboard/pkg/errors"
	"github.com/protolab/protoboard/pkg/pipeline"
	"github.com/protolab/protoboard/pkg/store"
)

// decodeRequest asks for one component value to be decoded.
type decodeRequest struct {
	Kind  string   `json:"kind"`            // "resistor", "capacitor", "diode", "led"
	Value string   `json:"value,omitempty"` // marking, part number, or resistance text
	Bands []string `json:"bands,omitempty"` // resistor color bands, alternative to Value
	Hint  string   `json:"hint,omitempty"`  // capacitor construction type override
	Size  string   `json:"size,omitempty"`  // LED package size
}

// encodeRequest asks for a numeric value to be encoded as a marking.
type encodeRequest struct {
	Kind             string  `json:"kind"`
	Ohms             float64 `json:"ohms,omitempty"`
	Picofarads       float64 `json:"picofarads,omitempty"`
	Nanofarads       float64 `json:"nanofarads,omitempty"`
	Microfarads      float64 `json:"microfarads,omitempty"`
	TolerancePercent float64 `json:"tolerance_percent,omitempty"`
	Voltage          int     `json:"voltage,omitempty"`
	Form             string  `json:"form,omitempty"` // "auto" (default), "4", "5"
}

// layoutRequest asks for a BOM to be placed.
type layoutRequest struct {
	BOM     bom.BOM          `json:"bom"`
	Options pipeline.Options `json:"options"`
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req decodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}

	// User-submitted corrections take precedence over the codecs.
	if s.store != nil && req.Value != "" {
		if c, err := s.store.GetCorrection(r.Context(), req.Kind, req.Value); err == nil {
			respondJSON(w, http.StatusOK, c.Spec)
			return
		}
	}

	switch req.Kind {
	case "resistor":
		var spec resistor.Spec
		var err error
		if len(req.Bands) > 0 {
			spec, err = resistor.DecodeNames(req.Bands)
		} else {
			var ohms float64
			ohms, err = resistor.ParseOhms(req.Value)
			if err == nil {
				spec.Ohms = ohms
				spec.Series, spec.NearestE96 = resistor.Classify(ohms)
			}
		}
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, pipeline.CanonicalSpec{
			Type: bom.TypeResistor, Value: req.Value, Resistor: &spec,
		})
	case "capacitor":
		spec, err := capacitor.DecodeHint(req.Value, capacitor.Type(req.Hint))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, pipeline.CanonicalSpec{
			Type: bom.TypeCapacitor, Value: req.Value, Capacitor: &spec,
		})
	case "diode":
		spec := diode.Resolve(req.Value)
		respondJSON(w, http.StatusOK, pipeline.CanonicalSpec{
			Type: bom.TypeDiode, Value: req.Value, Diode: &spec,
		})
	case "led":
		spec := diode.ResolveLED(req.Value, req.Size)
		respondJSON(w, http.StatusOK, pipeline.CanonicalSpec{
			Type: bom.TypeLED, Value: req.Value, Diode: &spec,
		})
	default:
		respondError(w, errors.New(errors.ErrCodeInvalidInput, "unknown component kind: %s", req.Kind))
	}
}

func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req encodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}

	switch req.Kind {
	case "resistor":
		form := resistor.FormAuto
		switch req.Form {
		case "", "auto":
		case "4":
			form = resistor.Form4
		case "5":
			form = resistor.Form5
		default:
			respondError(w, errors.New(errors.ErrCodeInvalidInput, "unknown band form: %s", req.Form))
			return
		}
		bands, err := resistor.Encode(req.Ohms, req.TolerancePercent, form)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"bands": bands,
			"text":  resistor.FormatOhms(req.Ohms),
		})
	case "capacitor":
		marking, err := capacitor.Encode(capacitor.Value{
			Picofarads:  req.Picofarads,
			Nanofarads:  req.Nanofarads,
			Microfarads: req.Microfarads,
		}, req.TolerancePercent, req.Voltage)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{
			"eia":          marking.EIA,
			"alphanumeric": marking.Alphanumeric,
		})
	default:
		respondError(w, errors.New(errors.ErrCodeInvalidInput, "unknown encode kind: %s", req.Kind))
	}
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}

	result, err := s.runner.Execute(r.Context(), req.BOM, req.Options)
	if err != nil {
		respondError(w, err)
		return
	}

	if s.store != nil {
		if err := s.store.SaveLayout(r.Context(), result.Layout); err != nil {
			s.logger.Warn("persist layout failed", "id", result.Layout.ID, "err", err)
		}
	}

	respondJSON(w, http.StatusOK, result.Layout)
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, errors.New(errors.ErrCodeUnsupported, "no layout store configured"))
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, errors.New(errors.ErrCodeInvalidInput, "invalid layout id"))
		return
	}

	l, err := s.store.GetLayout(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, l)
}

func (s *Server) handleListLayouts(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, errors.New(errors.ErrCodeUnsupported, "no layout store configured"))
		return
	}

	const defaultLimit = 20
	layouts, err := s.store.ListLayouts(r.Context(), defaultLimit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, layouts)
}

func (s *Server) handleSaveCorrection(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, errors.New(errors.ErrCodeUnsupported, "no correction store configured"))
		return
	}

	var c store.Correction
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}
	if c.Kind == "" || c.Marking == "" {
		respondError(w, errors.New(errors.ErrCodeInvalidInput, "kind and marking are required"))
		return
	}

	if err := s.store.SaveCorrection(r.Context(), c); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"status": "saved"})
}

func (s *Server) handleGetCorrection(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, errors.New(errors.ErrCodeUnsupported, "no correction store configured"))
		return
	}

	kind := r.URL.Query().Get("kind")
	marking := r.URL.Query().Get("marking")
	if kind == "" || marking == "" {
		respondError(w, errors.New(errors.ErrCodeInvalidInput, "kind and marking query parameters are required"))
		return
	}

	c, err := s.store.GetCorrection(r.Context(), kind, marking)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// respondError maps a domain error to an HTTP status and JSON body.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidBOM, errors.ErrCodeInvalidAddress,
		errors.ErrCodeInvalidSurface, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidBandCount,
		errors.ErrCodeUnsupportedColor, errors.ErrCodeUnrecognizedMarking,
		errors.ErrCodeUnsupportedTolerance, errors.ErrCodeValueNotRepresentable,
		errors.ErrCodeAmbiguousUnit:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	}
	if stderrors.Is(err, store.ErrNotFound) {
		status = http.StatusNotFound
	}

	respondJSON(w, status, errorBody{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}

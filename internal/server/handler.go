package server

import (
	"encoding/json"
	"net/http"

	"github.com/cltlab/goclt/internal/beam"
	"github.com/cltlab/goclt/internal/material"
	"github.com/cltlab/goclt/internal/series"
)

// AnalyzeRequest is the JSON payload of POST /api/analyze. Either a
// preset material name or explicit properties must be supplied; when
// both are present the explicit properties win.
type AnalyzeRequest struct {
	Condition     string  `json:"condition"`
	PrimarySpan   float64 `json:"primary_span_m"`
	SecondarySpan float64 `json:"secondary_span_m"`
	UDL           float64 `json:"udl_kn_m"`
	Material      string  `json:"material,omitempty"`
	EI            float64 `json:"ei_knm2,omitempty"`
	GA            float64 `json:"ga_kn,omitempty"`
	J2            float64 `json:"j2,omitempty"`
	Step          float64 `json:"step_m,omitempty"`
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type seriesJSON struct {
	Label     string      `json:"label"`
	Primary   []pointJSON `json:"primary"`
	Secondary []pointJSON `json:"secondary,omitempty"`
}

// AnalyzeResponse carries the sampled series a browser canvas needs to
// draw the three response diagrams.
type AnalyzeResponse struct {
	Condition     string          `json:"condition"`
	PrimarySpan   float64         `json:"primary_span_m"`
	SecondarySpan float64         `json:"secondary_span_m"`
	UDL           float64         `json:"udl_kn_m"`
	Material      string          `json:"material"`
	Reactions     *beam.Reactions `json:"reactions,omitempty"`
	Deflection    seriesJSON      `json:"deflection"`
	BendingMoment seriesJSON      `json:"bending_moment"`
	ShearForce    seriesJSON      `json:"shear_force"`
}

func handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	mat, err := requestMaterial(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b := beam.Beam{
		PrimarySpan:   req.PrimarySpan,
		SecondarySpan: req.SecondarySpan,
		Material:      mat,
	}
	cond := beam.Condition(req.Condition)

	resp := AnalyzeResponse{
		Condition:     req.Condition,
		PrimarySpan:   b.PrimarySpan,
		SecondarySpan: b.SecondarySpan,
		UDL:           req.UDL,
		Material:      mat.Name,
	}

	quantities := []struct {
		label string
		get   func(beam.Beam, float64, beam.Condition) (*beam.Analysis, error)
		dst   *seriesJSON
	}{
		{series.LabelDeflection, beam.GetDeflection, &resp.Deflection},
		{series.LabelMoment, beam.GetBendingMoment, &resp.BendingMoment},
		{series.LabelShear, beam.GetShearForce, &resp.ShearForce},
	}

	for _, q := range quantities {
		a, err := q.get(b, req.UDL, cond)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		pair, err := series.Sample(a, q.label, req.Step)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		*q.dst = toSeriesJSON(pair)
	}

	if cond == beam.TwoSpanUnequal {
		reactions, err := beam.TwoSpanReactions(b, req.UDL)
		if err == nil {
			resp.Reactions = &reactions
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func requestMaterial(req AnalyzeRequest) (material.Material, error) {
	if req.Material != "" && req.EI == 0 {
		return material.Preset(req.Material)
	}

	props := map[string]float64{}
	if req.EI != 0 {
		props[material.KeyEI] = req.EI
	}
	if req.GA != 0 {
		props[material.KeyGA] = req.GA
	}
	j2 := req.J2
	if j2 == 0 {
		j2 = material.J2Default
	}
	props[material.KeyJ2] = j2

	name := req.Material
	if name == "" {
		name = "custom"
	}
	return material.New(name, props), nil
}

type materialJSON struct {
	Name   string              `json:"name"`
	EI     float64             `json:"ei_knm2"`
	GA     float64             `json:"ga_kn"`
	Depth  float64             `json:"depth_mm"`
	Layers []materialLayerJSON `json:"layers"`
}

type materialLayerJSON struct {
	Thickness   float64 `json:"thickness_mm"`
	Orientation string  `json:"orientation"`
}

// handleMaterials lists the preset catalog with layups, so the browser
// can draw the layer diagram to scale.
func handleMaterials(w http.ResponseWriter, r *http.Request) {
	var out []materialJSON
	for _, name := range material.PresetNames() {
		m, err := material.Preset(name)
		if err != nil {
			continue
		}
		ei, _ := m.Property(material.KeyEI)
		ga, _ := m.Property(material.KeyGA)
		mj := materialJSON{
			Name:  m.Name,
			EI:    ei,
			GA:    ga,
			Depth: m.Layup.Depth(),
		}
		for _, layer := range m.Layup {
			mj.Layers = append(mj.Layers, materialLayerJSON{
				Thickness:   layer.Thickness,
				Orientation: layer.Orientation.String(),
			})
		}
		out = append(out, mj)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func toSeriesJSON(pair series.Pair) seriesJSON {
	s := seriesJSON{Label: pair.Primary.Label}
	for _, pt := range pair.Primary.Points {
		s.Primary = append(s.Primary, pointJSON{X: pt.X, Y: pt.Y})
	}
	for _, pt := range pair.Secondary.Points {
		s.Secondary = append(s.Secondary, pointJSON{X: pt.X, Y: pt.Y})
	}
	return s
}

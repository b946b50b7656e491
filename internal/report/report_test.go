package report

import (
	"bytes"
	"testing"

	"github.com/cltlab/goclt/internal/beam"
	"github.com/cltlab/goclt/internal/material"
	"github.com/cltlab/goclt/internal/series"
)

func TestWrite(t *testing.T) {
	b := beam.Beam{
		PrimarySpan:   3,
		SecondarySpan: 2,
		Material:      material.New("test", map[string]float64{"EI": 1200, "j2": 1000}),
	}
	load := 5.0

	var pairs [3]series.Pair
	gets := []func(beam.Beam, float64, beam.Condition) (*beam.Analysis, error){
		beam.GetDeflection, beam.GetBendingMoment, beam.GetShearForce,
	}
	labels := []string{series.LabelDeflection, series.LabelMoment, series.LabelShear}
	for i, get := range gets {
		a, err := get(b, load, beam.TwoSpanUnequal)
		if err != nil {
			t.Fatal(err)
		}
		pairs[i], err = series.Sample(a, labels[i], 0.5)
		if err != nil {
			t.Fatal(err)
		}
	}

	reactions, err := beam.TwoSpanReactions(b, load)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err = Write(&buf, Data{
		Project:    "Test project",
		Engineer:   "T. Ester",
		Beam:       b,
		Load:       load,
		Condition:  beam.TwoSpanUnequal,
		Reactions:  &reactions,
		Deflection: pairs[0],
		Moment:     pairs[1],
		Shear:      pairs[2],
	})
	if err != nil {
		t.Fatal(err)
	}

	if buf.Len() == 0 {
		t.Fatal("empty output")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

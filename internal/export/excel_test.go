package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/cltlab/goclt/internal/beam"
	"github.com/cltlab/goclt/internal/material"
	"github.com/cltlab/goclt/internal/series"
)

func TestWriteWorkbook(t *testing.T) {
	b := beam.Beam{
		PrimarySpan:   3,
		SecondarySpan: 2,
		Material:      material.New("test", map[string]float64{"EI": 1200, "j2": 1000}),
	}

	a, err := beam.GetShearForce(b, 5, beam.TwoSpanUnequal)
	if err != nil {
		t.Fatal(err)
	}
	pair, err := series.Sample(a, series.LabelShear, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "beam.xlsx")
	err = WriteWorkbook(path, []Sheet{{Name: "Shear Force", Pair: pair}})
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Shear Force", "B1")
	if err != nil {
		t.Fatal(err)
	}
	if header != series.LabelShear {
		t.Errorf("header = %q, want %q", header, series.LabelShear)
	}

	// Secondary span lands in columns D/E.
	x, err := f.GetCellValue("Shear Force", "D2")
	if err != nil {
		t.Fatal(err)
	}
	if x != "3" {
		t.Errorf("first secondary x = %q, want 3", x)
	}
}

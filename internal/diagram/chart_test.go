package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cltlab/goclt/internal/material"
)

func TestExportResponseChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shear.png")
	err := ExportResponseChart(samplePair(t), "Shear Force", []float64{0, 4}, path)
	if err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty chart file")
	}
}

func TestExportResponseChartDefaultFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart")
	if err := ExportResponseChart(samplePair(t), "Shear Force", []float64{0, 4}, path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".png"); err != nil {
		t.Errorf("default png missing: %v", err)
	}
}

func TestExportLayupDiagram(t *testing.T) {
	m, err := material.Preset("CLT150-5s")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "layup.svg")
	if err := ExportLayupDiagram(m, path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}

func TestExportLayupDiagramNoLayup(t *testing.T) {
	m := material.New("bare", map[string]float64{"EI": 1})
	if err := ExportLayupDiagram(m, filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("material without layup accepted")
	}
}

// Package report renders an analysis run as a PDF calculation note.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/cltlab/goclt/internal/beam"
	"github.com/cltlab/goclt/internal/series"
)

// Data is everything one report page needs.
type Data struct {
	Project  string
	Engineer string

	Beam      beam.Beam
	Load      float64
	Condition beam.Condition
	Reactions *beam.Reactions // nil for single-span conditions

	Deflection series.Pair
	Moment     series.Pair
	Shear      series.Pair
}

// Write renders the report to w as PDF.
func Write(w io.Writer, d Data) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Beam Analysis Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if d.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", d.Project))
		pdf.Ln(6)
	}
	if d.Engineer != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Engineer: %s", d.Engineer))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Input")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Condition: %s", d.Condition))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Primary span: %.2f m", d.Beam.PrimarySpan))
	pdf.Ln(6)
	if d.Beam.SecondarySpan > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Secondary span: %.2f m", d.Beam.SecondarySpan))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("UDL: %.2f kN/m", d.Load))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Material: %s", d.Beam.Material.Name))
	pdf.Ln(6)
	if ei, ok := d.Beam.Material.Property("EI"); ok {
		pdf.Cell(0, 6, fmt.Sprintf("EI: %.1f kN-m2", ei))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	if d.Reactions != nil {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Support Reactions")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("R1 = %.2f kN   R2 = %.2f kN   R3 = %.2f kN", d.Reactions.R1, d.Reactions.R2, d.Reactions.R3))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Interior support moment M1 = %.2f kN-m", d.Reactions.M1))
		pdf.Ln(6)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Response Extremes")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	writeExtremes(pdf, "Deflection (mm)", d.Deflection)
	writeExtremes(pdf, "Bending moment (kN-m)", d.Moment)
	writeExtremes(pdf, "Shear force (kN)", d.Shear)

	return pdf.Output(w)
}

// WriteFile renders the report to a PDF file, creating the directory
// if needed.
func WriteFile(path string, d Data) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, d)
}

func writeExtremes(pdf *gofpdf.Fpdf, label string, pair series.Pair) {
	if len(pair.Primary.Points) == 0 && len(pair.Secondary.Points) == 0 {
		return
	}
	min, max := pair.Extremes()
	pdf.Cell(0, 6, fmt.Sprintf("%s: max %.3f at x = %.2f m, min %.3f at x = %.2f m",
		label, max.Y, max.X, min.Y, min.X))
	pdf.Ln(6)
}

package diagram

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cltlab/goclt/internal/material"
)

var (
	longitudinalFill = color.RGBA{R: 222, G: 184, B: 135, A: 255}
	transverseFill   = color.RGBA{R: 245, G: 222, B: 179, A: 255}
)

// ExportLayupDiagram exports a proportionally scaled cross-section
// drawing of the material's CLT layup. Longitudinal and transverse
// layers are filled with different shades and labelled with their
// thickness and grain direction.
func ExportLayupDiagram(m material.Material, filename string) error {
	if len(m.Layup) == 0 {
		return fmt.Errorf("material %q has no layup", m.Name)
	}

	depth := m.Layup.Depth()
	width := material.StripWidth

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s layup (%.0f mm)", m.Name, depth)
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Depth (mm)"

	y := depth
	for i, layer := range m.Layup {
		bottom := y - layer.Thickness

		fill := longitudinalFill
		if layer.Orientation == material.Transverse {
			fill = transverseFill
		}

		rect, err := plotter.NewPolygon(plotter.XYs{
			{X: 0, Y: bottom},
			{X: width, Y: bottom},
			{X: width, Y: y},
			{X: 0, Y: y},
		})
		if err != nil {
			return err
		}
		rect.Color = fill
		rect.LineStyle.Color = color.Black
		rect.LineStyle.Width = vg.Points(1)
		p.Add(rect)

		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs: []plotter.XY{{X: width + 30, Y: bottom + layer.Thickness/2}},
			Labels: []string{
				fmt.Sprintf("L%d %.0f mm %s", i+1, layer.Thickness, layer.Orientation),
			},
		})
		if err != nil {
			return err
		}
		p.Add(label)

		y = bottom
	}

	// Panel outline on top of the layer fills
	outline, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: width, Y: 0},
		{X: width, Y: depth},
		{X: 0, Y: depth},
		{X: 0, Y: 0},
	})
	if err != nil {
		return err
	}
	outline.LineStyle.Width = vg.Points(2)
	outline.LineStyle.Color = color.Black
	p.Add(outline)

	return save(p, 8*vg.Inch, 4*vg.Inch, filename)
}

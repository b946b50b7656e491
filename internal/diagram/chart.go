package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cltlab/goclt/internal/series"
)

var (
	primaryColor   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	secondaryColor = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	supportColor   = color.RGBA{R: 80, G: 80, B: 80, A: 255}
)

// ExportResponseChart exports a response-quantity line chart (the
// primary and secondary span series of one quantity) to an image file.
// The output format follows the file extension (png, svg or pdf).
func ExportResponseChart(pair series.Pair, title string, supports []float64, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = pair.Primary.Label

	// Zero baseline
	if len(supports) >= 2 {
		baseline, err := plotter.NewLine(plotter.XYs{
			{X: supports[0], Y: 0},
			{X: supports[len(supports)-1], Y: 0},
		})
		if err != nil {
			return err
		}
		baseline.LineStyle.Color = color.Gray{Y: 128}
		baseline.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(baseline)
	}

	if len(pair.Primary.Points) > 0 {
		line, err := plotter.NewLine(toXYs(pair.Primary))
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = primaryColor
		p.Add(line)
		p.Legend.Add("primary span", line)
	}

	if len(pair.Secondary.Points) > 0 {
		line, err := plotter.NewLine(toXYs(pair.Secondary))
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = secondaryColor
		p.Add(line)
		p.Legend.Add("secondary span", line)
	}

	// Support markers on the baseline
	if len(supports) > 0 {
		pts := make(plotter.XYs, len(supports))
		for i, s := range supports {
			pts[i] = plotter.XY{X: s, Y: 0}
		}
		markers, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		markers.GlyphStyle.Color = supportColor
		markers.GlyphStyle.Radius = vg.Points(4)
		markers.GlyphStyle.Shape = draw.TriangleGlyph{}
		p.Add(markers)
	}

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

func toXYs(s series.Series) plotter.XYs {
	xys := make(plotter.XYs, len(s.Points))
	for i, pt := range s.Points {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// Package series turns analysis equations into plot series. It samples
// an equation over the two spans at a fixed step; the analyzers are
// strictly black-box position-to-value functions here.
package series

import (
	"math"

	"github.com/cltlab/goclt/internal/beam"
)

// DefaultStep is the sampling step along the beam in metres.
const DefaultStep = 0.1

// Axis labels for the three response quantities.
const (
	LabelDeflection = "Deflection (mm)"
	LabelMoment     = "Bending Moment (kNm)"
	LabelShear      = "Shear Force (kN)"
)

// Series is one plottable sequence of samples.
type Series struct {
	Label  string
	Points []beam.Point
}

// Pair carries the primary-span and secondary-span series of one
// response quantity. Secondary is empty for single-span beams. At the
// interior support the left limit closes the primary series and the
// right limit opens the secondary one, so a discontinuity plots as two
// separate lines instead of a false vertical segment.
type Pair struct {
	Primary   Series
	Secondary Series
}

// Sample evaluates the analysis equation across the beam at the given
// step (DefaultStep when step <= 0) and builds the series pair.
// Out-of-range samples are skipped as "no data".
func Sample(a *beam.Analysis, label string, step float64) (Pair, error) {
	if step <= 0 {
		step = DefaultStep
	}
	l1 := a.Beam.PrimarySpan
	l2 := a.Beam.SecondarySpan

	p := Pair{
		Primary:   Series{Label: label},
		Secondary: Series{Label: label},
	}

	for _, x := range positions(0, l1, step) {
		v, err := a.Equation(x)
		if err != nil {
			return Pair{}, err
		}
		switch v.Kind {
		case beam.KindContinuous:
			p.Primary.Points = append(p.Primary.Points, v.Point)
		case beam.KindDiscontinuous:
			p.Primary.Points = append(p.Primary.Points, v.Left)
		}
	}

	if l2 > 0 {
		for _, x := range positions(l1, l1+l2, step) {
			v, err := a.Equation(x)
			if err != nil {
				return Pair{}, err
			}
			switch v.Kind {
			case beam.KindContinuous:
				p.Secondary.Points = append(p.Secondary.Points, v.Point)
			case beam.KindDiscontinuous:
				p.Secondary.Points = append(p.Secondary.Points, v.Right)
			}
		}
	}

	return p, nil
}

// positions returns from, from+step, ... with both endpoints included
// exactly, so support positions are always hit.
func positions(from, to, step float64) []float64 {
	if to <= from {
		return []float64{from}
	}
	n := int(math.Ceil((to-from)/step - 1e-9))
	xs := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		xs = append(xs, from+float64(i)*step)
	}
	return append(xs, to)
}

// Extreme is a located extreme value of a sampled quantity.
type Extreme struct {
	X float64
	Y float64
}

// Extremes scans both series for the minimum and maximum sampled
// values with their positions.
func (p Pair) Extremes() (min, max Extreme) {
	first := true
	scan := func(s Series) {
		for _, pt := range s.Points {
			if first {
				min = Extreme{X: pt.X, Y: pt.Y}
				max = min
				first = false
				continue
			}
			if pt.Y < min.Y {
				min = Extreme{X: pt.X, Y: pt.Y}
			}
			if pt.Y > max.Y {
				max = Extreme{X: pt.X, Y: pt.Y}
			}
		}
	}
	scan(p.Primary)
	scan(p.Secondary)
	return min, max
}

// Values flattens a series to its Y values, for terminal charts.
func (s Series) Values() []float64 {
	ys := make([]float64, len(s.Points))
	for i, pt := range s.Points {
		ys[i] = pt.Y
	}
	return ys
}

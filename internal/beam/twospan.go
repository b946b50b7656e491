package beam

import (
	"fmt"

	"github.com/cltlab/goclt/internal/material"
)

// twoSpanUnequal models a beam continuous over three supports with
// unequal span lengths L1 and L2, uniformly loaded across both spans.
// The member is statically indeterminate: the interior-support moment
// comes from the three-moment theorem, after which the reactions follow
// from statics. Moment and shear jump at the interior support and are
// reported as left/right limit pairs there; deflection is continuous.
type twoSpanUnequal struct{}

func (twoSpanUnequal) validate(b Beam) error {
	if b.PrimarySpan <= 0 || b.SecondarySpan <= 0 {
		return fmt.Errorf("invalid beam dimensions: primary span=%.3f, secondary span=%.3f",
			b.PrimarySpan, b.SecondarySpan)
	}
	return nil
}

// Reactions holds the per-request derived constants of the two-span
// condition: the interior-support moment M1 (kN-m, hogging negative)
// and the three support reactions (kN). They are solved once per
// equation construction and captured, never re-solved per query.
type Reactions struct {
	M1 float64
	R1 float64 // left end support
	R2 float64 // interior support
	R3 float64 // right end support
}

func solveReactions(l1, l2, load float64) Reactions {
	// Three-moment theorem with zero end moments:
	// 2·M1·(L1+L2) = −w·(L1³ + L2³)/4
	m1 := -load * (l1*l1*l1 + l2*l2*l2) / (8 * (l1 + l2))
	r1 := load*l1/2 + m1/l1
	r3 := load*l2/2 + m1/l2
	r2 := load*(l1+l2) - r1 - r3
	return Reactions{M1: m1, R1: r1, R2: r2, R3: r3}
}

// TwoSpanReactions exposes the solved support forces for result tables,
// reports and the HTTP API.
func TwoSpanReactions(b Beam, load float64) (Reactions, error) {
	if err := (twoSpanUnequal{}).validate(b); err != nil {
		return Reactions{}, err
	}
	return solveReactions(b.PrimarySpan, b.SecondarySpan, load), nil
}

// BendingMoment returns M(x) = R1·x − w·x²/2 on the primary span and
// M(x) = R1·x + R2·(x−L1) − w·x²/2 on the secondary span. At x = L1
// exactly it yields the pair of limits; the values coincide (moment is
// continuous) but callers route them to separate plot series.
func (t twoSpanUnequal) BendingMoment(b Beam, load float64) (Equation, error) {
	if err := t.validate(b); err != nil {
		return nil, err
	}
	l1, l2 := b.PrimarySpan, b.SecondarySpan
	r := solveReactions(l1, l2, load)
	span1 := func(x float64) float64 { return r.R1*x - load*x*x/2 }
	span2 := func(x float64) float64 { return r.R1*x + r.R2*(x-l1) - load*x*x/2 }

	return func(x float64) (Value, error) {
		if err := checkPosition(x); err != nil {
			return Value{}, err
		}
		switch {
		case x < 0 || x > l1+l2:
			return OutOfRange(x), nil
		case x == l1:
			return Discontinuous(Point{X: x, Y: span1(x)}, Point{X: x, Y: span2(x)}), nil
		case x < l1:
			return Continuous(x, span1(x)), nil
		default:
			return Continuous(x, span2(x)), nil
		}
	}, nil
}

// ShearForce returns V(x) = R1 − w·x on the primary span and
// V(x) = R1 + R2 − w·x on the secondary span. The jump at x = L1
// equals the interior reaction R2.
func (t twoSpanUnequal) ShearForce(b Beam, load float64) (Equation, error) {
	if err := t.validate(b); err != nil {
		return nil, err
	}
	l1, l2 := b.PrimarySpan, b.SecondarySpan
	r := solveReactions(l1, l2, load)

	return func(x float64) (Value, error) {
		if err := checkPosition(x); err != nil {
			return Value{}, err
		}
		switch {
		case x < 0 || x > l1+l2:
			return OutOfRange(x), nil
		case x == l1:
			return Discontinuous(
				Point{X: x, Y: r.R1 - load*x},
				Point{X: x, Y: r.R1 + r.R2 - load*x},
			), nil
		case x < l1:
			return Continuous(x, r.R1-load*x), nil
		default:
			return Continuous(x, r.R1+r.R2-load*x), nil
		}
	}, nil
}

// Deflection integrates the moment diagram twice per span. With
// EI·v'' = M, v(0) = v(L1) = 0 and slope continuity at the interior
// support, the integration constant is C1 = w·L1³/24 − R1·L1²/6 and
// the secondary span picks up the R2·(x−L1)³/6 term. Compatibility of
// the three-moment solution makes v vanish at the far support as well.
// Reported in mm, downward positive, like the single-span case.
func (t twoSpanUnequal) Deflection(b Beam, load float64) (Equation, error) {
	if err := t.validate(b); err != nil {
		return nil, err
	}
	if err := b.Material.Require(material.KeyEI, material.KeyJ2); err != nil {
		return nil, err
	}
	ei, _ := b.Material.Property(material.KeyEI)
	j2, _ := b.Material.Property(material.KeyJ2)
	l1, l2 := b.PrimarySpan, b.SecondarySpan
	r := solveReactions(l1, l2, load)
	c1 := load*l1*l1*l1/24 - r.R1*l1*l1/6

	return func(x float64) (Value, error) {
		if err := checkPosition(x); err != nil {
			return Value{}, err
		}
		if x < 0 || x > l1+l2 {
			return OutOfRange(x), nil
		}
		v := r.R1*x*x*x/6 - load*x*x*x*x/24 + c1*x
		if x > l1 {
			d := x - l1
			v += r.R2 * d * d * d / 6
		}
		return Continuous(x, -j2*v/ei), nil
	}, nil
}

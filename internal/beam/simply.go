package beam

import (
	"fmt"

	"github.com/cltlab/goclt/internal/material"
)

// simplySupported models a single uniformly loaded span with both ends
// free to rotate (zero moment at both supports). All three response
// quantities are continuous on [0, L].
//
// Unit convention, applied uniformly across analyzers: spans in m,
// load in kN/m, EI in kN-m². Moments come out in kN-m and shear in kN
// directly; deflection is scaled to mm by the material's j2 factor
// (1000 mm/m for SI materials).
type simplySupported struct{}

func (simplySupported) validate(b Beam) error {
	if b.PrimarySpan <= 0 {
		return fmt.Errorf("invalid beam dimensions: primary span=%.3f", b.PrimarySpan)
	}
	return nil
}

// Deflection returns y(x) = j2·w·x·(L³ − 2·L·x² + x³) / (24·EI),
// the Euler-Bernoulli deflection of a uniformly loaded simple span,
// downward positive.
func (s simplySupported) Deflection(b Beam, load float64) (Equation, error) {
	if err := s.validate(b); err != nil {
		return nil, err
	}
	if err := b.Material.Require(material.KeyEI, material.KeyJ2); err != nil {
		return nil, err
	}
	ei, _ := b.Material.Property(material.KeyEI)
	j2, _ := b.Material.Property(material.KeyJ2)
	l := b.PrimarySpan

	return func(x float64) (Value, error) {
		if err := checkPosition(x); err != nil {
			return Value{}, err
		}
		if x < 0 || x > l {
			return OutOfRange(x), nil
		}
		y := j2 * load * x * (l*l*l - 2*l*x*x + x*x*x) / (24 * ei)
		return Continuous(x, y), nil
	}, nil
}

// BendingMoment returns M(x) = w·x·(L − x)/2.
func (s simplySupported) BendingMoment(b Beam, load float64) (Equation, error) {
	if err := s.validate(b); err != nil {
		return nil, err
	}
	l := b.PrimarySpan

	return func(x float64) (Value, error) {
		if err := checkPosition(x); err != nil {
			return Value{}, err
		}
		if x < 0 || x > l {
			return OutOfRange(x), nil
		}
		return Continuous(x, load*x*(l-x)/2), nil
	}, nil
}

// ShearForce returns V(x) = w·(L/2 − x).
func (s simplySupported) ShearForce(b Beam, load float64) (Equation, error) {
	if err := s.validate(b); err != nil {
		return nil, err
	}
	l := b.PrimarySpan

	return func(x float64) (Value, error) {
		if err := checkPosition(x); err != nil {
			return Value{}, err
		}
		if x < 0 || x > l {
			return OutOfRange(x), nil
		}
		return Continuous(x, load*(l/2-x)), nil
	}, nil
}

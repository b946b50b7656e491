package beam

import "fmt"

// Analyzer produces closed-form response equations for one support
// condition. Implementations are stateless; per-request derived
// constants (reaction forces) live in the returned equation closures.
type Analyzer interface {
	Deflection(b Beam, load float64) (Equation, error)
	BendingMoment(b Beam, load float64) (Equation, error)
	ShearForce(b Beam, load float64) (Equation, error)
}

// The condition set is fixed at construction; registration is not open
// at runtime.
var analyzers = map[Condition]Analyzer{
	SimplySupported: simplySupported{},
	TwoSpanUnequal:  twoSpanUnequal{},
}

// Analysis bundles an equation with the context it was built from.
// The Beam and its Material are treated as immutable snapshots.
type Analysis struct {
	Beam      Beam
	Load      float64 // uniformly distributed load (kN/m)
	Condition Condition
	Equation  Equation
}

func analyzerFor(cond Condition) (Analyzer, error) {
	a, ok := analyzers[cond]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCondition, cond)
	}
	return a, nil
}

// GetDeflection builds the deflection equation (mm, downward positive)
// for the beam under the given UDL.
func GetDeflection(b Beam, load float64, cond Condition) (*Analysis, error) {
	a, err := analyzerFor(cond)
	if err != nil {
		return nil, err
	}
	eq, err := a.Deflection(b, load)
	if err != nil {
		return nil, err
	}
	return &Analysis{Beam: b, Load: load, Condition: cond, Equation: eq}, nil
}

// GetBendingMoment builds the bending-moment equation (kN-m, sagging
// positive) for the beam under the given UDL.
func GetBendingMoment(b Beam, load float64, cond Condition) (*Analysis, error) {
	a, err := analyzerFor(cond)
	if err != nil {
		return nil, err
	}
	eq, err := a.BendingMoment(b, load)
	if err != nil {
		return nil, err
	}
	return &Analysis{Beam: b, Load: load, Condition: cond, Equation: eq}, nil
}

// GetShearForce builds the shear-force equation (kN) for the beam
// under the given UDL.
func GetShearForce(b Beam, load float64, cond Condition) (*Analysis, error) {
	a, err := analyzerFor(cond)
	if err != nil {
		return nil, err
	}
	eq, err := a.ShearForce(b, load)
	if err != nil {
		return nil, err
	}
	return &Analysis{Beam: b, Load: load, Condition: cond, Equation: eq}, nil
}

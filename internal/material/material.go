package material

import (
	"errors"
	"fmt"
)

// Property keys recognized by the beam analyzers.
const (
	KeyEI = "EI" // flexural rigidity (kN-m²)
	KeyGA = "GA" // shear stiffness (kN), carried for future shear-deformation checks
	KeyJ2 = "j2" // deflection unit scale (mm per m)
)

// ErrMissingProperty is returned when an analyzer requires a property
// the material does not carry.
var ErrMissingProperty = errors.New("missing material property")

// Material is a named bundle of physical properties referenced by the
// analyzers. It is immutable for the duration of an analysis call.
type Material struct {
	Name       string
	Properties map[string]float64
	Layup      Layup
}

// New creates a material from a name and a property map.
func New(name string, properties map[string]float64) Material {
	return Material{Name: name, Properties: properties}
}

// Property returns the named property and whether it is present.
func (m Material) Property(key string) (float64, bool) {
	v, ok := m.Properties[key]
	return v, ok
}

// Require checks that every named property is present and non-zero.
// Analyzers call this at equation-construction time so that a missing
// EI or j2 fails fast instead of propagating NaN through arithmetic.
func (m Material) Require(keys ...string) error {
	for _, key := range keys {
		v, ok := m.Properties[key]
		if !ok {
			return fmt.Errorf("%w: %q has no %q", ErrMissingProperty, m.Name, key)
		}
		if v == 0 {
			return fmt.Errorf("%w: %q has zero %q", ErrMissingProperty, m.Name, key)
		}
	}
	return nil
}

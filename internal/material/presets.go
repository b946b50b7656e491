package material

import (
	"fmt"
	"sort"
)

// Lamella properties for C24 softwood boards, the grade almost all
// commercial CLT is produced from (EN 338 mean values).
const (
	E0Mean  = 11000.0 // MPa, parallel to grain
	E90Mean = 370.0   // MPa, perpendicular to grain
	GMean   = 690.0   // MPa, in-plane shear

	// StripWidth is the reference strip the presets are computed for.
	StripWidth = 1000.0 // mm

	// J2Default converts deflections from m to mm under the tool's
	// unit convention (spans m, loads kN/m, EI kN-m²).
	J2Default = 1000.0
)

var presetLayups = map[string]Layup{
	"CLT90-3s": {
		{Thickness: 30, Orientation: Longitudinal},
		{Thickness: 30, Orientation: Transverse},
		{Thickness: 30, Orientation: Longitudinal},
	},
	"CLT120-3s": {
		{Thickness: 40, Orientation: Longitudinal},
		{Thickness: 40, Orientation: Transverse},
		{Thickness: 40, Orientation: Longitudinal},
	},
	"CLT150-5s": {
		{Thickness: 30, Orientation: Longitudinal},
		{Thickness: 30, Orientation: Transverse},
		{Thickness: 30, Orientation: Longitudinal},
		{Thickness: 30, Orientation: Transverse},
		{Thickness: 30, Orientation: Longitudinal},
	},
	"CLT200-5s": {
		{Thickness: 40, Orientation: Longitudinal},
		{Thickness: 40, Orientation: Transverse},
		{Thickness: 40, Orientation: Longitudinal},
		{Thickness: 40, Orientation: Transverse},
		{Thickness: 40, Orientation: Longitudinal},
	},
}

// Preset returns a catalog CLT material by name. The EI and GA
// properties are derived from the layup for a 1 m wide strip.
func Preset(name string) (Material, error) {
	layup, ok := presetLayups[name]
	if !ok {
		return Material{}, fmt.Errorf("unknown material preset: %q", name)
	}

	ei, ga := layup.Stiffness(E0Mean, E90Mean, GMean, StripWidth)
	return Material{
		Name: name,
		Properties: map[string]float64{
			KeyEI: ei,
			KeyGA: ga,
			KeyJ2: J2Default,
		},
		Layup: layup,
	}, nil
}

// PresetNames lists the catalog materials in stable order.
func PresetNames() []string {
	names := make([]string, 0, len(presetLayups))
	for name := range presetLayups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cltlab/goclt/internal/beam"
	"github.com/cltlab/goclt/internal/material"
	"github.com/cltlab/goclt/internal/series"
)

// beamInput bundles the flags shared by every command that analyzes a
// beam (analyze, diagram, report, export).
type beamInput struct {
	condition    string
	span         float64
	span2        float64
	udl          float64
	materialName string
	ei           float64
	ga           float64
	j2           float64
	step         float64
}

func (in *beamInput) addFlags(c *cobra.Command) {
	c.Flags().StringVarP(&in.condition, "condition", "c", string(beam.SimplySupported),
		"Support condition: simply-supported or two-span-unequal")
	c.Flags().Float64VarP(&in.span, "span", "l", 0, "Primary span length (m) [required]")
	c.Flags().Float64Var(&in.span2, "span2", 0, "Secondary span length (m), required for two-span-unequal")
	c.Flags().Float64VarP(&in.udl, "udl", "w", 0, "Uniformly distributed load (kN/m) [required]")
	c.Flags().StringVarP(&in.materialName, "material", "m", "", "Material preset (see 'goclt materials')")
	c.Flags().Float64Var(&in.ei, "ei", 0, "Flexural rigidity EI (kN-m²), overrides the preset")
	c.Flags().Float64Var(&in.ga, "ga", 0, "Shear stiffness GA (kN)")
	c.Flags().Float64Var(&in.j2, "j2", material.J2Default, "Deflection unit scale (mm per m)")
	c.Flags().Float64VarP(&in.step, "step", "s", series.DefaultStep, "Sampling step along the beam (m)")

	c.MarkFlagRequired("span")
	c.MarkFlagRequired("udl")
}

func (in *beamInput) buildBeam() (beam.Beam, beam.Condition, error) {
	var mat material.Material
	if in.materialName != "" && in.ei == 0 {
		m, err := material.Preset(in.materialName)
		if err != nil {
			return beam.Beam{}, "", err
		}
		mat = m
	} else {
		props := map[string]float64{material.KeyJ2: in.j2}
		if in.ei != 0 {
			props[material.KeyEI] = in.ei
		}
		if in.ga != 0 {
			props[material.KeyGA] = in.ga
		}
		name := in.materialName
		if name == "" {
			name = "custom"
		}
		mat = material.New(name, props)
	}

	cond := beam.Condition(in.condition)
	if cond == beam.SimplySupported && in.span2 != 0 {
		return beam.Beam{}, "", fmt.Errorf("span2 is only valid for the two-span-unequal condition")
	}

	b := beam.Beam{
		PrimarySpan:   in.span,
		SecondarySpan: in.span2,
		Material:      mat,
	}
	return b, cond, nil
}

// sampleAll runs the three analyses and samples each into plot series.
func sampleAll(b beam.Beam, load float64, cond beam.Condition, step float64) (defl, mom, shear series.Pair, err error) {
	quantities := []struct {
		label string
		get   func(beam.Beam, float64, beam.Condition) (*beam.Analysis, error)
		dst   *series.Pair
	}{
		{series.LabelDeflection, beam.GetDeflection, &defl},
		{series.LabelMoment, beam.GetBendingMoment, &mom},
		{series.LabelShear, beam.GetShearForce, &shear},
	}

	for _, q := range quantities {
		a, gerr := q.get(b, load, cond)
		if gerr != nil {
			err = gerr
			return
		}
		pair, serr := series.Sample(a, q.label, step)
		if serr != nil {
			err = serr
			return
		}
		*q.dst = pair
	}
	return
}

// supportPositions lists the support x coordinates for chart markers.
func supportPositions(b beam.Beam, cond beam.Condition) []float64 {
	if cond == beam.TwoSpanUnequal {
		return []float64{0, b.PrimarySpan, b.TotalSpan()}
	}
	return []float64{0, b.PrimarySpan}
}

package material

import (
	"errors"
	"math"
	"testing"
)

func TestRequire(t *testing.T) {
	m := New("test", map[string]float64{KeyEI: 1200, KeyJ2: 1000})

	if err := m.Require(KeyEI, KeyJ2); err != nil {
		t.Errorf("Require(EI, j2) = %v, want nil", err)
	}
	if err := m.Require(KeyGA); !errors.Is(err, ErrMissingProperty) {
		t.Errorf("Require(GA) = %v, want ErrMissingProperty", err)
	}

	zero := New("zero", map[string]float64{KeyEI: 0})
	if err := zero.Require(KeyEI); !errors.Is(err, ErrMissingProperty) {
		t.Errorf("Require on zero EI = %v, want ErrMissingProperty", err)
	}
}

func TestProperty(t *testing.T) {
	m := New("test", map[string]float64{KeyEI: 1200})

	if v, ok := m.Property(KeyEI); !ok || v != 1200 {
		t.Errorf("Property(EI) = %v, %v", v, ok)
	}
	if _, ok := m.Property(KeyGA); ok {
		t.Error("Property(GA) reported present")
	}
}

func TestPresets(t *testing.T) {
	names := PresetNames()
	if len(names) == 0 {
		t.Fatal("no presets")
	}

	for _, name := range names {
		m, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if err := m.Require(KeyEI, KeyGA, KeyJ2); err != nil {
			t.Errorf("preset %q incomplete: %v", name, err)
		}
		if m.Layup.Depth() <= 0 {
			t.Errorf("preset %q has no depth", name)
		}
	}

	if _, err := Preset("CLT999"); err == nil {
		t.Error("unknown preset accepted")
	}
}

func TestLayupStiffness(t *testing.T) {
	layup := Layup{
		{Thickness: 40, Orientation: Longitudinal},
		{Thickness: 40, Orientation: Transverse},
		{Thickness: 40, Orientation: Longitudinal},
	}

	ei, ga := layup.Stiffness(E0Mean, E90Mean, GMean, StripWidth)
	if ei <= 0 || ga <= 0 {
		t.Fatalf("stiffness = %v, %v", ei, ga)
	}

	// A homogeneous all-longitudinal section of the same depth is the
	// upper bound: E·b·d³/12.
	solid := E0Mean * StripWidth * math.Pow(120, 3) / 12 / 1e9
	if ei >= solid {
		t.Errorf("EI = %v, want below solid-section %v", ei, solid)
	}

	// Outer layers dominate: dropping the core E to E90 must cost
	// much less than half the stiffness.
	if ei < solid/2 {
		t.Errorf("EI = %v, implausibly low vs %v", ei, solid)
	}
}

func TestLayupDepth(t *testing.T) {
	var empty Layup
	if empty.Depth() != 0 {
		t.Error("empty layup has depth")
	}

	l := Layup{{Thickness: 30}, {Thickness: 30}, {Thickness: 30}}
	if l.Depth() != 90 {
		t.Errorf("depth = %v, want 90", l.Depth())
	}
}

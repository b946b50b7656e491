package loads

import (
	"math"
	"testing"
)

func TestFactored(t *testing.T) {
	u := UDL{Dead: 3, Live: 2, Snow: 1}

	cases := []struct {
		combo Combination
		want  float64
	}{
		{ULSCombinations[0], 1.35 * 3},
		{ULSCombinations[1], 1.35*3 + 1.5*2 + 0.75*1},
		{SLSCombination, 6},
	}
	for _, c := range cases {
		if got := c.combo.Factored(u); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%s: Factored = %v, want %v", c.combo.Description, got, c.want)
		}
	}
}

func TestGoverning(t *testing.T) {
	// Live dominated: the full 1.5Q combination governs.
	w, combo := Governing(UDL{Dead: 1, Live: 5}, ULSCombinations)
	if combo.ID != "2" {
		t.Errorf("governing combo = %s, want 2", combo.ID)
	}
	if want := 1.35*1 + 1.5*5; math.Abs(w-want) > 1e-12 {
		t.Errorf("governing w = %v, want %v", w, want)
	}

	// Dead only: 1.35G governs over the others (they coincide, first wins).
	_, combo = Governing(UDL{Dead: 4}, ULSCombinations)
	if combo.ID != "1" {
		t.Errorf("governing combo = %s, want 1", combo.ID)
	}
}

package loads

// Combination is a set of partial safety factors applied to the
// characteristic loads (EN 1990 basic combinations for a single
// variable action).
type Combination struct {
	ID          string
	Description string
	// Factors per load type
	Dead float64 // G - permanent load
	Live float64 // Q - imposed load
	Snow float64 // S - snow load
}

// ULSCombinations are the ultimate-limit-state combinations checked
// for the design UDL.
var ULSCombinations = []Combination{
	{
		ID:          "1",
		Description: "1.35G",
		Dead:        1.35,
	},
	{
		ID:          "2",
		Description: "1.35G + 1.5Q + 0.75S",
		Dead:        1.35,
		Live:        1.5,
		Snow:        0.75,
	},
	{
		ID:          "3",
		Description: "1.35G + 1.5S + 1.05Q",
		Dead:        1.35,
		Live:        1.05,
		Snow:        1.5,
	},
}

// SLSCombination is the characteristic serviceability combination used
// for deflection checks.
var SLSCombination = Combination{
	ID:          "SLS",
	Description: "G + Q + S",
	Dead:        1,
	Live:        1,
	Snow:        1,
}

// UDL holds the characteristic uniformly distributed loads in kN/m.
type UDL struct {
	Dead float64
	Live float64
	Snow float64
}

// Factored applies the combination factors to the characteristic loads.
func (c Combination) Factored(u UDL) float64 {
	return c.Dead*u.Dead + c.Live*u.Live + c.Snow*u.Snow
}

// Governing finds the maximum factored UDL over the given combinations.
func Governing(u UDL, combinations []Combination) (float64, Combination) {
	var maxLoad float64
	var governing Combination

	for _, c := range combinations {
		w := c.Factored(u)
		if w > maxLoad {
			maxLoad = w
			governing = c
		}
	}
	return maxLoad, governing
}

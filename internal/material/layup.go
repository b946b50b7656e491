package material

// Orientation is the grain direction of a CLT lamella relative to the
// beam axis.
type Orientation int

const (
	Longitudinal Orientation = iota
	Transverse
)

// String implements fmt.Stringer for diagram labels.
func (o Orientation) String() string {
	if o == Transverse {
		return "transverse"
	}
	return "longitudinal"
}

// Layer is one lamella of a CLT panel.
type Layer struct {
	Thickness   float64 // mm
	Orientation Orientation
}

// Layup is the layer stack of a CLT panel, listed top to bottom.
type Layup []Layer

// Depth returns the total panel thickness in mm.
func (l Layup) Depth() float64 {
	var d float64
	for _, layer := range l {
		d += layer.Thickness
	}
	return d
}

// Rolling-shear modulus is conventionally taken as a tenth of the
// in-plane shear modulus for softwood lamellae.
const rollingShearRatio = 0.1

// Stiffness estimates the effective bending stiffness EI (kN-m²) and
// shear stiffness GA (kN) of the layup for a strip of the given width,
// assuming rigid bonds between lamellae (a simplification of the gamma
// method; cross layers contribute E90 to bending and rolling shear to GA).
//
// Inputs: e0 and e90 are the lamella moduli parallel and perpendicular
// to grain in MPa, g is the in-plane shear modulus in MPa, width in mm.
func (l Layup) Stiffness(e0, e90, g, width float64) (ei, ga float64) {
	depth := l.Depth()
	if depth == 0 || width == 0 {
		return 0, 0
	}

	// Layer centroid distances from panel mid-depth.
	top := depth / 2
	for _, layer := range l {
		z := top - layer.Thickness/2
		top -= layer.Thickness

		e := e0
		gi := g
		if layer.Orientation == Transverse {
			e = e90
			gi = g * rollingShearRatio
		}

		// Steiner terms in N-mm², shear areas in N.
		ei += e * (width*layer.Thickness*layer.Thickness*layer.Thickness/12 +
			width*layer.Thickness*z*z)
		ga += gi * width * layer.Thickness
	}

	// N-mm² -> kN-m², N -> kN.
	return ei / 1e9, ga / 1e3
}

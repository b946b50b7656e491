package beam

import (
	"errors"
	"fmt"
	"math"

	"github.com/cltlab/goclt/internal/material"
)

// Condition selects the support configuration an analyzer models.
type Condition string

const (
	// SimplySupported is a single span with both ends free to rotate.
	SimplySupported Condition = "simply-supported"
	// TwoSpanUnequal is a beam continuous over three supports with
	// two unequal span lengths.
	TwoSpanUnequal Condition = "two-span-unequal"
)

var (
	// ErrUnknownCondition is returned when no analyzer is registered
	// for the requested condition.
	ErrUnknownCondition = errors.New("unknown beam condition")

	// ErrInvalidPosition is returned when an equation is evaluated at
	// a NaN or infinite position.
	ErrInvalidPosition = errors.New("invalid beam position")
)

// Beam is the geometry of the analyzed member plus its material.
// Spans are in metres. For the simply-supported condition the
// secondary span is conventionally zero; the analyzer ignores it.
type Beam struct {
	PrimarySpan   float64
	SecondarySpan float64
	Material      material.Material
}

// TotalSpan returns the full supported length in metres.
func (b Beam) TotalSpan() float64 {
	return b.PrimarySpan + b.SecondarySpan
}

// Point is one sampled response value at position X (m).
type Point struct {
	X float64
	Y float64
}

// Kind tags a Value so consumers branch on an explicit variant instead
// of inspecting the shape of the result.
type Kind int

const (
	// KindOutOfRange marks a position outside [0, total span]. It is
	// "no data", not an error; sampling loops skip it.
	KindOutOfRange Kind = iota
	// KindContinuous is an ordinary single-valued sample.
	KindContinuous
	// KindDiscontinuous is a left/right limit pair at an interior
	// support where the quantity jumps.
	KindDiscontinuous
)

// Value is the tagged result of evaluating an equation at one position.
type Value struct {
	Kind  Kind
	Point Point // set when Kind == KindContinuous
	Left  Point // set when Kind == KindDiscontinuous
	Right Point // set when Kind == KindDiscontinuous
}

// Continuous builds an in-domain single-valued result.
func Continuous(x, y float64) Value {
	return Value{Kind: KindContinuous, Point: Point{X: x, Y: y}}
}

// Discontinuous builds a left/right limit pair at a support position.
func Discontinuous(left, right Point) Value {
	return Value{Kind: KindDiscontinuous, Left: left, Right: right}
}

// OutOfRange builds the "no data" result for a position outside the
// beam.
func OutOfRange(x float64) Value {
	return Value{Kind: KindOutOfRange, Point: Point{X: x}}
}

// Equation evaluates one response quantity at a position along the
// beam. Implementations are pure: reaction forces are solved once at
// construction time and captured, so repeated evaluation at the same
// position yields identical results.
type Equation func(x float64) (Value, error)

func checkPosition(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidPosition, x)
	}
	return nil
}

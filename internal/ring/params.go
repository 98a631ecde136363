package ring

import (
	"math"
)

// Defaults applied when a parameter is not supplied by any source.
const (
	DefaultRadius = 100.0
	DefaultName   = "circle"
	DefaultEdges  = 10
	DefaultLanes  = 1
	DefaultSpeed  = 13.9

	// MinDerivedRadius is only enforced when the radius is derived from a
	// dimension.
	MinDerivedRadius = 10.0
	// MinSide is the shortest chord netconvert can handle sensibly.
	MinSide = 1.0
)

// Input holds the raw, unvalidated parameters of a ring.
type Input struct {
	Radius float64
	// Dimension is the total ring length. When set it overrides Radius.
	Dimension *float64
	Edges     int
	Lanes     int
	Speed     float64
	Name      string
}

// DefaultInput returns an Input populated with the built-in defaults.
func DefaultInput() Input {
	return Input{
		Radius: DefaultRadius,
		Name:   DefaultName,
		Edges:  DefaultEdges,
		Lanes:  DefaultLanes,
		Speed:  DefaultSpeed,
	}
}

// Params is the validated, immutable parameter set every later stage reads.
type Params struct {
	Radius float64
	Edges  int
	Lanes  int
	Speed  float64
	Name   string

	// Side is the chord length between two adjacent subdivisions.
	Side float64
	// FromDimension reports whether Radius was derived from a dimension.
	FromDimension bool
}

// EdgeLength is the nominal length of one of the two ring edges. It is a
// chord approximation, not the true arc length.
func (p Params) EdgeLength() float64 {
	return p.Side * float64(p.Edges) / 2
}

// TotalLength is the nominal length of the whole ring.
func (p Params) TotalLength() float64 {
	return p.Side * float64(p.Edges)
}

// RadiusForDimension returns the radius of a ring with the given total length
// split into the given number of chords.
func RadiusForDimension(dimension float64, edges int) float64 {
	n := float64(edges)
	return dimension / n / (2 * math.Sin(math.Pi/n))
}

// SideLength returns the chord length between adjacent subdivisions of a
// circle of the given radius split into the given number of chords.
func SideLength(radius float64, edges int) float64 {
	return 2 * radius * math.Sin(math.Pi/float64(edges))
}

// Resolve validates the input and derives the final parameter set. The first
// failing rule is returned as a *ValidationError.
func Resolve(in Input) (Params, error) {
	if in.Name == "" {
		return Params{}, newValidationError("name", "Output name must not be empty")
	}

	radius := in.Radius
	fromDimension := in.Dimension != nil
	if fromDimension {
		dim := *in.Dimension
		if !isFinite(dim) {
			return Params{}, newValidationError("dimension", "Ring dimension must be a finite number")
		}
		if dim <= 0 {
			return Params{}, newValidationError("dimension", "Ring dimension must be positive")
		}
		radius = RadiusForDimension(dim, in.Edges)
	}

	if fromDimension && radius < MinDerivedRadius {
		return Params{}, newValidationError("radius", "Radius is too small")
	}
	if in.Edges < 3 {
		return Params{}, newValidationError("edges", "Too few edges to construct a circle")
	}
	if in.Lanes < 1 {
		return Params{}, newValidationError("lanes", "There must be at least one lane")
	}
	if !isFinite(in.Speed) {
		return Params{}, newValidationError("speed", "Speed must be a finite number")
	}
	if in.Speed < 0 {
		return Params{}, newValidationError("speed", "Speed must not be negative")
	}
	if !isFinite(radius) {
		return Params{}, newValidationError("radius", "Radius must be a finite number")
	}

	side := SideLength(radius, in.Edges)
	if side < MinSide {
		return Params{}, newValidationError("edges",
			"Edge length is too small! Choose a bigger radius/dimension or reduce the number of edges.")
	}

	return Params{
		Radius:        radius,
		Edges:         in.Edges,
		Lanes:         in.Lanes,
		Speed:         in.Speed,
		Name:          in.Name,
		Side:          side,
		FromDimension: fromDimension,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

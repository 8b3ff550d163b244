package attractor

import "math"

// Map is the per-point transformation
//
//	x' = sin(x² − y² + a)
//	y' = cos(2xy + b)
//
// applied independently to every point of a frame. Both output coordinates
// lie in [-1, 1] for any finite input, so iterated frames are always bounded.
type Map struct {
	A float64
	B float64
}

// Apply evaluates the map at pt.
func (m Map) Apply(pt Point) Point {
	x, y := pt.Splat()
	return Point{
		X: math.Sin(x*x - y*y + m.A),
		Y: math.Cos(2*x*y + m.B),
	}
}

// IsFinite reports whether both parameters are finite.
func (m Map) IsFinite() bool {
	return !math.IsInf(m.A, 0) && !math.IsNaN(m.A) &&
		!math.IsInf(m.B, 0) && !math.IsNaN(m.B)
}

package attractor

import (
	"fmt"
	"math"
)

// Curve describes an initial shape before sampling. The catalogue is a closed
// set: [Circle], [Ellipse], [HorizontalLine], [VerticalLine], and
// [DiagonalLine]. The unexported methods keep it closed; new variants need
// bespoke sampling math and are added here, not by implementing the interface
// elsewhere.
type Curve interface {
	// validate reports whether the shape parameters satisfy the curve's
	// invariants (finite values, positive radius/length).
	validate() error

	// at returns the i-th of count sample points along the curve.
	at(i, count int) Point
}

var _ Curve = Circle{}
var _ Curve = Ellipse{}
var _ Curve = HorizontalLine{}
var _ Curve = VerticalLine{}
var _ Curve = DiagonalLine{}

// Sample discretizes a curve into an ordered polyline of exactly count
// points.
//
// Circles and ellipses are sampled at angles evenly spaced over the full
// turn starting at angle 0; the angle 0 point is not repeated at the end.
// Lines are sampled by linear interpolation from the first endpoint to the
// second, both inclusive.
//
// A count below 2, a non-positive radius or length, or a non-finite shape
// parameter fails with [ErrInvalidParameter] and produces no points.
func Sample(c Curve, count int) ([]Point, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: sample count %d, need at least 2", ErrInvalidParameter, count)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	pts := make([]Point, count)
	for i := range pts {
		pts[i] = c.at(i, count)
	}
	return pts, nil
}

// Circle is a circle with the given center and radius.
type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) validate() error {
	if !c.Center.IsFinite() || math.IsInf(c.Radius, 0) || math.IsNaN(c.Radius) {
		return fmt.Errorf("%w: circle parameters must be finite", ErrInvalidParameter)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("%w: circle radius %g, need > 0", ErrInvalidParameter, c.Radius)
	}
	return nil
}

func (c Circle) at(i, count int) Point {
	th := 2 * math.Pi * float64(i) / float64(count)
	sin, cos := math.Sincos(th)
	return Pt(c.Center.X+c.Radius*cos, c.Center.Y+c.Radius*sin)
}

// Ellipse is an axis-aligned ellipse with the given center and semi-axes.
type Ellipse struct {
	Center Point
	// RX and RY are the horizontal and vertical semi-axes.
	RX, RY float64
}

func (e Ellipse) validate() error {
	if !e.Center.IsFinite() ||
		math.IsInf(e.RX, 0) || math.IsNaN(e.RX) ||
		math.IsInf(e.RY, 0) || math.IsNaN(e.RY) {
		return fmt.Errorf("%w: ellipse parameters must be finite", ErrInvalidParameter)
	}
	if e.RX <= 0 || e.RY <= 0 {
		return fmt.Errorf("%w: ellipse semi-axes (%g, %g), need both > 0", ErrInvalidParameter, e.RX, e.RY)
	}
	return nil
}

func (e Ellipse) at(i, count int) Point {
	th := 2 * math.Pi * float64(i) / float64(count)
	sin, cos := math.Sincos(th)
	return Pt(e.Center.X+e.RX*cos, e.Center.Y+e.RY*sin)
}

// HorizontalLine is a horizontal line segment described by its center and
// length.
type HorizontalLine struct {
	Center Point
	Length float64
}

func (l HorizontalLine) validate() error {
	return validateLength(l.Center, l.Length, "horizontal line")
}

func (l HorizontalLine) at(i, count int) Point {
	p0 := Pt(l.Center.X-l.Length/2, l.Center.Y)
	p1 := Pt(l.Center.X+l.Length/2, l.Center.Y)
	return p0.Lerp(p1, float64(i)/float64(count-1))
}

// VerticalLine is a vertical line segment described by its center and length.
type VerticalLine struct {
	Center Point
	Length float64
}

func (l VerticalLine) validate() error {
	return validateLength(l.Center, l.Length, "vertical line")
}

func (l VerticalLine) at(i, count int) Point {
	p0 := Pt(l.Center.X, l.Center.Y-l.Length/2)
	p1 := Pt(l.Center.X, l.Center.Y+l.Length/2)
	return p0.Lerp(p1, float64(i)/float64(count-1))
}

func validateLength(center Point, length float64, kind string) error {
	if !center.IsFinite() || math.IsInf(length, 0) || math.IsNaN(length) {
		return fmt.Errorf("%w: %s parameters must be finite", ErrInvalidParameter, kind)
	}
	if length <= 0 {
		return fmt.Errorf("%w: %s length %g, need > 0", ErrInvalidParameter, kind, length)
	}
	return nil
}

// DiagonalLine is a line segment between two explicit endpoints. Coincident
// endpoints are allowed; they describe a degenerate curve whose span is zero,
// which keeps the expansion factor undefined for the whole trajectory.
type DiagonalLine struct {
	P0 Point
	P1 Point
}

func (l DiagonalLine) validate() error {
	if !l.P0.IsFinite() || !l.P1.IsFinite() {
		return fmt.Errorf("%w: diagonal line endpoints must be finite", ErrInvalidParameter)
	}
	return nil
}

func (l DiagonalLine) at(i, count int) Point {
	return l.P0.Lerp(l.P1, float64(i)/float64(count-1))
}

package attractor

import (
	"fmt"
	"slices"
)

// Frame is one iteration's snapshot: the ordered points of the curve after k
// applications of the map, plus the metrics of that point set. Point i of a
// frame is the image of point i of the previous frame, so index
// correspondence holds across the whole trajectory.
type Frame struct {
	Points  []Point
	Metrics Metrics
}

// Trajectory is the full evolution of a curve: frame 0 is the sampled
// initial curve, frame k the curve after k map applications. It is a pure
// value; none of the functions in this package mutate it after returning it,
// and callers scrubbing through it for animation must treat it as read-only.
type Trajectory []Frame

// Evolve applies the map to every point of initial, iterations times,
// returning the resulting trajectory of iterations+1 frames. Frame 0 holds a
// copy of initial, so the caller's slice is not retained.
//
// The computation is deterministic: identical inputs yield bit-identical
// trajectories. A negative iteration count, an empty point sequence, a
// non-finite point, or non-finite map parameters fail with
// [ErrInvalidParameter] before any frame is computed.
func Evolve(initial []Point, m Map, iterations int) (Trajectory, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: iteration count %d, need >= 0", ErrInvalidParameter, iterations)
	}
	if len(initial) == 0 {
		return nil, fmt.Errorf("%w: empty point sequence", ErrInvalidParameter)
	}
	if !m.IsFinite() {
		return nil, fmt.Errorf("%w: map parameters (%g, %g) must be finite", ErrInvalidParameter, m.A, m.B)
	}
	for i, pt := range initial {
		if !pt.IsFinite() {
			return nil, fmt.Errorf("%w: point %d %v is not finite", ErrInvalidParameter, i, pt)
		}
	}

	frames := make(Trajectory, iterations+1)
	first := slices.Clone(initial)
	m0 := measure(first)
	baseSpan := m0.Span
	frames[0] = Frame{
		Points:  first,
		Metrics: m0.withExpansion(baseSpan),
	}
	for k := 1; k <= iterations; k++ {
		prev := frames[k-1].Points
		next := make([]Point, len(prev))
		for i, pt := range prev {
			next[i] = m.Apply(pt)
		}
		frames[k] = Frame{
			Points:  next,
			Metrics: measure(next).withExpansion(baseSpan),
		}
	}
	return frames, nil
}

// EvolveCurve samples a curve and evolves the sample under the map. It is
// the composition of [Sample] and [Evolve] and the usual entry point for
// presentation layers.
func EvolveCurve(c Curve, count int, m Map, iterations int) (Trajectory, error) {
	pts, err := Sample(c, count)
	if err != nil {
		return nil, err
	}
	return Evolve(pts, m, iterations)
}

package attractor

import "gonum.org/v1/gonum/stat"

// Metrics summarizes the shape of one frame's point set.
type Metrics struct {
	// Span is the diagonal length of the frame's axis-aligned bounding box.
	Span float64
	// Width and Height are the x and y extents of the bounding box.
	Width  float64
	Height float64
	// Centroid is the arithmetic mean of the frame's points.
	Centroid Point
	// PathLength is the total length of the polyline connecting the frame's
	// points in order.
	PathLength float64
	// ExpansionFactor is this frame's span divided by the span of frame 0.
	// It is meaningful only when ExpansionDefined is true; with a degenerate
	// initial curve (frame-0 span of zero) it stays undefined for every
	// frame of the trajectory.
	ExpansionFactor  float64
	ExpansionDefined bool
}

// measure computes all metrics of a point set except the expansion factor,
// which needs the frame-0 span.
func measure(pts []Point) Metrics {
	bbox := NewRectFromPoints(pts[0], pts[0])
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	var pathLength float64
	for i, pt := range pts {
		bbox = bbox.UnionPoint(pt)
		xs[i], ys[i] = pt.Splat()
		if i > 0 {
			pathLength += pt.Distance(pts[i-1])
		}
	}
	return Metrics{
		Span:       bbox.Diagonal(),
		Width:      bbox.Width(),
		Height:     bbox.Height(),
		Centroid:   Pt(stat.Mean(xs, nil), stat.Mean(ys, nil)),
		PathLength: pathLength,
	}
}

// withExpansion fills in the expansion factor relative to the frame-0 span.
// A zero base span leaves the factor undefined rather than dividing.
func (m Metrics) withExpansion(baseSpan float64) Metrics {
	if baseSpan > 0 {
		m.ExpansionFactor = m.Span / baseSpan
		m.ExpansionDefined = true
	}
	return m
}

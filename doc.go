// Package attractor evolves 2D parametric curves under the discrete-time map
//
//	x' = sin(x² − y² + a)
//	y' = cos(2xy + b)
//
// An initial curve from a small closed catalogue ([Circle], [Ellipse],
// [HorizontalLine], [VerticalLine], [DiagonalLine]) is discretized into an
// ordered polyline with [Sample] and then iterated pointwise with [Evolve],
// producing a [Trajectory]: one [Frame] per iteration, each carrying the
// transformed points together with shape [Metrics] (bounding-box span,
// centroid, expansion factor, path length).
//
// The package is a pure computational core. All functions are deterministic,
// free of I/O and shared state, and safe to call concurrently; a Trajectory is
// never mutated after it is returned, so renderers and animation players may
// index into it freely. Presentation concerns (charts, playback, export) live
// in the commands under cmd/.
package attractor

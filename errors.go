package attractor

import "errors"

// ErrInvalidParameter is the single error kind reported by this package. It
// covers every precondition violation: a non-positive radius or length, a
// sample count below 2, a negative iteration count, an empty or non-finite
// point sequence, and non-finite map parameters. All violations are detected
// before any computation starts; no partial Trajectory is ever returned.
//
// Callers match it with errors.Is.
var ErrInvalidParameter = errors.New("attractor: invalid parameter")

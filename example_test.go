package attractor_test

import (
	"fmt"

	attractor "github.com/MinaBasilious/SinCosAttractor"
)

func ExampleEvolveCurve() {
	traj, err := attractor.EvolveCurve(
		attractor.Circle{Center: attractor.Pt(0, 0), Radius: 1},
		4,
		attractor.Map{A: 0, B: 0},
		1,
	)
	if err != nil {
		panic(err)
	}

	for k, frame := range traj {
		m := frame.Metrics
		fmt.Printf("frame %d: first point (%.4f, %.4f), span %.4f\n",
			k, frame.Points[0].X, frame.Points[0].Y, m.Span)
	}

	// Output:
	// frame 0: first point (1.0000, 0.0000), span 2.8284
	// frame 1: first point (0.8415, 1.0000), span 1.6829
}

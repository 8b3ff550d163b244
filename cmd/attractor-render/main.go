// Command attractor-render renders a curve's evolution under the sin/cos map
// into a single PNG: one polyline per iteration frame, fading from the grey
// initial curve to the red final frame.
//
// Usage:
//
//	go run ./cmd/attractor-render [flags]
//
// Flags:
//
//	-curve       circle | ellipse | hline | vline | dline (default circle)
//	-cx, -cy     curve center
//	-r           circle radius
//	-rx, -ry     ellipse semi-axes
//	-length      line length (hline/vline)
//	-x0 ... -y1  diagonal line endpoints
//	-a, -b       map parameters
//	-count       sample count (default 400)
//	-iterations  iteration count (default 20)
//	-o           output file (default attractor.png)
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	attractor "github.com/MinaBasilious/SinCosAttractor"
)

func main() {
	var (
		curveName = flag.String("curve", "circle", "Curve type: circle | ellipse | hline | vline | dline")
		cx        = flag.Float64("cx", 0, "Curve center x")
		cy        = flag.Float64("cy", 0, "Curve center y")
		r         = flag.Float64("r", 1, "Circle radius")
		rx        = flag.Float64("rx", 1.5, "Ellipse horizontal semi-axis")
		ry        = flag.Float64("ry", 0.75, "Ellipse vertical semi-axis")
		length    = flag.Float64("length", 2, "Line length (hline/vline)")
		x0        = flag.Float64("x0", -1, "Diagonal line start x")
		y0        = flag.Float64("y0", -1, "Diagonal line start y")
		x1        = flag.Float64("x1", 1, "Diagonal line end x")
		y1        = flag.Float64("y1", 1, "Diagonal line end y")
		a         = flag.Float64("a", 0, "Map parameter a")
		b         = flag.Float64("b", 0, "Map parameter b")
		count     = flag.Int("count", 400, "Sample count")
		n         = flag.Int("iterations", 20, "Iteration count")
		out       = flag.String("o", "attractor.png", "Output PNG file")
	)
	flag.Parse()

	curve, err := buildCurve(*curveName, attractor.Pt(*cx, *cy), *r, *rx, *ry, *length,
		attractor.Pt(*x0, *y0), attractor.Pt(*x1, *y1))
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	traj, err := attractor.EvolveCurve(curve, *count, attractor.Map{A: *a, B: *b}, *n)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	if err := render(traj, *curveName, attractor.Map{A: *a, B: *b}, *out); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	log.Printf("rendered %d frames to %q", len(traj), *out)
}

func buildCurve(name string, center attractor.Point, r, rx, ry, length float64, p0, p1 attractor.Point) (attractor.Curve, error) {
	switch name {
	case "circle":
		return attractor.Circle{Center: center, Radius: r}, nil
	case "ellipse":
		return attractor.Ellipse{Center: center, RX: rx, RY: ry}, nil
	case "hline":
		return attractor.HorizontalLine{Center: center, Length: length}, nil
	case "vline":
		return attractor.VerticalLine{Center: center, Length: length}, nil
	case "dline":
		return attractor.DiagonalLine{P0: p0, P1: p1}, nil
	default:
		return nil, fmt.Errorf("unknown curve %q", name)
	}
}

func render(traj attractor.Trajectory, curveName string, m attractor.Map, out string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("curve=%s a=%g b=%g iterations=%d", curveName, m.A, m.B, len(traj)-1)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for k, frame := range traj {
		pts := make(plotter.XYs, len(frame.Points))
		for i, pt := range frame.Points {
			pts[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("frame %d: %w", k, err)
		}
		line.Width = vg.Points(1)
		line.Color = frameColor(k, len(traj))
		p.Add(line)
		if k == 0 || k == len(traj)-1 {
			p.Legend.Add(fmt.Sprintf("iteration %d", k), line)
		}
	}

	return p.Save(8*vg.Inch, 8*vg.Inch, out)
}

// frameColor fades from grey (initial curve) through blue to red (final
// frame).
func frameColor(k, total int) color.Color {
	if k == 0 {
		return color.RGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}
	}
	t := float64(k) / float64(total-1)
	return color.RGBA{
		R: uint8(0x20 + t*(0xff-0x20)),
		G: 0x40,
		B: uint8(0xff - t*(0xff-0x52)),
		A: 0xff,
	}
}

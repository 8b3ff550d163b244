package attractor

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestEvolveFrameCount(t *testing.T) {
	initial := []Point{Pt(0.1, 0.1), Pt(0.2, -0.3)}
	for _, n := range []int{0, 1, 5, 50} {
		traj, err := Evolve(initial, Map{A: 1, B: -1}, n)
		if err != nil {
			t.Fatal(err)
		}
		if len(traj) != n+1 {
			t.Errorf("Evolve with %d iterations returned %d frames, want %d", n, len(traj), n+1)
		}
	}
}

func TestEvolveFrameZero(t *testing.T) {
	initial := []Point{Pt(1, 0), Pt(0, 1), Pt(-1, 0)}
	traj, err := Evolve(initial, Map{A: 2, B: 3}, 3)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, initial, traj[0].Points)

	// Frame 0 must hold a copy: mutating the caller's slice afterwards must
	// not reach into the trajectory.
	initial[0] = Pt(99, 99)
	diff(t, Pt(1, 0), traj[0].Points[0])

	if f := traj[0].Metrics.ExpansionFactor; f != 1 || !traj[0].Metrics.ExpansionDefined {
		t.Errorf("frame 0 expansion factor = %v (defined=%v), want 1 (defined)", f, traj[0].Metrics.ExpansionDefined)
	}
}

func TestEvolveOrderPreservation(t *testing.T) {
	pts, err := Sample(Ellipse{Center: Pt(0.2, -0.1), RX: 1, RY: 0.4}, 17)
	if err != nil {
		t.Fatal(err)
	}
	m := Map{A: -0.8, B: 2.1}
	traj, err := Evolve(pts, m, 6)
	if err != nil {
		t.Fatal(err)
	}
	for k := 1; k < len(traj); k++ {
		if len(traj[k].Points) != len(traj[k-1].Points) {
			t.Fatalf("frame %d has %d points, frame %d has %d", k, len(traj[k].Points), k-1, len(traj[k-1].Points))
		}
		for i, pt := range traj[k].Points {
			diff(t, m.Apply(traj[k-1].Points[i]), pt)
		}
	}
}

func TestEvolveDeterminism(t *testing.T) {
	pts, err := Sample(Circle{Center: Pt(0, 0), Radius: 1.5}, 32)
	if err != nil {
		t.Fatal(err)
	}
	m := Map{A: 1.3, B: -4.2}
	a, err := Evolve(pts, m, 25)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Evolve(pts, m, 25)
	if err != nil {
		t.Fatal(err)
	}
	// Bit-for-bit identical, no approximation allowed.
	diff(t, a, b)
}

func TestEvolveConcreteCircle(t *testing.T) {
	traj, err := EvolveCurve(Circle{Center: Pt(0, 0), Radius: 1}, 4, Map{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(1, 0), Pt(0, 1), Pt(-1, 0), Pt(0, -1)}, traj[0].Points, cmpopts.EquateApprox(0, 1e-12))

	// (1, 0) → (sin(1−0+0), cos(0+0)) = (sin 1, 1).
	diff(t, Pt(math.Sin(1), 1), traj[1].Points[0], cmpopts.EquateApprox(0, 1e-12))
}

func TestEvolveMetrics(t *testing.T) {
	traj, err := Evolve([]Point{Pt(1, 0), Pt(0, 1), Pt(-1, 0), Pt(0, -1)}, Map{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	m := traj[0].Metrics
	if want := 2 * math.Sqrt2; math.Abs(m.Span-want) > 1e-12 {
		t.Errorf("got span %v, want %v", m.Span, want)
	}
	if m.Width != 2 || m.Height != 2 {
		t.Errorf("got extents (%v, %v), want (2, 2)", m.Width, m.Height)
	}
	diff(t, Pt(0, 0), m.Centroid, cmpopts.EquateApprox(0, 1e-15))
	if want := 3 * math.Sqrt2; math.Abs(m.PathLength-want) > 1e-12 {
		t.Errorf("got path length %v, want %v", m.PathLength, want)
	}
}

func TestEvolveDegenerateSpan(t *testing.T) {
	// Two coincident points: frame-0 span is zero, so the expansion factor
	// stays undefined for every frame. It must never be NaN and never crash.
	traj, err := EvolveCurve(DiagonalLine{P0: Pt(0.5, 0.5), P1: Pt(0.5, 0.5)}, 2, Map{A: 1, B: 2}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if traj[0].Metrics.Span != 0 {
		t.Errorf("got frame-0 span %v, want 0", traj[0].Metrics.Span)
	}
	for k, frame := range traj {
		if frame.Metrics.ExpansionDefined {
			t.Errorf("frame %d: expansion factor defined, want undefined", k)
		}
		if math.IsNaN(frame.Metrics.ExpansionFactor) {
			t.Errorf("frame %d: expansion factor is NaN", k)
		}
	}
}

func TestEvolveInvalid(t *testing.T) {
	valid := []Point{Pt(0.1, 0.1)}

	if _, err := Evolve(valid, Map{}, -1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative iterations: got %v, want ErrInvalidParameter", err)
	}
	if _, err := Evolve(nil, Map{}, 3); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("empty initial points: got %v, want ErrInvalidParameter", err)
	}
	if _, err := Evolve([]Point{Pt(math.NaN(), 0)}, Map{}, 3); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("NaN input point: got %v, want ErrInvalidParameter", err)
	}
	if _, err := Evolve(valid, Map{A: math.Inf(1)}, 3); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("infinite map parameter: got %v, want ErrInvalidParameter", err)
	}
}

package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	attractor "github.com/MinaBasilious/SinCosAttractor"
)

// evolveRequest is one fully parsed visualizer request: which curve to
// sample, how densely, and how the map is parameterized.
type evolveRequest struct {
	curve      attractor.Curve
	curveName  string
	count      int
	m          attractor.Map
	iterations int
}

type server struct{}

func newServer() *server {
	return &server{}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleDashboard)
	mux.HandleFunc("/api/trajectory", s.handleTrajectoryJSON)
	mux.HandleFunc("/api/trajectory.csv", s.handleTrajectoryCSV)
	mux.HandleFunc("/ws", s.handleFrameStream)
	return mux
}

// parseRequest reads curve, map, and iteration parameters from query
// parameters, applying the same defaults the original UI starts with.
//
// Query params:
//   - curve: circle | ellipse | hline | vline | dline (default circle)
//   - cx, cy: curve center; r: circle radius; rx, ry: ellipse semi-axes;
//     length: line length; x0, y0, x1, y1: diagonal line endpoints
//   - a, b: map parameters (default 0)
//   - count: sample count (default 200)
//   - iterations: iteration count (default 100)
func parseRequest(q url.Values) (evolveRequest, error) {
	req := evolveRequest{
		curveName:  "circle",
		count:      200,
		iterations: 100,
	}

	var err error
	if req.m.A, err = floatParam(q, "a", 0); err != nil {
		return req, err
	}
	if req.m.B, err = floatParam(q, "b", 0); err != nil {
		return req, err
	}
	if req.count, err = intParam(q, "count", req.count); err != nil {
		return req, err
	}
	if req.iterations, err = intParam(q, "iterations", req.iterations); err != nil {
		return req, err
	}
	// The engine accepts any finite parameters; the sampler bound below is
	// the server's own guard against unbounded memory per request.
	if req.count > 100000 || req.iterations > 10000 {
		return req, fmt.Errorf("count %d / iterations %d exceed server limits", req.count, req.iterations)
	}

	cx, err := floatParam(q, "cx", 0)
	if err != nil {
		return req, err
	}
	cy, err := floatParam(q, "cy", 0)
	if err != nil {
		return req, err
	}
	center := attractor.Pt(cx, cy)

	if name := q.Get("curve"); name != "" {
		req.curveName = name
	}
	switch req.curveName {
	case "circle":
		r, err := floatParam(q, "r", 1)
		if err != nil {
			return req, err
		}
		req.curve = attractor.Circle{Center: center, Radius: r}
	case "ellipse":
		rx, err := floatParam(q, "rx", 1.5)
		if err != nil {
			return req, err
		}
		ry, err := floatParam(q, "ry", 0.75)
		if err != nil {
			return req, err
		}
		req.curve = attractor.Ellipse{Center: center, RX: rx, RY: ry}
	case "hline":
		length, err := floatParam(q, "length", 2)
		if err != nil {
			return req, err
		}
		req.curve = attractor.HorizontalLine{Center: center, Length: length}
	case "vline":
		length, err := floatParam(q, "length", 2)
		if err != nil {
			return req, err
		}
		req.curve = attractor.VerticalLine{Center: center, Length: length}
	case "dline":
		x0, err := floatParam(q, "x0", -1)
		if err != nil {
			return req, err
		}
		y0, err := floatParam(q, "y0", -1)
		if err != nil {
			return req, err
		}
		x1, err := floatParam(q, "x1", 1)
		if err != nil {
			return req, err
		}
		y1, err := floatParam(q, "y1", 1)
		if err != nil {
			return req, err
		}
		req.curve = attractor.DiagonalLine{P0: attractor.Pt(x0, y0), P1: attractor.Pt(x1, y1)}
	default:
		return req, fmt.Errorf("unknown curve %q", req.curveName)
	}
	return req, nil
}

func floatParam(q url.Values, name string, def float64) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %s=%q is not a number", name, raw)
	}
	return v, nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %s=%q is not an integer", name, raw)
	}
	return v, nil
}

// evolve runs the engine for a parsed request. Invalid engine input maps to
// a 400 at the call sites via errors.Is on ErrInvalidParameter.
func (req evolveRequest) evolve() (attractor.Trajectory, error) {
	return attractor.EvolveCurve(req.curve, req.count, req.m, req.iterations)
}

// Wire types. The engine's undefined expansion factor becomes JSON null.

type metricsJSON struct {
	Span            float64    `json:"span"`
	Width           float64    `json:"width"`
	Height          float64    `json:"height"`
	Centroid        [2]float64 `json:"centroid"`
	PathLength      float64    `json:"path_length"`
	ExpansionFactor *float64   `json:"expansion_factor"`
}

type frameJSON struct {
	Iteration int          `json:"iteration"`
	Points    [][2]float64 `json:"points"`
	Metrics   metricsJSON  `json:"metrics"`
}

type trajectoryJSON struct {
	Curve      string      `json:"curve"`
	A          float64     `json:"a"`
	B          float64     `json:"b"`
	Count      int         `json:"count"`
	Iterations int         `json:"iterations"`
	Frames     []frameJSON `json:"frames"`
}

func toMetricsJSON(m attractor.Metrics) metricsJSON {
	out := metricsJSON{
		Span:       m.Span,
		Width:      m.Width,
		Height:     m.Height,
		Centroid:   [2]float64{m.Centroid.X, m.Centroid.Y},
		PathLength: m.PathLength,
	}
	if m.ExpansionDefined {
		f := m.ExpansionFactor
		out.ExpansionFactor = &f
	}
	return out
}

func toFrameJSON(k int, f attractor.Frame) frameJSON {
	pts := make([][2]float64, len(f.Points))
	for i, pt := range f.Points {
		pts[i] = [2]float64{pt.X, pt.Y}
	}
	return frameJSON{Iteration: k, Points: pts, Metrics: toMetricsJSON(f.Metrics)}
}

func toTrajectoryJSON(req evolveRequest, traj attractor.Trajectory) trajectoryJSON {
	out := trajectoryJSON{
		Curve:      req.curveName,
		A:          req.m.A,
		B:          req.m.B,
		Count:      req.count,
		Iterations: req.iterations,
		Frames:     make([]frameJSON, len(traj)),
	}
	for k, f := range traj {
		out.Frames[k] = toFrameJSON(k, f)
	}
	return out
}

func (s *server) handleTrajectoryJSON(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r.URL.Query())
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	traj, err := req.evolve()
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTrajectoryJSON(req, traj))
}

func (s *server) handleTrajectoryCSV(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r.URL.Query())
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	traj, err := req.evolve()
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("trajectory_a%g_b%g.csv", req.m.A, req.m.B)))

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"iteration", "index", "x", "y"})
	for k, frame := range traj {
		for i, pt := range frame.Points {
			_ = cw.Write([]string{
				strconv.Itoa(k),
				strconv.Itoa(i),
				strconv.FormatFloat(pt.X, 'g', -1, 64),
				strconv.FormatFloat(pt.Y, 'g', -1, 64),
			})
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("csv write: %v", err)
	}
}

// handleDashboard renders the visualizer page: a phase-space chart of the
// selected frame next to the initial curve, and a metrics chart across all
// iterations.
//
// Extra query param on top of parseRequest: frame (default: last).
func (s *server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	req, err := parseRequest(r.URL.Query())
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	traj, err := req.evolve()
	if err != nil {
		writeEngineError(w, err)
		return
	}

	frameIdx := len(traj) - 1
	if v, err := intParam(r.URL.Query(), "frame", frameIdx); err == nil && v >= 0 && v < len(traj) {
		frameIdx = v
	}

	page := components.NewPage()
	page.PageTitle = "Sin/Cos Curve Evolution"
	page.AddCharts(
		phaseChart(req, traj, frameIdx),
		metricsChart(traj),
	)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("render error: %v", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func phaseChart(req evolveRequest, traj attractor.Trajectory, frameIdx int) components.Charter {
	initial := make([]opts.ScatterData, len(traj[0].Points))
	for i, pt := range traj[0].Points {
		initial[i] = opts.ScatterData{Value: []interface{}{pt.X, pt.Y}}
	}
	frame := make([]opts.ScatterData, len(traj[frameIdx].Points))
	for i, pt := range traj[frameIdx].Points {
		frame[i] = opts.ScatterData{Value: []interface{}{pt.X, pt.Y}}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "700px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Phase space",
			Subtitle: fmt.Sprintf("curve=%s a=%g b=%g frame=%d/%d", req.curveName, req.m.A, req.m.B, frameIdx, len(traj)-1),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Min: "dataMin", Max: "dataMax"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y", Min: "dataMin", Max: "dataMax"}),
	)
	scatter.AddSeries("initial", initial,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#9e9e9e"}))
	scatter.AddSeries(fmt.Sprintf("iteration %d", frameIdx), frame,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#ff5252"}))
	return scatter
}

func metricsChart(traj attractor.Trajectory) components.Charter {
	x := make([]string, len(traj))
	span := make([]opts.LineData, len(traj))
	pathLength := make([]opts.LineData, len(traj))
	expansion := make([]opts.LineData, len(traj))
	for k, frame := range traj {
		x[k] = strconv.Itoa(k)
		span[k] = opts.LineData{Value: frame.Metrics.Span}
		pathLength[k] = opts.LineData{Value: frame.Metrics.PathLength}
		if frame.Metrics.ExpansionDefined {
			expansion[k] = opts.LineData{Value: frame.Metrics.ExpansionFactor}
		} else {
			expansion[k] = opts.LineData{Value: nil}
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Shape metrics per iteration"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
	)
	line.SetXAxis(x).
		AddSeries("span", span).
		AddSeries("path length", pathLength).
		AddSeries("expansion factor", expansion)
	return line
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode json response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
		log.Printf("failed to encode json error response: %v", err)
	}
}

// writeEngineError maps the engine's precondition failures to 400 and
// anything else to 500.
func writeEngineError(w http.ResponseWriter, err error) {
	if errors.Is(err, attractor.ErrInvalidParameter) {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSONError(w, http.StatusInternalServerError, err.Error())
}

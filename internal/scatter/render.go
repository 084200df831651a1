// Package scatter turns a set of charged points into a colour-coded 3D scatter figure.
package scatter

import (
	"errors"
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"ionic-scatter/internal/config"
	"ionic-scatter/pkg/colorscale"
	"ionic-scatter/pkg/view"
)

// ErrShapeMismatch means the coordinate and value sequences differ in length.
var ErrShapeMismatch = errors.New("coordinates and values differ in length")

// PointSet is N positions with one scalar value (a charge) each; Values[i] belongs
// to Coordinates[i]. The renderer only reads it.
type PointSet struct {
	Coordinates []r3.Vec
	Values      []float64
}

// Marker is one plotted point.
type Marker struct {
	Position r3.Vec
	Value    float64
	Color    colorful.Color
}

// Figure is a rendered scatter plot, independent of the backend that shows it.
type Figure struct {
	Markers      []Marker
	AxisLabels   config.AxisLabels
	Title        string
	Bounds       view.Bounds
	Scale        colorscale.Scale
	ValueMin     float64
	ValueMax     float64
	Backend      config.Backend
	MarkerSize   float64
	ShowColorbar bool
}

// Render colours every point by its value along cfg's colour scale. It fails with
// ErrShapeMismatch before looking at anything else when the lengths disagree.
func Render(points PointSet, cfg config.RenderConfig) (*Figure, error) {
	if len(points.Coordinates) != len(points.Values) {
		return nil, fmt.Errorf("%w: %d coordinates, %d values",
			ErrShapeMismatch, len(points.Coordinates), len(points.Values))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scale, err := colorscale.Lookup(cfg.Colorscale)
	if err != nil {
		return nil, err
	}

	lo, hi := valueRange(points.Values, cfg.ValueRange)
	markers := make([]Marker, len(points.Values))
	for i, v := range points.Values {
		markers[i] = Marker{
			Position: points.Coordinates[i],
			Value:    v,
			Color:    scale.At(normalize(v, lo, hi)),
		}
	}

	backend, _ := config.ParseBackend(string(cfg.Backend))
	return &Figure{
		Markers:      markers,
		AxisLabels:   cfg.AxisLabels,
		Title:        cfg.Title,
		Bounds:       view.BoundsOf(points.Coordinates),
		Scale:        scale,
		ValueMin:     lo,
		ValueMax:     hi,
		Backend:      backend,
		MarkerSize:   cfg.MarkerSize,
		ShowColorbar: cfg.ShowColorbar,
	}, nil
}

// Positions returns the marker positions in input order.
func (f *Figure) Positions() []r3.Vec {
	out := make([]r3.Vec, len(f.Markers))
	for i, m := range f.Markers {
		out[i] = m.Position
	}
	return out
}

// ColorAt maps a value through the figure's scale and value range.
func (f *Figure) ColorAt(v float64) colorful.Color {
	return f.Scale.At(normalize(v, f.ValueMin, f.ValueMax))
}

// valueRange is the fixed range when one is configured, otherwise the span of the
// finite values. With no finite values it falls back to [0, 1].
func valueRange(values, fixed []float64) (float64, float64) {
	if len(fixed) == 2 {
		return fixed[0], fixed[1]
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 1
	}
	return lo, hi
}

// normalize maps v into [0, 1]. A zero-width range puts everything at the low end.
func normalize(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	if hi <= lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}

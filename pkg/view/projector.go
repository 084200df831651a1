// pkg/view/projector.go
package view

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// Axis names one of the three spatial axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "z"
	}
}

// ScreenPoint is a projected point in window pixels, y growing downwards.
// Depth is in [0, 1] for points inside the clip volume, larger is farther.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
	Index int
}

// Edge is a box edge in unit-cube coordinates running from the low to the high end
// of Axis.
type Edge struct {
	Axis     Axis
	From, To r3.Vec
}

// Projector turns data coordinates into window pixels for a fixed camera.
type Projector struct {
	bounds     Bounds
	view       mgl64.Mat4
	projection mgl64.Mat4
	width      int
	height     int
}

// NewProjector prepares the matrices for a window of width x height pixels.
func NewProjector(cam Camera, b Bounds, width, height int) *Projector {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return &Projector{
		bounds:     b,
		view:       cam.View(),
		projection: cam.Projection(aspect),
		width:      width,
		height:     height,
	}
}

// Bounds returns the data box the projector normalises against.
func (p *Projector) Bounds() Bounds { return p.bounds }

// ProjectUnit projects a point given in unit-cube coordinates.
func (p *Projector) ProjectUnit(u r3.Vec) ScreenPoint {
	win := mgl64.Project(toMgl(u), p.view, p.projection, 0, 0, p.width, p.height)
	return ScreenPoint{
		X:     win.X(),
		Y:     float64(p.height) - win.Y(),
		Depth: win.Z(),
		Index: -1,
	}
}

// Project projects a data point.
func (p *Projector) Project(pt r3.Vec) ScreenPoint {
	return p.ProjectUnit(p.bounds.Normalize(pt))
}

// ProjectMarkers projects every point and returns them in painter's order:
// farthest first. Index refers back to pts; equal depths keep input order.
func (p *Projector) ProjectMarkers(pts []r3.Vec) []ScreenPoint {
	out := make([]ScreenPoint, len(pts))
	for i, pt := range pts {
		sp := p.Project(pt)
		sp.Index = i
		out[i] = sp
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Depth > out[j].Depth
	})
	return out
}

// AxisEdges picks the box edges the axis labels and ticks are drawn along:
// the lower front edges for x and y, and the left-most vertical edge for z.
func (p *Projector) AxisEdges() [3]Edge {
	const h = 0.5
	var edges [3]Edge

	best := math.Inf(-1)
	for _, y := range []float64{-h, h} {
		e := Edge{Axis: AxisX, From: r3.Vec{X: -h, Y: y, Z: -h}, To: r3.Vec{X: h, Y: y, Z: -h}}
		if m := p.midpoint(e); m.Y > best {
			best, edges[AxisX] = m.Y, e
		}
	}

	best = math.Inf(-1)
	for _, x := range []float64{-h, h} {
		e := Edge{Axis: AxisY, From: r3.Vec{X: x, Y: -h, Z: -h}, To: r3.Vec{X: x, Y: h, Z: -h}}
		if m := p.midpoint(e); m.Y > best {
			best, edges[AxisY] = m.Y, e
		}
	}

	best = math.Inf(1)
	for _, c := range [][2]float64{{-h, -h}, {h, -h}, {h, h}, {-h, h}} {
		e := Edge{Axis: AxisZ, From: r3.Vec{X: c[0], Y: c[1], Z: -h}, To: r3.Vec{X: c[0], Y: c[1], Z: h}}
		if m := p.midpoint(e); m.X < best {
			best, edges[AxisZ] = m.X, e
		}
	}

	return edges
}

// Center is the projected centre of the box.
func (p *Projector) Center() ScreenPoint {
	return p.ProjectUnit(r3.Vec{})
}

func (p *Projector) midpoint(e Edge) ScreenPoint {
	return p.ProjectUnit(r3.Scale(0.5, r3.Add(e.From, e.To)))
}

// BoxEdges lists the twelve edges of the unit cube.
func BoxEdges() [12][2]r3.Vec {
	const h = 0.5
	var edges [12][2]r3.Vec
	n := 0
	for _, a := range []float64{-h, h} {
		for _, b := range []float64{-h, h} {
			edges[n] = [2]r3.Vec{{X: -h, Y: a, Z: b}, {X: h, Y: a, Z: b}}
			edges[n+1] = [2]r3.Vec{{X: a, Y: -h, Z: b}, {X: a, Y: h, Z: b}}
			edges[n+2] = [2]r3.Vec{{X: a, Y: b, Z: -h}, {X: a, Y: b, Z: h}}
			n += 3
		}
	}
	return edges
}

// Nearest returns the screen point closest to (x, y) within radius pixels. Ties go
// to the point nearer the camera.
func Nearest(points []ScreenPoint, x, y, radius float64) (ScreenPoint, bool) {
	var hit ScreenPoint
	found := false
	bestDist := radius * radius
	for _, sp := range points {
		dx, dy := sp.X-x, sp.Y-y
		d := dx*dx + dy*dy
		if d > bestDist {
			continue
		}
		if found && d == bestDist && sp.Depth >= hit.Depth {
			continue
		}
		hit, bestDist, found = sp, d, true
	}
	return hit, found
}

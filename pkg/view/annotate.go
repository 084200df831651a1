// pkg/view/annotate.go
package view

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// TickMark is one tick of an axis in window pixels: a short stroke from (X0, Y0)
// to (X1, Y1) and the anchor its label is centred on.
type TickMark struct {
	Value          float64
	Label          string
	X0, Y0, X1, Y1 float64
	LabelX, LabelY float64
}

// AxisAnnotation is everything needed to draw one labelled axis.
type AxisAnnotation struct {
	Axis           Axis
	Start, End     ScreenPoint
	Ticks          []TickMark
	LabelX, LabelY float64
}

// Pane is a face of the unit cube.
type Pane struct {
	Normal  r3.Vec
	Corners [4]r3.Vec
}

// Annotate lays out ticks and label anchors along the axis edges. Offsets are in
// pixels and point away from the centre of the box on screen.
func (p *Projector) Annotate(tickCount int, tickLen, tickLabelOffset, labelOffset float64) [3]AxisAnnotation {
	center := p.Center()
	var out [3]AxisAnnotation

	for i, e := range p.AxisEdges() {
		start, end := p.ProjectUnit(e.From), p.ProjectUnit(e.To)
		mid := p.ProjectUnit(r3.Scale(0.5, r3.Add(e.From, e.To)))
		ox, oy := outward(center, mid)

		lo, hi := p.bounds.Axis(e.Axis)
		ann := AxisAnnotation{
			Axis:   e.Axis,
			Start:  start,
			End:    end,
			LabelX: mid.X + ox*labelOffset,
			LabelY: mid.Y + oy*labelOffset,
		}
		for _, v := range Ticks(lo, hi, tickCount) {
			t := 0.0
			if hi > lo {
				t = (v - lo) / (hi - lo)
			}
			sp := p.ProjectUnit(r3.Add(e.From, r3.Scale(t, r3.Sub(e.To, e.From))))
			ann.Ticks = append(ann.Ticks, TickMark{
				Value:  v,
				Label:  TickLabel(v),
				X0:     sp.X,
				Y0:     sp.Y,
				X1:     sp.X + ox*tickLen,
				Y1:     sp.Y + oy*tickLen,
				LabelX: sp.X + ox*tickLabelOffset,
				LabelY: sp.Y + oy*tickLabelOffset,
			})
		}
		out[i] = ann
	}
	return out
}

// BackPanes returns the cube faces that face away from the camera, the ones a 3D
// axes shades behind the data.
func (c Camera) BackPanes() []Pane {
	const h = 0.5
	eye := c.Eye()
	var panes []Pane
	for axis := 0; axis < 3; axis++ {
		for _, side := range []float64{-1, 1} {
			var n r3.Vec
			switch axis {
			case 0:
				n = r3.Vec{X: side}
			case 1:
				n = r3.Vec{Y: side}
			default:
				n = r3.Vec{Z: side}
			}
			center := r3.Scale(h, n)
			if r3.Dot(n, r3.Sub(eye, center)) >= 0 {
				continue
			}
			panes = append(panes, Pane{Normal: n, Corners: faceCorners(axis, side*h)})
		}
	}
	return panes
}

func faceCorners(axis int, at float64) [4]r3.Vec {
	const h = 0.5
	quad := [4][2]float64{{-h, -h}, {h, -h}, {h, h}, {-h, h}}
	var out [4]r3.Vec
	for i, q := range quad {
		switch axis {
		case 0:
			out[i] = r3.Vec{X: at, Y: q[0], Z: q[1]}
		case 1:
			out[i] = r3.Vec{X: q[0], Y: at, Z: q[1]}
		default:
			out[i] = r3.Vec{X: q[0], Y: q[1], Z: at}
		}
	}
	return out
}

// outward is the unit screen direction from the box centre towards p.
func outward(center, p ScreenPoint) (float64, float64) {
	dx, dy := p.X-center.X, p.Y-center.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 1
	}
	return dx / l, dy / l
}

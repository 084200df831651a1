// pkg/view/bounds.go
package view

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds is the axis-aligned box the figure's axes span.
type Bounds struct {
	Min, Max r3.Vec
}

// BoundsOf returns the tightest box around pts. Non-finite coordinates are ignored,
// an axis with no spread is widened around its value, and an axis with no finite
// values at all spans [0, 1].
func BoundsOf(pts []r3.Vec) Bounds {
	var lo, hi [3]float64
	var seen [3]bool
	for _, p := range pts {
		for axis, v := range [3]float64{p.X, p.Y, p.Z} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if !seen[axis] {
				lo[axis], hi[axis], seen[axis] = v, v, true
				continue
			}
			lo[axis] = math.Min(lo[axis], v)
			hi[axis] = math.Max(hi[axis], v)
		}
	}

	for axis := range lo {
		switch {
		case !seen[axis]:
			lo[axis], hi[axis] = 0, 1
		case hi[axis]-lo[axis] == 0:
			pad := 0.5
			if lo[axis] != 0 {
				pad = math.Abs(lo[axis]) * 0.05
			}
			lo[axis] -= pad
			hi[axis] += pad
		}
	}

	return Bounds{
		Min: r3.Vec{X: lo[0], Y: lo[1], Z: lo[2]},
		Max: r3.Vec{X: hi[0], Y: hi[1], Z: hi[2]},
	}
}

// Size is the extent along each axis.
func (b Bounds) Size() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// Normalize maps a data point into the unit cube [-0.5, 0.5]^3. Each axis is
// scaled on its own, so a flat cluster still fills the box.
func (b Bounds) Normalize(p r3.Vec) r3.Vec {
	s := b.Size()
	return r3.Vec{
		X: unit(p.X, b.Min.X, s.X),
		Y: unit(p.Y, b.Min.Y, s.Y),
		Z: unit(p.Z, b.Min.Z, s.Z),
	}
}

// Denormalize is the inverse of Normalize.
func (b Bounds) Denormalize(u r3.Vec) r3.Vec {
	s := b.Size()
	return r3.Vec{
		X: b.Min.X + (u.X+0.5)*s.X,
		Y: b.Min.Y + (u.Y+0.5)*s.Y,
		Z: b.Min.Z + (u.Z+0.5)*s.Z,
	}
}

// Axis returns the [min, max] of one axis.
func (b Bounds) Axis(a Axis) (float64, float64) {
	switch a {
	case AxisX:
		return b.Min.X, b.Max.X
	case AxisY:
		return b.Min.Y, b.Max.Y
	default:
		return b.Min.Z, b.Max.Z
	}
}

func unit(v, lo, size float64) float64 {
	if size == 0 {
		return 0
	}
	return (v-lo)/size - 0.5
}

// pkg/view/camera.go
package view

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// Default view of a 3D axes: the same angles matplotlib opens with.
const (
	DefaultAzimuth   = -60.0
	DefaultElevation = 30.0
	DefaultDistance  = 2.8
	DefaultFovY      = 35.0

	MaxElevation = 89.0
	MinDistance  = 0.8
	MaxDistance  = 12.0

	nearPlane = 0.01
	farPlane  = 100.0
)

// worldUp is +z: the data's z axis points up on screen.
var worldUp = r3.Vec{X: 0, Y: 0, Z: 1}

// Camera orbits a target inside the unit cube the data is normalised into.
// Angles are in degrees; Distance is measured in unit-cube lengths.
type Camera struct {
	Azimuth   float64
	Elevation float64
	Distance  float64
	FovY      float64
	Target    r3.Vec
}

// DefaultCamera returns the camera a freshly opened figure uses.
func DefaultCamera() Camera {
	return Camera{
		Azimuth:   DefaultAzimuth,
		Elevation: DefaultElevation,
		Distance:  DefaultDistance,
		FovY:      DefaultFovY,
	}
}

// Direction is the unit vector from the target towards the eye.
func (c Camera) Direction() r3.Vec {
	az := mgl64.DegToRad(c.Azimuth)
	el := mgl64.DegToRad(c.Elevation)
	return r3.Vec{
		X: math.Cos(el) * math.Cos(az),
		Y: math.Cos(el) * math.Sin(az),
		Z: math.Sin(el),
	}
}

// Eye is the camera position in unit-cube coordinates.
func (c Camera) Eye() r3.Vec {
	return r3.Add(c.Target, r3.Scale(c.Distance, c.Direction()))
}

// View returns the look-at matrix.
func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(toMgl(c.Eye()), toMgl(c.Target), toMgl(worldUp))
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c Camera) Projection(aspect float64) mgl64.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, nearPlane, farPlane)
}

// Rotate turns the camera around the target.
func (c *Camera) Rotate(deltaAzimuth, deltaElevation float64) {
	c.Azimuth = NormalizeDegrees(c.Azimuth + deltaAzimuth)
	c.Elevation = clamp(c.Elevation+deltaElevation, -MaxElevation, MaxElevation)
}

// Zoom scales the orbit distance by factor; factors below 1 move closer.
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.Distance = clamp(c.Distance*factor, MinDistance, MaxDistance)
}

// Pan slides the target across the view plane. dx and dy are fractions of the
// orbit distance, positive to the right and up.
func (c *Camera) Pan(dx, dy float64) {
	forward := r3.Scale(-1, c.Direction())
	right := r3.Unit(r3.Cross(forward, worldUp))
	up := r3.Cross(right, forward)

	offset := r3.Add(r3.Scale(dx*c.Distance, right), r3.Scale(dy*c.Distance, up))
	c.Target = r3.Add(c.Target, offset)
}

// Reset restores the default view.
func (c *Camera) Reset() {
	*c = DefaultCamera()
}

// Approach moves the camera a fraction t of the way towards dst. Used to animate
// a view reset instead of snapping.
func (c *Camera) Approach(dst Camera, t float64) {
	t = clamp(t, 0, 1)
	c.Azimuth = LerpDegrees(c.Azimuth, dst.Azimuth, t)
	c.Elevation = Lerp(c.Elevation, dst.Elevation, t)
	c.Distance = Lerp(c.Distance, dst.Distance, t)
	c.FovY = Lerp(c.FovY, dst.FovY, t)
	c.Target = r3.Add(c.Target, r3.Scale(t, r3.Sub(dst.Target, c.Target)))
}

// Focus is the point the camera orbits, in data coordinates of b.
func (c Camera) Focus(b Bounds) r3.Vec {
	return b.Denormalize(c.Target)
}

// Near reports whether c and o are within eps of each other on every parameter.
func (c Camera) Near(o Camera, eps float64) bool {
	return math.Abs(NormalizeDegrees(c.Azimuth-o.Azimuth)) <= eps &&
		math.Abs(c.Elevation-o.Elevation) <= eps &&
		math.Abs(c.Distance-o.Distance) <= eps &&
		math.Abs(c.FovY-o.FovY) <= eps &&
		r3.Norm(r3.Sub(c.Target, o.Target)) <= eps
}

func toMgl(v r3.Vec) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

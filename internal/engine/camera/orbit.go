package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit rotates a camera around a center point using spherical coordinates.
// Used by the interactive preview.
type Orbit struct {
	Center mgl32.Vec3

	Distance float32
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbit creates an orbit controller with default constraints.
func NewOrbit(center mgl32.Vec3, distance float32) *Orbit {
	return &Orbit{
		Center:          center,
		Distance:        distance,
		Pitch:           0.4,
		MinDistance:     1.0,
		MaxDistance:     200.0,
		MinPitch:        0.05,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (o *Orbit) Position() mgl32.Vec3 {
	x := o.Distance * float32(gomath.Cos(float64(o.Pitch))*gomath.Sin(float64(o.Yaw)))
	y := o.Distance * float32(gomath.Sin(float64(o.Pitch)))
	z := o.Distance * float32(gomath.Cos(float64(o.Pitch))*gomath.Cos(float64(o.Yaw)))
	return o.Center.Add(mgl32.Vec3{x, y, z})
}

// ViewMatrix returns the view matrix for the current orbit position.
func (o *Orbit) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(o.Position(), o.Center, mgl32.Vec3{0, 1, 0})
}

// HandleDrag updates the angles from a mouse drag delta.
func (o *Orbit) HandleDrag(deltaX, deltaY float32) {
	o.Yaw -= deltaX * o.DragSensitivity
	o.Pitch += deltaY * o.DragSensitivity

	if o.Pitch < o.MinPitch {
		o.Pitch = o.MinPitch
	}
	if o.Pitch > o.MaxPitch {
		o.Pitch = o.MaxPitch
	}
}

// HandleZoom updates the distance from a scroll wheel delta.
func (o *Orbit) HandleZoom(delta float32) {
	o.Distance -= delta * o.Distance * o.ZoomSensitivity
	if o.Distance < o.MinDistance {
		o.Distance = o.MinDistance
	}
	if o.Distance > o.MaxDistance {
		o.Distance = o.MaxDistance
	}
}

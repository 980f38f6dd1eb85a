// Package camera provides the perspective camera used by the software
// renderer and the preview.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective pinhole camera.
type Camera struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
	Up       mgl32.Vec3
	FOV      float32 // vertical field of view, degrees
}

// New creates a camera with a sensible up vector.
func New(position, lookAt mgl32.Vec3, fov float32) *Camera {
	return &Camera{
		Position: position,
		LookAt:   lookAt,
		Up:       mgl32.Vec3{0, 1, 0},
		FOV:      fov,
	}
}

// ViewMatrix returns the world-to-view transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.LookAt, c.Up)
}

// Forward returns the unit view direction.
func (c *Camera) Forward() mgl32.Vec3 {
	return c.LookAt.Sub(c.Position).Normalize()
}

// Ray returns the world-space primary ray through the center of pixel
// (px, py) on a width x height image. Pixel (0,0) is the top-left corner.
func (c *Camera) Ray(px, py, width, height int) (origin, dir mgl32.Vec3) {
	forward := c.Forward()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward)

	aspect := float32(width) / float32(height)
	halfH := float32(gomath.Tan(float64(mgl32.DegToRad(c.FOV)) / 2))
	halfW := halfH * aspect

	// Pixel center in NDC, y flipped so +y is up.
	ndcX := (2*(float32(px)+0.5)/float32(width) - 1)
	ndcY := (1 - 2*(float32(py)+0.5)/float32(height))

	dir = forward.
		Add(right.Mul(ndcX * halfW)).
		Add(up.Mul(ndcY * halfH)).
		Normalize()
	return c.Position, dir
}

// Package render implements the software shading pipeline: primary rays,
// surface intersection and per-fragment light evaluation.
package render

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Glowbox/fraglight/internal/engine/scene"
)

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// Hit describes the nearest surface intersection along a ray.
type Hit struct {
	T        float32 // distance along the ray
	Point    mgl32.Vec3
	Normal   mgl32.Vec3 // unit, facing the ray origin
	Material scene.Material
}

const minHitT = 1e-4

// IntersectSphere returns the nearest intersection with the sphere, if any.
func (r Ray) IntersectSphere(s scene.Sphere) (Hit, bool) {
	center := s.Center.V()
	oc := r.Origin.Sub(center)

	// |o + t*d - c|^2 = r^2 with |d| = 1.
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return Hit{}, false
	}

	sqrtDisc := float32(gomath.Sqrt(float64(disc)))
	t := -b - sqrtDisc
	if t < minHitT {
		t = -b + sqrtDisc
	}
	if t < minHitT {
		return Hit{}, false
	}

	point := r.Origin.Add(r.Dir.Mul(t))
	normal := point.Sub(center).Normalize()
	if normal.Dot(r.Dir) > 0 {
		normal = normal.Mul(-1)
	}
	return Hit{T: t, Point: point, Normal: normal, Material: s.Material}, true
}

// IntersectPlane returns the intersection with the infinite plane, if any.
func (r Ray) IntersectPlane(p scene.Plane) (Hit, bool) {
	normal := p.Normal.V().Normalize()

	denom := normal.Dot(r.Dir)
	if gomath.Abs(float64(denom)) < 1e-6 {
		return Hit{}, false // ray parallel to plane
	}

	t := p.Point.V().Sub(r.Origin).Dot(normal) / denom
	if t < minHitT {
		return Hit{}, false
	}

	if denom > 0 {
		normal = normal.Mul(-1)
	}
	return Hit{
		T:        t,
		Point:    r.Origin.Add(r.Dir.Mul(t)),
		Normal:   normal,
		Material: p.Material,
	}, true
}

// Trace returns the nearest hit against every surface in the scene.
func Trace(r Ray, s *scene.Scene) (Hit, bool) {
	best := Hit{T: float32(gomath.Inf(1))}
	found := false

	for _, sphere := range s.Spheres {
		if h, ok := r.IntersectSphere(sphere); ok && h.T < best.T {
			best = h
			found = true
		}
	}
	for _, plane := range s.Planes {
		if h, ok := r.IntersectPlane(plane); ok && h.T < best.T {
			best = h
			found = true
		}
	}
	return best, found
}

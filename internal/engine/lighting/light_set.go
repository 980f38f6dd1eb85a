// Package lighting manages the scene's light set and prepares it for the
// shading stage and for GPU upload.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/Glowbox/fraglight/internal/engine/shading"
)

// MaxLights is the maximum number of lights supported by the preview shader.
const MaxLights = 32

// Set holds the scene's lights keyed by ID. It is mutated between frames by
// the scene owner; the shading stage only ever sees read-only snapshots.
type Set struct {
	ids    []uuid.UUID
	lights []shading.Light
}

// NewSet creates an empty light set.
func NewSet() *Set {
	return &Set{
		ids:    make([]uuid.UUID, 0, MaxLights),
		lights: make([]shading.Light, 0, MaxLights),
	}
}

// Len returns the number of lights in the set.
func (s *Set) Len() int {
	return len(s.lights)
}

// Add inserts a light and returns its ID. Colors are clamped to [0,1] and
// the direction is normalized on the way in, so downstream code can rely on
// unit vectors. Returns uuid.Nil if the set is full.
func (s *Set) Add(light shading.Light) uuid.UUID {
	if len(s.lights) >= MaxLights {
		return uuid.Nil
	}

	light.Color = clampColor(light.Color)
	if light.Direction.Len() > 0 {
		light.Direction = light.Direction.Normalize()
	}

	id := uuid.New()
	s.ids = append(s.ids, id)
	s.lights = append(s.lights, light)
	return id
}

// Remove deletes the light with the given ID. Returns false if no light has
// that ID.
func (s *Set) Remove(id uuid.UUID) bool {
	for i, have := range s.ids {
		if have == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			s.lights = append(s.lights[:i], s.lights[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns a frozen copy of the lights for one frame. Mutating the
// set afterwards does not affect the returned slice.
func (s *Set) Snapshot() []shading.Light {
	out := make([]shading.Light, len(s.lights))
	copy(out, s.lights)
	return out
}

// ViewSpace returns a per-frame snapshot with positions and directions
// transformed into view space, which is the space the shading stage works
// in. Positions transform as points, directions by the rotation part only.
func (s *Set) ViewSpace(view mgl32.Mat4) []shading.Light {
	rot := view.Mat3()
	out := s.Snapshot()
	for i := range out {
		out[i].Position = view.Mul4x1(out[i].Position.Vec4(1)).Vec3()
		out[i].Direction = rot.Mul3x1(out[i].Direction).Normalize()
	}
	return out
}

func clampColor(c mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(c.X(), 0, 1),
		mgl32.Clamp(c.Y(), 0, 1),
		mgl32.Clamp(c.Z(), 0, 1),
	}
}

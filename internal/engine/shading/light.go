// Package shading computes per-light radiance contributions for a
// physically-based shading stage.
package shading

import "github.com/go-gl/mathgl/mgl32"

// Kind discriminates the geometric model of a light source.
type Kind uint8

const (
	// Positional lights have a location in space (point and spot lights)
	// and attenuate with distance.
	Positional Kind = iota
	// Directional lights have no position; they are defined only by the
	// direction the light travels and never attenuate.
	Directional
)

// SpotCutoffDeg is the cone angle at or above which a positional light
// illuminates a full sphere instead of a cone.
const SpotCutoffDeg = 90.0

// Light is a tagged variant describing one light source. Fields that do not
// apply to the light's Kind are ignored.
type Light struct {
	Kind  Kind
	Color mgl32.Vec3

	// Position is the light's location. Positional only.
	Position mgl32.Vec3

	// Direction is a unit vector. For Positional lights it is the
	// spotlight's aim; for Directional lights it is the direction the
	// light travels.
	Direction mgl32.Vec3

	// Attenuation holds the constant, linear and quadratic coefficients.
	// Positional only.
	Attenuation mgl32.Vec3

	// ConeAngle is the spot half-cone angle in degrees. Values >= 90 mean
	// the light is not a spot light. Positional only.
	ConeAngle float32

	// Exponent controls the sharpness of the spot angular falloff.
	Exponent float32
}

// IsSpot reports whether the light restricts its output to a cone.
func (l Light) IsSpot() bool {
	return l.Kind == Positional && l.ConeAngle < SpotCutoffDeg
}

// Fragment carries the per-fragment inputs produced by the upstream
// geometry stage. All vectors live in the same (view) space as the lights.
type Fragment struct {
	Position mgl32.Vec3 // view-space position of the shaded point
	Normal   mgl32.Vec3 // unit surface normal
	View     mgl32.Vec3 // unit vector from the fragment toward the eye
}

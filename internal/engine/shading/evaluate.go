package shading

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// MinDot is the lower clamp for the dot products exposed to the BRDF stage.
// Keeping them strictly positive means specular terms that divide by or
// exponentiate these values never hit a zero denominator or 0^0.
const MinDot = 1e-5

// Contribution holds the result of evaluating one light against one
// fragment: the incident direction, the attenuation, and the geometric
// quantities a BRDF needs.
type Contribution struct {
	// L is the unit incident-light direction, always pointing from the
	// fragment toward the light.
	L mgl32.Vec3

	// Distance from fragment to light. Zero for Directional lights,
	// which have no position.
	Distance float32

	// Attenuation combines distance falloff and spot-cone shaping.
	// Always 1 for Directional lights.
	Attenuation float32

	// H is the unit half-vector between the view and light directions.
	H mgl32.Vec3

	// NdL, NdH and HdL are the BRDF dot products, each clamped to
	// [MinDot, 1].
	NdL, NdH, HdL float32

	// Radiance is the light color scaled by the attenuation.
	Radiance mgl32.Vec3
}

// Evaluate computes the radiance contribution of a single light for a single
// fragment. It is pure and carries no state across calls, so fragments and
// lights may be evaluated in any order or in parallel.
func Evaluate(light Light, frag Fragment) Contribution {
	var c Contribution

	switch light.Kind {
	case Directional:
		// No position to derive L from: by convention L is the travel
		// direction reversed.
		c.L = light.Direction.Mul(-1).Normalize()
		c.Attenuation = 1
	default:
		toLight := light.Position.Sub(frag.Position)
		c.Distance = toLight.Len()
		c.L = toLight.Normalize()

		k := light.Attenuation
		c.Attenuation = 1 / (k.X() + k.Y()*c.Distance + k.Z()*c.Distance*c.Distance)

		if light.IsSpot() {
			// Angle between the spot aim and the light-to-fragment
			// direction. The cone boundary counts as inside.
			coneDot := c.L.Mul(-1).Dot(light.Direction)
			if coneDot >= cos(mgl32.DegToRad(light.ConeAngle)) {
				c.Attenuation *= pow(coneDot, light.Exponent)
			} else {
				c.Attenuation = 0
			}
		}
	}

	c.H = frag.View.Add(c.L).Normalize()
	c.NdL = clampDot(frag.Normal.Dot(c.L))
	c.NdH = clampDot(frag.Normal.Dot(c.H))
	c.HdL = clampDot(c.H.Dot(c.L))
	c.Radiance = light.Color.Mul(c.Attenuation)

	return c
}

// EvaluateAll evaluates every light in the set against one fragment.
func EvaluateAll(lights []Light, frag Fragment) []Contribution {
	out := make([]Contribution, len(lights))
	for i, l := range lights {
		out[i] = Evaluate(l, frag)
	}
	return out
}

func clampDot(d float32) float32 {
	return mgl32.Clamp(d, MinDot, 1)
}

func cos(rad float32) float32 {
	return float32(gomath.Cos(float64(rad)))
}

func pow(base, exp float32) float32 {
	return float32(gomath.Pow(float64(base), float64(exp)))
}

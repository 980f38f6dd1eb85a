package shading

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-6

func vecClose(a, b mgl32.Vec3) bool {
	return gomath.Abs(float64(a.X()-b.X())) < eps &&
		gomath.Abs(float64(a.Y()-b.Y())) < eps &&
		gomath.Abs(float64(a.Z()-b.Z())) < eps
}

func testFragment() Fragment {
	return Fragment{
		Position: mgl32.Vec3{0, 0, 0},
		Normal:   mgl32.Vec3{0, 0, 1},
		View:     mgl32.Vec3{0, 0, 1},
	}
}

func TestDirectionalIncidentDirection(t *testing.T) {
	light := Light{
		Kind:      Directional,
		Color:     mgl32.Vec3{1, 1, 1},
		Direction: mgl32.Vec3{0, 0, -1},
	}

	// L must not depend on where the fragment sits.
	positions := []mgl32.Vec3{
		{0, 0, 0},
		{5, -3, 12},
		{-100, 40, 7},
	}
	for _, pos := range positions {
		frag := testFragment()
		frag.Position = pos

		c := Evaluate(light, frag)
		if want := (mgl32.Vec3{0, 0, 1}); !vecClose(c.L, want) {
			t.Errorf("fragment at %v: L = %v, want %v", pos, c.L, want)
		}
		if c.Attenuation != 1 {
			t.Errorf("fragment at %v: attenuation = %v, want 1", pos, c.Attenuation)
		}
		if c.Distance != 0 {
			t.Errorf("fragment at %v: distance = %v, want 0", pos, c.Distance)
		}
	}
}

func TestPositionalIncidentDirectionAndDistance(t *testing.T) {
	light := Light{
		Kind:        Positional,
		Color:       mgl32.Vec3{1, 1, 1},
		Position:    mgl32.Vec3{0, 0, 5},
		Direction:   mgl32.Vec3{0, 0, -1},
		Attenuation: mgl32.Vec3{1, 0, 0},
		ConeAngle:   180,
	}

	c := Evaluate(light, testFragment())
	if want := (mgl32.Vec3{0, 0, 1}); !vecClose(c.L, want) {
		t.Errorf("L = %v, want %v", c.L, want)
	}
	if c.Distance != 5 {
		t.Errorf("distance = %v, want 5", c.Distance)
	}
	if c.Attenuation != 1 {
		t.Errorf("attenuation = %v, want 1", c.Attenuation)
	}
}

func TestQuadraticAttenuation(t *testing.T) {
	light := Light{
		Kind:        Positional,
		Color:       mgl32.Vec3{1, 1, 1},
		Position:    mgl32.Vec3{0, 0, 5},
		Direction:   mgl32.Vec3{0, 0, -1},
		Attenuation: mgl32.Vec3{0, 0, 1},
		ConeAngle:   180,
	}

	c := Evaluate(light, testFragment())
	if want := float32(1.0 / 25.0); gomath.Abs(float64(c.Attenuation-want)) > eps {
		t.Errorf("attenuation = %v, want %v", c.Attenuation, want)
	}
	if want := light.Color.Mul(c.Attenuation); !vecClose(c.Radiance, want) {
		t.Errorf("radiance = %v, want %v", c.Radiance, want)
	}
}

func TestSpotOnAxis(t *testing.T) {
	// Spot aimed straight down its axis at the fragment: the cone term
	// must not change the distance attenuation since pow(1, n) = 1.
	light := Light{
		Kind:        Positional,
		Color:       mgl32.Vec3{1, 1, 1},
		Position:    mgl32.Vec3{0, 0, 5},
		Direction:   mgl32.Vec3{0, 0, -1},
		Attenuation: mgl32.Vec3{1, 0, 0},
		ConeAngle:   30,
		Exponent:    2,
	}

	c := Evaluate(light, testFragment())
	coneDot := c.L.Mul(-1).Dot(light.Direction)
	if gomath.Abs(float64(coneDot-1)) > eps {
		t.Errorf("coneDot = %v, want 1", coneDot)
	}
	if c.Attenuation != 1 {
		t.Errorf("attenuation = %v, want 1", c.Attenuation)
	}
}

func TestSpotOutsideCone(t *testing.T) {
	light := Light{
		Kind:        Positional,
		Color:       mgl32.Vec3{1, 1, 1},
		Position:    mgl32.Vec3{0, 0, 5},
		Direction:   mgl32.Vec3{0, 0, -1},
		Attenuation: mgl32.Vec3{1, 0, 0},
		ConeAngle:   30,
		Exponent:    2,
	}

	// Displace the fragment so the angle off the spot axis is 45 degrees,
	// well past the 30 degree cone.
	frag := testFragment()
	frag.Position = mgl32.Vec3{5, 0, 0}

	c := Evaluate(light, frag)
	if c.Attenuation != 0 {
		t.Errorf("attenuation = %v, want exactly 0", c.Attenuation)
	}
	if want := (mgl32.Vec3{0, 0, 0}); !vecClose(c.Radiance, want) {
		t.Errorf("radiance = %v, want zero", c.Radiance)
	}
}

func TestSpotConeBoundaryIsInside(t *testing.T) {
	// A zero-degree cone with the fragment exactly on axis puts coneDot
	// exactly on the cos(coneAngle) threshold: both are 1 with no
	// rounding. The boundary must classify as inside.
	light := Light{
		Kind:        Positional,
		Color:       mgl32.Vec3{1, 1, 1},
		Position:    mgl32.Vec3{0, 0, 5},
		Direction:   mgl32.Vec3{0, 0, -1},
		Attenuation: mgl32.Vec3{1, 0, 0},
		ConeAngle:   0,
		Exponent:    1,
	}

	c := Evaluate(light, testFragment())
	if c.Attenuation != 1 {
		t.Errorf("attenuation = %v, want 1 on the cone boundary", c.Attenuation)
	}
}

func TestWideConeAngleDisablesSpot(t *testing.T) {
	light := Light{
		Kind:        Positional,
		Color:       mgl32.Vec3{1, 1, 1},
		Position:    mgl32.Vec3{0, 0, 5},
		Direction:   mgl32.Vec3{0, 0, -1},
		Attenuation: mgl32.Vec3{1, 0, 0},
		ConeAngle:   90,
		Exponent:    8,
	}
	if light.IsSpot() {
		t.Error("ConeAngle 90 must not classify as a spot light")
	}

	// Fragment far off the aim axis still gets full attenuation.
	frag := testFragment()
	frag.Position = mgl32.Vec3{50, 0, 5}

	c := Evaluate(light, frag)
	if c.Attenuation != 1 {
		t.Errorf("attenuation = %v, want 1 for a non-spot positional light", c.Attenuation)
	}
}

func TestDotProductsClamped(t *testing.T) {
	lights := []Light{
		{Kind: Directional, Color: mgl32.Vec3{1, 1, 1}, Direction: mgl32.Vec3{0, 0, 1}},
		{Kind: Directional, Color: mgl32.Vec3{1, 1, 1}, Direction: mgl32.Vec3{0, -1, 0}},
		{Kind: Positional, Color: mgl32.Vec3{1, 1, 1}, Position: mgl32.Vec3{0, 0, -10},
			Direction: mgl32.Vec3{0, 0, 1}, Attenuation: mgl32.Vec3{1, 0, 0}, ConeAngle: 180},
		{Kind: Positional, Color: mgl32.Vec3{1, 1, 1}, Position: mgl32.Vec3{3, -7, 1},
			Direction: mgl32.Vec3{0, -1, 0}, Attenuation: mgl32.Vec3{1, 0.5, 0.25}, ConeAngle: 20, Exponent: 3},
	}
	frags := []Fragment{
		testFragment(),
		{Position: mgl32.Vec3{2, 2, 2}, Normal: mgl32.Vec3{0, 1, 0}, View: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{-4, 0, 9}, Normal: mgl32.Vec3{0, 0, -1}, View: mgl32.Vec3{0, 0, -1}},
	}

	for li, light := range lights {
		for fi, frag := range frags {
			c := Evaluate(light, frag)
			for name, d := range map[string]float32{"NdL": c.NdL, "NdH": c.NdH, "HdL": c.HdL} {
				if d < MinDot || d > 1 {
					t.Errorf("light %d fragment %d: %s = %v, want in [%v, 1]", li, fi, name, d, float32(MinDot))
				}
			}
		}
	}
}

func TestHalfVectorIsUnit(t *testing.T) {
	light := Light{
		Kind:        Positional,
		Color:       mgl32.Vec3{1, 0.5, 0.25},
		Position:    mgl32.Vec3{2, 3, 4},
		Direction:   mgl32.Vec3{0, -1, 0},
		Attenuation: mgl32.Vec3{1, 0, 0},
		ConeAngle:   180,
	}
	frag := Fragment{
		Position: mgl32.Vec3{0, 0, 0},
		Normal:   mgl32.Vec3{0, 1, 0},
		View:     mgl32.Vec3{0, 0, 1},
	}

	c := Evaluate(light, frag)
	if l := c.H.Len(); gomath.Abs(float64(l-1)) > eps {
		t.Errorf("H length = %v, want 1", l)
	}
}

func TestSummationCommutes(t *testing.T) {
	a := Light{Kind: Directional, Color: mgl32.Vec3{0.9, 0.8, 0.7}, Direction: mgl32.Vec3{0, -1, 0}}
	b := Light{
		Kind:        Positional,
		Color:       mgl32.Vec3{0.2, 0.4, 0.6},
		Position:    mgl32.Vec3{1, 2, 3},
		Direction:   mgl32.Vec3{0, 0, -1},
		Attenuation: mgl32.Vec3{1, 0.1, 0.01},
		ConeAngle:   180,
	}
	frag := Fragment{
		Position: mgl32.Vec3{0.5, -0.5, 0},
		Normal:   mgl32.Vec3{0, 1, 0},
		View:     mgl32.Vec3{0, 0, 1},
	}

	sum := func(lights []Light) mgl32.Vec3 {
		total := mgl32.Vec3{}
		for _, c := range EvaluateAll(lights, frag) {
			total = total.Add(c.Radiance.Mul(c.NdL))
		}
		return total
	}

	if got, want := sum([]Light{a, b}), sum([]Light{b, a}); !vecClose(got, want) {
		t.Errorf("summation order changed the result: %v vs %v", got, want)
	}
}

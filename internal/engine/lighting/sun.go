package lighting

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// SunDirection converts sky azimuth/elevation angles to the travel direction
// of a directional light. Azimuth is rotation around Y (0-360 degrees),
// elevation is the angle above the horizon (0-90 degrees). The returned
// vector points from the sun toward the scene and is normalized.
func SunDirection(azimuth, elevation float32) mgl32.Vec3 {
	azRad := float64(mgl32.DegToRad(azimuth))
	elRad := float64(mgl32.DegToRad(elevation))

	// Spherical to Cartesian: the vector toward the sun, then reversed so
	// it describes where the light travels.
	x := float32(gomath.Cos(elRad) * gomath.Sin(azRad))
	y := float32(gomath.Sin(elRad))
	z := float32(gomath.Cos(elRad) * gomath.Cos(azRad))

	return mgl32.Vec3{-x, -y, -z}
}

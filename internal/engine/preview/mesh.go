// Package preview renders scenes interactively through OpenGL, using a
// fragment shader that evaluates lights the same way the software path does.
package preview

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Glowbox/fraglight/internal/engine/scene"
)

// Mesh is interleaved position+normal vertex data with triangle indices.
type Mesh struct {
	Vertices []float32 // x y z nx ny nz per vertex
	Indices  []uint32
}

// SphereMesh tessellates a UV sphere in world space.
func SphereMesh(s scene.Sphere, stacks, slices int) Mesh {
	var m Mesh
	center := s.Center.V()

	for i := 0; i <= stacks; i++ {
		phi := gomath.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * gomath.Pi * float64(j) / float64(slices)

			n := mgl32.Vec3{
				float32(gomath.Sin(phi) * gomath.Cos(theta)),
				float32(gomath.Cos(phi)),
				float32(gomath.Sin(phi) * gomath.Sin(theta)),
			}
			p := center.Add(n.Mul(s.Radius))
			m.Vertices = append(m.Vertices, p.X(), p.Y(), p.Z(), n.X(), n.Y(), n.Z())
		}
	}

	cols := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*cols + uint32(j)
			b := a + cols
			m.Indices = append(m.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return m
}

// PlaneMesh builds a large quad around the plane's reference point. The
// preview cannot draw infinite planes, so extent bounds the visible patch.
func PlaneMesh(p scene.Plane, extent float32) Mesh {
	n := p.Normal.V().Normalize()

	// Any vector not parallel to the normal works as a tangent seed.
	seed := mgl32.Vec3{1, 0, 0}
	if gomath.Abs(float64(n.X())) > 0.9 {
		seed = mgl32.Vec3{0, 0, 1}
	}
	tangent := n.Cross(seed).Normalize()
	bitangent := n.Cross(tangent)

	center := p.Point.V()
	corners := []mgl32.Vec3{
		center.Sub(tangent.Mul(extent)).Sub(bitangent.Mul(extent)),
		center.Add(tangent.Mul(extent)).Sub(bitangent.Mul(extent)),
		center.Add(tangent.Mul(extent)).Add(bitangent.Mul(extent)),
		center.Sub(tangent.Mul(extent)).Add(bitangent.Mul(extent)),
	}

	var m Mesh
	for _, c := range corners {
		m.Vertices = append(m.Vertices, c.X(), c.Y(), c.Z(), n.X(), n.Y(), n.Z())
	}
	m.Indices = []uint32{0, 1, 2, 0, 2, 3}
	return m
}

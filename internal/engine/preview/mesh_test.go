package preview

import (
	gomath "math"
	"testing"

	"github.com/Glowbox/fraglight/internal/engine/scene"
)

func TestSphereMesh(t *testing.T) {
	s := scene.Sphere{Center: scene.Vec3{1, 2, 3}, Radius: 2}
	m := SphereMesh(s, 8, 12)

	wantVerts := (8 + 1) * (12 + 1)
	if got := len(m.Vertices) / 6; got != wantVerts {
		t.Errorf("vertex count = %d, want %d", got, wantVerts)
	}
	if got, want := len(m.Indices), 8*12*6; got != want {
		t.Errorf("index count = %d, want %d", got, want)
	}

	// Every vertex sits on the sphere and its normal is unit length.
	for i := 0; i+6 <= len(m.Vertices); i += 6 {
		dx := float64(m.Vertices[i] - 1)
		dy := float64(m.Vertices[i+1] - 2)
		dz := float64(m.Vertices[i+2] - 3)
		if r := gomath.Sqrt(dx*dx + dy*dy + dz*dz); gomath.Abs(r-2) > 1e-4 {
			t.Fatalf("vertex %d at distance %v from center, want 2", i/6, r)
		}

		nx, ny, nz := float64(m.Vertices[i+3]), float64(m.Vertices[i+4]), float64(m.Vertices[i+5])
		if l := gomath.Sqrt(nx*nx + ny*ny + nz*nz); gomath.Abs(l-1) > 1e-4 {
			t.Fatalf("normal %d has length %v, want 1", i/6, l)
		}
	}

	// Indices stay in range.
	for _, idx := range m.Indices {
		if int(idx) >= wantVerts {
			t.Fatalf("index %d out of range (%d vertices)", idx, wantVerts)
		}
	}
}

func TestPlaneMesh(t *testing.T) {
	p := scene.Plane{Point: scene.Vec3{0, 1, 0}, Normal: scene.Vec3{0, 2, 0}}
	m := PlaneMesh(p, 10)

	if got := len(m.Vertices) / 6; got != 4 {
		t.Fatalf("vertex count = %d, want 4", got)
	}
	if got := len(m.Indices); got != 6 {
		t.Fatalf("index count = %d, want 6", got)
	}

	// All corners lie on the plane and carry the normalized plane normal.
	for i := 0; i < 4; i++ {
		if y := m.Vertices[i*6+1]; gomath.Abs(float64(y-1)) > 1e-5 {
			t.Errorf("corner %d y = %v, want 1", i, y)
		}
		if ny := m.Vertices[i*6+4]; gomath.Abs(float64(ny-1)) > 1e-5 {
			t.Errorf("corner %d normal y = %v, want 1", i, ny)
		}
	}
}

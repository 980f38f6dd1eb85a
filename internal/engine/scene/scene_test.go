package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Glowbox/fraglight/internal/engine/shading"
)

const sampleYAML = `
camera:
  position: [0, 1, 5]
  look_at: [0, 0, 0]
  fov: 60
background: [0.1, 0.1, 0.1]
ambient: [0.2, 0.2, 0.2]
lights:
  - type: point
    color: [1, 1, 1]
    position: [0, 5, 0]
    attenuation: [1, 0.1, 0.01]
  - type: spot
    color: [1, 0, 0]
    position: [2, 3, 0]
    direction: [0, -2, 0]
    attenuation: [1, 0, 0]
    cone_angle: 20
  - type: directional
    color: [0.5, 0.5, 0.5]
    direction: [0, -1, 0]
spheres:
  - center: [0, 1, 0]
    radius: 1.5
    material:
      albedo: [0.9, 0.1, 0.1]
      diffuse: 0.8
      specular: 0.3
      shininess: 16
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if s.Camera.FOV != 60 {
		t.Errorf("camera fov = %v, want 60", s.Camera.FOV)
	}
	if len(s.Lights) != 3 {
		t.Fatalf("len(lights) = %d, want 3", len(s.Lights))
	}
	if len(s.Spheres) != 1 || s.Spheres[0].Radius != 1.5 {
		t.Errorf("spheres = %+v, want one sphere of radius 1.5", s.Spheres)
	}
	if s.Spheres[0].Material.Shininess != 16 {
		t.Errorf("shininess = %v, want 16", s.Spheres[0].Material.Shininess)
	}
}

func TestToLightMapping(t *testing.T) {
	s, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lights, err := s.ToLights()
	if err != nil {
		t.Fatalf("ToLights: %v", err)
	}

	point, spot, dir := lights[0], lights[1], lights[2]

	if point.Kind != shading.Positional {
		t.Error("point light did not map to Positional")
	}
	if point.ConeAngle < shading.SpotCutoffDeg {
		t.Errorf("point light cone angle = %v, want >= %v (no cone)", point.ConeAngle, float32(shading.SpotCutoffDeg))
	}
	if point.IsSpot() {
		t.Error("point light classified as spot")
	}

	if spot.Kind != shading.Positional || !spot.IsSpot() {
		t.Errorf("spot light kind/IsSpot = %v/%v, want Positional spot", spot.Kind, spot.IsSpot())
	}
	if spot.Exponent != 1 {
		t.Errorf("spot default exponent = %v, want 1", spot.Exponent)
	}
	if l := spot.Direction.Len(); l < 0.999 || l > 1.001 {
		t.Errorf("spot direction length = %v, want 1", l)
	}

	if dir.Kind != shading.Directional {
		t.Error("directional light did not map to Directional")
	}
}

func TestParseRejectsUnknownLightType(t *testing.T) {
	bad := `
lights:
  - type: area
    color: [1, 1, 1]
`
	if _, err := Parse([]byte(bad)); err == nil {
		t.Error("Parse accepted an unknown light type")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0644); err != nil {
		t.Fatalf("writing scene file: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Lights) != 3 {
		t.Errorf("len(lights) = %d, want 3", len(s.Lights))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load succeeded on a missing file")
	}
}

func TestDefaultSceneIsValid(t *testing.T) {
	s := Default()
	lights, err := s.ToLights()
	if err != nil {
		t.Fatalf("default scene lights: %v", err)
	}
	if len(lights) == 0 {
		t.Error("default scene has no lights")
	}
	if len(s.Spheres) == 0 && len(s.Planes) == 0 {
		t.Error("default scene has no surfaces")
	}
}

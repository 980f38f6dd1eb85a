// Package scene describes renderable scenes: camera, lights, materials and
// analytic surfaces, loaded from YAML files.
package scene

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/Glowbox/fraglight/internal/engine/shading"
)

// Vec3 is the YAML representation of a 3-component vector.
type Vec3 [3]float32

// V returns the vector as mgl32.Vec3.
func (v Vec3) V() mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

// CameraSpec positions the camera.
type CameraSpec struct {
	Position Vec3    `yaml:"position"`
	LookAt   Vec3    `yaml:"look_at"`
	FOV      float32 `yaml:"fov"`
}

// Material holds the surface response parameters consumed by the BRDF stage.
type Material struct {
	Albedo    Vec3    `yaml:"albedo"`
	Diffuse   float32 `yaml:"diffuse"`
	Specular  float32 `yaml:"specular"`
	Shininess float32 `yaml:"shininess"`
}

// LightSpec is the YAML representation of one light source.
type LightSpec struct {
	Type        string  `yaml:"type"` // point, spot or directional
	Color       Vec3    `yaml:"color"`
	Position    Vec3    `yaml:"position"`
	Direction   Vec3    `yaml:"direction"`
	Attenuation Vec3    `yaml:"attenuation"` // constant, linear, quadratic
	ConeAngle   float32 `yaml:"cone_angle"`
	Exponent    float32 `yaml:"exponent"`
}

// Sphere is an analytic sphere surface.
type Sphere struct {
	Center   Vec3     `yaml:"center"`
	Radius   float32  `yaml:"radius"`
	Material Material `yaml:"material"`
}

// Plane is an infinite plane through Point with the given normal.
type Plane struct {
	Point    Vec3     `yaml:"point"`
	Normal   Vec3     `yaml:"normal"`
	Material Material `yaml:"material"`
}

// Scene is a full scene description.
type Scene struct {
	Camera     CameraSpec  `yaml:"camera"`
	Background Vec3        `yaml:"background"`
	Ambient    Vec3        `yaml:"ambient"`
	Lights     []LightSpec `yaml:"lights"`
	Spheres    []Sphere    `yaml:"spheres"`
	Planes     []Plane     `yaml:"planes"`
}

// ToLight converts a LightSpec to the shading stage's tagged variant.
// Point lights become positional lights with a full-sphere cone; spot lights
// keep their cone angle and get a default falloff exponent of 1 when unset.
func (ls LightSpec) ToLight() (shading.Light, error) {
	light := shading.Light{
		Color:       ls.Color.V(),
		Position:    ls.Position.V(),
		Direction:   ls.Direction.V(),
		Attenuation: ls.Attenuation.V(),
		ConeAngle:   ls.ConeAngle,
		Exponent:    ls.Exponent,
	}

	if light.Direction.Len() > 0 {
		light.Direction = light.Direction.Normalize()
	}

	switch ls.Type {
	case "directional":
		light.Kind = shading.Directional
	case "point":
		light.Kind = shading.Positional
		light.ConeAngle = 180
	case "spot":
		light.Kind = shading.Positional
		if light.Exponent == 0 {
			light.Exponent = 1
		}
	default:
		return shading.Light{}, fmt.Errorf("unknown light type %q", ls.Type)
	}

	return light, nil
}

// ToLights converts every LightSpec in the scene.
func (s *Scene) ToLights() ([]shading.Light, error) {
	lights := make([]shading.Light, 0, len(s.Lights))
	for i, ls := range s.Lights {
		l, err := ls.ToLight()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		lights = append(lights, l)
	}
	return lights, nil
}

// Parse decodes a scene from YAML.
func Parse(data []byte) (*Scene, error) {
	s := &Scene{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	if s.Camera.FOV == 0 {
		s.Camera.FOV = 45
	}
	if _, err := s.ToLights(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Default returns the built-in demo scene: a sphere on a ground plane lit by
// a warm sun, a point light and a tight spot.
func Default() *Scene {
	return &Scene{
		Camera: CameraSpec{
			Position: Vec3{0, 2.5, 8},
			LookAt:   Vec3{0, 1, 0},
			FOV:      45,
		},
		Background: Vec3{0.05, 0.06, 0.08},
		Ambient:    Vec3{0.08, 0.08, 0.1},
		Lights: []LightSpec{
			{
				Type:      "directional",
				Color:     Vec3{1.0, 0.95, 0.85},
				Direction: Vec3{-0.4, -0.8, -0.4},
			},
			{
				Type:        "point",
				Color:       Vec3{0.3, 0.4, 1.0},
				Position:    Vec3{-3, 3, 2},
				Attenuation: Vec3{1, 0.07, 0.017},
			},
			{
				Type:        "spot",
				Color:       Vec3{1.0, 0.2, 0.2},
				Position:    Vec3{3, 4, 1},
				Direction:   Vec3{-0.6, -1, -0.2},
				Attenuation: Vec3{1, 0.05, 0.01},
				ConeAngle:   25,
				Exponent:    4,
			},
		},
		Spheres: []Sphere{
			{
				Center: Vec3{0, 1, 0},
				Radius: 1,
				Material: Material{
					Albedo:    Vec3{0.8, 0.8, 0.85},
					Diffuse:   0.9,
					Specular:  0.5,
					Shininess: 48,
				},
			},
		},
		Planes: []Plane{
			{
				Point:  Vec3{0, 0, 0},
				Normal: Vec3{0, 1, 0},
				Material: Material{
					Albedo:    Vec3{0.45, 0.45, 0.4},
					Diffuse:   1.0,
					Specular:  0.05,
					Shininess: 8,
				},
			},
		},
	}
}

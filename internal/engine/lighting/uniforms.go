package lighting

import "github.com/Glowbox/fraglight/internal/engine/shading"

// Uniforms holds the light set flattened into the arrays the preview shader
// declares as uniforms.
// Layout: one entry per light, vec3 arrays packed as [x0 y0 z0 x1 y1 z1 ...].
type Uniforms struct {
	Count        int32
	Kinds        []int32   // 0 = positional, 1 = directional
	Colors       []float32 // vec3
	Positions    []float32 // vec3, view space
	Directions   []float32 // vec3, view space
	Attenuations []float32 // vec3 (constant, linear, quadratic)
	ConeAngles   []float32 // degrees
	Exponents    []float32
}

// Flatten packs the given lights for GL uniform upload. Lights beyond
// MaxLights are dropped.
func Flatten(lights []shading.Light) Uniforms {
	count := len(lights)
	if count > MaxLights {
		count = MaxLights
	}

	u := Uniforms{
		Count:        int32(count),
		Kinds:        make([]int32, count),
		Colors:       make([]float32, count*3),
		Positions:    make([]float32, count*3),
		Directions:   make([]float32, count*3),
		Attenuations: make([]float32, count*3),
		ConeAngles:   make([]float32, count),
		Exponents:    make([]float32, count),
	}

	for i := 0; i < count; i++ {
		l := lights[i]
		if l.Kind == shading.Directional {
			u.Kinds[i] = 1
		}
		for j := 0; j < 3; j++ {
			u.Colors[i*3+j] = l.Color[j]
			u.Positions[i*3+j] = l.Position[j]
			u.Directions[i*3+j] = l.Direction[j]
			u.Attenuations[i*3+j] = l.Attenuation[j]
		}
		u.ConeAngles[i] = l.ConeAngle
		u.Exponents[i] = l.Exponent
	}

	return u
}

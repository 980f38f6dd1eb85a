package preview

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Glowbox/fraglight/internal/engine/lighting"
	"github.com/Glowbox/fraglight/internal/engine/scene"
	"github.com/Glowbox/fraglight/internal/engine/shader"
	"github.com/Glowbox/fraglight/internal/logger"
)

const vertexShaderSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 view;
uniform mat4 proj;

out vec3 vPosVC;
out vec3 vNormalVC;

void main() {
	vec4 posVC = view * vec4(aPos, 1.0);
	vPosVC = posVC.xyz;
	vNormalVC = mat3(view) * aNormal;
	gl_Position = proj * posVC;
}
`

// fragmentShaderSrc mirrors the shading package: one branch on light kind,
// then the shared half-vector and clamped dot-product tail.
const fragmentShaderSrc = `
#version 410 core

const int MAX_LIGHTS = 32;
const float MIN_DOT = 1e-5;

uniform int lightCount;
uniform int lightKinds[MAX_LIGHTS];       // 0 = positional, 1 = directional
uniform vec3 lightColors[MAX_LIGHTS];
uniform vec3 lightPositions[MAX_LIGHTS];  // view space
uniform vec3 lightDirections[MAX_LIGHTS]; // view space
uniform vec3 lightAttenuations[MAX_LIGHTS];
uniform float lightConeAngles[MAX_LIGHTS];
uniform float lightExponents[MAX_LIGHTS];

uniform vec3 ambient;
uniform vec3 matAlbedo;
uniform float matDiffuse;
uniform float matSpecular;
uniform float matShininess;

in vec3 vPosVC;
in vec3 vNormalVC;
out vec4 fragColor;

void main() {
	vec3 N = normalize(vNormalVC);
	vec3 V = normalize(-vPosVC);
	vec3 color = ambient * matAlbedo;

	for (int i = 0; i < lightCount; i++) {
		vec3 L;
		float attenuation = 1.0;

		if (lightKinds[i] == 1) {
			L = normalize(-lightDirections[i]);
		} else {
			vec3 toLight = lightPositions[i] - vPosVC;
			float dist = length(toLight);
			L = normalize(toLight);

			vec3 k = lightAttenuations[i];
			attenuation = 1.0 / (k.x + k.y * dist + k.z * dist * dist);

			if (lightConeAngles[i] < 90.0) {
				float coneDot = dot(-L, lightDirections[i]);
				if (coneDot >= cos(radians(lightConeAngles[i]))) {
					attenuation *= pow(coneDot, lightExponents[i]);
				} else {
					attenuation = 0.0;
				}
			}
		}

		vec3 H = normalize(V + L);
		float NdL = clamp(dot(N, L), MIN_DOT, 1.0);
		float NdH = clamp(dot(N, H), MIN_DOT, 1.0);

		vec3 radiance = lightColors[i] * attenuation;
		color += radiance * matAlbedo * (matDiffuse * NdL);
		color += radiance * (matSpecular * pow(NdH, matShininess));
	}

	fragColor = vec4(color, 1.0);
}
`

// drawable is one uploaded mesh with its material.
type drawable struct {
	vao      uint32
	vbo      uint32
	ebo      uint32
	count    int32
	material scene.Material
}

// Renderer draws a scene through the GL pipeline.
// Must be created and used on the thread owning the GL context.
type Renderer struct {
	program   uint32
	drawables []drawable
	lights    *lighting.Set
	ambient   mgl32.Vec3

	locView, locProj                                     int32
	locLightCount                                        int32
	locKinds, locColors, locPositions, locDirections     int32
	locAttenuations, locConeAngles, locExponents         int32
	locAmbient, locAlbedo, locDiffuse, locSpec, locShiny int32
}

// New uploads the scene's surfaces and lights and compiles the shader
// program. Call after the GL context exists.
func New(scn *scene.Scene) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	logger.Info("OpenGL initialized", zap.String("version", version))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	bg := scn.Background.V()
	gl.ClearColor(bg.X(), bg.Y(), bg.Z(), 1.0)

	program, err := shader.CompileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("compiling preview shader: %w", err)
	}

	r := &Renderer{
		program: program,
		lights:  lighting.NewSet(),
		ambient: scn.Ambient.V(),
	}
	r.lookupUniforms()

	specs, err := scn.ToLights()
	if err != nil {
		return nil, err
	}
	for _, l := range specs {
		r.lights.Add(l)
	}

	for _, s := range scn.Spheres {
		r.drawables = append(r.drawables, upload(SphereMesh(s, 32, 48), s.Material))
	}
	for _, p := range scn.Planes {
		r.drawables = append(r.drawables, upload(PlaneMesh(p, 50), p.Material))
	}

	logger.Debug("preview scene uploaded",
		zap.Int("drawables", len(r.drawables)),
		zap.Int("lights", r.lights.Len()),
	)
	return r, nil
}

func (r *Renderer) lookupUniforms() {
	r.locView = shader.MustUniform(r.program, "view")
	r.locProj = shader.MustUniform(r.program, "proj")
	r.locLightCount = shader.MustUniform(r.program, "lightCount")
	r.locKinds = shader.Uniform(r.program, "lightKinds")
	r.locColors = shader.Uniform(r.program, "lightColors")
	r.locPositions = shader.Uniform(r.program, "lightPositions")
	r.locDirections = shader.Uniform(r.program, "lightDirections")
	r.locAttenuations = shader.Uniform(r.program, "lightAttenuations")
	r.locConeAngles = shader.Uniform(r.program, "lightConeAngles")
	r.locExponents = shader.Uniform(r.program, "lightExponents")
	r.locAmbient = shader.Uniform(r.program, "ambient")
	r.locAlbedo = shader.Uniform(r.program, "matAlbedo")
	r.locDiffuse = shader.Uniform(r.program, "matDiffuse")
	r.locSpec = shader.Uniform(r.program, "matSpecular")
	r.locShiny = shader.Uniform(r.program, "matShininess")
}

// Draw renders one frame with the given camera matrices.
func (r *Renderer) Draw(view, proj mgl32.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)

	gl.UniformMatrix4fv(r.locView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.locProj, 1, false, &proj[0])

	// Lights are refreshed once per frame, in view space like the
	// software path.
	u := lighting.Flatten(r.lights.ViewSpace(view))
	gl.Uniform1i(r.locLightCount, u.Count)
	if u.Count > 0 {
		gl.Uniform1iv(r.locKinds, u.Count, &u.Kinds[0])
		gl.Uniform3fv(r.locColors, u.Count, &u.Colors[0])
		gl.Uniform3fv(r.locPositions, u.Count, &u.Positions[0])
		gl.Uniform3fv(r.locDirections, u.Count, &u.Directions[0])
		gl.Uniform3fv(r.locAttenuations, u.Count, &u.Attenuations[0])
		gl.Uniform1fv(r.locConeAngles, u.Count, &u.ConeAngles[0])
		gl.Uniform1fv(r.locExponents, u.Count, &u.Exponents[0])
	}

	gl.Uniform3f(r.locAmbient, r.ambient.X(), r.ambient.Y(), r.ambient.Z())

	for _, d := range r.drawables {
		albedo := d.material.Albedo.V()
		gl.Uniform3f(r.locAlbedo, albedo.X(), albedo.Y(), albedo.Z())
		gl.Uniform1f(r.locDiffuse, d.material.Diffuse)
		gl.Uniform1f(r.locSpec, d.material.Specular)
		gl.Uniform1f(r.locShiny, d.material.Shininess)

		gl.BindVertexArray(d.vao)
		gl.DrawElements(gl.TRIANGLES, d.count, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Close releases GL resources.
func (r *Renderer) Close() {
	for _, d := range r.drawables {
		gl.DeleteVertexArrays(1, &d.vao)
		gl.DeleteBuffers(1, &d.vbo)
		gl.DeleteBuffers(1, &d.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// upload creates the VAO/VBO/EBO for a mesh.
func upload(m Mesh, mat scene.Material) drawable {
	d := drawable{count: int32(len(m.Indices)), material: mat}

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0), normal (location 1), interleaved.
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &d.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return d
}

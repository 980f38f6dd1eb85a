package render

import (
	gomath "math"
	"runtime"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Glowbox/fraglight/internal/engine/camera"
	"github.com/Glowbox/fraglight/internal/engine/framebuffer"
	"github.com/Glowbox/fraglight/internal/engine/lighting"
	"github.com/Glowbox/fraglight/internal/engine/scene"
	"github.com/Glowbox/fraglight/internal/engine/shading"
	"github.com/Glowbox/fraglight/internal/logger"
)

// Options configures one render.
type Options struct {
	Width      int
	Height     int
	TileHeight int // rows per worker task
	Workers    int // 0 means runtime.NumCPU()
}

// Renderer shades a scene into a framebuffer. It is cheap to construct; all
// per-frame state lives on the stack of Render.
type Renderer struct {
	scn  *scene.Scene
	opts Options
}

// New creates a renderer for the given scene.
func New(scn *scene.Scene, opts Options) *Renderer {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.TileHeight <= 0 {
		opts.TileHeight = 16
	}
	return &Renderer{scn: scn, opts: opts}
}

// Render shades every pixel and returns the finished framebuffer. Rows are
// split into bands drained by a fixed pool of workers; workers share only
// the read-only scene and light slice and write disjoint framebuffer rows.
func (r *Renderer) Render() (*framebuffer.Framebuffer, error) {
	start := time.Now()

	cam := camera.New(r.scn.Camera.Position.V(), r.scn.Camera.LookAt.V(), r.scn.Camera.FOV)
	view := cam.ViewMatrix()

	// Per-frame light snapshot in view space, the space the shading
	// stage works in.
	set := lighting.NewSet()
	specs, err := r.scn.ToLights()
	if err != nil {
		return nil, err
	}
	for _, l := range specs {
		set.Add(l)
	}
	lights := set.ViewSpace(view)

	fb := framebuffer.New(r.opts.Width, r.opts.Height)
	fb.Clear(r.scn.Background.V())

	type band struct{ y0, y1 int }
	tasks := make(chan band, r.opts.Height/r.opts.TileHeight+1)
	for y := 0; y < r.opts.Height; y += r.opts.TileHeight {
		y1 := y + r.opts.TileHeight
		if y1 > r.opts.Height {
			y1 = r.opts.Height
		}
		tasks <- band{y0: y, y1: y1}
	}
	close(tasks)

	var wg sync.WaitGroup
	for w := 0; w < r.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range tasks {
				for y := b.y0; y < b.y1; y++ {
					for x := 0; x < r.opts.Width; x++ {
						r.shadePixel(fb, cam, view, lights, x, y)
					}
				}
			}
		}()
	}
	wg.Wait()

	logger.Debug("frame rendered",
		zap.Int("width", r.opts.Width),
		zap.Int("height", r.opts.Height),
		zap.Int("lights", len(lights)),
		zap.Int("workers", r.opts.Workers),
		zap.Duration("elapsed", time.Since(start)),
	)
	return fb, nil
}

func (r *Renderer) shadePixel(fb *framebuffer.Framebuffer, cam *camera.Camera, view mgl32.Mat4, lights []shading.Light, x, y int) {
	origin, dir := cam.Ray(x, y, r.opts.Width, r.opts.Height)
	hit, ok := Trace(Ray{Origin: origin, Dir: dir}, r.scn)
	if !ok {
		return // keep background color and infinite depth
	}

	posVC := view.Mul4x1(hit.Point.Vec4(1)).Vec3()
	normalVC := view.Mat3().Mul3x1(hit.Normal).Normalize()
	frag := shading.Fragment{
		Position: posVC,
		Normal:   normalVC,
		View:     posVC.Mul(-1).Normalize(), // eye sits at the view-space origin
	}

	color := Shade(frag, lights, hit.Material, r.scn.Ambient.V())
	fb.Set(x, y, color, -posVC.Z())
}

// Shade runs the BRDF stage for one fragment: an ambient term plus, per
// light, Lambert diffuse and Blinn-Phong specular built from the evaluated
// contribution. Contributions sum commutatively; no state crosses lights.
func Shade(frag shading.Fragment, lights []shading.Light, mat scene.Material, ambient mgl32.Vec3) mgl32.Vec3 {
	albedo := mat.Albedo.V()
	color := mulElem(ambient, albedo)

	for _, c := range shading.EvaluateAll(lights, frag) {
		diffuse := mulElem(c.Radiance, albedo).Mul(mat.Diffuse * c.NdL)
		specular := c.Radiance.Mul(mat.Specular * powf(c.NdH, mat.Shininess))
		color = color.Add(diffuse).Add(specular)
	}
	return color
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

func powf(base, exp float32) float32 {
	return float32(gomath.Pow(float64(base), float64(exp)))
}

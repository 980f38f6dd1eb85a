// Package framebuffer provides the CPU-side color and depth targets the
// software renderer writes into, plus image file encoders.
package framebuffer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	gomath "math"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/tiff"
)

// Framebuffer holds linear RGB color and camera-space depth per pixel.
// Pixels without geometry keep +Inf depth.
type Framebuffer struct {
	Width  int
	Height int

	color []mgl32.Vec3
	depth []float32
}

// New creates a framebuffer cleared to black with infinite depth.
func New(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		color:  make([]mgl32.Vec3, width*height),
		depth:  make([]float32, width*height),
	}
	fb.Clear(mgl32.Vec3{})
	return fb
}

// Clear resets every pixel to the given color and infinite depth.
func (fb *Framebuffer) Clear(c mgl32.Vec3) {
	inf := float32(gomath.Inf(1))
	for i := range fb.color {
		fb.color[i] = c
		fb.depth[i] = inf
	}
}

// Set writes the color and depth of one pixel.
func (fb *Framebuffer) Set(x, y int, c mgl32.Vec3, depth float32) {
	i := y*fb.Width + x
	fb.color[i] = c
	fb.depth[i] = depth
}

// At returns the color of one pixel.
func (fb *Framebuffer) At(x, y int) mgl32.Vec3 {
	return fb.color[y*fb.Width+x]
}

// DepthAt returns the camera-space depth of one pixel.
func (fb *Framebuffer) DepthAt(x, y int) float32 {
	return fb.depth[y*fb.Width+x]
}

// Image converts the color buffer to an 8-bit RGBA image, clamping each
// channel to [0,1].
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.color[y*fb.Width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: to8(c.X()),
				G: to8(c.Y()),
				B: to8(c.Z()),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG encodes the color buffer as a PNG file.
func (fb *Framebuffer) WritePNG(path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, fb.Image()); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// WriteDepthTIFF encodes the depth buffer as a 16-bit grayscale TIFF, with
// depth normalized against far. Background (infinite) pixels saturate to the
// far value.
func (fb *Framebuffer) WriteDepthTIFF(path string, far float32) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	img := image.NewGray16(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			d := fb.depth[y*fb.Width+x] / far
			img.SetGray16(x, y, color.Gray16{Y: uint16(mgl32.Clamp(d, 0, 1) * 65535)})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := tiff.Encode(f, img, nil); err != nil {
		return fmt.Errorf("encoding tiff: %w", err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	return nil
}

func to8(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}

// Package main is the entry point for the interactive preview.
package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Glowbox/fraglight/internal/config"
	"github.com/Glowbox/fraglight/internal/engine/camera"
	"github.com/Glowbox/fraglight/internal/engine/preview"
	"github.com/Glowbox/fraglight/internal/engine/scene"
	"github.com/Glowbox/fraglight/internal/engine/window"
	"github.com/Glowbox/fraglight/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	scn := scene.Default()
	if cfg.Scene.Path != "" {
		scn, err = scene.Load(cfg.Scene.Path)
		if err != nil {
			logger.Error("failed to load scene", zap.Error(err))
			os.Exit(1)
		}
	}

	win, err := window.New(window.Config{
		Title:      "fraglight preview",
		Width:      cfg.Preview.Width,
		Height:     cfg.Preview.Height,
		Fullscreen: cfg.Preview.Fullscreen,
		VSync:      cfg.Preview.VSync,
	})
	if err != nil {
		logger.Error("failed to create window", zap.Error(err))
		os.Exit(1)
	}
	defer win.Close()

	r, err := preview.New(scn)
	if err != nil {
		logger.Error("failed to create preview renderer", zap.Error(err))
		os.Exit(1)
	}
	defer r.Close()

	if err := run(win, r, scn); err != nil {
		logger.Error("preview error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("preview closed")
}

func run(win *window.Window, r *preview.Renderer, scn *scene.Scene) error {
	center := scn.Camera.LookAt.V()
	distance := scn.Camera.Position.V().Sub(center).Len()
	orbit := camera.NewOrbit(center, distance)

	width, height := win.Size()
	r.Resize(width, height)

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			case *sdl.MouseMotionEvent:
				if e.State&sdl.Button(sdl.BUTTON_LEFT) != 0 {
					orbit.HandleDrag(float32(e.XRel), float32(e.YRel))
				}
			case *sdl.MouseWheelEvent:
				orbit.HandleZoom(float32(e.Y))
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					width, height = win.Size()
					r.Resize(width, height)
				}
			}
		}

		aspect := float32(width) / float32(height)
		proj := mgl32.Perspective(mgl32.DegToRad(scn.Camera.FOV), aspect, 0.1, 500)

		r.Draw(orbit.ViewMatrix(), proj)
		win.SwapBuffers()
	}
}

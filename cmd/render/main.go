// Package main is the entry point for the offline renderer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Glowbox/fraglight/internal/config"
	"github.com/Glowbox/fraglight/internal/engine/render"
	"github.com/Glowbox/fraglight/internal/engine/scene"
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
		logger.Info("scene loaded", zap.String("path", cfg.Scene.Path))
	} else {
		logger.Info("using built-in demo scene")
	}

	r := render.New(scn, render.Options{
		Width:      cfg.Render.Width,
		Height:     cfg.Render.Height,
		TileHeight: cfg.Render.TileHeight,
		Workers:    cfg.Render.Workers,
	})

	fb, err := r.Render()
	if err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}

	if err := fb.WritePNG(cfg.Render.Output); err != nil {
		logger.Error("failed to write color image", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("color image written", zap.String("path", cfg.Render.Output))

	if cfg.Render.DepthOutput != "" {
		if err := fb.WriteDepthTIFF(cfg.Render.DepthOutput, cfg.Render.DepthFar); err != nil {
			logger.Error("failed to write depth image", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("depth image written",
			zap.String("path", cfg.Render.DepthOutput),
			zap.Float32("far", cfg.Render.DepthFar),
		)
	}
}

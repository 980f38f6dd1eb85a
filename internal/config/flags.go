package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagScene      = flag.String("scene", "", "Path to scene file")
	flagWidth      = flag.Int("width", 0, "Image or window width")
	flagHeight     = flag.Int("height", 0, "Image or window height")
	flagOut        = flag.String("out", "", "Color output path (PNG)")
	flagDepthOut   = flag.String("depth-out", "", "Depth output path (TIFF)")
	flagWorkers    = flag.Int("workers", 0, "Render worker count (0 = one per CPU)")
	flagWindowed   = flag.Bool("windowed", false, "Run the preview in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run the preview fullscreen")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScene != "" {
		cfg.Scene.Path = *flagScene
	}
	if *flagWidth > 0 {
		cfg.Render.Width = *flagWidth
		cfg.Preview.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Render.Height = *flagHeight
		cfg.Preview.Height = *flagHeight
	}
	if *flagOut != "" {
		cfg.Render.Output = *flagOut
	}
	if *flagDepthOut != "" {
		cfg.Render.DepthOutput = *flagDepthOut
	}
	if *flagWorkers > 0 {
		cfg.Render.Workers = *flagWorkers
	}
	if *flagWindowed {
		cfg.Preview.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Preview.Fullscreen = true
	}
}

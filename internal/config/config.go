// Package config handles renderer configuration loading and management.
package config

// Config holds all renderer settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Preview PreviewConfig `yaml:"preview"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds offline render settings.
type RenderConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	TileHeight  int     `yaml:"tile_height"`
	Workers     int     `yaml:"workers"` // 0 means one per CPU
	Output      string  `yaml:"output"`
	DepthOutput string  `yaml:"depth_output"` // empty disables the depth pass
	DepthFar    float32 `yaml:"depth_far"`
}

// PreviewConfig holds interactive preview window settings.
type PreviewConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds scene input settings.
type SceneConfig struct {
	Path string `yaml:"path"` // empty uses the built-in demo scene
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:       800,
			Height:      600,
			TileHeight:  16,
			Workers:     0,
			Output:      "render.png",
			DepthOutput: "",
			DepthFar:    100,
		},
		Preview: PreviewConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			Path: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

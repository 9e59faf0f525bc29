// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds scene asset and camera settings.
type SceneConfig struct {
	TexturesDir    string  `yaml:"textures_dir"` // Directory containing the scene image files
	FOVDegrees     float32 `yaml:"fov"`          // Vertical field of view
	CameraDistance float32 `yaml:"camera_distance"`
	ShowFPS        bool    `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			TexturesDir:    "textures",
			FOVDegrees:     45.0,
			CameraDistance: 40.0,
			ShowFPS:        false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

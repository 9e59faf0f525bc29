package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test scene defaults
	if cfg.Scene.TexturesDir != "textures" {
		t.Errorf("expected textures dir 'textures', got %s", cfg.Scene.TexturesDir)
	}
	if cfg.Scene.FOVDegrees != 45.0 {
		t.Errorf("expected fov 45, got %f", cfg.Scene.FOVDegrees)
	}
	if cfg.Scene.ShowFPS {
		t.Error("expected show_fps to be false by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

scene:
  textures_dir: "assets/textures"
  fov: 60
  camera_distance: 55
  show_fps: true

logging:
  level: "debug"
  log_file: "scene.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync false")
	}
	if cfg.Scene.TexturesDir != "assets/textures" {
		t.Errorf("expected textures dir 'assets/textures', got %s", cfg.Scene.TexturesDir)
	}
	if cfg.Scene.FOVDegrees != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Scene.FOVDegrees)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	// A partial file should only override the keys it sets.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
scene:
  textures_dir: "elsewhere"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Scene.TexturesDir != "elsewhere" {
		t.Errorf("expected textures dir override, got %s", cfg.Scene.TexturesDir)
	}
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected default width preserved, got %d", cfg.Graphics.Width)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 2560
	cfg.Scene.TexturesDir = "tex"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, configPath); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if loaded.Graphics.Width != 2560 {
		t.Errorf("expected width 2560 after round trip, got %d", loaded.Graphics.Width)
	}
	if loaded.Scene.TexturesDir != "tex" {
		t.Errorf("expected textures dir 'tex' after round trip, got %s", loaded.Scene.TexturesDir)
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Terrain.SamplesX != 100 || cfg.Terrain.SamplesZ != 100 {
		t.Errorf("expected 100x100 samples, got %dx%d", cfg.Terrain.SamplesX, cfg.Terrain.SamplesZ)
	}
	if cfg.Terrain.Seed != 12 {
		t.Errorf("expected seed 12, got %d", cfg.Terrain.Seed)
	}
	if cfg.Terrain.MaxHeight != 30 {
		t.Errorf("expected max height 30, got %v", cfg.Terrain.MaxHeight)
	}
	if cfg.Terrain.Area.Width != 1000 || cfg.Terrain.Area.Height != 1000 {
		t.Errorf("expected 1000x1000 area, got %vx%v", cfg.Terrain.Area.Width, cfg.Terrain.Area.Height)
	}
	if cfg.Terrain.TexelsPerTile != 30 {
		t.Errorf("expected 30 texels per tile, got %d", cfg.Terrain.TexelsPerTile)
	}
	if cfg.Terrain.Texture != "res/terrain.png" {
		t.Errorf("expected texture res/terrain.png, got %s", cfg.Terrain.Texture)
	}

	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true by default")
	}
	if cfg.Graphics.Width != 0 || cfg.Graphics.Height != 0 {
		t.Errorf("expected display-sized window, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}

	if cfg.Camera.Speed != 8 {
		t.Errorf("expected camera speed 8, got %v", cfg.Camera.Speed)
	}
	if cfg.Camera.CursorMargin != 80 {
		t.Errorf("expected cursor margin 80, got %d", cfg.Camera.CursorMargin)
	}
	if cfg.Camera.FovY != 90 {
		t.Errorf("expected fov 90, got %v", cfg.Camera.FovY)
	}

	if cfg.Debug.ShowNormals {
		t.Error("expected normals to be hidden by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: false

terrain:
  samples_x: 64
  samples_z: 32
  seed: 99
  max_height: 45.5
  noise: perlin
  edge_policy: reflect
  area:
    x: 10
    width: 500

camera:
  position: [1, 2, 3]
  speed: 16

debug:
  show_normals: true

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false")
	}
	if cfg.Terrain.SamplesX != 64 || cfg.Terrain.SamplesZ != 32 {
		t.Errorf("expected 64x32 samples, got %dx%d", cfg.Terrain.SamplesX, cfg.Terrain.SamplesZ)
	}
	if cfg.Terrain.Seed != 99 {
		t.Errorf("expected seed 99, got %d", cfg.Terrain.Seed)
	}
	if cfg.Terrain.MaxHeight != 45.5 {
		t.Errorf("expected max height 45.5, got %v", cfg.Terrain.MaxHeight)
	}
	if cfg.Terrain.Noise != "perlin" {
		t.Errorf("expected perlin noise, got %s", cfg.Terrain.Noise)
	}
	if cfg.Terrain.EdgePolicy != "reflect" {
		t.Errorf("expected reflect edge policy, got %s", cfg.Terrain.EdgePolicy)
	}
	if cfg.Terrain.Area.X != 10 || cfg.Terrain.Area.Width != 500 {
		t.Errorf("expected area x=10 width=500, got %+v", cfg.Terrain.Area)
	}
	// Unset nested fields keep their defaults.
	if cfg.Terrain.Area.Height != 1000 {
		t.Errorf("expected default area height 1000, got %v", cfg.Terrain.Area.Height)
	}
	if cfg.Camera.Position != [3]float32{1, 2, 3} {
		t.Errorf("expected camera position [1 2 3], got %v", cfg.Camera.Position)
	}
	if cfg.Camera.Speed != 16 {
		t.Errorf("expected camera speed 16, got %v", cfg.Camera.Speed)
	}
	if !cfg.Debug.ShowNormals {
		t.Error("expected show_normals to be true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
terrain:
  samples_x: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero samples", func(c *Config) { c.Terrain.SamplesX = 0 }, "samples"},
		{"zero texels", func(c *Config) { c.Terrain.TexelsPerTile = 0 }, "texels_per_tile"},
		{"negative height", func(c *Config) { c.Terrain.MaxHeight = -1 }, "max_height"},
		{"unknown noise", func(c *Config) { c.Terrain.Noise = "worley" }, "noise"},
		{"unknown edge policy", func(c *Config) { c.Terrain.EdgePolicy = "wrap" }, "edge policy"},
		{"empty texture", func(c *Config) { c.Terrain.Texture = "" }, "texture"},
		{"bad fov", func(c *Config) { c.Camera.FovY = 180 }, "fov_y"},
		{"bad clip planes", func(c *Config) { c.Camera.Far = c.Camera.Near }, "near/far"},
		{"negative width", func(c *Config) { c.Graphics.Width = -5 }, "graphics size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Terrain.Seed = 4242
	cfg.Debug.ShowNormals = true
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Terrain.Seed != 4242 {
		t.Errorf("expected seed 4242 after reload, got %d", loaded.Terrain.Seed)
	}
	if !loaded.Debug.ShowNormals {
		t.Error("expected show_normals after reload")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("terrain:\n  seed: 3\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "seed flag",
			setup: func() { *flagSeed = 777 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Terrain.Seed != 777 {
					t.Errorf("expected seed 777, got %d", cfg.Terrain.Seed)
				}
			},
			teardown: func() { *flagSeed = -1 },
		},
		{
			name:  "noise flag",
			setup: func() { *flagNoise = "perlin" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Terrain.Noise != "perlin" {
					t.Errorf("expected perlin, got %s", cfg.Terrain.Noise)
				}
			},
			teardown: func() { *flagNoise = "" },
		},
		{
			name:  "normals flag",
			setup: func() { *flagNormals = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Debug.ShowNormals {
					t.Error("expected normals to be shown")
				}
			},
			teardown: func() { *flagNormals = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("terrain:\n  samples_x: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected error for zero samples, got nil")
	}
}

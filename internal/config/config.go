// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/heightfield/internal/engine/terrain"
	"github.com/Faultbox/heightfield/pkg/noise"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Camera   CameraConfig   `yaml:"camera"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings. A zero width or height means the
// size of the primary display.
type GraphicsConfig struct {
	Width        int  `yaml:"width"`
	Height       int  `yaml:"height"`
	Fullscreen   bool `yaml:"fullscreen"`
	VSync        bool `yaml:"vsync"`
	Multisamples int  `yaml:"multisamples"`
}

// TerrainConfig holds terrain generation and meshing settings.
type TerrainConfig struct {
	SamplesX      int        `yaml:"samples_x"`
	SamplesZ      int        `yaml:"samples_z"`
	Seed          uint32     `yaml:"seed"`
	Area          AreaConfig `yaml:"area"`
	MaxHeight     float32    `yaml:"max_height"`
	Span          [2]float32 `yaml:"span"` // world size the samples are laid out over
	TexelsPerTile int        `yaml:"texels_per_tile"`
	Noise         string     `yaml:"noise"`       // opensimplex | perlin
	EdgePolicy    string     `yaml:"edge_policy"` // copy | reflect
	Texture       string     `yaml:"texture"`
}

// AreaConfig is the world-space rectangle noise is sampled from.
type AreaConfig struct {
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// CameraConfig holds first-person camera settings.
type CameraConfig struct {
	Position     [3]float32 `yaml:"position"`
	Direction    [3]float32 `yaml:"direction"`
	FovY         float32    `yaml:"fov_y"` // degrees
	Near         float32    `yaml:"near"`
	Far          float32    `yaml:"far"`
	Speed        float32    `yaml:"speed"`
	CursorMargin int        `yaml:"cursor_margin"`
}

// DebugConfig holds debug visualization settings.
type DebugConfig struct {
	ShowNormals   bool          `yaml:"show_normals"`
	NormalLength  float32       `yaml:"normal_length"`
	NormalColors  [2][3]float32 `yaml:"normal_colors"`
	ScreenshotDir string        `yaml:"screenshot_dir"`
	ShowFPS       bool          `yaml:"show_fps"`
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
			Width:        0,
			Height:       0,
			Fullscreen:   true,
			VSync:        true,
			Multisamples: 8,
		},
		Terrain: TerrainConfig{
			SamplesX:      100,
			SamplesZ:      100,
			Seed:          12,
			Area:          AreaConfig{X: 0, Y: 0, Width: 1000, Height: 1000},
			MaxHeight:     30,
			Span:          [2]float32{100, 100},
			TexelsPerTile: 30,
			Noise:         string(noise.OpenSimplex),
			EdgePolicy:    terrain.EdgeCopy.String(),
			Texture:       "res/terrain.png",
		},
		Camera: CameraConfig{
			Position:     [3]float32{60, 30, 60},
			Direction:    [3]float32{0, -0.3, 0},
			FovY:         90,
			Near:         0.1,
			Far:          100,
			Speed:        8,
			CursorMargin: 80,
		},
		Debug: DebugConfig{
			ShowNormals:   false,
			NormalLength:  0.2,
			NormalColors:  [2][3]float32{{0, 0, 1}, {0, 1, 0}},
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the viewer cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if c.Terrain.SamplesX <= 0 || c.Terrain.SamplesZ <= 0 {
		errs = append(errs, fmt.Errorf("terrain samples must be positive, got %dx%d", c.Terrain.SamplesX, c.Terrain.SamplesZ))
	}
	if c.Terrain.TexelsPerTile <= 0 {
		errs = append(errs, fmt.Errorf("terrain texels_per_tile must be positive, got %d", c.Terrain.TexelsPerTile))
	}
	if c.Terrain.MaxHeight < 0 {
		errs = append(errs, fmt.Errorf("terrain max_height must not be negative, got %v", c.Terrain.MaxHeight))
	}
	if _, err := noise.ParseKind(c.Terrain.Noise); err != nil {
		errs = append(errs, fmt.Errorf("terrain: %w", err))
	}
	if _, err := terrain.ParseEdgePolicy(c.Terrain.EdgePolicy); err != nil {
		errs = append(errs, fmt.Errorf("terrain: %w", err))
	}
	if c.Terrain.Texture == "" {
		errs = append(errs, errors.New("terrain texture path is empty"))
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		errs = append(errs, fmt.Errorf("camera fov_y must be in (0, 180), got %v", c.Camera.FovY))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera near/far invalid: %v/%v", c.Camera.Near, c.Camera.Far))
	}
	if c.Graphics.Width < 0 || c.Graphics.Height < 0 {
		errs = append(errs, fmt.Errorf("graphics size must not be negative, got %dx%d", c.Graphics.Width, c.Graphics.Height))
	}

	return errors.Join(errs...)
}

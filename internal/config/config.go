// Package config handles starcube configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/geofpwhite/starcube/internal/camera"
	"github.com/geofpwhite/starcube/internal/geom"
	"github.com/geofpwhite/starcube/internal/render"
	"github.com/geofpwhite/starcube/internal/scene"
	"github.com/geofpwhite/starcube/internal/stars"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Camera  CameraConfig  `yaml:"camera"`
	Cube    CubeConfig    `yaml:"cube"`
	Stars   StarsConfig   `yaml:"stars"`
	Render  RenderConfig  `yaml:"render"`
	Control ControlConfig `yaml:"control"`
	Logging LoggingConfig `yaml:"logging"`
	Record  RecordConfig  `yaml:"record"`
}

// DisplayConfig holds the drawing surface size used by record mode. The
// terminal frontend takes its size from the terminal.
type DisplayConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	FPS    float64 `yaml:"fps"`
}

// CameraConfig holds projection settings.
type CameraConfig struct {
	Distance   float64 `yaml:"distance"` // camera sits at (0, 0, -distance)
	FOVDegrees float64 `yaml:"fov_degrees"`
	ZoomStep   float64 `yaml:"zoom_step"`
	MinZoom    float64 `yaml:"min_zoom"`
	MaxZoom    float64 `yaml:"max_zoom"`
}

// CubeConfig holds the cube size and its angular rates in radians per second.
type CubeConfig struct {
	Size     float64 `yaml:"size"`
	RateX    float64 `yaml:"rate_x"`
	RateY    float64 `yaml:"rate_y"`
	RateZ    float64 `yaml:"rate_z"`
	HueSpeed float64 `yaml:"hue_speed"`
}

// StarsConfig holds star field settings.
type StarsConfig struct {
	Count         int     `yaml:"count"`
	Speed         float64 `yaml:"speed"`
	NearClip      float64 `yaml:"near_clip"`
	Far           float64 `yaml:"far"`
	FarJitter     float64 `yaml:"far_jitter"`
	SpreadX       float64 `yaml:"spread_x"`
	SpreadY       float64 `yaml:"spread_y"`
	SpeedMin      float64 `yaml:"speed_min"`
	SpeedMax      float64 `yaml:"speed_max"`
	BaseSizeMin   float64 `yaml:"base_size_min"`
	BaseSizeMax   float64 `yaml:"base_size_max"`
	HueSpeedMin   float64 `yaml:"hue_speed_min"`
	HueSpeedMax   float64 `yaml:"hue_speed_max"`
	TrailChance   float64 `yaml:"trail_chance"`
	MaxTrail      int     `yaml:"max_trail"`
	FlickerChance float64 `yaml:"flicker_chance"`
	FlickerAmount float64 `yaml:"flicker_amount"`
}

// RenderConfig holds the initial render options.
type RenderConfig struct {
	Mode    string `yaml:"mode"`    // wireframe or solid
	Palette string `yaml:"palette"` // depth or hue
	Culling bool   `yaml:"culling"`
	Trails  bool   `yaml:"trails"`
	StarHue bool   `yaml:"star_hue"`
}

// ControlConfig holds the speed multiplier and its bounds.
type ControlConfig struct {
	Speed     float64 `yaml:"speed"`
	SpeedStep float64 `yaml:"speed_step"`
	MinSpeed  float64 `yaml:"min_speed"`
	MaxSpeed  float64 `yaml:"max_speed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// RecordConfig holds headless recording settings. Recording is on when Path is set.
type RecordConfig struct {
	Path   string  `yaml:"path"`
	Frames int     `yaml:"frames"`
	DT     float64 `yaml:"dt"`
	Events string  `yaml:"events"` // frame:event list, see scene.ParseScript
}

// Default returns a Config with sensible default values.
func Default() *Config {
	sc := stars.DefaultConfig()
	return &Config{
		Display: DisplayConfig{
			Width:  1280,
			Height: 720,
			FPS:    60,
		},
		Camera: CameraConfig{
			Distance:   500,
			FOVDegrees: 64,
			ZoomStep:   20,
			MinZoom:    -300,
			MaxZoom:    1000,
		},
		Cube: CubeConfig{
			Size:     300,
			RateX:    1.2,
			RateY:    0.84,
			RateZ:    0.36,
			HueSpeed: 0.008,
		},
		Stars: StarsConfig{
			Count:         sc.Count,
			Speed:         sc.Speed,
			NearClip:      sc.NearClip,
			Far:           sc.Far,
			FarJitter:     sc.FarJitter,
			SpreadX:       sc.SpreadX,
			SpreadY:       sc.SpreadY,
			SpeedMin:      sc.SpeedMin,
			SpeedMax:      sc.SpeedMax,
			BaseSizeMin:   sc.BaseSizeMin,
			BaseSizeMax:   sc.BaseSizeMax,
			HueSpeedMin:   sc.HueSpeedMin,
			HueSpeedMax:   sc.HueSpeedMax,
			TrailChance:   sc.TrailChance,
			MaxTrail:      sc.MaxTrail,
			FlickerChance: sc.FlickerChance,
			FlickerAmount: sc.FlickerAmount,
		},
		Render: RenderConfig{
			Mode:    "wireframe",
			Palette: "hue",
			Culling: true,
			Trails:  true,
			StarHue: true,
		},
		Control: ControlConfig{
			Speed:     1,
			SpeedStep: 0.1,
			MinSpeed:  0.1,
			MaxSpeed:  3,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Record: RecordConfig{
			Frames: 180,
			DT:     1.0 / 30,
		},
	}
}

// Validate reports the first impossible value.
func (c *Config) Validate() error {
	checks := []struct {
		bad bool
		msg string
	}{
		{c.Display.Width <= 0 || c.Display.Height <= 0, "display size must be positive"},
		{c.Display.FPS <= 0, "display fps must be positive"},
		{c.Camera.Distance <= 0, "camera distance must be positive"},
		{c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180, "camera fov must be in (0, 180)"},
		{c.Camera.MinZoom > c.Camera.MaxZoom, "camera min_zoom is above max_zoom"},
		{c.Cube.Size <= 0, "cube size must be positive"},
		{c.Stars.Count < 1, "stars count must be at least 1"},
		{c.Stars.NearClip >= c.Stars.Far, "stars near_clip must be below far"},
		{c.Stars.SpeedMin > c.Stars.SpeedMax, "stars speed_min is above speed_max"},
		{c.Stars.BaseSizeMin > c.Stars.BaseSizeMax, "stars base_size_min is above base_size_max"},
		{c.Stars.HueSpeedMin > c.Stars.HueSpeedMax, "stars hue_speed_min is above hue_speed_max"},
		{c.Stars.MaxTrail < 0, "stars max_trail is negative"},
		{c.Control.MinSpeed <= 0 || c.Control.MinSpeed > c.Control.MaxSpeed, "control speed bounds are inverted or not positive"},
		{c.Record.Path != "" && c.Record.Frames < 1, "record frames must be at least 1"},
		{c.Record.Path != "" && c.Record.DT <= 0, "record dt must be positive"},
	}
	for _, ch := range checks {
		if ch.bad {
			return fmt.Errorf("%w: %s", ErrInvalid, ch.msg)
		}
	}
	if _, err := render.ParseMode(c.Render.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := render.ParsePalette(c.Render.Palette); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// CameraOptions converts the camera section for a surface of the given size.
func (c *Config) CameraOptions(width, height int) camera.Options {
	return camera.Options{
		Position: geom.V3(0, 0, -c.Camera.Distance),
		FOV:      c.Camera.FOVDegrees * math.Pi / 180,
		Width:    width,
		Height:   height,
		ZoomStep: c.Camera.ZoomStep,
		MinZoom:  c.Camera.MinZoom,
		MaxZoom:  c.Camera.MaxZoom,
	}
}

// StarField converts the stars section. The minimum drawn size is fixed.
func (c *Config) StarField() stars.Config {
	s := c.Stars
	return stars.Config{
		Count:         s.Count,
		Speed:         s.Speed,
		NearClip:      s.NearClip,
		Far:           s.Far,
		FarJitter:     s.FarJitter,
		SpreadX:       s.SpreadX,
		SpreadY:       s.SpreadY,
		SpeedMin:      s.SpeedMin,
		SpeedMax:      s.SpeedMax,
		BaseSizeMin:   s.BaseSizeMin,
		BaseSizeMax:   s.BaseSizeMax,
		MinSize:       stars.DefaultConfig().MinSize,
		HueSpeedMin:   s.HueSpeedMin,
		HueSpeedMax:   s.HueSpeedMax,
		TrailChance:   s.TrailChance,
		MaxTrail:      s.MaxTrail,
		FlickerChance: s.FlickerChance,
		FlickerAmount: s.FlickerAmount,
	}
}

// RotationRate returns the cube's angular rates.
func (c *Config) RotationRate() geom.Euler {
	return geom.Euler{X: c.Cube.RateX, Y: c.Cube.RateY, Z: c.Cube.RateZ}
}

// Controls converts the control and render sections. Call Validate first;
// unknown mode or palette names fall back to wireframe and depth.
func (c *Config) Controls() scene.Controls {
	mode, _ := render.ParseMode(c.Render.Mode)
	pal, _ := render.ParsePalette(c.Render.Palette)
	return scene.Controls{
		Speed:     c.Control.Speed,
		SpeedStep: c.Control.SpeedStep,
		MinSpeed:  c.Control.MinSpeed,
		MaxSpeed:  c.Control.MaxSpeed,
		Render: render.Options{
			Mode:    mode,
			Palette: pal,
			Culling: c.Render.Culling,
			Trails:  c.Render.Trails,
			StarHue: c.Render.StarHue,
		},
	}
}

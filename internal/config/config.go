// Package config loads drawing settings and host options from the environment.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/kelseyhightower/envconfig"
)

// Settings is the drawing configuration read by the tools and the render pass.
// The UI mutates it through the controller.
type Settings struct {
	StrokeWidth         float64 `envconfig:"STROKE_WIDTH" default:"2"`
	StrokeColor         string  `envconfig:"STROKE_COLOR" default:"#6366f1"`
	PointSize           float64 `envconfig:"POINT_SIZE" default:"6"`
	SnapDistance        float64 `envconfig:"SNAP_DISTANCE" default:"20"`
	CurveRadius         float64 `envconfig:"CURVE_RADIUS" default:"50"`
	CurveTension        float64 `envconfig:"CURVE_TENSION" default:"0.5"`
	ShowInfluenceRadius bool    `envconfig:"SHOW_INFLUENCE_RADIUS" default:"false"`
}

// Config is the full process configuration.
type Config struct {
	Settings

	WindowWidth  float32 `envconfig:"WINDOW_WIDTH" default:"1280"`
	WindowHeight float32 `envconfig:"WINDOW_HEIGHT" default:"800"`
	ExportDir    string  `envconfig:"EXPORT_DIR" default:"."`

	ViewerEnabled bool   `envconfig:"VIEWER_ENABLED" default:"false"`
	ViewerAddr    string `envconfig:"VIEWER_ADDR" default:":8888"`
	Advertise     bool   `envconfig:"ADVERTISE" default:"true"`
}

// ErrInvalidSettings wraps every settings validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// DefaultSettings returns the settings the application starts with.
func DefaultSettings() Settings {
	return Settings{
		StrokeWidth:  2,
		StrokeColor:  "#6366f1",
		PointSize:    6,
		SnapDistance: 20,
		CurveRadius:  50,
		CurveTension: 0.5,
	}
}

// Load reads CURVEBOARD_* variables over the defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("curveboard", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the ranges the geometry relies on.
func (s Settings) Validate() error {
	switch {
	case !(s.StrokeWidth > 0):
		return fmt.Errorf("%w: stroke width %v must be positive", ErrInvalidSettings, s.StrokeWidth)
	case !(s.PointSize > 0):
		return fmt.Errorf("%w: point size %v must be positive", ErrInvalidSettings, s.PointSize)
	case !(s.SnapDistance >= 0):
		return fmt.Errorf("%w: snap distance %v must not be negative", ErrInvalidSettings, s.SnapDistance)
	case !(s.CurveRadius >= 0):
		return fmt.Errorf("%w: curve radius %v must not be negative", ErrInvalidSettings, s.CurveRadius)
	case math.IsNaN(s.CurveTension) || math.IsInf(s.CurveTension, 0):
		return fmt.Errorf("%w: curve tension %v must be finite", ErrInvalidSettings, s.CurveTension)
	case s.StrokeColor == "":
		return fmt.Errorf("%w: stroke color is empty", ErrInvalidSettings)
	}
	return nil
}

// Package config loads viewer settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Tobotis/interactive-art-gallery/internal/vis/interact"
)

// Prefix is the environment variable prefix, e.g. ARTVIEWER_MAX_SCALE.
const Prefix = "ARTVIEWER"

type Config struct {
	Catalog  string `envconfig:"CATALOG"` // Empty uses the built-in sample gallery
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	MinScale           float64       `envconfig:"MIN_SCALE" default:"0.5"`
	MaxScale           float64       `envconfig:"MAX_SCALE" default:"5"`
	DefaultHotspotZoom float64       `envconfig:"DEFAULT_HOTSPOT_ZOOM" default:"4"`
	ClampFocus         bool          `envconfig:"CLAMP_FOCUS" default:"false"`
	FocusDuration      time.Duration `envconfig:"FOCUS_DURATION" default:"400ms"`

	ButtonZoomIn  float64 `envconfig:"BUTTON_ZOOM_IN" default:"1.3"`
	ButtonZoomOut float64 `envconfig:"BUTTON_ZOOM_OUT" default:"0.7"`
	WheelZoomIn   float64 `envconfig:"WHEEL_ZOOM_IN" default:"1.1"`
	WheelZoomOut  float64 `envconfig:"WHEEL_ZOOM_OUT" default:"0.9"`

	WindowWidth  int `envconfig:"WINDOW_WIDTH" default:"1280"`
	WindowHeight int `envconfig:"WINDOW_HEIGHT" default:"860"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the engine cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if !c.Bounds().Valid() {
		errs = append(errs, fmt.Errorf("invalid scale bounds [%v, %v]", c.MinScale, c.MaxScale))
	}
	if c.DefaultHotspotZoom <= 0 {
		errs = append(errs, fmt.Errorf("default hotspot zoom must be positive, got %v", c.DefaultHotspotZoom))
	}
	if c.FocusDuration < 0 {
		errs = append(errs, fmt.Errorf("focus duration must not be negative, got %v", c.FocusDuration))
	}
	for name, f := range map[string]float64{
		"button zoom in":  c.ButtonZoomIn,
		"button zoom out": c.ButtonZoomOut,
		"wheel zoom in":   c.WheelZoomIn,
		"wheel zoom out":  c.WheelZoomOut,
	} {
		if f <= 0 {
			errs = append(errs, fmt.Errorf("%s factor must be positive, got %v", name, f))
		}
	}
	return errors.Join(errs...)
}

// Bounds returns the configured scale bounds.
func (c *Config) Bounds() interact.Bounds {
	return interact.Bounds{Min: c.MinScale, Max: c.MaxScale}
}

// Engine builds the transform engine described by the config.
func (c *Config) Engine() interact.Engine {
	e := interact.NewEngine(c.Bounds(), c.DefaultHotspotZoom)
	e.ClampFocus = c.ClampFocus
	return e
}

// Interpreter builds a gesture interpreter with the configured wheel factors.
func (c *Config) Interpreter() *interact.Interpreter {
	in := interact.NewInterpreter()
	in.WheelZoomIn = c.WheelZoomIn
	in.WheelZoomOut = c.WheelZoomOut
	return in
}

package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Tolerances Tolerances
	Camera     CameraConfig
	Log        LogConfig
}

// Tolerances are the empirically tuned constants the confinement behavior
// depends on, in particular its loop prevention. Change them only in lockstep
// with the host map surface.
type Tolerances struct {
	// BoundsSimilarity is the per-axis summed absolute difference below
	// which two constraint bounds count as the same push.
	BoundsSimilarity float64 `envconfig:"MAP_BOUNDS_SIMILARITY" default:"0.001"`
	// PaddingChangeThreshold is the relative padding change required before
	// an idle event triggers reapplication.
	PaddingChangeThreshold float64 `envconfig:"MAP_PADDING_CHANGE_THRESHOLD" default:"0.1"`
	// PaddingClampRatio caps padding per axis as a fraction of the event
	// span; anything at 0.5 or above inverts the padded bounds.
	PaddingClampRatio float64 `envconfig:"MAP_PADDING_CLAMP_RATIO" default:"0.49"`
	// MaxViewportSpan marks a viewport wider or taller than this many
	// degrees as not yet laid out.
	MaxViewportSpan float64 `envconfig:"MAP_MAX_VIEWPORT_SPAN" default:"10"`
	// ClampEpsilon is the minimum per-axis correction worth repositioning
	// the camera for during a gesture.
	ClampEpsilon float64 `envconfig:"MAP_CLAMP_EPSILON" default:"0.000001"`
}

type CameraConfig struct {
	MaxZoom float64 `envconfig:"MAP_MAX_ZOOM" default:"18"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration with every field at its default value,
// for hosts that embed the library without environment wiring.
func Default() *Config {
	return &Config{
		Tolerances: Tolerances{
			BoundsSimilarity:       0.001,
			PaddingChangeThreshold: 0.1,
			PaddingClampRatio:      0.49,
			MaxViewportSpan:        10,
			ClampEpsilon:           1e-6,
		},
		Camera: CameraConfig{MaxZoom: 18},
		Log:    LogConfig{Level: "info", Format: "json"},
	}
}

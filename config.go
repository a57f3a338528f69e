package panzoom

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable threshold and sensitivity of the viewport.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// MinScale and MaxScale bound the zoom factor. MinScale must be > 0.
	MinScale float64 `json:"min_scale"`
	MaxScale float64 `json:"max_scale"`

	// PinchSensitivity scales ctrl+wheel deltas (trackpad pinch).
	// Lower is heavier and less jumpy.
	PinchSensitivity float64 `json:"pinch_sensitivity"`
	// WheelSensitivity scales discrete mouse-wheel deltas.
	WheelSensitivity float64 `json:"wheel_sensitivity"`
	// TouchPinchSensitivity scales the change of distance between two touches.
	TouchPinchSensitivity float64 `json:"touch_pinch_sensitivity"`

	// TrackpadDeltaThreshold is the vertical delta below which a wheel
	// event is treated as coming from a trackpad.
	TrackpadDeltaThreshold float64 `json:"trackpad_delta_threshold"`
	// TrackpadLockMS is how long, in milliseconds, a trackpad gesture keeps
	// classifying wheel events as pans after its last small delta.
	TrackpadLockMS int `json:"trackpad_lock_ms"`

	// DragThreshold is the distance in pixels a press must travel before the
	// gesture counts as a drag for click suppression.
	DragThreshold float64 `json:"drag_threshold_px"`

	// RecenterOffsetY is the vertical offset used by Recenter.
	RecenterOffsetY float64 `json:"recenter_offset_y"`

	// WheelPixelScale converts the host's wheel units into pixel deltas
	// before classification. Ebitengine reports about one unit per notch.
	WheelPixelScale float64 `json:"wheel_pixel_scale"`

	// AnimateSeconds is the duration of animated reset and recenter.
	AnimateSeconds float64 `json:"animate_seconds"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MinScale:               0.5,
		MaxScale:               3.0,
		PinchSensitivity:       0.005,
		WheelSensitivity:       0.001,
		TouchPinchSensitivity:  0.0025,
		TrackpadDeltaThreshold: 45,
		TrackpadLockMS:         200,
		DragThreshold:          5,
		RecenterOffsetY:        50,
		WheelPixelScale:        100,
		AnimateSeconds:         0.25,
	}
}

// Limits returns the scale bounds of the config.
func (c Config) Limits() Limits {
	return Limits{Min: c.MinScale, Max: c.MaxScale}
}

// LockDuration returns TrackpadLockMS as a duration.
func (c Config) LockDuration() time.Duration {
	return time.Duration(c.TrackpadLockMS) * time.Millisecond
}

// Validate reports the first setting that would break a viewport invariant.
func (c Config) Validate() error {
	switch {
	case !finite(c.MinScale, c.MaxScale, c.PinchSensitivity, c.WheelSensitivity,
		c.TouchPinchSensitivity, c.TrackpadDeltaThreshold, c.DragThreshold,
		c.RecenterOffsetY, c.WheelPixelScale, c.AnimateSeconds):
		return fmt.Errorf("%w: non-finite value", ErrInvalidConfig)
	case c.MinScale <= 0:
		return fmt.Errorf("%w: min_scale %v must be > 0", ErrInvalidConfig, c.MinScale)
	case c.MaxScale < c.MinScale:
		return fmt.Errorf("%w: max_scale %v < min_scale %v", ErrInvalidConfig, c.MaxScale, c.MinScale)
	case c.TrackpadDeltaThreshold < 0:
		return fmt.Errorf("%w: trackpad_delta_threshold %v must be >= 0", ErrInvalidConfig, c.TrackpadDeltaThreshold)
	case c.TrackpadLockMS < 0:
		return fmt.Errorf("%w: trackpad_lock_ms %d must be >= 0", ErrInvalidConfig, c.TrackpadLockMS)
	case c.DragThreshold < 0:
		return fmt.Errorf("%w: drag_threshold_px %v must be >= 0", ErrInvalidConfig, c.DragThreshold)
	case c.AnimateSeconds < 0:
		return fmt.Errorf("%w: animate_seconds %v must be >= 0", ErrInvalidConfig, c.AnimateSeconds)
	}
	return nil
}

// ParseConfig overlays JSON data on DefaultConfig and validates the result.
// Fields missing from data keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a JSON config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

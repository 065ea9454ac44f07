package wireworld

import "strconv"

// Config controls the Wireworld simulation dimensions and initial pattern.
type Config struct {
	Width  int
	Height int

	// Preset names the pattern stamped on Reset. See Presets.
	Preset string
	Seed   int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 96, Height: 64, Preset: PresetClock, Seed: 1}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values and unknown presets keep their defaults. Dimensions are
// passed through as given so that NewWithConfig can reject non-positive ones.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["preset"]; ok {
		if _, known := Presets()[v]; known {
			c.Preset = v
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

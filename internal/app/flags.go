package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Sim    string
	Width  int
	Height int
	Preset string
	Scale  int
	TPS    int
	Steps  int
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "wireworld", Width: 96, Height: 64, Preset: "clock", Scale: 8, TPS: 60, Steps: 12, Seed: 1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Preset, "preset", c.Preset, "initial pattern (empty, wire, clock, random)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
}

// SimOptions converts the flags into the key/value map consumed by sim
// factories.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":      strconv.Itoa(c.Width),
		"h":      strconv.Itoa(c.Height),
		"preset": c.Preset,
		"seed":   strconv.FormatInt(c.Seed, 10),
	}
}

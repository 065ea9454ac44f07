package wireworld

import (
	"strconv"

	"wireworld/internal/core"
)

// World adapts a Grid to the core.Sim contract used by the drivers.
type World struct {
	cfg Config

	grid       *Grid
	display    []uint8
	generation int
	seed       int64
}

// NewWithConfig returns a World configured from the provided options. The
// preset is stamped immediately using cfg.Seed.
func NewWithConfig(cfg Config) (*World, error) {
	g, err := New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if _, ok := presets[cfg.Preset]; !ok {
		cfg.Preset = PresetEmpty
	}
	w := &World{
		cfg:     cfg,
		grid:    g,
		display: make([]uint8, cfg.Width*cfg.Height),
	}
	w.Reset(cfg.Seed)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "wireworld" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Cells exposes the current display buffer. Each value is a State.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the underlying grid.
func (w *World) Grid() *Grid { return w.grid }

// Generation returns the number of steps since the last reset or clear.
func (w *World) Generation() int { return w.generation }

// Reset restamps the configured preset. A zero seed falls back to the
// configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.seed = seed
	presets[w.cfg.Preset].Apply(w.grid, seed)
	w.generation = 0
	w.rebuildDisplay()
}

// Clear empties the grid without restamping the preset.
func (w *World) Clear() {
	w.grid.Clear()
	w.generation = 0
	w.rebuildDisplay()
}

// Step advances the world by one generation.
func (w *World) Step() {
	w.grid.Advance()
	w.generation++
	w.rebuildDisplay()
}

// ApplyEdit edits one cell. The change is visible in Cells immediately and
// feeds the next Step.
func (w *World) ApplyEdit(x, y int, e core.Edit) bool {
	if !w.grid.ApplyEdit(x, y, e) {
		return false
	}
	if idx, ok := w.grid.size.Index(x, y); ok {
		w.display[idx] = uint8(w.grid.cells[idx].State)
	}
	return true
}

// Parameters reports the current world values for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	census := w.grid.Census()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				stringParam("preset", "Preset", w.cfg.Preset),
				stringParam("seed", "Seed", strconv.FormatInt(w.seed, 10)),
			},
		},
		{
			Name: "Generation",
			Params: []core.Parameter{
				intParam("generation", "Generation", w.generation),
				intParam("heads", "Heads", census.Count(ElectronHead)),
				intParam("tails", "Tails", census.Count(ElectronTail)),
				intParam("conductors", "Conductors", census.Count(Conductor)),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}

func init() {
	core.Register("wireworld", func(cfg map[string]string) (core.Sim, error) {
		w, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}

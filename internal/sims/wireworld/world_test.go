package wireworld

import (
	"errors"
	"slices"
	"testing"

	"wireworld/internal/core"
)

func newWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	w, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig(%+v): %v", cfg, err)
	}
	return w
}

func TestWorldImplementsDriverContracts(t *testing.T) {
	var _ core.Sim = (*World)(nil)
	var _ core.Editor = (*World)(nil)
	var _ core.Clearer = (*World)(nil)
	var _ core.ParameterProvider = (*World)(nil)
}

func TestNewWithConfigRejectsBadSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := NewWithConfig(cfg); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}

func TestWorldScenarioThreeByThree(t *testing.T) {
	cfg := Config{Width: 3, Height: 3, Preset: PresetEmpty}
	w := newWorld(t, cfg)
	w.Grid().Set(1, 1, Conductor)
	w.Grid().Set(0, 1, ElectronHead)

	w.Step()

	cells := w.Cells()
	size := w.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx, _ := size.Index(x, y)
			want := Empty
			switch {
			case x == 1 && y == 1:
				want = ElectronHead
			case x == 0 && y == 1:
				want = ElectronTail
			}
			if State(cells[idx]) != want {
				t.Fatalf("display cell (%d,%d) = %v, expected %v", x, y, State(cells[idx]), want)
			}
		}
	}
	if w.Generation() != 1 {
		t.Fatalf("expected generation 1, got %d", w.Generation())
	}
}

func TestWorldEditUpdatesDisplay(t *testing.T) {
	w := newWorld(t, Config{Width: 10, Height: 10, Preset: PresetEmpty})
	idx, _ := w.Size().Index(5, 5)

	w.ApplyEdit(5, 5, core.EditPrimary)
	if State(w.Cells()[idx]) != Conductor {
		t.Fatalf("display not refreshed after edit: %v", State(w.Cells()[idx]))
	}
	w.ApplyEdit(5, 5, core.EditPrimary)
	w.ApplyEdit(5, 5, core.EditPrimary)
	if State(w.Cells()[idx]) != Empty {
		t.Fatalf("expected empty after three edits, got %v", State(w.Cells()[idx]))
	}
	if w.Generation() != 0 {
		t.Fatal("edits must not advance the generation")
	}

	before := slices.Clone(w.Cells())
	if w.ApplyEdit(-1, 0, core.EditPrimary) || w.ApplyEdit(10, 0, core.EditSecondary) {
		t.Fatal("out-of-range edits reported success")
	}
	if !slices.Equal(before, w.Cells()) {
		t.Fatal("out-of-range edits changed the display")
	}
}

func TestWorldResetDeterministic(t *testing.T) {
	cfg := Config{Width: 40, Height: 30, Preset: PresetRandom, Seed: 5}
	w := newWorld(t, cfg)
	initial := slices.Clone(w.Cells())

	for i := 0; i < 7; i++ {
		w.Step()
	}
	w.Reset(0)
	if !slices.Equal(initial, w.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if w.Generation() != 0 {
		t.Fatalf("Reset should zero the generation, got %d", w.Generation())
	}

	w.Reset(777)
	seeded := slices.Clone(w.Cells())
	w.Reset(777)
	if !slices.Equal(seeded, w.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different grids")
	}
}

func TestWorldTwinsStayInLockstep(t *testing.T) {
	cfg := Config{Width: 32, Height: 24, Preset: PresetRandom, Seed: 11}
	a, b := newWorld(t, cfg), newWorld(t, cfg)
	for i := 0; i < 20; i++ {
		a.Step()
		b.Step()
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("worlds diverged at generation %d", a.Generation())
		}
	}
}

func TestWorldClear(t *testing.T) {
	w := newWorld(t, Config{Width: 20, Height: 9, Preset: PresetClock})
	w.Step()
	w.Clear()
	for i, c := range w.Cells() {
		if State(c) != Empty {
			t.Fatalf("cell %d = %v after Clear", i, State(c))
		}
	}
	if w.Generation() != 0 {
		t.Fatal("Clear should zero the generation")
	}
}

func TestWorldUnknownPresetFallsBackToEmpty(t *testing.T) {
	w := newWorld(t, Config{Width: 4, Height: 4, Preset: "nope"})
	if got := w.Grid().Census().Count(Empty); got != 16 {
		t.Fatalf("expected an empty grid, %d cells set", 16-got)
	}
}

func TestPaletteCoversEveryState(t *testing.T) {
	w := newWorld(t, Config{Width: 2, Height: 2, Preset: PresetEmpty})
	palette := w.Palette()
	if len(palette) != len(States) {
		t.Fatalf("palette has %d entries for %d states", len(palette), len(States))
	}
	seen := map[[4]uint8]State{}
	for _, s := range States {
		c := palette[s]
		key := [4]uint8{c.R, c.G, c.B, c.A}
		if prev, dup := seen[key]; dup {
			t.Fatalf("%v and %v share color %v", prev, s, c)
		}
		seen[key] = s
	}
}

func TestParametersReportCensus(t *testing.T) {
	w := newWorld(t, Config{Width: 10, Height: 3, Preset: PresetWire, Seed: 3})
	w.Step()
	values := map[string]string{}
	for _, g := range w.Parameters().Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	expects := map[string]string{
		"w":          "10",
		"h":          "3",
		"preset":     PresetWire,
		"seed":       "3",
		"generation": "1",
		"heads":      "1",
		"tails":      "1",
		"conductors": "6",
	}
	for k, want := range expects {
		if values[k] != want {
			t.Fatalf("parameter %q = %q, expected %q", k, values[k], want)
		}
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["wireworld"]
	if !ok {
		t.Fatal("wireworld factory not registered")
	}
	sim, err := factory(map[string]string{"w": "12", "h": "8", "preset": PresetEmpty})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if sim.Size() != (core.Size{W: 12, H: 8}) {
		t.Fatalf("unexpected size %v", sim.Size())
	}
	if _, err := factory(map[string]string{"w": "-3"}); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize for negative width, got %v", err)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "50", "h": "oops", "preset": "wire", "seed": "9"})
	if c.Width != 50 || c.Height != DefaultConfig().Height || c.Preset != PresetWire || c.Seed != 9 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c := FromMap(map[string]string{"preset": "bogus"}); c.Preset != DefaultConfig().Preset {
		t.Fatalf("unknown preset should keep the default, got %q", c.Preset)
	}
	if c := FromMap(nil); c != DefaultConfig() {
		t.Fatalf("nil map should yield defaults, got %+v", c)
	}
}

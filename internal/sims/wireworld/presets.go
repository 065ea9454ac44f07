package wireworld

import (
	"sort"
	"strings"

	"wireworld/internal/core"
)

// Preset names accepted by Config.Preset.
const (
	PresetEmpty  = "empty"
	PresetWire   = "wire"
	PresetClock  = "clock"
	PresetRandom = "random"
)

// Preset is a named initial pattern stamped onto a cleared grid.
type Preset struct {
	Name  string
	Descr string
	apply func(g *Grid, rng *core.RNG)
}

// Apply clears g and stamps the preset. Seeded presets draw from an RNG
// seeded with seed, so the same seed always yields the same grid.
func (p Preset) Apply(g *Grid, seed int64) {
	g.Clear()
	if p.apply != nil {
		p.apply(g, core.NewRNG(seed))
	}
}

var presets = map[string]Preset{
	PresetEmpty: {
		Name:  PresetEmpty,
		Descr: "blank grid",
	},
	PresetWire: {
		Name:  PresetWire,
		Descr: "a straight wire carrying one electron left to right",
		apply: stampWire,
	},
	PresetClock: {
		Name:  PresetClock,
		Descr: "an 8-cell ring oscillator feeding an output wire",
		apply: stampClock,
	},
	PresetRandom: {
		Name:  PresetRandom,
		Descr: "seeded straight conductor runs with scattered electrons",
		apply: stampRandom,
	},
}

// Presets exposes the built-in patterns keyed by name.
func Presets() map[string]Preset { return presets }

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp writes an ASCII pattern with its top-left corner at (ox, oy).
// '#' is a conductor, 'H' an electron head, 't' an electron tail; any other
// rune leaves the cell untouched. Cells falling outside the grid are
// dropped. It returns the number of cells written.
func Stamp(g *Grid, ox, oy int, rows []string) int {
	written := 0
	for dy, row := range rows {
		dx := 0
		for _, r := range row {
			s, ok := stateForRune(r)
			if ok && g.Set(ox+dx, oy+dy, s) {
				written++
			}
			dx++
		}
	}
	return written
}

func stateForRune(r rune) (State, bool) {
	switch r {
	case '#':
		return Conductor, true
	case 'H':
		return ElectronHead, true
	case 't':
		return ElectronTail, true
	}
	return Empty, false
}

func stampWire(g *Grid, _ *core.RNG) {
	length := g.Width() - 2
	if length < 3 {
		length = g.Width()
	}
	row := "tH" + strings.Repeat("#", max(length-2, 0))
	ox := (g.Width() - length) / 2
	Stamp(g, ox, g.Height()/2, []string{row})
}

// clockRing is a period-8 loop; the electron circulates clockwise and leaves
// through the east cell of the middle row.
var clockRing = []string{
	".tH#",
	"#...#",
	".###",
}

func stampClock(g *Grid, _ *core.RNG) {
	const ringW = 5
	ox, oy := 1, g.Height()/2-1
	rows := append([]string(nil), clockRing...)
	if out := g.Width() - ox - ringW - 1; out > 0 {
		rows[1] += strings.Repeat("#", out)
	}
	Stamp(g, ox, oy, rows)
}

func stampRandom(g *Grid, rng *core.RNG) {
	w, h := g.Width(), g.Height()
	runs := max(w*h/64, 1)
	maxLen := max(w/4, 3)
	for i := 0; i < runs; i++ {
		x, y := rng.IntN(w), rng.IntN(h)
		dx, dy := 1, 0
		if rng.Bool() {
			dx, dy = 0, 1
		}
		length := 3 + rng.IntN(maxLen-2)
		for step := 0; step < length; step++ {
			g.Set(x+dx*step, y+dy*step, Conductor)
		}
		if rng.IntN(4) == 0 {
			g.Set(x, y, ElectronTail)
			g.Set(x+dx, y+dy, ElectronHead)
		}
	}
}

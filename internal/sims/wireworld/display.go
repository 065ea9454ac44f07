package wireworld

import "image/color"

var wireworldPalette = buildPalette()

// StateColor maps a state to its display color.
func StateColor(s State) color.RGBA {
	switch s {
	case Empty:
		return color.RGBA{R: 12, G: 12, B: 16, A: 255}
	case ElectronHead:
		return color.RGBA{R: 64, G: 140, B: 255, A: 255}
	case ElectronTail:
		return color.RGBA{R: 240, G: 72, B: 48, A: 255}
	case Conductor:
		return color.RGBA{R: 250, G: 200, B: 40, A: 255}
	}
	return color.RGBA{R: 255, G: 0, B: 255, A: 255}
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, numStates)
	for _, s := range States {
		palette[s] = StateColor(s)
	}
	return palette
}

// Palette exposes the color palette indexed by the values in Cells.
func (w *World) Palette() []color.RGBA {
	return wireworldPalette
}

func (w *World) rebuildDisplay() {
	for i, c := range w.grid.cells {
		w.display[i] = uint8(c.State)
	}
}

// StateNames returns the display names of the states in palette order.
func (w *World) StateNames() []string {
	names := make([]string, len(States))
	for i, s := range States {
		names[i] = s.String()
	}
	return names
}

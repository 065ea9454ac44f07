package wireworld

import "wireworld/internal/core"

// Cycle returns the state the primary edit moves s to:
// Empty -> Conductor -> ElectronHead -> Empty. A tail leaves the cycle by
// going back to Empty.
func Cycle(s State) State {
	switch s {
	case Empty:
		return Conductor
	case Conductor:
		return ElectronHead
	case ElectronHead:
		return Empty
	case ElectronTail:
		return Empty
	}
	return Empty
}

// ApplyEdit overwrites the cell at (x, y) according to the edit command,
// bypassing the transition rule. It never advances the grid. Out-of-range
// coordinates and unknown commands are ignored and report false.
func (g *Grid) ApplyEdit(x, y int, e core.Edit) bool {
	cur, ok := g.Get(x, y)
	if !ok {
		return false
	}
	switch e {
	case core.EditPrimary:
		return g.Set(x, y, Cycle(cur))
	case core.EditSecondary:
		return g.Set(x, y, Empty)
	}
	return false
}

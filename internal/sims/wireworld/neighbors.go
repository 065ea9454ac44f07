package wireworld

import "wireworld/internal/core"

// mooreOffsets is the fixed resolution order of the Moore neighborhood.
var mooreOffsets = [8]core.Point{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
	{X: -1, Y: 1},
	{X: 1, Y: 0},
	{X: 1, Y: -1},
	{X: 1, Y: 1},
}

// neighborPoints appends the in-bounds Moore neighbors of (x, y) to dst.
// Offsets landing outside the grid are dropped, never wrapped.
func neighborPoints(size core.Size, x, y int, dst []core.Point) []core.Point {
	for _, off := range mooreOffsets {
		nx, ny := x+off.X, y+off.Y
		if !size.Contains(nx, ny) {
			continue
		}
		dst = append(dst, core.Point{X: nx, Y: ny})
	}
	return dst
}

// neighborStates appends the states of the in-bounds Moore neighbors of
// (x, y) read from cells, which must be laid out according to size.
func neighborStates(cells []Cell, size core.Size, x, y int, dst []State) []State {
	for _, off := range mooreOffsets {
		idx, ok := size.Index(x+off.X, y+off.Y)
		if !ok {
			continue
		}
		dst = append(dst, cells[idx].State)
	}
	return dst
}

// Neighbors returns the coordinates of the existing cells adjacent to
// (x, y). Corners have 3, edges 5, interior cells 8. The result is nil when
// (x, y) itself is out of range.
func (g *Grid) Neighbors(x, y int) []core.Point {
	if !g.size.Contains(x, y) {
		return nil
	}
	return neighborPoints(g.size, x, y, make([]core.Point, 0, len(mooreOffsets)))
}

// NeighborStates returns the states of the existing cells adjacent to (x, y)
// in the same order as Neighbors.
func (g *Grid) NeighborStates(x, y int) []State {
	if !g.size.Contains(x, y) {
		return nil
	}
	return neighborStates(g.cells, g.size, x, y, make([]State, 0, len(mooreOffsets)))
}

package wireworld

import (
	"errors"
	"fmt"

	"wireworld/internal/core"
)

// ErrInvalidSize is returned when a grid is requested with a non-positive
// width or height.
var ErrInvalidSize = errors.New("wireworld: grid dimensions must be positive")

// Grid is a fixed-size rectangle of cells stored in row-major order.
//
// A Grid has a single owner and is not safe for concurrent use.
type Grid struct {
	size  core.Size
	cells []Cell
	prev  []Cell
}

// New allocates a width*height grid with every cell Empty.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	total := width * height
	return &Grid{
		size:  core.Size{W: width, H: height},
		cells: make([]Cell, total),
		prev:  make([]Cell, total),
	}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return g.size }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.size.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.size.H }

// Get returns the state at (x, y). The second result is false when the
// coordinates are outside the grid.
func (g *Grid) Get(x, y int) (State, bool) {
	idx, ok := g.size.Index(x, y)
	if !ok {
		return Empty, false
	}
	return g.cells[idx].State, true
}

// Cell returns the cell at (x, y) by value.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	idx, ok := g.size.Index(x, y)
	if !ok {
		return Cell{}, false
	}
	return g.cells[idx], true
}

// Set overwrites the state at (x, y). Out-of-range coordinates and states
// outside the closed set are ignored; the result reports whether the write
// happened.
func (g *Grid) Set(x, y int, s State) bool {
	if !s.Valid() {
		return false
	}
	idx, ok := g.size.Index(x, y)
	if !ok {
		return false
	}
	g.cells[idx].State = s
	return true
}

// Clear resets every cell to Empty.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Advance replaces the grid contents with the next generation.
//
// The current generation is first copied into the snapshot buffer; every
// next state is computed from that snapshot and written to the live cells,
// so the result does not depend on traversal order.
func (g *Grid) Advance() {
	copy(g.prev, g.cells)
	w, h := g.size.W, g.size.H
	var scratch [len(mooreOffsets)]State
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			cur := g.prev[idx].State
			var ns []State
			if cur == Conductor {
				ns = neighborStates(g.prev, g.size, x, y, scratch[:0])
			}
			g.cells[idx].State = Next(cur, ns)
		}
	}
}

// Census counts cells per state.
type Census [numStates]int

// Count returns the number of cells in state s.
func (c Census) Count(s State) int {
	if !s.Valid() {
		return 0
	}
	return c[s]
}

// Census tallies the current generation.
func (g *Grid) Census() Census {
	var c Census
	for _, cell := range g.cells {
		c[cell.State]++
	}
	return c
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		size:  g.size,
		cells: append([]Cell(nil), g.cells...),
		prev:  make([]Cell, len(g.prev)),
	}
}

// Equal reports whether both grids have the same dimensions and states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

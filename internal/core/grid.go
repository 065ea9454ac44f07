package core

// Point is a cell coordinate on a grid.
type Point struct {
	X, Y int
}

// Contains reports whether (x, y) lies inside the grid. There is no wrapping.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Index returns the row-major slice index for coordinates (x, y). The second
// result is false when the coordinates fall outside the grid.
//
// Every component that maps a coordinate to a cell goes through Index.
func (s Size) Index(x, y int) (int, bool) {
	if !s.Contains(x, y) {
		return 0, false
	}
	return y*s.W + x, true
}

// Point converts a linear index back into coordinates.
func (s Size) Point(i int) (Point, bool) {
	if s.W <= 0 || i < 0 || i >= s.Area() {
		return Point{}, false
	}
	return Point{X: i % s.W, Y: i / s.W}, true
}

// Area returns the number of cells in the grid.
func (s Size) Area() int {
	if s.W <= 0 || s.H <= 0 {
		return 0
	}
	return s.W * s.H
}

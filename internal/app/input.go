package app

// cellAt maps a window pixel to grid coordinates at the given scale. Pixels
// left of or above the grid map to negative coordinates, which the engine
// treats as out of range.
func cellAt(px, py, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return floorDiv(px, scale), floorDiv(py, scale)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

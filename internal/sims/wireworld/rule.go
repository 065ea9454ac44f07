package wireworld

// Next returns the state a cell moves to in the following generation given
// its current state and the states of its existing neighbors.
//
// Only the number of electron heads among the neighbors matters, so the
// order of neighbors is irrelevant.
func Next(current State, neighbors []State) State {
	switch current {
	case Empty:
		return Empty
	case ElectronHead:
		return ElectronTail
	case ElectronTail:
		return Conductor
	case Conductor:
		heads := 0
		for _, n := range neighbors {
			if n == ElectronHead {
				heads++
			}
		}
		if heads == 1 || heads == 2 {
			return ElectronHead
		}
		return Conductor
	}
	return current
}

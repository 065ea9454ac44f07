package wireworld

// State is the closed set of Wireworld cell states.
type State uint8

const (
	Empty State = iota
	ElectronHead
	ElectronTail
	Conductor

	numStates = 4
)

// States lists every state in declaration order.
var States = [numStates]State{Empty, ElectronHead, ElectronTail, Conductor}

// Valid reports whether s is one of the four Wireworld states.
func (s State) Valid() bool { return s < numStates }

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case ElectronHead:
		return "head"
	case ElectronTail:
		return "tail"
	case Conductor:
		return "conductor"
	}
	return "invalid"
}

// Cell is a single automaton unit. It has no identity beyond its position in
// the grid.
type Cell struct {
	State State
}

package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Edit identifies a pointer-driven edit applied to a single cell.
type Edit uint8

const (
	// EditPrimary advances the target cell through the sim's edit cycle.
	EditPrimary Edit = iota
	// EditSecondary clears the target cell.
	EditSecondary
)

func (e Edit) String() string {
	switch e {
	case EditPrimary:
		return "primary"
	case EditSecondary:
		return "secondary"
	}
	return "unknown"
}

// Editor is implemented by sims whose cells can be edited directly.
// ApplyEdit reports whether a cell was targeted; out-of-range coordinates
// are ignored.
type Editor interface {
	ApplyEdit(x, y int, e Edit) bool
}

// Clearer is implemented by sims that can wipe their grid without reseeding.
type Clearer interface {
	Clear()
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

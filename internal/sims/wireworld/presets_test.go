package wireworld

import "testing"

func TestStampClipsAtEdges(t *testing.T) {
	g := mustGrid(t, 3, 2)
	written := Stamp(g, 1, 1, []string{"#Ht", "###"})
	if written != 2 {
		t.Fatalf("expected 2 cells written inside the grid, got %d", written)
	}
	if s, _ := g.Get(1, 1); s != Conductor {
		t.Fatalf("(1,1) = %v, expected conductor", s)
	}
	if s, _ := g.Get(2, 1); s != ElectronHead {
		t.Fatalf("(2,1) = %v, expected head", s)
	}
	if got := Stamp(g, -5, -5, []string{"###"}); got != 0 {
		t.Fatalf("fully clipped stamp wrote %d cells", got)
	}
}

func TestWirePresetPropagates(t *testing.T) {
	g := mustGrid(t, 10, 3)
	Presets()[PresetWire].Apply(g, 0)

	row := 1
	if s, _ := g.Get(1, row); s != ElectronTail {
		t.Fatalf("wire should start with a tail at (1,%d), got %v", row, s)
	}
	for step := 0; step < 5; step++ {
		head := 2 + step
		if s, _ := g.Get(head, row); s != ElectronHead {
			t.Fatalf("step %d: expected head at (%d,%d), got %v", step, head, row, s)
		}
		if s, _ := g.Get(head-1, row); s != ElectronTail {
			t.Fatalf("step %d: expected tail at (%d,%d), got %v", step, head-1, row, s)
		}
		if c := g.Census(); c.Count(ElectronHead) != 1 || c.Count(ElectronTail) != 1 {
			t.Fatalf("step %d: expected a single electron, census %v", step, c)
		}
		g.Advance()
	}
}

func TestClockPresetEmits(t *testing.T) {
	g := mustGrid(t, 40, 7)
	Presets()[PresetClock].Apply(g, 0)

	ringCells := g.Census().Count(ElectronHead) + g.Census().Count(ElectronTail) + g.Census().Count(Conductor)
	for i := 0; i < 30; i++ {
		g.Advance()
	}
	c := g.Census()
	if got := c.Count(ElectronHead) + c.Count(ElectronTail) + c.Count(Conductor); got != ringCells {
		t.Fatalf("conductive cell count changed from %d to %d", ringCells, got)
	}

	// Output wire runs along row 3 east of the ring.
	emitted := 0
	for x := 7; x < 40; x++ {
		if s, _ := g.Get(x, 3); s == ElectronHead {
			emitted++
		}
	}
	if emitted < 3 {
		t.Fatalf("expected the clock to have emitted at least 3 electrons, saw %d", emitted)
	}
}

func TestRandomPresetDeterministic(t *testing.T) {
	a := mustGrid(t, 48, 32)
	b := mustGrid(t, 48, 32)
	Presets()[PresetRandom].Apply(a, 99)
	Presets()[PresetRandom].Apply(b, 99)
	if !a.Equal(b) {
		t.Fatal("same seed produced different random grids")
	}
	if a.Census().Count(Conductor) == 0 {
		t.Fatal("random preset placed no conductors")
	}

	c := mustGrid(t, 48, 32)
	Presets()[PresetRandom].Apply(c, 100)
	if a.Equal(c) {
		t.Fatal("different seeds produced identical random grids")
	}
}

func TestPresetApplyClearsFirst(t *testing.T) {
	g := mustGrid(t, 5, 5)
	g.Set(0, 0, Conductor)
	Presets()[PresetEmpty].Apply(g, 0)
	if got := g.Census().Count(Empty); got != 25 {
		t.Fatalf("empty preset left %d non-empty cells", 25-got)
	}
}

func TestPresetNamesSorted(t *testing.T) {
	names := PresetNames()
	if len(names) != len(Presets()) {
		t.Fatalf("got %d names for %d presets", len(names), len(Presets()))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

package wireworld

import "testing"

func heads(n int, filler State, total int) []State {
	ns := make([]State, 0, total)
	for i := 0; i < n; i++ {
		ns = append(ns, ElectronHead)
	}
	for len(ns) < total {
		ns = append(ns, filler)
	}
	return ns
}

func TestNextIgnoresNeighborsForNonConductors(t *testing.T) {
	expects := map[State]State{
		Empty:        Empty,
		ElectronHead: ElectronTail,
		ElectronTail: Conductor,
	}
	for cur, want := range expects {
		for n := 0; n <= 8; n++ {
			if got := Next(cur, heads(n, Conductor, 8)); got != want {
				t.Fatalf("Next(%v, %d heads) = %v, expected %v", cur, n, got, want)
			}
		}
		if got := Next(cur, nil); got != want {
			t.Fatalf("Next(%v, no neighbors) = %v, expected %v", cur, got, want)
		}
	}
}

func TestNextConductorHeadCounts(t *testing.T) {
	for n := 0; n <= 8; n++ {
		want := Conductor
		if n == 1 || n == 2 {
			want = ElectronHead
		}
		if got := Next(Conductor, heads(n, ElectronTail, 8)); got != want {
			t.Fatalf("conductor with %d head neighbors became %v, expected %v", n, got, want)
		}
	}
}

func TestNextConductorCountsOnlyHeads(t *testing.T) {
	ns := []State{ElectronTail, ElectronTail, Conductor, Empty, ElectronHead}
	if got := Next(Conductor, ns); got != ElectronHead {
		t.Fatalf("expected head, got %v", got)
	}
	// Order of the neighbors must not matter.
	ns = []State{ElectronHead, Empty, Conductor, ElectronTail, ElectronTail}
	if got := Next(Conductor, ns); got != ElectronHead {
		t.Fatalf("expected head for reordered neighbors, got %v", got)
	}
}

func TestStateValidAndString(t *testing.T) {
	names := map[State]string{
		Empty:        "empty",
		ElectronHead: "head",
		ElectronTail: "tail",
		Conductor:    "conductor",
	}
	for _, s := range States {
		if !s.Valid() {
			t.Fatalf("%v should be valid", s)
		}
		if s.String() != names[s] {
			t.Fatalf("state %d named %q, expected %q", s, s.String(), names[s])
		}
	}
	if State(numStates).Valid() {
		t.Fatal("state past the closed set should be invalid")
	}
}

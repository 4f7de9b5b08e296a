package model

import (
	"math/rand/v2"
	"testing"
)

func gen(pairs ...[2]int64) Generation {
	cells := make([]Cell, 0, len(pairs))
	for _, p := range pairs {
		cells = append(cells, C(p[0], p[1]))
	}
	return NewGeneration(cells...)
}

func advanceN(e *Engine, g Generation, n int) Generation {
	for range n {
		g = e.Advance(g)
	}
	return g
}

func randomGeneration(seed uint64, count int) Generation {
	r := rand.New(rand.NewPCG(seed, 0))
	cells := make([]Cell, 0, count)
	for range count {
		cells = append(cells, C(r.Int64N(160)-80, r.Int64N(100)-50))
	}
	return NewGeneration(cells...)
}

func TestAdvanceEmptyIsFixedPoint(t *testing.T) {
	if next := Advance(Generation{}); !next.IsEmpty() {
		t.Fatalf("advance of empty generation has %d cells", next.Len())
	}
	if next := Advance(NewGeneration()); !next.IsEmpty() {
		t.Fatalf("advance of empty generation has %d cells", next.Len())
	}
}

func TestAdvanceIsolatedCellDies(t *testing.T) {
	if next := Advance(gen([2]int64{5, 5})); !next.IsEmpty() {
		t.Fatalf("isolated cell survived: %v", next.Cells())
	}
}

func TestAdvanceStillLifes(t *testing.T) {
	cases := map[string]Generation{
		"block":   gen([2]int64{0, 0}, [2]int64{1, 0}, [2]int64{0, 1}, [2]int64{1, 1}),
		"beehive": gen([2]int64{1, 0}, [2]int64{2, 0}, [2]int64{0, 1}, [2]int64{3, 1}, [2]int64{1, 2}, [2]int64{2, 2}),
	}
	for name, still := range cases {
		once := Advance(still)
		if !once.Equal(still) {
			t.Fatalf("%s changed after one tick: %v", name, once.Cells())
		}
		if twice := Advance(once); !twice.Equal(once) {
			t.Fatalf("%s changed after two ticks: %v", name, twice.Cells())
		}
	}
}

func TestAdvanceBlinkerOscillates(t *testing.T) {
	horizontal := gen([2]int64{0, 0}, [2]int64{1, 0}, [2]int64{2, 0})
	vertical := gen([2]int64{1, -1}, [2]int64{1, 0}, [2]int64{1, 1})

	next := Advance(horizontal)
	if !next.Equal(vertical) {
		t.Fatalf("blinker tick 1 = %v, expected %v", next.Cells(), vertical.Cells())
	}
	if back := Advance(next); !back.Equal(horizontal) {
		t.Fatalf("blinker tick 2 = %v, expected %v", back.Cells(), horizontal.Cells())
	}
}

func TestAdvanceGliderTranslates(t *testing.T) {
	cases := []struct {
		name   string
		glider Generation
		dx, dy int64
	}{
		{
			name:   "north-east",
			glider: gen([2]int64{0, 0}, [2]int64{1, 0}, [2]int64{2, 0}, [2]int64{2, 1}, [2]int64{1, 2}),
			dx:     1,
			dy:     -1,
		},
		{
			name:   "south-east",
			glider: gen([2]int64{1, 0}, [2]int64{2, 1}, [2]int64{0, 2}, [2]int64{1, 2}, [2]int64{2, 2}),
			dx:     1,
			dy:     1,
		},
	}
	for _, tc := range cases {
		got := advanceN(NewEngine(), tc.glider, 4)
		want := tc.glider.Translate(tc.dx, tc.dy)
		if !got.Equal(want) {
			t.Fatalf("%s glider after 4 ticks = %v, expected %v", tc.name, got.Cells(), want.Cells())
		}
	}

	// Same glider with explicit coordinates.
	se := gen([2]int64{1, 0}, [2]int64{2, 1}, [2]int64{0, 2}, [2]int64{1, 2}, [2]int64{2, 2})
	want := gen([2]int64{2, 1}, [2]int64{3, 2}, [2]int64{1, 3}, [2]int64{2, 3}, [2]int64{3, 3})
	if got := advanceN(NewEngine(), se, 4); !got.Equal(want) {
		t.Fatalf("glider = %v, expected %v", got.Cells(), want.Cells())
	}
}

func TestAdvanceFarFromOrigin(t *testing.T) {
	const far = int64(1) << 40
	glider := gen([2]int64{0, 0}, [2]int64{1, 0}, [2]int64{2, 0}, [2]int64{2, 1}, [2]int64{1, 2})
	moved := glider.Translate(far, -far)

	got := advanceN(NewEngine(), moved, 4)
	want := advanceN(NewEngine(), glider, 4).Translate(far, -far)
	if !got.Equal(want) {
		t.Fatalf("far glider = %v, expected %v", got.Cells(), want.Cells())
	}
}

func TestAdvanceRPentominoPopulation(t *testing.T) {
	r := gen([2]int64{1, 0}, [2]int64{1, 1}, [2]int64{1, 2}, [2]int64{2, 0}, [2]int64{0, 1})
	want := map[int]int{1: 6, 2: 7, 3: 9, 10: 11, 50: 64, 100: 121}

	g := r
	for tick := 1; tick <= 100; tick++ {
		g = Advance(g)
		if n, ok := want[tick]; ok && g.Len() != n {
			t.Fatalf("population after %d ticks = %d, expected %d", tick, g.Len(), n)
		}
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	in := gen([2]int64{0, 0}, [2]int64{1, 0}, [2]int64{2, 0})
	before := in.Cells()
	_ = Advance(in)
	if !in.Equal(NewGeneration(before...)) || in.Len() != 3 {
		t.Fatalf("input modified: %v", in.Cells())
	}
}

func TestAdvanceOrderIndependent(t *testing.T) {
	base := randomGeneration(7, 800)
	cells := base.Cells()
	want := Advance(base)

	r := rand.New(rand.NewPCG(11, 0))
	for range 5 {
		r.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
		shuffled := NewGeneration(cells...)
		if got := Advance(shuffled); !got.Equal(want) {
			t.Fatal("shuffled input produced a different generation")
		}
	}
}

func TestAdvanceParallelMatchesSequential(t *testing.T) {
	pool := NewCellPool()
	parallel := NewEngine(WithWorkers(4), WithParallelThreshold(16), WithCellPool(pool))
	seq := NewEngine()

	a := randomGeneration(42, 6502)
	b := a
	for tick := range 30 {
		a = seq.Advance(a)
		b = parallel.Advance(b)
		if !a.Equal(b) {
			t.Fatalf("parallel diverged from sequential at tick %d", tick+1)
		}
	}
}

func TestAdvanceCandidatesExcludeIsolatedDeadCells(t *testing.T) {
	e := NewEngine()
	g := gen([2]int64{0, 0})
	buf := e.candidates(g)
	if len(*buf) != 9 {
		t.Fatalf("single cell candidate pool = %d cells, expected 9", len(*buf))
	}
	for _, c := range *buf {
		if c.X < -1 || c.X > 1 || c.Y < -1 || c.Y > 1 {
			t.Fatalf("candidate %v outside the neighborhood", c)
		}
	}
}

func TestWithWorkersDefaultsToNumCPU(t *testing.T) {
	if e := NewEngine(WithWorkers(0)); e.Workers() < 1 {
		t.Fatalf("workers = %d", e.Workers())
	}
}

func BenchmarkAdvance(b *testing.B) {
	seed := randomGeneration(1, 6502)
	engines := map[string]*Engine{
		"sequential": NewEngine(),
		"parallel":   NewEngine(WithWorkers(0), WithCellPool(NewCellPool())),
	}
	for name, e := range engines {
		b.Run(name, func(b *testing.B) {
			for range b.N {
				_ = e.Advance(seed)
			}
		})
	}
}

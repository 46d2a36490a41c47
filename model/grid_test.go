package model

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

type commit struct {
	x, y  int
	alive bool
}

// recordingRenderer keeps every notification it receives
type recordingRenderer struct {
	resets  int
	commits []commit
}

func (r *recordingRenderer) Reset(int, int) { r.resets++ }

func (r *recordingRenderer) CellCommitted(x, y int, alive bool) {
	r.commits = append(r.commits, commit{x, y, alive})
}

func mustGrid(t *testing.T, width, height int) *Grid {
	t.Helper()
	g, err := NewGrid(width, height, nil)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", width, height, err)
	}
	return g
}

func TestNewGridAllDead(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 3}, {7, 2}, {2, 9}} {
		g := mustGrid(t, dims[0], dims[1])
		for y := 0; y < dims[1]; y++ {
			for x := 0; x < dims[0]; x++ {
				alive, err := g.Get(x, y)
				if err != nil {
					t.Fatalf("Get(%d,%d) on %dx%d: %v", x, y, dims[0], dims[1], err)
				}
				if alive {
					t.Fatalf("cell (%d,%d) alive after init on %dx%d", x, y, dims[0], dims[1])
				}
			}
		}
	}
}

func TestInitRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-3, 4}, {4, -1}, {0, 0}} {
		if _, err := NewGrid(dims[0], dims[1], nil); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("NewGrid(%d, %d) err = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}

	g := mustGrid(t, 4, 4)
	if err := g.Set(1, 1, true); err != nil {
		t.Fatal(err)
	}
	if err := g.Init(0, 4); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("Init(0, 4) err = %v, want ErrInvalidDimension", err)
	}
	if g.GetWidth() != 4 || g.GetHeight() != 4 {
		t.Fatalf("failed Init changed shape to %dx%d", g.GetWidth(), g.GetHeight())
	}
	if alive, _ := g.Get(1, 1); !alive {
		t.Fatal("failed Init must leave cells untouched")
	}
}

func TestInitResetsShapeAndCells(t *testing.T) {
	r := &recordingRenderer{}
	g, err := NewGrid(3, 3, r)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Set(2, 2, true); err != nil {
		t.Fatal(err)
	}

	r.commits = nil
	if err := g.Init(5, 2); err != nil {
		t.Fatal(err)
	}
	if g.GetWidth() != 5 || g.GetHeight() != 2 {
		t.Fatalf("shape = %dx%d, want 5x2", g.GetWidth(), g.GetHeight())
	}
	if g.CountLivingCells() != 0 {
		t.Fatalf("living cells after Init = %d, want 0", g.CountLivingCells())
	}
	if r.resets != 2 {
		t.Fatalf("renderer resets = %d, want 2", r.resets)
	}
	if len(r.commits) != 10 {
		t.Fatalf("Init emitted %d notifications, want 10", len(r.commits))
	}
	for _, c := range r.commits {
		if c.alive {
			t.Fatalf("Init notified alive cell %+v", c)
		}
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	r := &recordingRenderer{}
	g, err := NewGrid(4, 3, r)
	if err != nil {
		t.Fatal(err)
	}
	r.commits = nil

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			for _, v := range []bool{true, false, true} {
				if err := g.Set(x, y, v); err != nil {
					t.Fatalf("Set(%d,%d,%v): %v", x, y, v, err)
				}
				got, err := g.Get(x, y)
				if err != nil {
					t.Fatalf("Get(%d,%d): %v", x, y, err)
				}
				if got != v {
					t.Fatalf("Get(%d,%d) = %v after Set %v", x, y, got, v)
				}
				last := r.commits[len(r.commits)-1]
				if last != (commit{x, y, v}) {
					t.Fatalf("last notification = %+v, want %+v", last, commit{x, y, v})
				}
			}
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	g := mustGrid(t, 3, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {3, 2}, {100, 100}} {
		if _, err := g.Get(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Get(%d,%d) err = %v, want ErrOutOfBounds", p[0], p[1], err)
		}
		if err := g.Set(p[0], p[1], true); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d,%d) err = %v, want ErrOutOfBounds", p[0], p[1], err)
		}
	}
	if g.CountLivingCells() != 0 {
		t.Fatal("out of bounds Set must not write")
	}
}

func TestRandomizeExtremes(t *testing.T) {
	g := mustGrid(t, 8, 6)
	g.SetSeed(7)

	if err := g.Randomize(1); err != nil {
		t.Fatal(err)
	}
	if got := g.CountLivingCells(); got != 48 {
		t.Fatalf("Randomize(1) living = %d, want 48", got)
	}

	if err := g.Randomize(0); err != nil {
		t.Fatal(err)
	}
	if got := g.CountLivingCells(); got != 0 {
		t.Fatalf("Randomize(0) living = %d, want 0", got)
	}
}

func TestRandomizeRejectsBadProbability(t *testing.T) {
	g := mustGrid(t, 2, 2)
	for _, p := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		if err := g.Randomize(p); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("Randomize(%v) err = %v, want ErrInvalidArgument", p, err)
		}
	}
}

func TestRandomizeNotifiesEveryCell(t *testing.T) {
	r := &recordingRenderer{}
	g, err := NewGrid(5, 4, r)
	if err != nil {
		t.Fatal(err)
	}
	r.commits = nil

	if err := g.Randomize(0.5); err != nil {
		t.Fatal(err)
	}
	if len(r.commits) != 20 {
		t.Fatalf("Randomize emitted %d notifications, want 20", len(r.commits))
	}
	for _, c := range r.commits {
		if alive, _ := g.Get(c.x, c.y); alive != c.alive {
			t.Fatalf("notification %+v disagrees with grid", c)
		}
	}
}

func TestRandomizeSeeded(t *testing.T) {
	a := mustGrid(t, 16, 16)
	b := mustGrid(t, 16, 16)
	a.SetSeed(42)
	b.SetSeed(42)
	if err := a.Randomize(0.25); err != nil {
		t.Fatal(err)
	}
	if err := b.Randomize(0.25); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			va, _ := a.Get(x, y)
			vb, _ := b.Get(x, y)
			if va != vb {
				t.Fatalf("seeded grids differ at (%d,%d)", x, y)
			}
		}
	}
}

func TestCountNeighborsClosedBoundary(t *testing.T) {
	g := mustGrid(t, 3, 3)
	if err := g.Randomize(1); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 3},
		{2, 0, 3},
		{0, 2, 3},
		{2, 2, 3},
		{1, 0, 5},
		{0, 1, 5},
		{1, 1, 8},
	}
	for _, tt := range tests {
		if got := g.CountNeighbors(tt.x, tt.y); got != tt.want {
			t.Fatalf("CountNeighbors(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

package model

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimension is returned when a width or height is not positive
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidArgument is returned for arguments outside their domain
	ErrInvalidArgument = errors.New("invalid argument")
)

// Grid represents the game board
type Grid struct {
	width      int
	height     int
	cells      [][]bool // cells[y][x]
	generation int

	renderer Renderer
	rng      *rand.Rand
}

// NewGrid creates a new all-dead grid with the specified dimensions. A nil
// renderer is replaced with NopRenderer.
func NewGrid(width, height int, renderer Renderer) (*Grid, error) {
	if renderer == nil {
		renderer = NopRenderer{}
	}
	g := &Grid{renderer: renderer}
	if err := g.Init(width, height); err != nil {
		return nil, err
	}
	return g, nil
}

// Init discards the current cells and allocates an all-dead grid of the
// given shape
func (g *Grid) Init(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidDimension, "[Grid.Init] %dx%d", width, height)
	}

	g.width = width
	g.height = height
	g.generation = 0
	g.cells = newCells(width, height)

	g.renderer.Reset(width, height)
	for y := range height {
		for x := range width {
			g.renderer.CellCommitted(x, y, false)
		}
	}
	return nil
}

func newCells(width, height int) [][]bool {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return cells
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Generation returns the number of steps committed since the last Init
func (g *Grid) Generation() int {
	return g.generation
}

// SetRenderer replaces the renderer notified of cell commits
func (g *Grid) SetRenderer(r Renderer) {
	if r == nil {
		r = NopRenderer{}
	}
	g.renderer = r
}

// SetSeed makes Randomize and SeedNoise deterministic
func (g *Grid) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewPCG(uint64(seed), 0))
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.inBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfBounds, "[Grid.Get] (%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	return g.cells[y][x], nil
}

// Set sets a cell to alive (true) or dead (false) and notifies the renderer
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[Grid.Set] (%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	g.put(x, y, alive)
	return nil
}

func (g *Grid) put(x, y int, alive bool) {
	g.cells[y][x] = alive
	g.renderer.CellCommitted(x, y, alive)
}

// Clear kills every cell
func (g *Grid) Clear() {
	for y := range g.height {
		for x := range g.width {
			g.put(x, y, false)
		}
	}
}

// Randomize sets every cell alive independently with the given probability
func (g *Grid) Randomize(probability float64) error {
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return errors.Wrapf(ErrInvalidArgument, "[Grid.Randomize] probability %v not in [0,1]", probability)
	}

	roll := rand.Float64
	if g.rng != nil {
		roll = g.rng.Float64
	}
	for y := range g.height {
		for x := range g.width {
			g.put(x, y, roll() < probability)
		}
	}
	return nil
}

// CountNeighbors counts living cells in the Moore neighborhood of (x, y).
// Positions outside the grid count as dead.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

package model

import "github.com/sheikhrachel/go-gol/rules"

// StepResult describes one committed generation
type StepResult struct {
	Changed    int // cells whose value differs from the previous generation
	Population int
	Generation int
}

// Steady reports whether the step left the grid unchanged
func (r StepResult) Steady() bool {
	return r.Changed == 0
}

// StepEngine computes generations into a scratch buffer and swaps it into the
// grid on commit. The scratch buffer is reused across steps and only
// reallocated when the grid shape changes.
type StepEngine struct {
	scratch [][]bool
}

// NewStepEngine returns an engine with no scratch buffer allocated yet
func NewStepEngine() *StepEngine {
	return &StepEngine{}
}

func (e *StepEngine) ensureScratch(width, height int) {
	if len(e.scratch) == height && (height == 0 || len(e.scratch[0]) == width) {
		return
	}
	e.scratch = newCells(width, height)
}

// Step advances g by one generation. Every cell is evaluated against the
// pre-step generation, then the renderer is notified of every new value.
func (e *StepEngine) Step(g *Grid) StepResult {
	e.ensureScratch(g.width, g.height)

	var (
		next       = e.scratch
		changed    = 0
		population = 0
	)
	for y := range g.height {
		for x := range g.width {
			alive := rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[y][x])
			next[y][x] = alive
			if alive != g.cells[y][x] {
				changed++
			}
			if alive {
				population++
			}
		}
	}

	g.cells, e.scratch = next, g.cells
	g.generation++

	for y := range g.height {
		for x := range g.width {
			g.renderer.CellCommitted(x, y, g.cells[y][x])
		}
	}

	return StepResult{
		Changed:    changed,
		Population: population,
		Generation: g.generation,
	}
}

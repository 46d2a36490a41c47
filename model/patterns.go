package model

import "github.com/sheikhrachel/go-gol/utils"

// stamp writes alive cells of a pattern with its top-left corner at
// (startX, startY). Cells falling outside the grid are dropped.
func (g *Grid) stamp(startX, startY int, pattern [][]bool) {
	for y, row := range pattern {
		for x, cell := range row {
			if g.inBounds(startX+x, startY+y) {
				g.put(startX+x, startY+y, cell)
			}
		}
	}
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	g.stamp(startX, startY, [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	})
}

// AddOscillator adds a horizontal blinker at the specified position
func (g *Grid) AddOscillator(startX, startY int) {
	g.stamp(startX, startY, [][]bool{{true, true, true}})
}

// ResetWithInterestingPatterns randomizes the grid with the configured density
// and then places gliders and blinkers on top when the grid is large enough
func (g *Grid) ResetWithInterestingPatterns(config utils.Config) error {
	if err := g.Randomize(config.RandomDensity); err != nil {
		return err
	}

	if g.width >= 10 && g.height >= 10 {
		g.AddGlider(5, 5)
		if g.width >= 20 && g.height >= 15 {
			g.AddGlider(g.width-8, 5)
		}

		g.AddOscillator(g.width/4, g.height/4)
		if g.width >= 30 {
			g.AddOscillator(3*g.width/4, 3*g.height/4)
		}
	}
	return nil
}

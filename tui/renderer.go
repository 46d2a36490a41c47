package tui

import "github.com/gdamore/tcell/v2"

const (
	// headerRows is the number of screen rows above the grid
	headerRows = 1
	// cellCols is the number of screen columns per cell
	cellCols = 2
)

var (
	aliveStyle = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	deadStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
)

// ScreenRenderer draws committed cells onto a tcell screen. Nothing appears
// until the screen is shown.
type ScreenRenderer struct {
	screen        tcell.Screen
	width, height int
}

// NewScreenRenderer returns a renderer drawing onto screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// Reset clears the grid area
func (r *ScreenRenderer) Reset(width, height int) {
	r.width = width
	r.height = height
	r.screen.Clear()
}

// CellCommitted paints one cell
func (r *ScreenRenderer) CellCommitted(x, y int, alive bool) {
	style := deadStyle
	if alive {
		style = aliveStyle
	}
	for c := 0; c < cellCols; c++ {
		r.screen.SetContent(x*cellCols+c, y+headerRows, ' ', nil, style)
	}
}

// cellAt converts screen coordinates to grid coordinates
func (r *ScreenRenderer) cellAt(col, row int) (x, y int, ok bool) {
	x, y = col/cellCols, row-headerRows
	if col < 0 || y < 0 || x >= r.width || y >= r.height {
		return 0, 0, false
	}
	return x, y, true
}

package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// Renderer receives every committed cell value. Implementations draw only and
// must not call back into the grid.
type Renderer interface {
	// Reset is called when the grid is (re)allocated
	Reset(width, height int)
	// CellCommitted is called for every cell written by Set, Randomize or a step
	CellCommitted(x, y int, alive bool)
}

// NopRenderer discards all notifications
type NopRenderer struct{}

func (NopRenderer) Reset(int, int) {}
func (NopRenderer) CellCommitted(int, int, bool) {}

// TerminalRenderer implements basic terminal rendering. It mirrors committed
// cells into a frame that Display writes out.
type TerminalRenderer struct {
	out    io.Writer
	width  int
	height int
	frame  [][]bool
}

// NewTerminalRenderer returns a renderer writing to out, or stdout when nil
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{out: out}
}

// Reset reallocates the frame
func (r *TerminalRenderer) Reset(width, height int) {
	r.width = width
	r.height = height
	r.frame = newCells(width, height)
}

// CellCommitted records a cell in the frame
func (r *TerminalRenderer) CellCommitted(x, y int, alive bool) {
	if y < 0 || y >= r.height || x < 0 || x >= r.width {
		return
	}
	r.frame[y][x] = alive
}

// Display renders the frame to the terminal
func (r *TerminalRenderer) Display() {
	w := bufio.NewWriter(r.out)
	for y := range r.height {
		for x := range r.width {
			if r.frame[y][x] {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		fmt.Println("Error writing frame:", err)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	var cmd *exec.Cmd
	cmd = exec.Command(macosClearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}

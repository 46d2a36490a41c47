package driver

// Brush implements press-and-drag cell editing: pressing a cell toggles it,
// and dragging paints the value the press produced onto every cell the
// pointer crosses until release. Editing is ignored while the driver runs.
type Brush struct {
	d       *Driver
	drawing bool
	value   bool
}

// NewBrush returns a brush editing d's grid
func NewBrush(d *Driver) *Brush {
	return &Brush{d: d}
}

// Press starts a stroke at (x, y), or continues one if already drawing
func (b *Brush) Press(x, y int) {
	if b.drawing {
		b.Drag(x, y)
		return
	}
	if b.d.State() == Running {
		return
	}
	value, err := b.d.Toggle(x, y)
	if err != nil {
		return
	}
	b.drawing = true
	b.value = value
}

// Drag paints (x, y) with the stroke value. Off-grid positions are skipped.
func (b *Brush) Drag(x, y int) {
	if !b.drawing {
		return
	}
	_ = b.d.Set(x, y, b.value)
}

// Release ends the stroke
func (b *Brush) Release() {
	b.drawing = false
}

// Drawing reports whether a stroke is in progress
func (b *Brush) Drawing() bool {
	return b.drawing
}

package gui

import "image/color"

// PixelBuffer mirrors committed cells into an RGBA buffer with one pixel per
// cell, ready to upload to a texture.
type PixelBuffer struct {
	w, h  int
	buf   []byte
	on    [4]byte
	off   [4]byte
	dirty bool
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// NewPixelBuffer returns an empty buffer painting live cells with on and
// dead cells with off
func NewPixelBuffer(on, off color.Color) *PixelBuffer {
	return &PixelBuffer{on: rgba(on), off: rgba(off)}
}

// Reset reallocates the buffer for a new grid shape
func (p *PixelBuffer) Reset(width, height int) {
	p.w, p.h = width, height
	p.buf = make([]byte, 4*width*height)
	p.dirty = true
}

// CellCommitted writes one pixel
func (p *PixelBuffer) CellCommitted(x, y int, alive bool) {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return
	}
	px := p.off
	if alive {
		px = p.on
	}
	copy(p.buf[4*(y*p.w+x):], px[:])
	p.dirty = true
}

// Size returns the buffer dimensions in pixels
func (p *PixelBuffer) Size() (int, int) { return p.w, p.h }

// Pix returns the RGBA bytes and clears the dirty flag
func (p *PixelBuffer) Pix() []byte {
	p.dirty = false
	return p.buf
}

// Dirty reports whether any pixel changed since the last Pix call
func (p *PixelBuffer) Dirty() bool { return p.dirty }

package render

import "github.com/gdamore/tcell/v2"

// Canvas is the cell sink a frame is flushed to; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Cell is one composed terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// RenderBuffer composes a frame off-screen before it is flushed
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only when capacity is insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets every cell to a blank background using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: style(RgbStatusBar, RgbBackground)}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell; out-of-bounds writes are dropped
func (b *RenderBuffer) Set(x, y int, r rune, st tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: st}
}

// SetBg recolors the background of a cell, keeping its rune and foreground
func (b *RenderBuffer) SetBg(x, y int, bg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Style = c.Style.Background(bg)
}

// Text writes s left to right from (x, y), clipped at the buffer edge
func (b *RenderBuffer) Text(x, y int, s string, st tcell.Style) int {
	for _, r := range s {
		b.Set(x, y, r, st)
		x++
	}
	return x
}

// Get returns the cell at (x, y), or a zero Cell out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// Flush copies the composed frame to the canvas
func (b *RenderBuffer) Flush(c Canvas) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, cell := range row {
			c.SetContent(x, y, cell.Rune, nil, cell.Style)
		}
	}
}

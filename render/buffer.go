package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one compositor cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool

	touched bool // Written since the last clear
	cont    bool // Right half of a wide rune
}

// Buffer is a cell compositor flushed to a tcell screen once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
	bg     RGB
}

// NewBuffer creates a buffer cleared to bg
func NewBuffer(width, height int, bg RGB) *Buffer {
	b := &Buffer{bg: bg}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
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

// Clear resets all cells to the background
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Fg: RgbText, Bg: b.bg}
	}
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// At returns the cell at x, y
func (b *Buffer) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set writes an opaque cell
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg, touched: true}
}

// SetFg writes rune and foreground while preserving the background
func (b *Buffer) SetFg(x, y int, r rune, fg RGB, bold bool) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Bold = bold
	dst.cont = false
	dst.touched = true
}

// SetBg updates the background while preserving rune and foreground
func (b *Buffer) SetBg(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Bg = bg
	dst.touched = true
}

// Dim blends a cell toward c by alpha, used for fades and modal backdrops
func (b *Buffer) Dim(x, y int, c RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Fg = Blend(dst.Fg, c, alpha)
	dst.Bg = Blend(dst.Bg, c, alpha)
}

// Fill paints a rectangle background
func (b *Buffer) Fill(r Box, bg RGB) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			b.Set(x, y, ' ', bg, bg)
		}
	}
}

// Text writes s from x, keeping backgrounds, returns columns used
// Wide runes occupy two cells
func (b *Buffer) Text(x, y int, s string, fg RGB, bold bool) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetFg(col, y, r, fg, bold)
		if w == 2 && b.inBounds(col+1, y) {
			b.cells[y*b.width+col+1].cont = true
			b.cells[y*b.width+col+1].touched = true
		}
		col += w
	}
	return col - x
}

// TextCentered writes s centred in box row y, truncated to the box width
func (b *Buffer) TextCentered(r Box, y int, s string, fg RGB, bold bool) {
	s = runewidth.Truncate(s, r.W, "…")
	w := runewidth.StringWidth(s)
	b.Text(r.X+(r.W-w)/2, y, s, fg, bold)
}

// Frame draws a single-line rounded border around r
func (b *Buffer) Frame(r Box, fg RGB) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < x1; x++ {
		b.SetFg(x, r.Y, '─', fg, false)
		b.SetFg(x, y1, '─', fg, false)
	}
	for y := r.Y + 1; y < y1; y++ {
		b.SetFg(r.X, y, '│', fg, false)
		b.SetFg(x1, y, '│', fg, false)
	}
	b.SetFg(r.X, r.Y, '╭', fg, false)
	b.SetFg(x1, r.Y, '╮', fg, false)
	b.SetFg(r.X, y1, '╰', fg, false)
	b.SetFg(x1, y1, '╯', fg, false)
}

// Composite copies the touched cells of src onto b
// Row y of src lands at (x+shift(y), y0+y); alpha fades src toward what is underneath
func (b *Buffer) Composite(src *Buffer, x, y0 int, shift func(row int) int, alpha float64) {
	if alpha <= 0 {
		return
	}
	for sy := 0; sy < src.height; sy++ {
		dy := y0 + sy
		off := 0
		if shift != nil {
			off = shift(sy)
		}
		for sx := 0; sx < src.width; sx++ {
			c := src.cells[sy*src.width+sx]
			dx := x + off + sx
			if !c.touched || !b.inBounds(dx, dy) {
				continue
			}
			dst := &b.cells[dy*b.width+dx]
			under := dst.Bg
			dst.Rune = c.Rune
			dst.cont = c.cont
			dst.Bold = c.Bold
			dst.Fg = Blend(under, c.Fg, alpha)
			dst.Bg = Blend(under, c.Bg, alpha)
			dst.touched = true
		}
	}
}

// Flush writes every cell to screen
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.cont {
				continue
			}
			style := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(c.Bg.Tcell()).Bold(c.Bold)
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

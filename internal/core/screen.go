package core

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Cell is a single character of the screen buffer.
type Cell struct {
	Rune   rune
	Color  Color
	Styled bool // Color is meaningful
}

// Screen is a 2D character buffer for rendering game graphics.
// It implements Canvas by mapping pixel coordinates onto cells, each cell
// covering CellW x CellH pixels.
type Screen struct {
	width  int
	height int
	cellW  float64
	cellH  float64
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
// One pixel maps to one cell until SetScale is called.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		cellW:  1,
		cellH:  1,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// SetScale sets how many canvas pixels a cell covers.
func (s *Screen) SetScale(cellW, cellH float64) {
	if cellW <= 0 || cellH <= 0 {
		return
	}
	s.cellW = cellW
	s.cellH = cellH
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill fills the entire screen with the given rune.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r}
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r}
}

// SetColored places a coloured rune at the given position.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c, Styled: true}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x].Rune
}

// CellAt returns the full cell at the given position.
func (s *Screen) CellAt(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - utf8.RuneCountInString(text)) / 2
	s.DrawText(x, y, text)
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Size returns the canvas size in pixels.
func (s *Screen) Size() (w, h float64) {
	return float64(s.width) * s.cellW, float64(s.height) * s.cellH
}

// cellOf maps a pixel coordinate to a cell coordinate.
func (s *Screen) cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

// FillRect paints every cell the rectangle touches.
func (s *Screen) FillRect(r Rect, c Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0, y0 := s.cellOf(r.X, r.Y)
	x1 := int(math.Ceil(r.Right()/s.cellW)) - 1
	y1 := int(math.Ceil(r.Bottom()/s.cellH)) - 1
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.SetColored(x, y, '█', c)
		}
	}
}

// FillCircle paints the cells whose centres fall inside the circle.
// Circles smaller than a cell occupy the cell under their centre.
func (s *Screen) FillCircle(center Vec, radius float64, c Color) {
	s.circle(center, radius, c, '●', false)
}

// StrokeCircle paints the outline of the circle.
func (s *Screen) StrokeCircle(center Vec, radius float64, c Color) {
	s.circle(center, radius, c, '○', true)
}

func (s *Screen) circle(center Vec, radius float64, c Color, small rune, outline bool) {
	cx, cy := s.cellOf(center.X, center.Y)
	rx := radius / s.cellW
	ry := radius / s.cellH
	if rx < 1 && ry < 1 {
		s.SetColored(cx, cy, small, c)
		return
	}

	fill := '█'
	if outline {
		fill = '·'
	}
	for y := int(math.Floor((center.Y - radius) / s.cellH)); y <= int(math.Floor((center.Y+radius)/s.cellH)); y++ {
		for x := int(math.Floor((center.X - radius) / s.cellW)); x <= int(math.Floor((center.X+radius)/s.cellW)); x++ {
			px := (float64(x)+0.5)*s.cellW - center.X
			py := (float64(y)+0.5)*s.cellH - center.Y
			d := math.Hypot(px/radius, py/radius)
			if d > 1 || (outline && d < 0.7) {
				continue
			}
			s.SetColored(x, y, fill, c)
		}
	}
}

// Text writes text anchored at pixel (x, y).
func (s *Screen) Text(x, y float64, text string, c Color, align Align) {
	col, row := s.cellOf(x, y)
	n := utf8.RuneCountInString(text)
	switch align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}
	i := 0
	for _, r := range text {
		s.SetColored(col+i, row, r, c)
		i++
	}
}

var _ Canvas = (*Screen)(nil)

package core

// Align controls horizontal text placement relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas is an immediate-mode 2D drawing surface in pixel coordinates.
// Hosts own its size; games only paint onto it.
type Canvas interface {
	Size() (w, h float64)
	Clear()
	FillRect(r Rect, c Color)
	FillCircle(center Vec, radius float64, c Color)
	StrokeCircle(center Vec, radius float64, c Color)
	Text(x, y float64, text string, c Color, align Align)
}

package gui

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

// Debug font glyph size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// maxLabels bounds the text image cache. The HUD changes every second,
// so old labels are dropped wholesale once the cache fills up.
const maxLabels = 128

// imageCanvas paints the game onto an ebiten image.
type imageCanvas struct {
	dst    *ebiten.Image
	labels map[string]*ebiten.Image
}

func newImageCanvas() *imageCanvas {
	return &imageCanvas{labels: make(map[string]*ebiten.Image)}
}

func (c *imageCanvas) Size() (w, h float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *imageCanvas) Clear() {
	c.dst.Fill(color.Black)
}

func (c *imageCanvas) FillRect(r core.Rect, clr core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func (c *imageCanvas) FillCircle(center core.Vec, radius float64, clr core.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

func (c *imageCanvas) StrokeCircle(center core.Vec, radius float64, clr core.Color) {
	vector.StrokeCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), 2, clr, true)
}

// Text draws a line whose top edge sits at y. The debug font is white, so
// the label image is tinted with the requested colour.
func (c *imageCanvas) Text(x, y float64, text string, clr core.Color, align core.Align) {
	if text == "" {
		return
	}
	img := c.label(text)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(alignX(x, text, align), y)
	op.ColorScale.ScaleWithColor(clr)
	c.dst.DrawImage(img, op)
}

// label returns the cached white rendering of text.
func (c *imageCanvas) label(text string) *ebiten.Image {
	if img, ok := c.labels[text]; ok {
		return img
	}
	if len(c.labels) >= maxLabels {
		for k, img := range c.labels {
			img.Deallocate()
			delete(c.labels, k)
		}
	}
	img := ebiten.NewImage(textWidth(text), glyphH)
	ebitenutil.DebugPrint(img, text)
	c.labels[text] = img
	return img
}

func textWidth(text string) int {
	return max(1, utf8.RuneCountInString(text)*glyphW)
}

// alignX returns the left edge of text anchored at x.
func alignX(x float64, text string, align core.Align) float64 {
	w := float64(textWidth(text))
	switch align {
	case core.AlignCenter:
		return x - w/2
	case core.AlignRight:
		return x - w
	}
	return x
}

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// TextContent is a single line of text wrapped by a magnetic element.
type TextContent struct {
	Text  string
	Face  font.Face
	Color color.Color

	width, height, ascent float64
}

// NewTextContent measures s once; the element box is derived from that size.
func NewTextContent(s string, face font.Face, c color.Color) *TextContent {
	t := &TextContent{Text: s, Face: face, Color: c}
	if face != nil {
		m := face.Metrics()
		t.width = float64(font.MeasureString(face, s).Ceil())
		t.height = float64(m.Height.Ceil())
		t.ascent = float64(m.Ascent.Ceil())
	}
	return t
}

func (t *TextContent) Size() (float64, float64) {
	return t.width, t.height
}

// Draw renders the text with its top-left corner at (x, y).
func (t *TextContent) Draw(screen *ebiten.Image, x, y float64) {
	if t.Face == nil || t.Text == "" {
		return
	}
	text.Draw(screen, t.Text, t.Face, int(x), int(y+t.ascent), t.Color) //nolint:staticcheck // TODO: migrate to text/v2
}

func (t *TextContent) String() string {
	return t.Text
}

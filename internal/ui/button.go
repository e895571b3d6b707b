// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Face       text.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face text.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.RGBA{20, 20, 30, 255},
		BgColor:    color.RGBA{200, 200, 200, 255},
		HoverColor: color.RGBA{150, 150, 150, 255},
		Face:       face,
	}
}

// Contains reports whether the screen point lies on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, mouseX, mouseY int) {
	bgColor := b.BgColor
	if b.Contains(mouseX, mouseY) {
		bgColor = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{90, 90, 90, 255}, false)

	if b.Face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x+w/2), float64(y+h/2))
	op.ColorScale.ScaleWithColor(b.TextColor)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, b.Text, b.Face, op)
}

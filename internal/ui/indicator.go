// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"go-hex-tactics/internal/state/player"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModeIndicator shows the player mode as a coloured dot and the turn
// counter next to it. The dot pulses briefly after every mode change.
type ModeIndicator struct {
	X, Y           float32
	Radius         float32
	Colors         []color.RGBA
	Stroke         color.RGBA
	Face           text.Face
	LastChangeTime time.Time
}

func NewModeIndicator(x, y, radius float32, colors []color.RGBA, stroke color.RGBA, face text.Face) *ModeIndicator {
	return &ModeIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
		Colors: colors,
		Stroke: stroke,
		Face:   face,
	}
}

// ModeChanged starts the pulse animation.
func (i *ModeIndicator) ModeChanged() {
	i.LastChangeTime = time.Now()
}

// ColorFor returns the dot colour of mode.
func (i *ModeIndicator) ColorFor(mode player.Mode) color.RGBA {
	if int(mode) < 0 || int(mode) >= len(i.Colors) {
		return i.Stroke
	}
	return i.Colors[mode]
}

// Draw отрисовывает индикатор
func (i *ModeIndicator) Draw(screen *ebiten.Image, mode player.Mode, turn int) {
	elapsed := time.Since(i.LastChangeTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, i.ColorFor(mode), true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, i.Stroke, true)

	if i.Face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(i.X-i.Radius*2), float64(i.Y))
	op.ColorScale.ScaleWithColor(i.Stroke)
	op.PrimaryAlign = text.AlignEnd
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, fmt.Sprintf("%s  Turn %d", mode, turn), i.Face, op)
}

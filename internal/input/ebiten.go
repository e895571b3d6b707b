// Package input polls ebiten for pointer and keyboard input and forwards
// it to the game as raw events.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Target receives raw input.
type Target interface {
	MoveCursor(screenX, screenY float64)
	PressLeft()
	PressTurnButton()
}

// HitTester reports whether a screen point belongs to a UI widget that
// swallows clicks.
type HitTester interface {
	Contains(x, y int) bool
}

// EbitenPointer forwards cursor moves, left clicks and the end-turn key.
type EbitenPointer struct {
	target     Target
	turnButton HitTester
	lastX      int
	lastY      int
	seen       bool
}

// NewEbitenPointer wires the pointer; turnButton may be nil.
func NewEbitenPointer(target Target, turnButton HitTester) *EbitenPointer {
	return &EbitenPointer{target: target, turnButton: turnButton}
}

// Poll reads the input state of the current frame.
func (p *EbitenPointer) Poll() {
	x, y := ebiten.CursorPosition()
	if !p.seen || x != p.lastX || y != p.lastY {
		p.target.MoveCursor(float64(x), float64(y))
		p.lastX, p.lastY, p.seen = x, y, true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if p.turnButton != nil && p.turnButton.Contains(x, y) {
			p.target.PressTurnButton()
		} else {
			p.target.PressLeft()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		p.target.PressTurnButton()
	}
}

// Cursor returns the last polled cursor position.
func (p *EbitenPointer) Cursor() (int, int) {
	return p.lastX, p.lastY
}

// Package resource holds the shared state objects systems read and write.
// Each resource has a single writer per tick.
package resource

import "go-hex-tactics/pkg/hexmap"

// CursorPos is the last known pointer position in world space.
// Written by the cursor system only.
type CursorPos struct {
	hexmap.Vec2
}

// NewCursorPos starts the cursor far away from the board; it is corrected
// on the first pointer move.
func NewCursorPos() *CursorPos {
	return &CursorPos{Vec2: hexmap.Vec2{X: -1000, Y: -1000}}
}

// TurnQueue хранит номер текущего хода. Written by the turn system only.
type TurnQueue struct {
	TurnNumber int
}

func NewTurnQueue() *TurnQueue {
	return &TurnQueue{TurnNumber: 1}
}

// Clock tracks frame time.
type Clock struct {
	Delta   float64
	Elapsed float64
}

// Advance records a new frame of length dt seconds.
func (c *Clock) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	c.Delta = dt
	c.Elapsed += dt
}

// Camera maps between screen pixels (y down, origin top-left) and world
// space (y up). The camera position is the world point shown at the screen
// centre.
type Camera struct {
	X, Y         float64
	Zoom         float64
	ScreenWidth  int
	ScreenHeight int
}

func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{Zoom: 1, ScreenWidth: screenWidth, ScreenHeight: screenHeight}
}

func (c *Camera) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

// ScreenToWorld unprojects a screen position.
func (c *Camera) ScreenToWorld(sx, sy float64) hexmap.Vec2 {
	z := c.zoom()
	return hexmap.Vec2{
		X: (sx-float64(c.ScreenWidth)/2)/z + c.X,
		Y: (float64(c.ScreenHeight)/2-sy)/z + c.Y,
	}
}

// WorldToScreen projects a world position onto the screen.
func (c *Camera) WorldToScreen(p hexmap.Vec2) (sx, sy float64) {
	z := c.zoom()
	sx = (p.X-c.X)*z + float64(c.ScreenWidth)/2
	sy = float64(c.ScreenHeight)/2 - (p.Y-c.Y)*z
	return sx, sy
}

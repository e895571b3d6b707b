package resource

import (
	"math"
	"testing"

	"go-hex-tactics/pkg/hexmap"
)

func TestCamera_RoundTrip(t *testing.T) {
	cams := []*Camera{
		NewCamera(1200, 900),
		{X: 40, Y: -25, Zoom: 2, ScreenWidth: 800, ScreenHeight: 600},
		{X: -3, Y: 7, Zoom: 0, ScreenWidth: 640, ScreenHeight: 480},
	}
	for _, cam := range cams {
		p := hexmap.Vec2{X: 123.5, Y: -47.25}
		sx, sy := cam.WorldToScreen(p)
		back := cam.ScreenToWorld(sx, sy)
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Errorf("camera %+v: %+v -> (%v,%v) -> %+v", cam, p, sx, sy, back)
		}
	}
}

func TestCamera_YAxisFlipped(t *testing.T) {
	cam := NewCamera(800, 600)
	center := cam.ScreenToWorld(400, 300)
	if center.X != 0 || center.Y != 0 {
		t.Fatalf("screen centre should map to camera position, got %+v", center)
	}
	above := cam.ScreenToWorld(400, 200)
	if above.Y <= 0 {
		t.Errorf("moving up on screen should increase world y, got %+v", above)
	}
}

func TestDefaults(t *testing.T) {
	if NewTurnQueue().TurnNumber != 1 {
		t.Error("turn counter should start at 1")
	}
	c := NewCursorPos()
	if c.X != -1000 || c.Y != -1000 {
		t.Errorf("cursor should start far away, got %+v", c.Vec2)
	}
	var clock Clock
	clock.Advance(0.5)
	clock.Advance(-1)
	if clock.Delta != 0 || clock.Elapsed != 0.5 {
		t.Errorf("clock: got %+v", clock)
	}
}

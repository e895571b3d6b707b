// internal/system/cursor.go
package system

import (
	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/resource"
)

// CursorSystem turns raw pointer input into world-space cursor updates and
// click events. It is the only writer of CursorPos.
type CursorSystem struct {
	cursor  *resource.CursorPos
	camera  *resource.Camera
	queues  *Queues
	moves   *event.Reader[event.CursorMoved]
	presses *event.Reader[event.MousePressed]
}

func NewCursorSystem(cursor *resource.CursorPos, camera *resource.Camera, queues *Queues) *CursorSystem {
	return &CursorSystem{
		cursor:  cursor,
		camera:  camera,
		queues:  queues,
		moves:   queues.CursorMoved.NewReader(),
		presses: queues.MousePressed.NewReader(),
	}
}

func (s *CursorSystem) Update(deltaTime float64) {
	for _, mv := range s.moves.Read() {
		s.cursor.Vec2 = s.camera.ScreenToWorld(mv.ScreenX, mv.ScreenY)
	}
	for range s.presses.Read() {
		s.queues.MouseClicked.Send(event.MouseClicked{Pos: s.cursor.Vec2})
	}
}

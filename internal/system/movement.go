// internal/system/movement.go
package system

import (
	"log"

	"go-hex-tactics/internal/component"
	"go-hex-tactics/internal/entity"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/types"
	"go-hex-tactics/internal/utils"
	"go-hex-tactics/pkg/hexmap"
)

// MovementSystem плавно ведёт юнит к следующей точке маршрута и
// продвигает маршрут по прибытии.
type MovementSystem struct {
	ecs        *entity.ECS
	layout     hexmap.Layout
	dispatcher *event.Dispatcher
	blendRate  float64
}

func NewMovementSystem(ecs *entity.ECS, layout hexmap.Layout, dispatcher *event.Dispatcher, blendRate float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, layout: layout, dispatcher: dispatcher, blendRate: blendRate}
}

func (s *MovementSystem) Update(deltaTime float64) {
	factor := utils.BlendFactor(s.blendRate, deltaTime)
	for _, id := range entity.SortedIDs(s.ecs.Movings) {
		moving := s.ecs.Movings[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		target := s.layout.HexToWorld(moving.Towards)

		// Экспоненциальное сглаживание
		pos.X = utils.Lerp(pos.X, target.X, factor)
		pos.Y = utils.Lerp(pos.Y, target.Y, factor)

		if !arrived(hexmap.Vec2{X: pos.X, Y: pos.Y}, target) {
			continue
		}
		s.advance(id, *moving, pos, target)
	}
}

// advance consumes the reached waypoint.
func (s *MovementSystem) advance(id types.EntityID, moving component.Moving, pos *component.Position, target hexmap.Vec2) {
	s.ecs.SetBoardLoc(id, moving.Towards)

	var rest []hexmap.Hex
	if path, ok := s.ecs.Paths[id]; ok {
		rest = path.Hexes
		if len(rest) > 0 && rest[0] == moving.Towards {
			rest = rest[1:]
		}
	}

	if len(rest) > 0 {
		dir, ok := moving.Towards.NeighborDirection(rest[0])
		if ok {
			s.ecs.SetPath(id, rest)
			s.ecs.SetMoving(id, component.Moving{Towards: rest[0], Direction: dir})
			return
		}
		log.Printf("[MovementSystem] Unit %d: next waypoint %v is not adjacent to %v, stopping", id, rest[0], moving.Towards)
	}

	pos.X, pos.Y = target.X, target.Y
	s.ecs.RemoveMovement(id)
	s.dispatcher.Dispatch(event.Event{Type: event.MoveCompleted, Data: event.MovingRemoved{Entity: id, At: moving.Towards}})
	log.Printf("[MovementSystem] Unit %d arrived at %v", id, moving.Towards)
}

// FacingSystem mirrors the unit sprite to face its direction of travel.
type FacingSystem struct {
	ecs     *entity.ECS
	changes *event.Reader[event.MovingChanged]
}

func NewFacingSystem(ecs *entity.ECS) *FacingSystem {
	return &FacingSystem{ecs: ecs, changes: ecs.MovingChanges.NewReader()}
}

// FlipX returns the mirroring for dir. Top and Bottom keep the current one.
func FlipX(dir hexmap.Direction) (flip bool, ok bool) {
	switch dir {
	case hexmap.TopRight, hexmap.BottomRight:
		return false, true
	case hexmap.TopLeft, hexmap.BottomLeft:
		return true, true
	}
	return false, false
}

func (s *FacingSystem) Update(deltaTime float64) {
	for _, ch := range s.changes.Read() {
		moving, ok := s.ecs.Movings[ch.Entity]
		if !ok {
			continue
		}
		sprite, ok := s.ecs.Sprites[ch.Entity]
		if !ok {
			continue
		}
		if flip, ok := FlipX(moving.Direction); ok {
			sprite.FlipX = flip
		}
	}
}

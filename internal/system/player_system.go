// internal/system/player_system.go
package system

import (
	"go-hex-tactics/internal/component"
	"go-hex-tactics/internal/entity"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/state/player"
)

// PlayerSystem decides when the player changes mode. Transitions are only
// requested here; the mode machine applies them at the start of next tick.
type PlayerSystem struct {
	ecs    *entity.ECS
	modes  *player.Machine
	queues *Queues

	selected   *event.Reader[event.UnitSelected]
	deselected *event.Reader[event.UnitDeselected]
	outside    *event.Reader[event.ClickedOutsideActivationRange]
	stopped    *event.Reader[event.MovingRemoved]
}

func NewPlayerSystem(ecs *entity.ECS, modes *player.Machine, queues *Queues) *PlayerSystem {
	s := &PlayerSystem{
		ecs:        ecs,
		modes:      modes,
		queues:     queues,
		selected:   queues.UnitSelected.NewReader(),
		deselected: queues.UnitDeselected.NewReader(),
		outside:    queues.ClickedOutside.NewReader(),
		stopped:    ecs.MovingRemovals.NewReader(),
	}
	modes.OnExit(player.UnitSelected, s.clearSelection)
	return s
}

func (s *PlayerSystem) Update(deltaTime float64) {
	current := s.modes.Current()
	selected := len(s.selected.Read()) > 0
	deselected := len(s.deselected.Read()) > 0
	outside := len(s.outside.Read()) > 0
	stopped := len(s.stopped.Read()) > 0

	if selected && current == player.Idle {
		s.modes.Request(player.UnitSelected)
	}
	if current == player.UnitSelected {
		_, stillSelected := s.ecs.SelectedUnit()
		if (deselected && !stillSelected) || outside {
			s.modes.Request(player.Idle)
		}
	}
	// Проверяется каждый тик, а не по событию.
	if current != player.UnitMoving && s.ecs.AnyMoving() {
		s.modes.Request(player.UnitMoving)
	}
	if stopped && current == player.UnitMoving {
		s.modes.Request(player.Idle)
	}
}

// clearSelection runs on leaving UnitSelected.
func (s *PlayerSystem) clearSelection() {
	for _, id := range s.ecs.WithFlag(component.Selected) {
		s.ecs.RemoveFlag(id, component.Selected)
	}
	for _, id := range s.ecs.WithFlag(component.Activated) {
		s.ecs.RemoveFlag(id, component.Activated)
	}
	for _, id := range entity.SortedIDs(s.ecs.MoveTargets) {
		delete(s.ecs.MoveTargets, id)
	}
	s.queues.ClearClicked.Send(event.ClearLastClicked{})
}

// internal/system/selection.go
package system

import (
	"log"

	"go-hex-tactics/internal/component"
	"go-hex-tactics/internal/entity"
	"go-hex-tactics/internal/event"
)

// SelectionSystem handles tile and unit selection from tile clicks and
// reports unit (de)selection to collaborators.
type SelectionSystem struct {
	ecs        *entity.ECS
	queues     *Queues
	dispatcher *event.Dispatcher

	idleClicks *event.Reader[event.NewTileClicked]
	tileClicks *event.Reader[event.NewTileClicked]
	flags      *event.Reader[event.FlagChanged]
}

func NewSelectionSystem(ecs *entity.ECS, queues *Queues, dispatcher *event.Dispatcher) *SelectionSystem {
	return &SelectionSystem{
		ecs:        ecs,
		queues:     queues,
		dispatcher: dispatcher,
		idleClicks: queues.NewTile.NewReader(),
		tileClicks: queues.NewTile.NewReader(),
		flags:      ecs.FlagChanges.NewReader(),
	}
}

// UpdateTiles keeps exactly one base tile Selected: the last clicked one.
// Runs in Idle and UnitSelected.
func (s *SelectionSystem) UpdateTiles() {
	for _, click := range s.tileClicks.Read() {
		tile, ok := s.ecs.BaseTileAt(click.Hex)
		if !ok {
			continue
		}
		for _, id := range s.ecs.WithFlag(component.Selected) {
			if id != tile && s.ecs.IsBaseTile(id) {
				s.ecs.RemoveFlag(id, component.Selected)
			}
		}
		s.ecs.AddFlag(tile, component.Selected)
	}
}

// UpdateUnits selects the unit standing on a clicked tile and deselects a
// selected unit standing elsewhere. Runs in Idle.
func (s *SelectionSystem) UpdateUnits() {
	for _, click := range s.idleClicks.Read() {
		for _, id := range entity.SortedIDs(s.ecs.Units) {
			loc, ok := s.ecs.BoardLocs[id]
			if !ok {
				continue
			}
			if loc.Hex == click.Hex {
				if _, selectable := s.ecs.Selectables[id]; selectable {
					s.ecs.AddFlag(id, component.Selected)
				}
			} else {
				s.ecs.RemoveFlag(id, component.Selected)
			}
		}
	}
}

// SkipTiles and SkipUnits drop clicks while the current mode ignores them.
func (s *SelectionSystem) SkipTiles() { s.tileClicks.Skip() }
func (s *SelectionSystem) SkipUnits() { s.idleClicks.Skip() }

// Notify turns Selected changes on units into UnitSelected / UnitDeselected
// events and notifications. Runs in every mode.
func (s *SelectionSystem) Notify() {
	for _, ch := range s.flags.Read() {
		if ch.Flag != component.Selected {
			continue
		}
		if _, isUnit := s.ecs.Units[ch.Entity]; !isUnit {
			continue
		}
		if ch.Added {
			ev := event.UnitSelected{Unit: ch.Entity}
			s.queues.UnitSelected.Send(ev)
			s.dispatcher.Dispatch(event.Event{Type: event.UnitSelectedNotice, Data: ev})
			log.Printf("[SelectionSystem] Unit %d selected", ch.Entity)
		} else {
			ev := event.UnitDeselected{Unit: ch.Entity}
			s.queues.UnitDeselected.Send(ev)
			s.dispatcher.Dispatch(event.Event{Type: event.UnitDeselectedNotice, Data: ev})
			log.Printf("[SelectionSystem] Unit %d deselected", ch.Entity)
		}
	}
}

// internal/system/activation.go
package system

import (
	"log"

	"go-hex-tactics/internal/component"
	"go-hex-tactics/internal/entity"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/types"
	"go-hex-tactics/pkg/hexmap"
)

// ActivationSystem owns the activation range of the selected unit and the
// move target designation inside it.
type ActivationSystem struct {
	ecs        *entity.ECS
	queues     *Queues
	dispatcher *event.Dispatcher

	newTiles *event.Reader[event.NewTileClicked]
	doubles  *event.Reader[event.HexDoubleClicked]
	missed   *event.Reader[event.ClickMissedBoard]
}

func NewActivationSystem(ecs *entity.ECS, queues *Queues, dispatcher *event.Dispatcher) *ActivationSystem {
	return &ActivationSystem{
		ecs:        ecs,
		queues:     queues,
		dispatcher: dispatcher,
		newTiles:   queues.NewTile.NewReader(),
		doubles:    queues.DoubleClicked.NewReader(),
		missed:     queues.MissedBoard.NewReader(),
	}
}

// Activate flags the field of movement of the selected unit. Called once on
// entering UnitSelected.
func (s *ActivationSystem) Activate() {
	unit, ok := s.ecs.SelectedUnit()
	if !ok {
		return
	}
	loc, ok := s.ecs.BoardLocs[unit]
	if !ok {
		return
	}
	budget := 0
	if mr, ok := s.ecs.MoveRanges[unit]; ok {
		budget = mr.Value
	}

	field := hexmap.FieldOfMovement(loc.Hex, budget, hexmap.UniformCost)
	var activated []hexmap.Hex
	field.Each(func(h hexmap.Hex) {
		if tile, ok := s.ecs.BaseTileAt(h); ok {
			s.ecs.AddFlag(tile, component.Activated)
			activated = append(activated, h)
		}
	})
	sortHexes(activated)

	s.dispatcher.Dispatch(event.Event{Type: event.MoveRangeComputed, Data: event.MoveRange{
		Unit:   unit,
		Origin: loc.Hex,
		Budget: budget,
		Hexes:  activated,
	}})
	log.Printf("[ActivationSystem] Unit %d at %v: %d hexes in range %d", unit, loc.Hex, len(activated), budget)
}

func (s *ActivationSystem) Update(deltaTime float64) {
	unit, hasUnit := s.ecs.SelectedUnit()
	var unitHex hexmap.Hex
	if hasUnit {
		if loc, ok := s.ecs.BoardLocs[unit]; ok {
			unitHex = loc.Hex
		} else {
			hasUnit = false
		}
	}

	for _, click := range s.newTiles.Read() {
		if !hasUnit {
			continue
		}
		tile, ok := s.ecs.BaseTileAt(click.Hex)
		if !ok {
			continue
		}
		if !s.ecs.HasFlag(tile, component.Activated) {
			s.clickedOutside(click.Hex, false)
			continue
		}
		if click.Hex == unitHex {
			continue
		}
		s.designate(tile, click.Hex)
	}

	for _, miss := range s.missed.Read() {
		if hasUnit {
			s.clickedOutside(miss.Hex, true)
		}
	}

	for _, dbl := range s.doubles.Read() {
		if !hasUnit || dbl.Hex == unitHex {
			continue
		}
		target, ok := s.ecs.MoveTargetTile()
		if !ok || s.ecs.MoveTargets[target].Hex != dbl.Hex {
			continue
		}
		ev := event.MoveTargetConfirmed{Unit: unit, From: unitHex, To: dbl.Hex}
		s.queues.MoveConfirmed.Send(ev)
		s.dispatcher.Dispatch(event.Event{Type: event.MoveConfirmed, Data: ev})
		log.Printf("[ActivationSystem] Move confirmed: unit %d %v -> %v", unit, unitHex, dbl.Hex)
	}
}

// Skip drops pending clicks while the current mode ignores them.
func (s *ActivationSystem) Skip() {
	s.newTiles.Skip()
	s.doubles.Skip()
	s.missed.Skip()
}

// designate moves the move target to tile. There is at most one move target.
func (s *ActivationSystem) designate(tile types.EntityID, hex hexmap.Hex) {
	if cur, ok := s.ecs.MoveTargetTile(); ok && cur == tile {
		return
	}
	for _, id := range entity.SortedIDs(s.ecs.MoveTargets) {
		delete(s.ecs.MoveTargets, id)
		s.ecs.RemoveFlag(id, component.Selected)
	}
	s.ecs.MoveTargets[tile] = &component.MoveTarget{Hex: hex}
	s.ecs.AddFlag(tile, component.Selected)
}

func (s *ActivationSystem) clickedOutside(hex hexmap.Hex, offBoard bool) {
	ev := event.ClickedOutsideActivationRange{Hex: hex, OffBoard: offBoard}
	s.queues.ClickedOutside.Send(ev)
	s.dispatcher.Dispatch(event.Event{Type: event.ActivationRangeViolated, Data: ev})
}

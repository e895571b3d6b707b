// internal/system/tile_input.go
package system

import (
	"go-hex-tactics/internal/component"
	"go-hex-tactics/internal/entity"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/resource"
	"go-hex-tactics/pkg/hexmap"
)

// ClickTracker remembers the last clicked hex to tell a new tile from a
// repeated click.
type ClickTracker struct {
	last    hexmap.Hex
	hasLast bool
}

// Track records hex and reports whether it repeats the previous click.
func (t *ClickTracker) Track(hex hexmap.Hex) (repeated bool) {
	repeated = t.hasLast && t.last == hex
	t.last = hex
	t.hasLast = true
	return repeated
}

func (t *ClickTracker) Reset() {
	t.hasLast = false
}

// Last returns the last clicked hex, if any.
func (t ClickTracker) Last() (hexmap.Hex, bool) {
	return t.last, t.hasLast
}

// TileInputSystem resolves the cursor and clicks to board hexes.
type TileInputSystem struct {
	ecs    *entity.ECS
	board  *hexmap.HexMap
	layout hexmap.Layout
	cursor *resource.CursorPos
	queues *Queues

	hovered    hexmap.Hex
	hasHovered bool
	tracker    ClickTracker

	clicks  *event.Reader[event.MouseClicked]
	onBoard *event.Reader[event.MouseClickedHex]
	clears  *event.Reader[event.ClearLastClicked]
}

func NewTileInputSystem(ecs *entity.ECS, board *hexmap.HexMap, layout hexmap.Layout, cursor *resource.CursorPos, queues *Queues) *TileInputSystem {
	return &TileInputSystem{
		ecs:     ecs,
		board:   board,
		layout:  layout,
		cursor:  cursor,
		queues:  queues,
		clicks:  queues.MouseClicked.NewReader(),
		onBoard: queues.ClickedHex.NewReader(),
		clears:  queues.ClearClicked.NewReader(),
	}
}

// UpdateHover moves the Hovered flag to the tile under the cursor. Leaving
// the board keeps the last hovered tile.
func (s *TileInputSystem) UpdateHover() {
	hex := s.layout.WorldToHex(s.cursor.Vec2)
	if !s.board.Contains(hex) {
		return
	}
	if s.hasHovered && s.hovered == hex {
		return
	}
	if s.hasHovered {
		if prev, ok := s.ecs.BaseTileAt(s.hovered); ok {
			s.ecs.RemoveFlag(prev, component.Hovered)
		}
	}
	s.hovered, s.hasHovered = hex, true
	if tile, ok := s.ecs.BaseTileAt(hex); ok {
		s.ecs.AddFlag(tile, component.Hovered)
	}
	s.queues.EnteredHex.Send(event.MouseEnteredHex{Hex: hex})
}

// UpdateClicks resolves clicks to hexes and deduplicates them.
func (s *TileInputSystem) UpdateClicks() {
	s.applyClears()
	for _, click := range s.clicks.Read() {
		hex := s.layout.WorldToHex(click.Pos)
		if !s.board.Contains(hex) {
			s.queues.MissedBoard.Send(event.ClickMissedBoard{Hex: hex})
			continue
		}
		s.queues.ClickedHex.Send(event.MouseClickedHex{Hex: hex})
	}
	for _, click := range s.onBoard.Read() {
		if s.tracker.Track(click.Hex) {
			s.queues.DoubleClicked.Send(event.HexDoubleClicked{Hex: click.Hex})
		} else {
			s.queues.NewTile.Send(event.NewTileClicked{Hex: click.Hex})
		}
	}
}

// Skip drops pending clicks while the current mode ignores them. Resets of
// the click memory still apply.
func (s *TileInputSystem) Skip() {
	s.applyClears()
	s.clicks.Skip()
	s.onBoard.Skip()
}

func (s *TileInputSystem) applyClears() {
	if len(s.clears.Read()) > 0 {
		s.tracker.Reset()
	}
}

// Tracker exposes the click memory for inspection.
func (s *TileInputSystem) Tracker() ClickTracker {
	return s.tracker
}

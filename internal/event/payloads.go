package event

import (
	"go-hex-tactics/internal/component"
	"go-hex-tactics/internal/types"
	"go-hex-tactics/pkg/hexmap"
)

// CursorMoved is a raw pointer move in screen space.
type CursorMoved struct {
	ScreenX, ScreenY float64
}

// MousePressed is a raw left-button press.
type MousePressed struct{}

// MouseClicked carries the world position of a left click.
type MouseClicked struct {
	Pos hexmap.Vec2
}

// MouseEnteredHex fires when the cursor moves onto a different board hex.
type MouseEnteredHex struct {
	Hex hexmap.Hex
}

// MouseClickedHex is a click resolved to a board hex.
type MouseClickedHex struct {
	Hex hexmap.Hex
}

// ClickMissedBoard is a click whose hex is not part of the board.
type ClickMissedBoard struct {
	Hex hexmap.Hex
}

// NewTileClicked fires when the clicked hex differs from the last one.
type NewTileClicked struct {
	Hex hexmap.Hex
}

// HexDoubleClicked fires when the same hex is clicked twice in a row.
type HexDoubleClicked struct {
	Hex hexmap.Hex
}

// ClearLastClicked resets click deduplication memory.
type ClearLastClicked struct{}

type UnitSelected struct {
	Unit types.EntityID
}

type UnitDeselected struct {
	Unit types.EntityID
}

// MoveRange is the activation set computed for a freshly selected unit.
type MoveRange struct {
	Unit   types.EntityID
	Origin hexmap.Hex
	Budget int
	Hexes  []hexmap.Hex
}

// MoveTargetConfirmed asks the path planner to move Unit from From to To.
type MoveTargetConfirmed struct {
	Unit types.EntityID
	From hexmap.Hex
	To   hexmap.Hex
}

// ClickedOutsideActivationRange forces the player back to Idle.
// OffBoard is set when the click did not land on the board at all.
type ClickedOutsideActivationRange struct {
	Hex      hexmap.Hex
	OffBoard bool
}

// FlagChanged records a flag being attached to or removed from an entity.
type FlagChanged struct {
	Entity types.EntityID
	Flag   component.Flag
	Added  bool
}

// MovingChanged fires when a Moving component is inserted or actually modified.
type MovingChanged struct {
	Entity types.EntityID
}

// MovingRemoved fires when a unit finishes its path.
type MovingRemoved struct {
	Entity types.EntityID
	At     hexmap.Hex
}

// TurnButtonPressed advances the turn counter.
type TurnButtonPressed struct{}

// TurnChange is the payload of TurnAdvanced notifications.
type TurnChange struct {
	Turn int
}

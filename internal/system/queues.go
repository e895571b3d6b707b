// internal/system/queues.go
package system

import "go-hex-tactics/internal/event"

// Queues bundles the event queues shared between systems. Each queue is
// advanced once per tick by Update.
type Queues struct {
	CursorMoved    *event.Queue[event.CursorMoved]
	MousePressed   *event.Queue[event.MousePressed]
	MouseClicked   *event.Queue[event.MouseClicked]
	EnteredHex     *event.Queue[event.MouseEnteredHex]
	ClickedHex     *event.Queue[event.MouseClickedHex]
	MissedBoard    *event.Queue[event.ClickMissedBoard]
	NewTile        *event.Queue[event.NewTileClicked]
	DoubleClicked  *event.Queue[event.HexDoubleClicked]
	ClearClicked   *event.Queue[event.ClearLastClicked]
	UnitSelected   *event.Queue[event.UnitSelected]
	UnitDeselected *event.Queue[event.UnitDeselected]
	MoveConfirmed  *event.Queue[event.MoveTargetConfirmed]
	ClickedOutside *event.Queue[event.ClickedOutsideActivationRange]
	TurnPressed    *event.Queue[event.TurnButtonPressed]
}

func NewQueues() *Queues {
	return &Queues{
		CursorMoved:    event.NewQueue[event.CursorMoved](),
		MousePressed:   event.NewQueue[event.MousePressed](),
		MouseClicked:   event.NewQueue[event.MouseClicked](),
		EnteredHex:     event.NewQueue[event.MouseEnteredHex](),
		ClickedHex:     event.NewQueue[event.MouseClickedHex](),
		MissedBoard:    event.NewQueue[event.ClickMissedBoard](),
		NewTile:        event.NewQueue[event.NewTileClicked](),
		DoubleClicked:  event.NewQueue[event.HexDoubleClicked](),
		ClearClicked:   event.NewQueue[event.ClearLastClicked](),
		UnitSelected:   event.NewQueue[event.UnitSelected](),
		UnitDeselected: event.NewQueue[event.UnitDeselected](),
		MoveConfirmed:  event.NewQueue[event.MoveTargetConfirmed](),
		ClickedOutside: event.NewQueue[event.ClickedOutsideActivationRange](),
		TurnPressed:    event.NewQueue[event.TurnButtonPressed](),
	}
}

// Update swaps the buffers of every queue. Call once at the end of a tick.
func (q *Queues) Update() {
	q.CursorMoved.Update()
	q.MousePressed.Update()
	q.MouseClicked.Update()
	q.EnteredHex.Update()
	q.ClickedHex.Update()
	q.MissedBoard.Update()
	q.NewTile.Update()
	q.DoubleClicked.Update()
	q.ClearClicked.Update()
	q.UnitSelected.Update()
	q.UnitDeselected.Update()
	q.MoveConfirmed.Update()
	q.ClickedOutside.Update()
	q.TurnPressed.Update()
}

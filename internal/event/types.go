package event

// Notifications exposed to collaborators.
const (
	UnitSelectedNotice      EventType = "UnitSelected"            // Data: UnitSelected
	UnitDeselectedNotice    EventType = "UnitDeselected"          // Data: UnitDeselected
	MoveRangeComputed       EventType = "MoveRangeComputed"       // Data: MoveRange
	MoveConfirmed           EventType = "MoveConfirmed"           // Data: MoveTargetConfirmed
	MoveCompleted           EventType = "MoveCompleted"           // Data: MovingRemoved
	ActivationRangeViolated EventType = "ActivationRangeViolated" // Data: ClickedOutsideActivationRange
	PlayerModeChanged       EventType = "PlayerModeChanged"       // Data: player.ModeChange
	TurnAdvanced            EventType = "TurnAdvanced"            // Data: TurnChange
)

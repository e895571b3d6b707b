// Package player holds the top-level interaction mode of the local player.
package player

import "log"

// Mode — режим взаимодействия игрока.
type Mode int

const (
	Idle Mode = iota
	UnitSelected
	UnitMoving
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "Idle"
	case UnitSelected:
		return "UnitSelected"
	case UnitMoving:
		return "UnitMoving"
	}
	return "Unknown"
}

// ModeChange is the payload of PlayerModeChanged notifications.
type ModeChange struct {
	From, To Mode
}

// Hook runs on entering or leaving a mode.
type Hook func()

// Machine applies mode transitions at a fixed point of the tick. Systems
// only Request the next mode; the switch itself happens in ApplyTransition.
type Machine struct {
	current  Mode
	next     Mode
	pending  bool
	onEnter  map[Mode][]Hook
	onExit   map[Mode][]Hook
	onChange []func(ModeChange)
}

func NewMachine(initial Mode) *Machine {
	return &Machine{
		current: initial,
		onEnter: make(map[Mode][]Hook),
		onExit:  make(map[Mode][]Hook),
	}
}

// Current returns the active mode.
func (m *Machine) Current() Mode {
	return m.current
}

// Request schedules a switch to next. A later request in the same tick
// overrides an earlier one.
func (m *Machine) Request(next Mode) {
	m.next = next
	m.pending = true
}

func (m *Machine) OnEnter(mode Mode, h Hook) {
	m.onEnter[mode] = append(m.onEnter[mode], h)
}

func (m *Machine) OnExit(mode Mode, h Hook) {
	m.onExit[mode] = append(m.onExit[mode], h)
}

// OnChange registers a callback invoked after every applied transition.
func (m *Machine) OnChange(fn func(ModeChange)) {
	m.onChange = append(m.onChange, fn)
}

// ApplyTransition switches to the requested mode, running exit hooks of the
// old mode before enter hooks of the new one. Requesting the current mode
// does nothing. Returns true if the mode changed.
func (m *Machine) ApplyTransition() bool {
	if !m.pending {
		return false
	}
	m.pending = false
	if m.next == m.current {
		return false
	}
	change := ModeChange{From: m.current, To: m.next}
	for _, h := range m.onExit[change.From] {
		h()
	}
	m.current = change.To
	for _, h := range m.onEnter[change.To] {
		h()
	}
	log.Printf("[PlayerMode] %s -> %s", change.From, change.To)
	for _, fn := range m.onChange {
		fn(change)
	}
	return true
}

// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран приложения (загрузка, игра)
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine switches between screens. A switch requested from inside
// Update takes effect before the next Update, so a screen never runs after
// its Exit.
type StateMachine struct {
	current State
	next    State
	pending bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState schedules newState. Outside of Update it applies immediately.
func (sm *StateMachine) SetState(newState State) {
	sm.next = newState
	sm.pending = true
	if sm.current == nil {
		sm.apply()
	}
}

func (sm *StateMachine) apply() {
	if !sm.pending {
		return
	}
	sm.pending = false
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = sm.next
	sm.next = nil
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active screen.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	sm.apply()
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

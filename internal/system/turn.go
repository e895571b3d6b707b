// internal/system/turn.go
package system

import (
	"log"

	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/resource"
)

// TurnStore persists the turn counter.
type TurnStore interface {
	LoadTurn() (turn int, ok bool, err error)
	SaveTurn(turn int) error
}

// TurnSystem is the only writer of TurnQueue.
type TurnSystem struct {
	turns      *resource.TurnQueue
	store      TurnStore
	dispatcher *event.Dispatcher
	pressed    *event.Reader[event.TurnButtonPressed]
}

// NewTurnSystem wires the counter; store may be nil.
func NewTurnSystem(turns *resource.TurnQueue, store TurnStore, dispatcher *event.Dispatcher, queues *Queues) *TurnSystem {
	return &TurnSystem{
		turns:      turns,
		store:      store,
		dispatcher: dispatcher,
		pressed:    queues.TurnPressed.NewReader(),
	}
}

// Restore loads a saved counter, keeping the current one on failure.
func (s *TurnSystem) Restore() {
	if s.store == nil {
		return
	}
	turn, ok, err := s.store.LoadTurn()
	if err != nil {
		log.Printf("[TurnSystem] Warning: failed to restore turn: %v (starting at %d)", err, s.turns.TurnNumber)
		return
	}
	if ok && turn > 0 {
		s.turns.TurnNumber = turn
	}
}

func (s *TurnSystem) Update(deltaTime float64) {
	for range s.pressed.Read() {
		s.turns.TurnNumber++
		s.dispatcher.Dispatch(event.Event{Type: event.TurnAdvanced, Data: event.TurnChange{Turn: s.turns.TurnNumber}})
		if s.store == nil {
			continue
		}
		if err := s.store.SaveTurn(s.turns.TurnNumber); err != nil {
			log.Printf("[TurnSystem] Warning: %v", err)
		}
	}
}

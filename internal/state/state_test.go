package state

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
	on   func()
}

func (s *recordingState) Enter() { *s.log = append(*s.log, "enter "+s.name) }
func (s *recordingState) Exit()  { *s.log = append(*s.log, "exit "+s.name) }
func (s *recordingState) Update(float64) {
	*s.log = append(*s.log, "update "+s.name)
	if s.on != nil {
		s.on()
	}
}
func (s *recordingState) Draw(*ebiten.Image) {}

func TestStateMachine_SwitchFromUpdate(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	game := &recordingState{name: "game", log: &log}
	loading := &recordingState{name: "loading", log: &log}
	loading.on = func() { sm.SetState(game) }

	sm.SetState(loading)
	sm.Update(0)
	sm.Update(0)

	want := []string{"enter loading", "update loading", "exit loading", "enter game", "update game"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("got %v, want %v", log, want)
	}
	if sm.Current() != game {
		t.Error("game screen should be current")
	}
}

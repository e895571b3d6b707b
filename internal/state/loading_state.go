// internal/state/loading_state.go
package state

import (
	"go-hex-tactics/internal/app"
	"go-hex-tactics/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadingState populates the scene and hands over to the game screen.
type LoadingState struct {
	sm   *StateMachine
	game *app.Game
	next func(*app.Game) State
}

// NewLoadingState builds the loading screen. next creates the screen shown
// once the scene is ready.
func NewLoadingState(sm *StateMachine, game *app.Game, next func(*app.Game) State) *LoadingState {
	return &LoadingState{sm: sm, game: game, next: next}
}

func (l *LoadingState) Enter() {
	l.game.Startup()
}

func (l *LoadingState) Update(deltaTime float64) {
	l.sm.SetState(l.next(l.game))
}

func (l *LoadingState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ebitenutil.DebugPrint(screen, "Loading map...")
}

func (l *LoadingState) Exit() {
	// Ничего не делаем при выходе
}

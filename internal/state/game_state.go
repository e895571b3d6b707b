// internal/state/game_state.go
package state

import (
	"fmt"
	"image"

	"go-hex-tactics/internal/app"
	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/input"
	"go-hex-tactics/internal/ui"
	"go-hex-tactics/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// GameState — состояние игры
type GameState struct {
	sm          *StateMachine
	game        *app.Game
	renderer    *render.HexRenderer
	indicator   *ui.ModeIndicator
	turnButton  *ui.Button
	pointer     *input.EbitenPointer
	unsubscribe func()
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	face := text.NewGoXFace(basicfont.Face7x13)
	width, height := game.Settings.Screen.Width, game.Settings.Screen.Height

	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		BaseTileColor:   config.BaseTileColor,
		ActivatedColor:  config.ActivatedColor,
		SelectedColor:   config.SelectedColor,
		HoveredColor:    config.HoveredColor,
		StrokeColor:     config.TileStrokeColor,
		UnitColor:       config.UnitColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	renderer := render.NewHexRenderer(game.ECS, game.Layout, game.Camera, game.Settings.AssetDir, mapColors)

	indicator := ui.NewModeIndicator(
		float32(width-config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX),
		float32(config.IndicatorRadius),
		config.PlayerModeColors,
		config.IndicatorStroke,
		face,
	)
	turnButton := ui.NewButton(image.Rect(width-130, height-50, width-20, height-20), "End turn", face)

	gs := &GameState{
		sm:         sm,
		game:       game,
		renderer:   renderer,
		indicator:  indicator,
		turnButton: turnButton,
		pointer:    input.NewEbitenPointer(game, turnButton),
	}
	gs.unsubscribe = game.Subscribe(event.PlayerModeChanged, event.ListenerFunc(func(event.Event) {
		gs.indicator.ModeChanged()
	}))
	return gs
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	g.pointer.Poll()
	g.game.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	g.indicator.Draw(screen, g.game.Mode(), g.game.Turns.TurnNumber)
	mx, my := g.pointer.Cursor()
	g.turnButton.Draw(screen, mx, my)

	// Debug text
	hovered, _ := g.game.HoveredHex()
	unitHex, _ := g.game.UnitHex()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Mode: %s\nHover: %v\nUnit: %v", g.game.Mode(), hovered, unitHex))
}

func (g *GameState) Exit() {
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
}

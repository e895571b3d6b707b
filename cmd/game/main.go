// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-hex-tactics/internal/app"
	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/state"
	"go-hex-tactics/internal/storage"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	maxDeltaTime   float64
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > a.maxDeltaTime {
		deltaTime = a.maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Printf("[Config] %v, using defaults", err)
		} else {
			settings = loaded
		}
	}

	store, err := storage.Open(settings.SaveAppName)
	if err != nil {
		log.Printf("[Storage] %v, turn counter will not be saved", err)
	}

	game := app.NewGame(settings, store)
	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewLoadingState(sm, game, func(g *app.Game) state.State {
		return state.NewGameState(sm, g)
	}))

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		maxDeltaTime:   settings.MaxDeltaTime,
		width:          settings.Screen.Width,
		height:         settings.Screen.Height,
	}
	ebiten.SetWindowSize(settings.Screen.Width, settings.Screen.Height)
	ebiten.SetWindowTitle("Hex Tactics")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

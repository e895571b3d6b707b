// internal/app/game.go
package app

import (
	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/entity"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/resource"
	"go-hex-tactics/internal/state/player"
	"go-hex-tactics/internal/system"
	"go-hex-tactics/internal/types"
	"go-hex-tactics/pkg/hexmap"
)

// Game holds the board, the entities and the systems, and runs one tick
// of the frame schedule per Update.
type Game struct {
	Settings        *config.Settings
	HexMap          *hexmap.HexMap
	Layout          hexmap.Layout
	ECS             *entity.ECS
	Queues          *system.Queues
	EventDispatcher *event.Dispatcher
	Modes           *player.Machine

	Cursor *resource.CursorPos
	Camera *resource.Camera
	Turns  *resource.TurnQueue
	Clock  resource.Clock

	CursorSystem     *system.CursorSystem
	TileInputSystem  *system.TileInputSystem
	SelectionSystem  *system.SelectionSystem
	ActivationSystem *system.ActivationSystem
	PathSystem       *system.PathSystem
	MovementSystem   *system.MovementSystem
	FacingSystem     *system.FacingSystem
	PlayerSystem     *system.PlayerSystem
	TurnSystem       *system.TurnSystem
	LayerSystem      *system.LayerSystem

	UnitID types.EntityID // ID стартового юнита

	hovers     *event.Reader[event.MouseEnteredHex]
	hovered    hexmap.Hex
	hasHovered bool
}

// NewGame wires a game for settings. store may be nil, in which case the
// turn counter is not persisted. The scene is empty until Startup.
func NewGame(settings *config.Settings, store system.TurnStore) *Game {
	if settings == nil {
		settings = config.Default()
	}
	hexMap := hexmap.NewHexagon(hexmap.Hex{}, settings.BoardRadius)
	layout := hexmap.NewLayout(settings.HexSizeX, settings.HexSizeY)
	ecs := entity.NewECS()
	queues := system.NewQueues()
	dispatcher := event.NewDispatcher()
	modes := player.NewMachine(player.Idle)

	g := &Game{
		Settings:        settings,
		HexMap:          hexMap,
		Layout:          layout,
		ECS:             ecs,
		Queues:          queues,
		EventDispatcher: dispatcher,
		Modes:           modes,
		Cursor:          resource.NewCursorPos(),
		Camera:          resource.NewCamera(settings.Screen.Width, settings.Screen.Height),
		Turns:           resource.NewTurnQueue(),
	}
	g.CursorSystem = system.NewCursorSystem(g.Cursor, g.Camera, queues)
	g.TileInputSystem = system.NewTileInputSystem(ecs, hexMap, layout, g.Cursor, queues)
	g.SelectionSystem = system.NewSelectionSystem(ecs, queues, dispatcher)
	g.ActivationSystem = system.NewActivationSystem(ecs, queues, dispatcher)
	g.PathSystem = system.NewPathSystem(ecs, hexMap, queues)
	g.MovementSystem = system.NewMovementSystem(ecs, layout, dispatcher, settings.MoveBlendRate)
	g.FacingSystem = system.NewFacingSystem(ecs)
	g.PlayerSystem = system.NewPlayerSystem(ecs, modes, queues)
	g.TurnSystem = system.NewTurnSystem(g.Turns, store, dispatcher, queues)
	g.LayerSystem = system.NewLayerSystem(ecs, system.DefaultBindings)
	g.hovers = queues.EnteredHex.NewReader()

	modes.OnEnter(player.UnitSelected, g.ActivationSystem.Activate)
	modes.OnChange(func(c player.ModeChange) {
		dispatcher.Dispatch(event.Event{Type: event.PlayerModeChanged, Data: c})
	})
	return g
}

// Startup populates the scene and restores the saved turn counter.
func (g *Game) Startup() {
	g.SpawnBoard()
	g.SpawnLayers()
	g.UnitID = g.SpawnUnit(g.Settings.Unit)
	g.TurnSystem.Restore()
}

// Update runs one tick.
func (g *Game) Update(deltaTime float64) {
	g.Clock.Advance(deltaTime)
	dt := g.Clock.Delta

	g.Modes.ApplyTransition()
	g.CursorSystem.Update(dt)

	mode := g.Modes.Current()
	g.TileInputSystem.UpdateHover()
	switch mode {
	case player.Idle:
		g.TileInputSystem.UpdateClicks()
		g.SelectionSystem.UpdateTiles()
		g.SelectionSystem.UpdateUnits()
		g.ActivationSystem.Skip()
		g.PathSystem.Skip()
	case player.UnitSelected:
		g.TileInputSystem.UpdateClicks()
		g.SelectionSystem.UpdateTiles()
		g.SelectionSystem.SkipUnits()
		g.ActivationSystem.Update(dt)
		g.PathSystem.Update(dt)
	case player.UnitMoving:
		g.TileInputSystem.Skip()
		g.SelectionSystem.SkipTiles()
		g.SelectionSystem.SkipUnits()
		g.ActivationSystem.Skip()
		g.PathSystem.Skip()
		g.MovementSystem.Update(dt)
	}

	g.FacingSystem.Update(dt)
	g.SelectionSystem.Notify()
	g.PlayerSystem.Update(dt)
	g.TurnSystem.Update(dt)
	g.LayerSystem.Update(dt)
	for _, h := range g.hovers.Read() {
		g.hovered, g.hasHovered = h.Hex, true
	}

	g.Queues.Update()
	g.ECS.UpdateQueues()
}

// --- Input ---

// MoveCursor reports a pointer move in screen pixels.
func (g *Game) MoveCursor(screenX, screenY float64) {
	g.Queues.CursorMoved.Send(event.CursorMoved{ScreenX: screenX, ScreenY: screenY})
}

// PressLeft reports a left button press at the current cursor position.
func (g *Game) PressLeft() {
	g.Queues.MousePressed.Send(event.MousePressed{})
}

func (g *Game) PressTurnButton() {
	g.Queues.TurnPressed.Send(event.TurnButtonPressed{})
}

// ScreenPos returns the screen position of the centre of hex.
func (g *Game) ScreenPos(hex hexmap.Hex) (float64, float64) {
	return g.Camera.WorldToScreen(g.Layout.HexToWorld(hex))
}

// ClickHex moves the cursor to the centre of hex and clicks.
func (g *Game) ClickHex(hex hexmap.Hex) {
	g.MoveCursor(g.ScreenPos(hex))
	g.PressLeft()
}

// --- State ---

// Mode returns the current player mode.
func (g *Game) Mode() player.Mode {
	return g.Modes.Current()
}

// Subscribe registers a listener for a notification type.
func (g *Game) Subscribe(t event.EventType, l event.Listener) (unsubscribe func()) {
	return g.EventDispatcher.Subscribe(t, l)
}

// HoveredHex returns the last board hex the cursor entered.
func (g *Game) HoveredHex() (hexmap.Hex, bool) {
	return g.hovered, g.hasHovered
}

// UnitHex returns the board location of the starting unit.
func (g *Game) UnitHex() (hexmap.Hex, bool) {
	loc, ok := g.ECS.BoardLocs[g.UnitID]
	if !ok {
		return hexmap.Hex{}, false
	}
	return loc.Hex, true
}

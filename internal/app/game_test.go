package app

import (
	"testing"

	"go-hex-tactics/internal/component"
	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/entity"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/state/player"
	"go-hex-tactics/internal/system"
	"go-hex-tactics/pkg/hexmap"
)

const frame = 1.0 / 60

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(config.Default(), nil)
	g.Startup()
	g.Update(frame)
	return g
}

// click clicks hex and runs two ticks so that a requested transition applies.
func click(g *Game, hex hexmap.Hex) {
	g.ClickHex(hex)
	g.Update(frame)
	g.Update(frame)
}

// runUntilIdle ticks until the player is back in Idle.
func runUntilIdle(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 2000; i++ {
		if g.Mode() == player.Idle && !g.ECS.AnyMoving() {
			return
		}
		g.Update(frame)
	}
	t.Fatalf("still in %v after 2000 ticks", g.Mode())
}

func activatedHexes(g *Game) map[hexmap.Hex]bool {
	out := make(map[hexmap.Hex]bool)
	for _, id := range g.ECS.WithFlag(component.Activated) {
		out[g.ECS.HexTiles[id].Hex] = true
	}
	return out
}

// checkOverlays asserts that every flag on a base tile has exactly one
// overlay in its layer, and no other overlays exist.
func checkOverlays(t *testing.T, g *Game) {
	t.Helper()
	for _, b := range system.DefaultBindings {
		flagged := 0
		for _, id := range entity.SortedIDs(g.ECS.BaseHexes) {
			hex := g.ECS.HexTiles[id].Hex
			has := g.ECS.HasFlag(id, b.Flag)
			_, overlay := g.LayerSystem.Overlay(b.Layer, hex)
			if has != overlay {
				t.Errorf("%v at %v: flag=%v overlay=%v", b.Flag, hex, has, overlay)
			}
			if has {
				flagged++
			}
		}
		container, ok := g.ECS.LayerContainer(b.Layer)
		if !ok {
			t.Fatalf("no container for layer %v", b.Layer)
		}
		if n := len(g.ECS.Children(container)); n != flagged {
			t.Errorf("layer %v holds %d overlays, %d tiles flagged", b.Layer, n, flagged)
		}
	}
}

func TestStartup(t *testing.T) {
	g := newTestGame(t)
	if got := len(g.ECS.BaseHexes); got != 91 {
		t.Errorf("got %d base tiles, want 91", got)
	}
	for _, layer := range component.MapLayers {
		if _, ok := g.ECS.LayerContainer(layer); !ok {
			t.Errorf("missing container for %v", layer)
		}
	}
	if hex, ok := g.UnitHex(); !ok || hex != (hexmap.Hex{Q: 1, R: 0}) {
		t.Errorf("unit at %v, want (1,0)", hex)
	}
	if g.Mode() != player.Idle {
		t.Errorf("initial mode %v", g.Mode())
	}
}

func TestScenario_SelectMoveAndArrive(t *testing.T) {
	g := newTestGame(t)
	var modes []player.ModeChange
	var confirmed []event.MoveTargetConfirmed
	g.Subscribe(event.PlayerModeChanged, event.ListenerFunc(func(e event.Event) {
		modes = append(modes, e.Data.(player.ModeChange))
	}))
	g.Subscribe(event.MoveConfirmed, event.ListenerFunc(func(e event.Event) {
		confirmed = append(confirmed, e.Data.(event.MoveTargetConfirmed))
	}))

	unitHex := hexmap.Hex{Q: 1, R: 0}
	target := hexmap.Hex{Q: 3, R: 0}

	click(g, unitHex)
	if g.Mode() != player.UnitSelected {
		t.Fatalf("after clicking the unit: mode %v", g.Mode())
	}
	want := hexmap.FieldOfMovement(unitHex, 4, hexmap.OnBoard(g.HexMap))
	got := activatedHexes(g)
	if len(got) != want.Size() {
		t.Errorf("got %d activated tiles, want %d", len(got), want.Size())
	}
	want.Each(func(h hexmap.Hex) {
		if !got[h] {
			t.Errorf("%v reachable but not activated", h)
		}
	})
	for h := range got {
		if h.Distance(unitHex) > 4 {
			t.Errorf("%v activated but out of range", h)
		}
	}
	checkOverlays(t, g)

	click(g, target)
	tile, ok := g.ECS.MoveTargetTile()
	if !ok || g.ECS.MoveTargets[tile].Hex != target {
		t.Fatalf("move target not set on %v", target)
	}
	if !g.ECS.HasFlag(tile, component.Selected) {
		t.Error("move target tile should be Selected")
	}
	checkOverlays(t, g)

	click(g, target)
	if len(confirmed) != 1 || confirmed[0].From != unitHex || confirmed[0].To != target {
		t.Fatalf("confirmations: %+v", confirmed)
	}
	if g.Mode() != player.UnitMoving {
		t.Fatalf("after confirming: mode %v", g.Mode())
	}
	if len(activatedHexes(g)) != 0 {
		t.Error("activation range should be cleared when leaving UnitSelected")
	}

	runUntilIdle(t, g)
	if hex, _ := g.UnitHex(); hex != target {
		t.Errorf("unit at %v, want %v", hex, target)
	}
	if _, ok := g.ECS.Paths[g.UnitID]; ok {
		t.Error("Path should be removed on arrival")
	}
	pos := g.ECS.Positions[g.UnitID]
	if w := g.Layout.HexToWorld(target); pos.X != w.X || pos.Y != w.Y {
		t.Errorf("unit position %+v not snapped to %+v", pos, w)
	}
	wantModes := []player.ModeChange{
		{From: player.Idle, To: player.UnitSelected},
		{From: player.UnitSelected, To: player.UnitMoving},
		{From: player.UnitMoving, To: player.Idle},
	}
	if len(modes) != len(wantModes) {
		t.Fatalf("mode changes %v, want %v", modes, wantModes)
	}
	for i := range wantModes {
		if modes[i] != wantModes[i] {
			t.Errorf("mode change %d: got %v, want %v", i, modes[i], wantModes[i])
		}
	}
	checkOverlays(t, g)
}

func TestDoubleClick_RaisesOneSignal(t *testing.T) {
	g := newTestGame(t)
	click(g, hexmap.Hex{Q: 1, R: 0})

	newTiles := g.Queues.NewTile.NewReader()
	newTiles.Skip()
	doubles := g.Queues.DoubleClicked.NewReader()
	doubles.Skip()

	// Events live for two ticks, so both readers are drained every tick.
	var gotNew, gotDouble int
	tick := func() {
		g.Update(frame)
		gotNew += len(newTiles.Read())
		gotDouble += len(doubles.Read())
	}

	target := hexmap.Hex{Q: 2, R: 1}
	g.ClickHex(target)
	tick()
	if gotNew != 1 || gotDouble != 0 {
		t.Fatalf("after first click: %d new tile, %d double, want 1 and 0", gotNew, gotDouble)
	}
	g.ClickHex(target)
	tick()
	tick()
	tick()

	if gotNew != 1 {
		t.Errorf("got %d new tile events, want 1", gotNew)
	}
	if gotDouble != 1 {
		t.Errorf("got %d double clicks, want 1", gotDouble)
	}
}

func TestClickOutsideRange_ReturnsToIdle(t *testing.T) {
	tests := []struct {
		name     string
		hex      hexmap.Hex
		offBoard bool
	}{
		{"on the board", hexmap.Hex{Q: -4, R: 0}, false},
		{"off the board", hexmap.Hex{Q: 7, R: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			var violations []event.ClickedOutsideActivationRange
			g.Subscribe(event.ActivationRangeViolated, event.ListenerFunc(func(e event.Event) {
				violations = append(violations, e.Data.(event.ClickedOutsideActivationRange))
			}))

			click(g, hexmap.Hex{Q: 1, R: 0})
			click(g, hexmap.Hex{Q: 2, R: 0})
			click(g, tt.hex)

			if g.Mode() != player.Idle {
				t.Fatalf("mode %v, want Idle", g.Mode())
			}
			if len(activatedHexes(g)) != 0 {
				t.Error("Activated flags remain")
			}
			if len(g.ECS.MoveTargets) != 0 {
				t.Error("move target remains")
			}
			if _, ok := g.ECS.SelectedUnit(); ok {
				t.Error("unit still selected")
			}
			if len(violations) != 1 || violations[0].OffBoard != tt.offBoard {
				t.Errorf("violations: %+v", violations)
			}
			if _, ok := g.TileInputSystem.Tracker().Last(); ok {
				t.Error("click memory should be reset")
			}
			checkOverlays(t, g)
		})
	}
}

func TestDeselectingUnit_ReturnsToIdle(t *testing.T) {
	g := newTestGame(t)
	click(g, hexmap.Hex{Q: 1, R: 0})
	click(g, hexmap.Hex{Q: 1, R: 2})
	if len(g.ECS.MoveTargets) != 1 {
		t.Fatal("expected a move target")
	}

	g.ECS.RemoveFlag(g.UnitID, component.Selected)
	g.Update(frame)
	g.Update(frame)

	if g.Mode() != player.Idle {
		t.Fatalf("mode %v, want Idle", g.Mode())
	}
	if len(activatedHexes(g)) != 0 || len(g.ECS.MoveTargets) != 0 {
		t.Error("activation and move target should be cleared")
	}
	checkOverlays(t, g)
}

func TestIdleClickOnEmptyTile_SelectsTileOnly(t *testing.T) {
	g := newTestGame(t)
	click(g, hexmap.Hex{Q: -2, R: 1})
	if g.Mode() != player.Idle {
		t.Errorf("mode %v, want Idle", g.Mode())
	}
	selected := g.ECS.WithFlag(component.Selected)
	if len(selected) != 1 || g.ECS.HexTiles[selected[0]].Hex != (hexmap.Hex{Q: -2, R: 1}) {
		t.Errorf("selected: %v", selected)
	}

	click(g, hexmap.Hex{Q: 0, R: -1})
	if n := len(g.ECS.WithFlag(component.Selected)); n != 1 {
		t.Errorf("%d tiles selected, want 1", n)
	}
	checkOverlays(t, g)
}

func TestMoveLeft_FlipsSprite(t *testing.T) {
	g := newTestGame(t)
	target := hexmap.Hex{Q: -1, R: 0}
	click(g, hexmap.Hex{Q: 1, R: 0})
	click(g, target)
	click(g, target)

	moving, ok := g.ECS.Movings[g.UnitID]
	if !ok {
		t.Fatal("unit should be moving")
	}
	if moving.Direction != hexmap.BottomLeft {
		t.Errorf("direction %v, want BottomLeft", moving.Direction)
	}
	if !g.ECS.Sprites[g.UnitID].FlipX {
		t.Error("sprite should be mirrored when heading left")
	}
	runUntilIdle(t, g)
	if hex, _ := g.UnitHex(); hex != target {
		t.Errorf("unit at %v, want %v", hex, target)
	}
}

func TestHover_MovesFlag(t *testing.T) {
	g := newTestGame(t)
	a, b := hexmap.Hex{Q: 0, R: 0}, hexmap.Hex{Q: 0, R: 1}
	g.MoveCursor(g.ScreenPos(a))
	g.Update(frame)
	g.MoveCursor(g.ScreenPos(b))
	g.Update(frame)

	hovered := g.ECS.WithFlag(component.Hovered)
	if len(hovered) != 1 || g.ECS.HexTiles[hovered[0]].Hex != b {
		t.Errorf("hovered: %v", hovered)
	}
	if got, ok := g.HoveredHex(); !ok || got != b {
		t.Errorf("HoveredHex: got %v, %v, want %v", got, ok, b)
	}
	// Leaving the board keeps the last hovered tile.
	g.MoveCursor(0, 0)
	g.Update(frame)
	if hovered := g.ECS.WithFlag(component.Hovered); len(hovered) != 1 {
		t.Errorf("hovered after leaving the board: %v", hovered)
	}
	if got, _ := g.HoveredHex(); got != b {
		t.Errorf("HoveredHex after leaving the board: got %v, want %v", got, b)
	}
	checkOverlays(t, g)
}

type memTurnStore struct {
	saved []int
	start int
}

func (m *memTurnStore) LoadTurn() (int, bool, error) {
	return m.start, m.start > 0, nil
}

func (m *memTurnStore) SaveTurn(turn int) error {
	m.saved = append(m.saved, turn)
	return nil
}

func TestTurnButton(t *testing.T) {
	store := &memTurnStore{start: 5}
	g := NewGame(config.Default(), store)
	g.Startup()
	if g.Turns.TurnNumber != 5 {
		t.Fatalf("restored turn %d, want 5", g.Turns.TurnNumber)
	}
	var turns []int
	g.Subscribe(event.TurnAdvanced, event.ListenerFunc(func(e event.Event) {
		turns = append(turns, e.Data.(event.TurnChange).Turn)
	}))

	g.PressTurnButton()
	g.PressTurnButton()
	g.Update(frame)

	if g.Turns.TurnNumber != 7 || len(turns) != 2 || turns[1] != 7 {
		t.Errorf("turn %d, notifications %v", g.Turns.TurnNumber, turns)
	}
	if len(store.saved) != 2 || store.saved[1] != 7 {
		t.Errorf("saved %v", store.saved)
	}
	if g.Mode() != player.Idle {
		t.Error("turns do not affect the player mode")
	}
}

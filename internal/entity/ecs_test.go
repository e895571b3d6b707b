package entity

import (
	"testing"

	"go-hex-tactics/internal/component"
	"go-hex-tactics/pkg/hexmap"
)

func TestFlags_ReportChangesOnce(t *testing.T) {
	ecs := NewECS()
	reader := ecs.FlagChanges.NewReader()
	id := ecs.NewEntity()

	if !ecs.AddFlag(id, component.Selected) {
		t.Fatal("first AddFlag should change state")
	}
	if ecs.AddFlag(id, component.Selected) {
		t.Error("second AddFlag should be a no-op")
	}
	if !ecs.HasFlag(id, component.Selected) {
		t.Error("flag should be present")
	}
	if !ecs.RemoveFlag(id, component.Selected) || ecs.RemoveFlag(id, component.Selected) {
		t.Error("RemoveFlag should change state exactly once")
	}

	got := reader.Read()
	if len(got) != 2 || !got[0].Added || got[1].Added || got[0].Entity != id {
		t.Errorf("unexpected flag events: %+v", got)
	}
}

func TestHierarchy(t *testing.T) {
	ecs := NewECS()
	parent := ecs.NewEntity()
	a, b := ecs.NewEntity(), ecs.NewEntity()
	ecs.SetParent(a, parent)
	ecs.SetParent(b, parent)

	if got := ecs.Children(parent); len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("children: got %v", got)
	}
	ecs.RemoveParent(a)
	if got := ecs.Children(parent); len(got) != 1 || got[0] != b {
		t.Fatalf("children after detach: got %v", got)
	}
	if _, ok := ecs.Parent(a); ok {
		t.Error("a should have no parent")
	}

	ecs.Positions[b] = &component.Position{}
	ecs.Despawn(parent)
	if _, ok := ecs.Positions[b]; ok {
		t.Error("despawning the parent should despawn its children")
	}
}

func TestDespawn_ClearsBaseIndex(t *testing.T) {
	ecs := NewECS()
	tile := ecs.NewEntity()
	ecs.AddBaseTile(tile, hexmap.Hex{Q: 2, R: -1})
	if got, ok := ecs.BaseTileAt(hexmap.Hex{Q: 2, R: -1}); !ok || got != tile {
		t.Fatalf("BaseTileAt: got %v, %v", got, ok)
	}
	ecs.AddFlag(tile, component.Hovered)
	reader := ecs.FlagChanges.NewReader()
	reader.Skip()

	ecs.Despawn(tile)
	if _, ok := ecs.BaseTileAt(hexmap.Hex{Q: 2, R: -1}); ok {
		t.Error("despawned tile still indexed")
	}
	if ev := reader.Read(); len(ev) != 1 || ev[0].Added {
		t.Errorf("despawn should publish flag removal, got %+v", ev)
	}
}

func TestSelectedUnit_IgnoresTiles(t *testing.T) {
	ecs := NewECS()
	tile := ecs.NewEntity()
	ecs.AddBaseTile(tile, hexmap.Hex{})
	ecs.AddFlag(tile, component.Selected)
	if _, ok := ecs.SelectedUnit(); ok {
		t.Fatal("a selected tile is not a selected unit")
	}

	u1, u2 := ecs.NewEntity(), ecs.NewEntity()
	ecs.Units[u1] = &component.Unit{Name: "a"}
	ecs.Units[u2] = &component.Unit{Name: "b"}
	ecs.AddFlag(u2, component.Selected)
	ecs.AddFlag(u1, component.Selected)
	if got, ok := ecs.SelectedUnit(); !ok || got != u1 {
		t.Errorf("SelectedUnit: got %v, %v, want lowest id %v", got, ok, u1)
	}
}

func TestMovementSetters_SuppressNoChange(t *testing.T) {
	ecs := NewECS()
	changes := ecs.MovingChanges.NewReader()
	removals := ecs.MovingRemovals.NewReader()
	id := ecs.NewEntity()

	if !ecs.SetBoardLoc(id, hexmap.Hex{Q: 1}) || ecs.SetBoardLoc(id, hexmap.Hex{Q: 1}) {
		t.Error("SetBoardLoc should only report real changes")
	}

	m := component.Moving{Towards: hexmap.Hex{Q: 2}, Direction: hexmap.TopRight}
	if !ecs.SetMoving(id, m) || ecs.SetMoving(id, m) {
		t.Error("SetMoving should only report real changes")
	}
	path := []hexmap.Hex{{Q: 2}, {Q: 3}}
	if !ecs.SetPath(id, path) || ecs.SetPath(id, path) {
		t.Error("SetPath should only report real changes")
	}
	path[0] = hexmap.Hex{Q: 9}
	if ecs.Paths[id].Hexes[0] != (hexmap.Hex{Q: 2}) {
		t.Error("SetPath must copy the waypoints")
	}
	if got := len(changes.Read()); got != 1 {
		t.Errorf("got %d MovingChanged events, want 1", got)
	}

	if !ecs.RemoveMovement(id) || ecs.RemoveMovement(id) {
		t.Error("RemoveMovement should report removal once")
	}
	if ecs.AnyMoving() {
		t.Error("Moving should be gone")
	}
	ev := removals.Read()
	if len(ev) != 1 || ev[0].At != (hexmap.Hex{Q: 1}) {
		t.Errorf("MovingRemoved: got %+v", ev)
	}
}

func TestQueuesExpireAfterTwoUpdates(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.AddFlag(id, component.Activated)
	ecs.UpdateQueues()
	late := ecs.FlagChanges.NewReader()
	if got := late.Read(); len(got) != 1 {
		t.Fatalf("event should survive one update, got %+v", got)
	}
	ecs.UpdateQueues()
	if ecs.FlagChanges.Len() != 0 {
		t.Error("event should be dropped after the second update")
	}
}

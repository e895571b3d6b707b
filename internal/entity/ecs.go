// internal/entity/ecs.go
package entity

import (
	"slices"

	"go-hex-tactics/internal/component"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/types"
	"go-hex-tactics/pkg/hexmap"

	"github.com/zyedidia/generic/mapset"
)

type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Units       map[types.EntityID]*component.Unit
	Selectables map[types.EntityID]*component.Selectable
	MoveRanges  map[types.EntityID]*component.MoveRange
	BoardLocs   map[types.EntityID]*component.BoardLoc
	HexTiles    map[types.EntityID]*component.HexTile
	BaseHexes   map[types.EntityID]*component.BaseHex
	Layers      map[types.EntityID]*component.Layer
	MoveTargets map[types.EntityID]*component.MoveTarget
	Movings     map[types.EntityID]*component.Moving
	Paths       map[types.EntityID]*component.Path
	Sprites     map[types.EntityID]*component.Sprite
	Names       map[types.EntityID]*component.Name

	// Очереди изменений, читаются реактивными системами.
	FlagChanges    *event.Queue[event.FlagChanged]
	MovingChanges  *event.Queue[event.MovingChanged]
	MovingRemovals *event.Queue[event.MovingRemoved]

	flags    map[component.Flag]mapset.Set[types.EntityID]
	parents  map[types.EntityID]types.EntityID
	children map[types.EntityID][]types.EntityID
	baseAt   map[hexmap.Hex]types.EntityID
}

func NewECS() *ECS {
	ecs := &ECS{
		NextID:         1,
		Positions:      make(map[types.EntityID]*component.Position),
		Units:          make(map[types.EntityID]*component.Unit),
		Selectables:    make(map[types.EntityID]*component.Selectable),
		MoveRanges:     make(map[types.EntityID]*component.MoveRange),
		BoardLocs:      make(map[types.EntityID]*component.BoardLoc),
		HexTiles:       make(map[types.EntityID]*component.HexTile),
		BaseHexes:      make(map[types.EntityID]*component.BaseHex),
		Layers:         make(map[types.EntityID]*component.Layer),
		MoveTargets:    make(map[types.EntityID]*component.MoveTarget),
		Movings:        make(map[types.EntityID]*component.Moving),
		Paths:          make(map[types.EntityID]*component.Path),
		Sprites:        make(map[types.EntityID]*component.Sprite),
		Names:          make(map[types.EntityID]*component.Name),
		FlagChanges:    event.NewQueue[event.FlagChanged](),
		MovingChanges:  event.NewQueue[event.MovingChanged](),
		MovingRemovals: event.NewQueue[event.MovingRemoved](),
		flags:          make(map[component.Flag]mapset.Set[types.EntityID]),
		parents:        make(map[types.EntityID]types.EntityID),
		children:       make(map[types.EntityID][]types.EntityID),
		baseAt:         make(map[hexmap.Hex]types.EntityID),
	}
	for _, f := range component.Flags {
		ecs.flags[f] = mapset.New[types.EntityID]()
	}
	return ecs
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// UpdateQueues advances the change queues by one tick.
func (ecs *ECS) UpdateQueues() {
	ecs.FlagChanges.Update()
	ecs.MovingChanges.Update()
	ecs.MovingRemovals.Update()
}

// --- Flags ---

// AddFlag attaches f to id. Returns false if id already held it.
func (ecs *ECS) AddFlag(id types.EntityID, f component.Flag) bool {
	set := ecs.flags[f]
	if set.Has(id) {
		return false
	}
	set.Put(id)
	ecs.FlagChanges.Send(event.FlagChanged{Entity: id, Flag: f, Added: true})
	return true
}

// RemoveFlag detaches f from id. Returns false if id did not hold it.
func (ecs *ECS) RemoveFlag(id types.EntityID, f component.Flag) bool {
	set := ecs.flags[f]
	if !set.Has(id) {
		return false
	}
	set.Remove(id)
	ecs.FlagChanges.Send(event.FlagChanged{Entity: id, Flag: f, Added: false})
	return true
}

func (ecs *ECS) HasFlag(id types.EntityID, f component.Flag) bool {
	return ecs.flags[f].Has(id)
}

// WithFlag returns every entity holding f in ascending id order.
func (ecs *ECS) WithFlag(f component.Flag) []types.EntityID {
	ids := make([]types.EntityID, 0, ecs.flags[f].Size())
	ecs.flags[f].Each(func(id types.EntityID) {
		ids = append(ids, id)
	})
	slices.Sort(ids)
	return ids
}

// --- Hierarchy ---

// SetParent attaches child under parent, detaching it from any previous parent.
func (ecs *ECS) SetParent(child, parent types.EntityID) {
	ecs.RemoveParent(child)
	ecs.parents[child] = parent
	ecs.children[parent] = append(ecs.children[parent], child)
}

// RemoveParent detaches child from its parent, if any.
func (ecs *ECS) RemoveParent(child types.EntityID) {
	parent, ok := ecs.parents[child]
	if !ok {
		return
	}
	delete(ecs.parents, child)
	siblings := ecs.children[parent]
	if i := slices.Index(siblings, child); i >= 0 {
		siblings = slices.Delete(siblings, i, i+1)
	}
	if len(siblings) == 0 {
		delete(ecs.children, parent)
	} else {
		ecs.children[parent] = siblings
	}
}

func (ecs *ECS) Parent(child types.EntityID) (types.EntityID, bool) {
	p, ok := ecs.parents[child]
	return p, ok
}

// Children returns a copy of parent's children in insertion order.
func (ecs *ECS) Children(parent types.EntityID) []types.EntityID {
	return slices.Clone(ecs.children[parent])
}

// Despawn removes id, its components and flags, and recursively its children.
func (ecs *ECS) Despawn(id types.EntityID) {
	for _, child := range ecs.Children(id) {
		ecs.Despawn(child)
	}
	ecs.RemoveParent(id)
	for _, f := range component.Flags {
		ecs.RemoveFlag(id, f)
	}
	if tile, ok := ecs.HexTiles[id]; ok {
		if base, ok := ecs.baseAt[tile.Hex]; ok && base == id {
			delete(ecs.baseAt, tile.Hex)
		}
	}
	delete(ecs.Positions, id)
	delete(ecs.Units, id)
	delete(ecs.Selectables, id)
	delete(ecs.MoveRanges, id)
	delete(ecs.BoardLocs, id)
	delete(ecs.HexTiles, id)
	delete(ecs.BaseHexes, id)
	delete(ecs.Layers, id)
	delete(ecs.MoveTargets, id)
	delete(ecs.Movings, id)
	delete(ecs.Paths, id)
	delete(ecs.Sprites, id)
	delete(ecs.Names, id)
}

// --- Tiles ---

// AddBaseTile marks id as the base tile of hex.
func (ecs *ECS) AddBaseTile(id types.EntityID, hex hexmap.Hex) {
	ecs.HexTiles[id] = &component.HexTile{Hex: hex}
	ecs.BaseHexes[id] = &component.BaseHex{}
	ecs.baseAt[hex] = id
}

// BaseTileAt finds the base tile of hex.
func (ecs *ECS) BaseTileAt(hex hexmap.Hex) (types.EntityID, bool) {
	id, ok := ecs.baseAt[hex]
	return id, ok
}

func (ecs *ECS) IsBaseTile(id types.EntityID) bool {
	_, ok := ecs.BaseHexes[id]
	return ok
}

// MoveTargetTile returns the tile carrying the move target designation.
func (ecs *ECS) MoveTargetTile() (types.EntityID, bool) {
	ids := SortedIDs(ecs.MoveTargets)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

// LayerContainer finds the container entity of layer.
func (ecs *ECS) LayerContainer(layer component.MapLayer) (types.EntityID, bool) {
	for _, id := range SortedIDs(ecs.Layers) {
		if ecs.Layers[id].Type == layer {
			return id, true
		}
	}
	return 0, false
}

// --- Units ---

// SelectedUnit returns the unit holding Selected. Lowest id wins if more
// than one does.
func (ecs *ECS) SelectedUnit() (types.EntityID, bool) {
	for _, id := range ecs.WithFlag(component.Selected) {
		if _, ok := ecs.Units[id]; ok {
			return id, true
		}
	}
	return 0, false
}

// UnitAt returns the unit standing on hex.
func (ecs *ECS) UnitAt(hex hexmap.Hex) (types.EntityID, bool) {
	for _, id := range SortedIDs(ecs.Units) {
		if loc, ok := ecs.BoardLocs[id]; ok && loc.Hex == hex {
			return id, true
		}
	}
	return 0, false
}

// SetBoardLoc writes the board location only if it differs.
func (ecs *ECS) SetBoardLoc(id types.EntityID, hex hexmap.Hex) bool {
	if loc, ok := ecs.BoardLocs[id]; ok && loc.Hex == hex {
		return false
	}
	ecs.BoardLocs[id] = &component.BoardLoc{Hex: hex}
	return true
}

// SetMoving inserts or updates Moving; MovingChanged is published only on
// an actual change.
func (ecs *ECS) SetMoving(id types.EntityID, m component.Moving) bool {
	if cur, ok := ecs.Movings[id]; ok && *cur == m {
		return false
	}
	ecs.Movings[id] = &m
	ecs.MovingChanges.Send(event.MovingChanged{Entity: id})
	return true
}

// SetPath replaces the path only if the waypoints differ.
func (ecs *ECS) SetPath(id types.EntityID, hexes []hexmap.Hex) bool {
	next := component.Path{Hexes: slices.Clone(hexes)}
	if cur, ok := ecs.Paths[id]; ok && cur.Equal(next) {
		return false
	}
	ecs.Paths[id] = &next
	return true
}

// RemoveMovement drops Moving and Path together and publishes MovingRemoved.
func (ecs *ECS) RemoveMovement(id types.EntityID) bool {
	_, moving := ecs.Movings[id]
	_, path := ecs.Paths[id]
	if !moving && !path {
		return false
	}
	delete(ecs.Movings, id)
	delete(ecs.Paths, id)
	var at hexmap.Hex
	if loc, ok := ecs.BoardLocs[id]; ok {
		at = loc.Hex
	}
	ecs.MovingRemovals.Send(event.MovingRemoved{Entity: id, At: at})
	return true
}

// AnyMoving reports whether some entity carries Moving.
func (ecs *ECS) AnyMoving() bool {
	return len(ecs.Movings) > 0
}

// SortedIDs returns the keys of a component map in ascending order, so that
// systems iterate deterministically.
func SortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

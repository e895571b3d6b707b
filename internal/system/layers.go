// internal/system/layers.go
package system

import (
	"go-hex-tactics/internal/component"
	"go-hex-tactics/internal/entity"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/types"
	"go-hex-tactics/pkg/hexmap"
)

// LayerBinding ties a logical flag to the overlay layer that shows it.
type LayerBinding struct {
	Flag  component.Flag
	Layer component.MapLayer
}

// DefaultBindings lists every flag mirrored on the board.
var DefaultBindings = []LayerBinding{
	{Flag: component.Selected, Layer: component.LayerSelected},
	{Flag: component.Hovered, Layer: component.LayerHovered},
	{Flag: component.Activated, Layer: component.LayerActivated},
}

// LayerSystem keeps overlay tiles in step with flags on base tiles: an
// overlay exists in a layer iff the base tile of its hex holds the flag.
type LayerSystem struct {
	ecs      *entity.ECS
	bindings map[component.Flag]component.MapLayer
	changes  *event.Reader[event.FlagChanged]
}

func NewLayerSystem(ecs *entity.ECS, bindings []LayerBinding) *LayerSystem {
	m := make(map[component.Flag]component.MapLayer, len(bindings))
	for _, b := range bindings {
		m[b.Flag] = b.Layer
	}
	return &LayerSystem{ecs: ecs, bindings: m, changes: ecs.FlagChanges.NewReader()}
}

type flagKey struct {
	tile types.EntityID
	flag component.Flag
}

func (s *LayerSystem) Update(deltaTime float64) {
	// Собираем изменения за тик, затем применяем итоговое состояние.
	seen := make(map[flagKey]bool)
	var diff []flagKey
	for _, ch := range s.changes.Read() {
		key := flagKey{tile: ch.Entity, flag: ch.Flag}
		if seen[key] {
			continue
		}
		seen[key] = true
		diff = append(diff, key)
	}
	for _, key := range diff {
		layer, bound := s.bindings[key.flag]
		if !bound {
			continue
		}
		s.sync(key.tile, key.flag, layer)
	}
}

func (s *LayerSystem) sync(tile types.EntityID, flag component.Flag, layer component.MapLayer) {
	container, ok := s.ecs.LayerContainer(layer)
	if !ok {
		return
	}
	hexTile, ok := s.ecs.HexTiles[tile]
	if !ok || !s.ecs.IsBaseTile(tile) {
		return
	}
	overlay, exists := s.Overlay(layer, hexTile.Hex)
	want := s.ecs.HasFlag(tile, flag)
	switch {
	case want && !exists:
		s.spawnOverlay(container, tile, hexTile.Hex, layer)
	case !want && exists:
		s.ecs.RemoveParent(overlay)
		s.ecs.Despawn(overlay)
	}
}

// Overlay finds the overlay tile of hex in layer.
func (s *LayerSystem) Overlay(layer component.MapLayer, hex hexmap.Hex) (types.EntityID, bool) {
	container, ok := s.ecs.LayerContainer(layer)
	if !ok {
		return 0, false
	}
	for _, child := range s.ecs.Children(container) {
		if t, ok := s.ecs.HexTiles[child]; ok && t.Hex == hex {
			return child, true
		}
	}
	return 0, false
}

func (s *LayerSystem) spawnOverlay(container, base types.EntityID, hex hexmap.Hex, layer component.MapLayer) {
	id := s.ecs.NewEntity()
	s.ecs.HexTiles[id] = &component.HexTile{Hex: hex}
	pos := component.Position{Z: layer.Depth()}
	if basePos, ok := s.ecs.Positions[base]; ok {
		pos.X, pos.Y = basePos.X, basePos.Y
	}
	s.ecs.Positions[id] = &pos
	s.ecs.Sprites[id] = &component.Sprite{Texture: layer.Texture()}
	s.ecs.SetParent(id, container)
}

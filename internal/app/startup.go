// internal/app/startup.go
package app

import (
	"log"

	"go-hex-tactics/internal/component"
	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/types"
	"go-hex-tactics/pkg/hexmap"
)

const (
	unitDepth   = 10.0
	unitTexture = "unit.png"
)

// SpawnBoard creates the base layer container and one base tile per board hex.
func (g *Game) SpawnBoard() {
	container := g.spawnLayer(component.LayerBase)
	for _, hex := range g.HexMap.Hexes() {
		id := g.ECS.NewEntity()
		g.ECS.AddBaseTile(id, hex)
		p := g.Layout.HexToWorld(hex)
		g.ECS.Positions[id] = &component.Position{X: p.X, Y: p.Y, Z: component.LayerBase.Depth()}
		g.ECS.Sprites[id] = &component.Sprite{Texture: component.LayerBase.Texture()}
		g.ECS.SetParent(id, container)
	}
	log.Printf("[Startup] Board: %d tiles", g.HexMap.Len())
}

// SpawnLayers creates one empty container per overlay layer.
func (g *Game) SpawnLayers() {
	for _, layer := range component.MapLayers {
		if layer == component.LayerBase {
			continue
		}
		g.spawnLayer(layer)
	}
}

func (g *Game) spawnLayer(layer component.MapLayer) types.EntityID {
	if id, ok := g.ECS.LayerContainer(layer); ok {
		return id
	}
	id := g.ECS.NewEntity()
	g.ECS.Layers[id] = &component.Layer{Type: layer}
	g.ECS.Names[id] = &component.Name{Value: layer.String() + " layer"}
	return id
}

// SpawnUnit places a selectable unit on the board.
func (g *Game) SpawnUnit(us config.UnitSettings) types.EntityID {
	hex := hexmap.Hex{Q: us.Q, R: us.R}
	if !g.HexMap.Contains(hex) {
		log.Printf("[Startup] Warning: unit %q spawned off the board at %v", us.Name, hex)
	}
	id := g.ECS.NewEntity()
	g.ECS.Units[id] = &component.Unit{Name: us.Name, Health: us.Health}
	g.ECS.Selectables[id] = &component.Selectable{}
	g.ECS.MoveRanges[id] = &component.MoveRange{Value: us.MoveRange}
	g.ECS.SetBoardLoc(id, hex)
	p := g.Layout.HexToWorld(hex)
	g.ECS.Positions[id] = &component.Position{X: p.X, Y: p.Y, Z: unitDepth}
	g.ECS.Sprites[id] = &component.Sprite{Texture: unitTexture}
	g.ECS.Names[id] = &component.Name{Value: us.Name}
	return id
}

package component

import "go-hex-tactics/pkg/hexmap"

// HexTile identifies a rendered tile, base or overlay, by its hex.
type HexTile struct {
	Hex hexmap.Hex
}

// BaseHex marks tiles of the base layer, one per board hex.
type BaseHex struct{}

// MoveTarget designates the pending destination of the selected unit.
type MoveTarget struct {
	Hex hexmap.Hex
}

// Layer marks a layer container entity.
type Layer struct {
	Type MapLayer
}

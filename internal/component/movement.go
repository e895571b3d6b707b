// component/movement.go
package component

import "go-hex-tactics/pkg/hexmap"

// Position — мировая позиция сущности. Z is the stacking depth.
type Position struct {
	X, Y, Z float64
}

// BoardLoc is the hex a unit logically occupies.
type BoardLoc struct {
	Hex hexmap.Hex
}

// MoveRange — запас хода юнита в гексах
type MoveRange struct {
	Value int
}

// Moving marks a unit in transit towards the next waypoint.
type Moving struct {
	Towards   hexmap.Hex
	Direction hexmap.Direction
}

// Path — оставшиеся точки маршрута. Hexes[0] is always Moving.Towards.
type Path struct {
	Hexes []hexmap.Hex
}

// Equal reports whether both paths hold the same waypoints.
func (p Path) Equal(other Path) bool {
	if len(p.Hexes) != len(other.Hexes) {
		return false
	}
	for i := range p.Hexes {
		if p.Hexes[i] != other.Hexes[i] {
			return false
		}
	}
	return true
}

// pkg/hexmap/hex.go
package hexmap

import "fmt"

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q, R int
}

func (h Hex) String() string {
	return fmt.Sprintf("%d,%d", h.Q, h.R)
}

// S returns the third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// Neighbor returns the adjacent hex in the given direction.
func (h Hex) Neighbor(dir Direction) Hex {
	return h.Add(dir.Offset())
}

// AllPossibleNeighbors возвращает всех возможных соседей гекса, в порядке Directions
func (h Hex) AllPossibleNeighbors() []Hex {
	neighbors := make([]Hex, 0, len(Directions))
	for _, dir := range Directions {
		neighbors = append(neighbors, h.Neighbor(dir))
	}
	return neighbors
}

// NeighborDirection returns the direction leading from h to other.
// ok is false when the two hexes are not adjacent.
func (h Hex) NeighborDirection(other Hex) (Direction, bool) {
	offset := other.Subtract(h)
	for _, dir := range Directions {
		if dir.Offset() == offset {
			return dir, true
		}
	}
	return 0, false
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{
		Q: h.Q + other.Q,
		R: h.R + other.R,
	}
}

// Subtract возвращает разность двух гексов
func (h Hex) Subtract(other Hex) Hex {
	return Hex{
		Q: h.Q - other.Q,
		R: h.R - other.R,
	}
}

// Scale multiplies a hex vector by a scalar.
func (h Hex) Scale(factor int) Hex {
	return Hex{h.Q * factor, h.R * factor}
}

// Length is the distance from the origin.
func (h Hex) Length() int {
	return (abs(h.Q) + abs(h.R) + abs(h.S())) / 2
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	return h.Subtract(to).Length()
}

// Less orders hexes by Q, then R. Used wherever iteration order must be stable.
func (h Hex) Less(other Hex) bool {
	if h.Q != other.Q {
		return h.Q < other.Q
	}
	return h.R < other.R
}

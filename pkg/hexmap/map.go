// pkg/hexmap/map.go
package hexmap

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// HexMap is the board registry: the set of hexes that make up the playable
// grid. It is filled once at startup and only read afterwards.
type HexMap struct {
	tiles  mapset.Set[Hex]
	sorted []Hex
}

// NewHexMap builds a registry from an explicit list of hexes.
func NewHexMap(hexes ...Hex) *HexMap {
	tiles := mapset.New[Hex]()
	for _, h := range hexes {
		tiles.Put(h)
	}
	hm := &HexMap{tiles: tiles}
	hm.sortHexes()
	return hm
}

// NewHexagon builds a hexagon-shaped board of the given radius.
func NewHexagon(center Hex, radius int) *HexMap {
	tiles := mapset.New[Hex]()

	// Генерация базовой карты
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			tiles.Put(center.Add(Hex{q, r}))
		}
	}

	hm := &HexMap{tiles: tiles}
	hm.sortHexes()
	return hm
}

func (hm *HexMap) sortHexes() {
	hm.sorted = make([]Hex, 0, hm.tiles.Size())
	hm.tiles.Each(func(h Hex) {
		hm.sorted = append(hm.sorted, h)
	})
	sort.Slice(hm.sorted, func(i, j int) bool {
		return hm.sorted[i].Less(hm.sorted[j])
	})
}

// Contains reports whether h is part of the board.
func (hm *HexMap) Contains(h Hex) bool {
	return hm.tiles.Has(h)
}

// Len returns the number of hexes on the board.
func (hm *HexMap) Len() int {
	return hm.tiles.Size()
}

// Hexes returns all hexes in a stable order. The slice must not be modified.
func (hm *HexMap) Hexes() []Hex {
	return hm.sorted
}

// IsPassable reports whether units may step on h.
func (hm *HexMap) IsPassable(h Hex) bool {
	return hm.Contains(h)
}

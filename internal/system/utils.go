// internal/system/utils.go
package system

import (
	"math"
	"slices"

	"go-hex-tactics/internal/utils"
	"go-hex-tactics/pkg/hexmap"
)

func sortHexes(hexes []hexmap.Hex) {
	slices.SortFunc(hexes, func(a, b hexmap.Hex) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
}

// arrived reports whether p reached target, comparing rounded coordinates.
func arrived(p, target hexmap.Vec2) bool {
	if utils.RoundedEqual(p.X, target.X) && utils.RoundedEqual(p.Y, target.Y) {
		return true
	}
	return math.Hypot(target.X-p.X, target.Y-p.Y) < 1e-3
}

package component

// MapLayer enumerates the rendering layers of the board.
type MapLayer int

const (
	LayerBase MapLayer = iota
	LayerActivated
	LayerSelected
	LayerHovered
)

// MapLayers lists every layer, base first.
var MapLayers = []MapLayer{LayerBase, LayerHovered, LayerActivated, LayerSelected}

// ID returns the numeric stacking order of the layer.
func (l MapLayer) ID() int {
	return int(l)
}

// Depth is the z value tiles of this layer are drawn at.
func (l MapLayer) Depth() float64 {
	return float64(l)
}

// Texture returns the image file used for tiles of this layer.
func (l MapLayer) Texture() string {
	switch l {
	case LayerActivated:
		return "activated-tile.png"
	case LayerSelected:
		return "selected-tile.png"
	case LayerHovered:
		return "hovered-tile.png"
	}
	return "grass-tile.png"
}

func (l MapLayer) String() string {
	switch l {
	case LayerBase:
		return "Base"
	case LayerActivated:
		return "Activated"
	case LayerSelected:
		return "Selected"
	case LayerHovered:
		return "Hovered"
	}
	return "Unknown"
}

// MapLayerFromID is the inverse of ID.
func MapLayerFromID(id int) (MapLayer, bool) {
	if id < int(LayerBase) || id > int(LayerHovered) {
		return 0, false
	}
	return MapLayer(id), true
}

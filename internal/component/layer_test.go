package component

import "testing"

func TestMapLayer_Stacking(t *testing.T) {
	want := map[MapLayer]int{
		LayerBase:      0,
		LayerActivated: 1,
		LayerSelected:  2,
		LayerHovered:   3,
	}
	for layer, id := range want {
		if layer.ID() != id {
			t.Errorf("%v: got id %d, want %d", layer, layer.ID(), id)
		}
		if layer.Depth() != float64(id) {
			t.Errorf("%v: got depth %v, want %d", layer, layer.Depth(), id)
		}
		back, ok := MapLayerFromID(id)
		if !ok || back != layer {
			t.Errorf("MapLayerFromID(%d): got %v, %v", id, back, ok)
		}
	}
	if _, ok := MapLayerFromID(4); ok {
		t.Error("id 4 should not map to a layer")
	}
}

func TestMapLayer_TexturesDistinct(t *testing.T) {
	seen := make(map[string]MapLayer)
	for _, layer := range MapLayers {
		tex := layer.Texture()
		if other, dup := seen[tex]; dup {
			t.Errorf("%v and %v share texture %q", layer, other, tex)
		}
		seen[tex] = layer
	}
}

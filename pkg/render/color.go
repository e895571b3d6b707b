// pkg/render/color.go
package render

import (
	"image/color"

	"go-hex-tactics/internal/component"
)

// MapColors holds the fallback colours used when a tile texture is missing.
type MapColors struct {
	BackgroundColor color.RGBA
	BaseTileColor   color.RGBA
	ActivatedColor  color.RGBA
	SelectedColor   color.RGBA
	HoveredColor    color.RGBA
	StrokeColor     color.RGBA
	UnitColor       color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// ForTexture maps a tile texture name to its fallback fill colour.
func (c *MapColors) ForTexture(texture string) color.RGBA {
	switch texture {
	case component.LayerActivated.Texture():
		return c.ActivatedColor
	case component.LayerSelected.Texture():
		return c.SelectedColor
	case component.LayerHovered.Texture():
		return c.HoveredColor
	}
	return c.BaseTileColor
}

// TextColorOn picks a readable label colour for the given background.
func (c *MapColors) TextColorOn(bg color.RGBA) color.RGBA {
	if (int(bg.R)+int(bg.G)+int(bg.B))/3 > 128 {
		return c.TextDarkColor
	}
	return c.TextLightColor
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

package render

import (
	"fmt"
	"image/color"
	_ "image/png"
	"log"
	"path/filepath"
	"slices"

	"go-hex-tactics/internal/entity"
	"go-hex-tactics/internal/resource"
	"go-hex-tactics/internal/types"
	"go-hex-tactics/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HexRenderer draws tiles, overlays and units from the ECS, back to front
// by depth. Textures come from the asset directory; missing ones are drawn
// as flat hexes in the fallback colours.
type HexRenderer struct {
	ecs      *entity.ECS
	layout   hexmap.Layout
	camera   *resource.Camera
	colors   *MapColors
	assetDir string

	textures map[string]*ebiten.Image // nil значение: файла нет, рисуем вектором
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
	face     text.Face

	ShowLabels bool
}

func NewHexRenderer(ecs *entity.ECS, layout hexmap.Layout, camera *resource.Camera, assetDir string, colors *MapColors) *HexRenderer {
	fillImg := ebiten.NewImage(3, 3)
	fillImg.Fill(color.White)

	return &HexRenderer{
		ecs:        ecs,
		layout:     layout,
		camera:     camera,
		colors:     colors,
		assetDir:   assetDir,
		textures:   make(map[string]*ebiten.Image),
		fillImg:    fillImg,
		fillVs:     make([]ebiten.Vertex, 0, 18),
		fillIs:     make([]uint16, 0, 18),
		strokeVs:   make([]ebiten.Vertex, 0, 36),
		strokeIs:   make([]uint16, 0, 36),
		face:       text.NewGoXFace(basicfont.Face7x13),
		ShowLabels: true,
	}
}

// texture returns the cached image for name, loading it on first use.
func (r *HexRenderer) texture(name string) *ebiten.Image {
	if img, ok := r.textures[name]; ok {
		return img
	}
	path := filepath.Join(r.assetDir, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Printf("[HexRenderer] Texture %s not loaded, using fallback: %v", path, err)
	}
	r.textures[name] = img
	return img
}

func (r *HexRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.colors.BackgroundColor)

	for _, id := range r.drawOrder() {
		sprite := r.ecs.Sprites[id]
		pos := r.ecs.Positions[id]
		if tile, isTile := r.ecs.HexTiles[id]; isTile {
			r.drawTile(screen, tile.Hex, sprite.Texture)
			if r.ShowLabels && r.ecs.IsBaseTile(id) {
				r.drawLabel(screen, tile.Hex, sprite.Texture)
			}
			continue
		}
		if _, isUnit := r.ecs.Units[id]; isUnit {
			r.drawUnit(screen, hexmap.Vec2{X: pos.X, Y: pos.Y}, sprite.Texture, sprite.FlipX)
		}
	}
}

// drawOrder sorts drawable entities by depth, then by id.
func (r *HexRenderer) drawOrder() []types.EntityID {
	ids := make([]types.EntityID, 0, len(r.ecs.Sprites))
	for id := range r.ecs.Sprites {
		if _, ok := r.ecs.Positions[id]; ok {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, func(a, b types.EntityID) int {
		za, zb := r.ecs.Positions[a].Z, r.ecs.Positions[b].Z
		switch {
		case za < zb:
			return -1
		case za > zb:
			return 1
		}
		return int(a) - int(b)
	})
	return ids
}

func (r *HexRenderer) drawTile(screen *ebiten.Image, hex hexmap.Hex, texture string) {
	if img := r.texture(texture); img != nil {
		r.drawImageAt(screen, img, r.layout.HexToWorld(hex), 2*r.layout.HexSize.X, false)
		return
	}

	path := r.hexPath(hex)
	fill := r.colors.ForTexture(texture)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paintVertices(r.fillVs, fill)
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.colors.StrokeWidth,
	})
	paintVertices(r.strokeVs, r.colors.StrokeColor)
	screen.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) hexPath(hex hexmap.Hex) *vector.Path {
	path := &vector.Path{}
	for i, c := range r.layout.Corners(hex) {
		sx, sy := r.camera.WorldToScreen(c)
		if i == 0 {
			path.MoveTo(float32(sx), float32(sy))
		} else {
			path.LineTo(float32(sx), float32(sy))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) drawLabel(screen *ebiten.Image, hex hexmap.Hex, texture string) {
	sx, sy := r.camera.WorldToScreen(r.layout.HexToWorld(hex))
	op := &text.DrawOptions{}
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(r.colors.TextColorOn(r.colors.ForTexture(texture)))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, fmt.Sprintf("%d,%d", hex.Q, hex.R), r.face, op)
}

func (r *HexRenderer) drawUnit(screen *ebiten.Image, p hexmap.Vec2, texture string, flipX bool) {
	if img := r.texture(texture); img != nil {
		r.drawImageAt(screen, img, p, 1.2*r.layout.HexSize.Y*2, flipX)
		return
	}
	sx, sy := r.camera.WorldToScreen(p)
	radius := float32(r.layout.HexSize.Y * 0.7 * r.camera.Zoom)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), radius+2, DarkenColor(r.colors.UnitColor), true)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), radius, r.colors.UnitColor, true)

	// Нос юнита показывает, куда он смотрит
	facing := float32(1)
	if flipX {
		facing = -1
	}
	vector.StrokeLine(screen, float32(sx), float32(sy), float32(sx)+facing*radius*1.4, float32(sy), r.colors.StrokeWidth, r.colors.TextLightColor, true)
}

// drawImageAt draws img centred at the world point p, scaled to width world
// units and mirrored horizontally when flipX is set.
func (r *HexRenderer) drawImageAt(screen, img *ebiten.Image, p hexmap.Vec2, width float64, flipX bool) {
	b := img.Bounds()
	scale := width * r.camera.Zoom / float64(b.Dx())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	if flipX {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Scale(scale, scale)
	sx, sy := r.camera.WorldToScreen(p)
	op.GeoM.Translate(sx, sy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}

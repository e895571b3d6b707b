// component/render.go
package component

// Sprite — компонент для отрисовки
type Sprite struct {
	Texture string
	FlipX   bool
}

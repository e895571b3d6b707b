package hexmap

// Vec2 is a point or size in world space.
type Vec2 struct {
	X, Y float64
}

// Layout converts between axial coordinates and world positions for
// flat-topped hexes. World y grows upwards.
type Layout struct {
	HexSize Vec2
	Origin  Vec2
}

// NewLayout returns a flat layout centred on the world origin.
func NewLayout(sizeX, sizeY float64) Layout {
	return Layout{HexSize: Vec2{X: sizeX, Y: sizeY}}
}

// HexToWorld returns the world position of the centre of h.
func (l Layout) HexToWorld(h Hex) Vec2 {
	q, r := float64(h.Q), float64(h.R)
	return Vec2{
		X: l.Origin.X + l.HexSize.X*(3.0/2.0*q),
		Y: l.Origin.Y + l.HexSize.Y*(Sqrt3/2*q+Sqrt3*r),
	}
}

// WorldToHex returns the hex containing the world position p.
func (l Layout) WorldToHex(p Vec2) Hex {
	x := (p.X - l.Origin.X) / l.HexSize.X
	y := (p.Y - l.Origin.Y) / l.HexSize.Y
	q := 2.0 / 3.0 * x
	r := -1.0/3.0*x + Sqrt3/3*y
	return axialRound(q, r)
}

// Corners returns the six corners of h in world space, starting at the
// right-hand corner and going counter-clockwise.
func (l Layout) Corners(h Hex) [6]Vec2 {
	center := l.HexToWorld(h)
	var corners [6]Vec2
	for i := 0; i < 6; i++ {
		cos, sin := cornerCos[i], cornerSin[i]
		corners[i] = Vec2{
			X: center.X + l.HexSize.X*cos,
			Y: center.Y + l.HexSize.Y*sin,
		}
	}
	return corners
}

// cos/sin of 0°, 60°, ... 300°
var (
	cornerCos = [6]float64{1, 0.5, -0.5, -1, -0.5, 0.5}
	cornerSin = [6]float64{0, Sqrt3 / 2, Sqrt3 / 2, 0, -Sqrt3 / 2, -Sqrt3 / 2}
)

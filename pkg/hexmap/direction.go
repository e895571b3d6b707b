package hexmap

// Direction is one of the six neighbor directions of a flat-topped hex.
type Direction int

const (
	TopRight Direction = iota
	Top
	TopLeft
	BottomLeft
	Bottom
	BottomRight
)

// Directions lists every direction counter-clockwise starting at TopRight.
var Directions = [6]Direction{TopRight, Top, TopLeft, BottomLeft, Bottom, BottomRight}

// Axial offsets for a flat-topped layout with world y pointing up.
var directionOffsets = [6]Hex{
	TopRight:    {Q: 1, R: 0},
	Top:         {Q: 0, R: 1},
	TopLeft:     {Q: -1, R: 1},
	BottomLeft:  {Q: -1, R: 0},
	Bottom:      {Q: 0, R: -1},
	BottomRight: {Q: 1, R: -1},
}

// Offset returns the axial vector of the direction.
func (d Direction) Offset() Hex {
	if d < 0 || int(d) >= len(directionOffsets) {
		return Hex{}
	}
	return directionOffsets[d]
}

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return Direction((int(d) + 3) % 6)
}

func (d Direction) String() string {
	switch d {
	case TopRight:
		return "TopRight"
	case Top:
		return "Top"
	case TopLeft:
		return "TopLeft"
	case BottomLeft:
		return "BottomLeft"
	case Bottom:
		return "Bottom"
	case BottomRight:
		return "BottomRight"
	}
	return "Unknown"
}

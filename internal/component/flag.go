package component

// Flag is a logical presence flag. An entity either holds it or not.
type Flag int

const (
	Hovered Flag = iota
	Selected
	Activated
)

// Flags lists every flag.
var Flags = []Flag{Hovered, Selected, Activated}

func (f Flag) String() string {
	switch f {
	case Hovered:
		return "Hovered"
	case Selected:
		return "Selected"
	case Activated:
		return "Activated"
	}
	return "Unknown"
}

package vlist

// Direction indicates which way the scroll position moved.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp             // Offset decreased (content moved down)
	DirectionDown           // Offset increased (content moved up)
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// ScrollEvent describes one scroll position change, fired on every change
// whether driven by the user or by the list's own animation.
type ScrollEvent struct {
	Offset       float32
	Direction    Direction
	Programmatic bool // True when the change came from ScrollToItem animation
}

// directionOf classifies the movement between two offsets.
func directionOf(from, to float32) Direction {
	switch {
	case to > from:
		return DirectionDown
	case to < from:
		return DirectionUp
	default:
		return DirectionNone
	}
}

package geometry

// Orientation values from _NET_DESKTOP_LAYOUT.
const (
	OrientationHorizontal = 0
	OrientationVertical   = 1
)

// Starting corner values from _NET_DESKTOP_LAYOUT.
const (
	CornerTopLeft     = 0
	CornerTopRight    = 1
	CornerBottomRight = 2
	CornerBottomLeft  = 3
)

// Layout describes a desktop or viewport grid as set by a pager.
type Layout struct {
	Cols        int
	Rows        int
	Orientation int
	Corner      int
}

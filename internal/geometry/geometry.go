package geometry

import "fmt"

// Position is a point in root-window coordinates.
type Position struct {
	X int
	Y int
}

// Geometry is a rectangle. X and Y always store the top-left corner; the
// gravity given at construction or repositioning time only decides how the
// incoming point is interpreted.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// New builds a Geometry anchored at the given gravity. A nil gravity means
// (x, y) is the top-left corner.
func New(x, y, width, height int, gravity *Gravity) Geometry {
	geo := Geometry{X: x, Y: y, Width: width, Height: height}
	if gravity != nil {
		geo.SetPosition(x, y, *gravity)
	}
	return geo
}

// X2 returns the right edge coordinate.
func (g Geometry) X2() int { return g.X + g.Width }

// Y2 returns the bottom edge coordinate.
func (g Geometry) Y2() int { return g.Y + g.Height }

// Area returns the rectangle area, 0 for empty rectangles.
func (g Geometry) Area() int {
	if g.IsEmpty() {
		return 0
	}
	return g.Width * g.Height
}

// IsEmpty reports whether the rectangle covers no pixels.
func (g Geometry) IsEmpty() bool { return g.Width <= 0 || g.Height <= 0 }

// SetPosition moves the rectangle so the point of it selected by gravity
// lands on (x, y). Gravity (1, 1) means (x, y) is the bottom-right corner.
func (g *Geometry) SetPosition(x, y int, gravity Gravity) {
	g.X = x - int(float64(g.Width)*gravity.X)
	g.Y = y - int(float64(g.Height)*gravity.Y)
}

// Intersect returns the overlapping rectangle of g and other. A zero
// Geometry is returned when they are disjoint.
func (g Geometry) Intersect(other Geometry) Geometry {
	x1 := max(g.X, other.X)
	y1 := max(g.Y, other.Y)
	x2 := min(g.X2(), other.X2())
	y2 := min(g.Y2(), other.Y2())
	if x2 <= x1 || y2 <= y1 {
		return Geometry{}
	}
	return Geometry{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

func (g Geometry) String() string {
	return fmt.Sprintf("Geometry(%d, %d, %d, %d)", g.X, g.Y, g.Width, g.Height)
}

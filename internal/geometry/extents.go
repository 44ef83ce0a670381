package geometry

import "fmt"

// Extents is the pixel thickness of window-manager decorations around a
// client area. A nil *Extents means the decorations are unknown — the four
// fields are never partially populated.
type Extents struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// Horizontal returns the combined left and right thickness, 0 when unknown.
func (e *Extents) Horizontal() int {
	if e == nil {
		return 0
	}
	return e.Left + e.Right
}

// Vertical returns the combined top and bottom thickness, 0 when unknown.
func (e *Extents) Vertical() int {
	if e == nil {
		return 0
	}
	return e.Top + e.Bottom
}

func (e *Extents) String() string {
	if e == nil {
		return "Extents(unknown)"
	}
	return fmt.Sprintf("Extents(%d, %d, %d, %d)", e.Left, e.Right, e.Top, e.Bottom)
}

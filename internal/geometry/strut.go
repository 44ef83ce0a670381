package geometry

// Strut describes screen area reserved by a panel or dock, as published via
// _NET_WM_STRUT_PARTIAL: a thickness per edge plus the span along that edge
// the reservation applies to. A plain _NET_WM_STRUT maps to thicknesses
// with zero spans.
type Strut struct {
	Left   int
	Right  int
	Top    int
	Bottom int

	LeftStartY   int
	LeftEndY     int
	RightStartY  int
	RightEndY    int
	TopStartX    int
	TopEndX      int
	BottomStartX int
	BottomEndX   int
}

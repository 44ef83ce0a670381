package wm

// Quirks are the compensation flags for EWMH/ICCCM implementation
// inconsistencies between window managers. They drive the geometry read
// path of Window.Geometry.
type Quirks struct {
	// DontTranslateCoords: the manager already reports root-relative
	// coordinates; translating them again would corrupt the position.
	DontTranslateCoords bool
	// AdjustGeometry: the manager reports positions inconsistently with
	// decorations; subtract the extents from x/y after translation.
	AdjustGeometry bool
	// ParentXY: the manager reports children at (0, 0) inside a decorating
	// frame; take the position from the parent instead.
	ParentXY bool
	// CalculateExtents: the manager does not publish _NET_FRAME_EXTENTS;
	// reconstruct the extents from the frame window tree.
	CalculateExtents bool
}

var quirkTable = map[ManagerType]Quirks{
	Compiz:        {DontTranslateCoords: true, AdjustGeometry: true},
	KWin:          {AdjustGeometry: true},
	Enlightenment: {AdjustGeometry: true},
	IceWM:         {AdjustGeometry: true, CalculateExtents: true},
	Blackbox:      {AdjustGeometry: true, CalculateExtents: true},
	Fluxbox:       {DontTranslateCoords: true, ParentXY: true},
	WindowMaker:   {DontTranslateCoords: true, ParentXY: true, CalculateExtents: true},
	Sawfish:       {CalculateExtents: true},
	Unknown:       {CalculateExtents: true},
}

// Quirks returns the compensation flags for the manager type. Types without
// an entry need no compensation.
func (t ManagerType) Quirks() Quirks {
	return quirkTable[t]
}

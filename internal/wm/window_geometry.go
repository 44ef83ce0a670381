package wm

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/rharriso/pywo/internal/geometry"
)

// Extents returns the window's decoration thickness.
//
// _NET_FRAME_EXTENTS is preferred. Managers that never publish it get the
// extents reconstructed from the frame window tree; if the window hangs
// directly off the root the extents are unknown (nil). Openbox windows
// carrying the undecorated state keep a fixed one-pixel border regardless
// of what the property claims.
func (w *Window) Extents() (*geometry.Extents, error) {
	nums, err := w.conn.PropertyNums(w.ID, "_NET_FRAME_EXTENTS")
	if err != nil {
		return nil, err
	}
	if len(nums) >= 4 {
		if w.wm.Type() == Openbox && w.hasStateAtom(StateObUndecorated) {
			// Assumes the "retain border when undecorated" setting.
			return &geometry.Extents{Left: 1, Right: 1, Top: 1, Bottom: 1}, nil
		}
		return &geometry.Extents{
			Left:   int(nums[0]),
			Right:  int(nums[1]),
			Top:    int(nums[2]),
			Bottom: int(nums[3]),
		}, nil
	}
	if !w.wm.Type().Quirks().CalculateExtents {
		return nil, nil
	}
	return w.calculateExtents()
}

// calculateExtents reconstructs decoration thickness for managers that do
// not publish _NET_FRAME_EXTENTS (Blackbox, IceWM, Sawfish, Window Maker).
// The decorating frame is the nearest ancestor whose size differs from the
// window's; left/top come from the accumulated offset, right/bottom from
// the size difference, with border widths of both frames added in.
func (w *Window) calculateExtents() (*geometry.Extents, error) {
	root := w.conn.RootWindow()
	win := w.ID
	parent, err := w.conn.Parent(win)
	if err != nil {
		return nil, err
	}
	if parent == root {
		return nil, nil
	}
	winGeo, err := w.conn.Geometry(win)
	if err != nil {
		return nil, err
	}
	parentGeo, err := w.conn.Geometry(parent)
	if err != nil {
		return nil, err
	}
	for winGeo.Width == parentGeo.Width && winGeo.Height == parentGeo.Height {
		win, winGeo = parent, parentGeo
		parent, err = w.conn.Parent(parent)
		if err != nil {
			return nil, err
		}
		if parent == root {
			return nil, nil
		}
		parentGeo, err = w.conn.Geometry(parent)
		if err != nil {
			return nil, err
		}
	}
	borderWidths := winGeo.BorderWidth + parentGeo.BorderWidth
	parentBorder := parentGeo.BorderWidth * 2
	left := winGeo.X + borderWidths
	top := winGeo.Y + borderWidths
	right := parentGeo.Width - winGeo.Width - left + parentBorder
	bottom := parentGeo.Height - winGeo.Height - top + parentBorder
	return &geometry.Extents{Left: left, Right: right, Top: top, Bottom: bottom}, nil
}

// hasStateAtom checks a state through raw atoms so the geometry path stays
// on the connection interface.
func (w *Window) hasStateAtom(name string) bool {
	atom, err := w.conn.Atom(name)
	if err != nil {
		return false
	}
	states, err := w.conn.PropertyNums(w.ID, "_NET_WM_STATE")
	if err != nil {
		return false
	}
	for _, s := range states {
		if xproto.Atom(s) == atom {
			return true
		}
	}
	return false
}

// Geometry returns the window's normalized geometry: (x, y) is the
// top-left corner relative to the current viewport, and the size includes
// decorations. All per-manager reporting quirks are compensated here.
func (w *Window) Geometry() (geometry.Geometry, error) {
	raw, err := w.conn.Geometry(w.ID)
	if err != nil {
		return geometry.Geometry{}, err
	}
	quirks := w.wm.Type().Quirks()
	x, y := raw.X, raw.Y
	if quirks.ParentXY {
		// Fluxbox and Window Maker report children at (0, 0) inside the
		// decorating frame.
		if parent, err := w.conn.Parent(w.ID); err == nil {
			if parentGeo, err := w.conn.Geometry(parent); err == nil {
				x, y = parentGeo.X, parentGeo.Y
			}
		}
	}
	extents, err := w.Extents()
	if err != nil {
		return geometry.Geometry{}, err
	}
	// Metacity returns invalid (0, 0) translated coordinates for windows
	// without extents, so those stay untranslated too.
	if !quirks.DontTranslateCoords && !(w.wm.Type() == Metacity && extents == nil) {
		tx, ty, err := w.conn.TranslateToRoot(w.ID)
		if err != nil {
			return geometry.Geometry{}, err
		}
		x, y = tx, ty
	}
	if quirks.AdjustGeometry && extents != nil {
		x -= extents.Left
		y -= extents.Top
	}
	return geometry.Geometry{
		X:      x,
		Y:      y,
		Width:  raw.Width + extents.Horizontal(),
		Height: raw.Height + extents.Vertical(),
	}, nil
}

// SetGeometry moves and resizes the window. The target geometry includes
// decorations; onResize decides which anchor point stays fixed when size
// hints force the final size away from the requested one.
//
// The configure request is fire-and-forget: re-query Geometry afterward if
// confirmation is needed.
func (w *Window) SetGeometry(geo geometry.Geometry, onResize geometry.Gravity) error {
	extents, err := w.Extents()
	if err != nil {
		return err
	}
	x := geo.X
	y := geo.Y
	width := geo.Width - extents.Horizontal()
	height := geo.Height - extents.Vertical()
	targetWidth, targetHeight := width, height

	current, err := w.conn.Geometry(w.ID)
	if err != nil {
		return err
	}
	hints, err := w.conn.NormalHints(w.ID)
	if err != nil {
		hints = nil
	}
	// Static-gravity windows (WINE, OpenOffice, KeePassX) interpret the
	// position as the client area, not the frame.
	if hints != nil && hints.Flags&icccm.SizeHintPWinGravity != 0 &&
		hints.WinGravity == xproto.GravityStatic && extents != nil {
		x += extents.Left
		y += extents.Top
	}
	width, height = applySizeHints(hints, width, height, current.Width, current.Height)
	if width != targetWidth || height != targetHeight {
		x += int(float64(targetWidth-width) * onResize.X)
		y += int(float64(targetHeight-height) * onResize.Y)
	}
	if err := w.conn.Configure(w.ID, x, y, width, height); err != nil {
		return fmt.Errorf("failed to configure window %d: %w", w.ID, err)
	}
	return nil
}

// MoveResize repositions the window via _NET_MOVERESIZE_WINDOW instead of a
// configure request. Coordinates include decorations, but must be
// non-negative on the wire, so windows cannot be moved onto a viewport
// left of or above the current one this way.
func (w *Window) MoveResize(geo geometry.Geometry) error {
	const fields = 1<<8 | 1<<9 | 1<<10 | 1<<11 // x, y, width, height present
	const source = 1 << 13                     // pager/direct action
	return w.sendToRoot("_NET_MOVERESIZE_WINDOW",
		uint32(xproto.GravityNorthWest)|fields|source,
		uint32(max(0, geo.X)),
		uint32(max(0, geo.Y)),
		uint32(geo.Width),
		uint32(geo.Height),
	)
}

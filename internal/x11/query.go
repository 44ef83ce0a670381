package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"
)

// RawGeometry is the untranslated drawable geometry as the server reports
// it: position relative to the parent, size without decorations.
type RawGeometry struct {
	X           int
	Y           int
	Width       int
	Height      int
	BorderWidth int
}

// Geometry queries the raw geometry of a window.
func (c *Connection) Geometry(win xproto.Window) (RawGeometry, error) {
	reply, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return RawGeometry{}, fmt.Errorf("failed to get geometry of %d: %w", win, err)
	}
	return RawGeometry{
		X:           int(reply.X),
		Y:           int(reply.Y),
		Width:       int(reply.Width),
		Height:      int(reply.Height),
		BorderWidth: int(reply.BorderWidth),
	}, nil
}

// Parent returns the parent window from the window tree.
func (c *Connection) Parent(win xproto.Window) (xproto.Window, error) {
	reply, err := xproto.QueryTree(c.XUtil.Conn(), win).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to query tree of %d: %w", win, err)
	}
	return reply.Parent, nil
}

// TranslateToRoot translates the window origin into root coordinates.
func (c *Connection) TranslateToRoot(win xproto.Window) (x, y int, err error) {
	reply, err := xproto.TranslateCoordinates(c.XUtil.Conn(), win, c.Root, 0, 0).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to translate coordinates of %d: %w", win, err)
	}
	return int(reply.DstX), int(reply.DstY), nil
}

// Configure moves and resizes a window in one request.
func (c *Connection) Configure(win xproto.Window, x, y, width, height int) error {
	values := []uint32{uint32(x), uint32(y), uint32(width), uint32(height)}
	return xproto.ConfigureWindowChecked(
		c.XUtil.Conn(),
		win,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		values,
	).Check()
}

// ChangeEventMask replaces the event mask the connection listens with on a
// window. The dispatcher returns the mask to apply after every handler
// registration change.
func (c *Connection) ChangeEventMask(win xproto.Window, mask uint32) error {
	return xproto.ChangeWindowAttributesChecked(
		c.XUtil.Conn(),
		win,
		xproto.CwEventMask,
		[]uint32{mask},
	).Check()
}

// NormalHints reads the WM_NORMAL_HINTS size hints of a window.
func (c *Connection) NormalHints(win xproto.Window) (*icccm.NormalHints, error) {
	return icccm.WmNormalHintsGet(c.XUtil, win)
}

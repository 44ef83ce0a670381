package wm

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/rharriso/pywo/internal/geometry"
	"github.com/rharriso/pywo/internal/x11"
)

// fakeConn is an in-memory connection for exercising the quirk paths
// without an X server.
type fakeConn struct {
	root       xproto.Window
	geoms      map[xproto.Window]x11.RawGeometry
	parents    map[xproto.Window]xproto.Window
	props      map[xproto.Window]map[string][]uint
	translated map[xproto.Window]geometry.Position
	hints      map[xproto.Window]*icccm.NormalHints

	atoms      map[string]xproto.Atom
	nextAtom   xproto.Atom
	configured []configureCall
	sent       []sentMessage
}

type configureCall struct {
	win                 xproto.Window
	x, y, width, height int
}

type sentMessage struct {
	win      xproto.Window
	typeName string
	data     []uint32
}

func newFakeConn(root xproto.Window) *fakeConn {
	return &fakeConn{
		root:       root,
		geoms:      make(map[xproto.Window]x11.RawGeometry),
		parents:    make(map[xproto.Window]xproto.Window),
		props:      make(map[xproto.Window]map[string][]uint),
		translated: make(map[xproto.Window]geometry.Position),
		hints:      make(map[xproto.Window]*icccm.NormalHints),
		atoms:      make(map[string]xproto.Atom),
		nextAtom:   100,
	}
}

func (c *fakeConn) setProp(win xproto.Window, name string, values ...uint) {
	if c.props[win] == nil {
		c.props[win] = make(map[string][]uint)
	}
	c.props[win][name] = values
}

func (c *fakeConn) RootWindow() xproto.Window { return c.root }

func (c *fakeConn) Atom(name string) (xproto.Atom, error) {
	if atom, ok := c.atoms[name]; ok {
		return atom, nil
	}
	c.nextAtom++
	c.atoms[name] = c.nextAtom
	return c.nextAtom, nil
}

func (c *fakeConn) PropertyNums(win xproto.Window, name string) ([]uint, error) {
	return c.props[win][name], nil
}

func (c *fakeConn) SendClientMessage32(win xproto.Window, typeName string, mask uint32, data ...uint32) error {
	c.sent = append(c.sent, sentMessage{win: win, typeName: typeName, data: data})
	return nil
}

func (c *fakeConn) Geometry(win xproto.Window) (x11.RawGeometry, error) {
	geo, ok := c.geoms[win]
	if !ok {
		return x11.RawGeometry{}, fmt.Errorf("no geometry for window %d", win)
	}
	return geo, nil
}

func (c *fakeConn) Parent(win xproto.Window) (xproto.Window, error) {
	parent, ok := c.parents[win]
	if !ok {
		return 0, fmt.Errorf("no parent for window %d", win)
	}
	return parent, nil
}

func (c *fakeConn) TranslateToRoot(win xproto.Window) (int, int, error) {
	pos, ok := c.translated[win]
	if !ok {
		return 0, 0, fmt.Errorf("no translation for window %d", win)
	}
	return pos.X, pos.Y, nil
}

func (c *fakeConn) Configure(win xproto.Window, x, y, width, height int) error {
	c.configured = append(c.configured, configureCall{win, x, y, width, height})
	return nil
}

func (c *fakeConn) NormalHints(win xproto.Window) (*icccm.NormalHints, error) {
	hints, ok := c.hints[win]
	if !ok {
		return nil, fmt.Errorf("no hints for window %d", win)
	}
	return hints, nil
}

func newTestManager(conn connection, mtype ManagerType) *WindowManager {
	return &WindowManager{conn: conn, root: conn.RootWindow(), mtype: mtype}
}

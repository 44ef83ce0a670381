// Package x11 wraps the display connection used by the window and
// window-manager accessors: property reads, atom interning, client-message
// sends and non-blocking event polling.
package x11

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xprop"
)

// Connection manages the X11 connection and core X resources.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	mu    sync.Mutex
	atoms map[string]xproto.Atom
}

// NewConnection establishes a connection to the X11 server.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}
	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
		atoms: make(map[string]xproto.Atom),
	}, nil
}

// Close cleanly disconnects from the X11 server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

// Poll pops the next queued event. It returns (nil, nil) when the queue is
// empty, so callers can drain without blocking.
func (c *Connection) Poll() (xgb.Event, error) {
	ev, err := c.XUtil.Conn().PollForEvent()
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// RootWindow returns the root window id.
func (c *Connection) RootWindow() xproto.Window {
	return c.Root
}

// Atom resolves an atom by name, interning it if needed. Resolved atoms are
// cached for the lifetime of the connection.
func (c *Connection) Atom(name string) (xproto.Atom, error) {
	c.mu.Lock()
	if atom, ok := c.atoms[name]; ok {
		c.mu.Unlock()
		return atom, nil
	}
	c.mu.Unlock()

	atom, err := xprop.Atm(c.XUtil, name)
	if err != nil {
		return 0, fmt.Errorf("failed to intern atom %s: %w", name, err)
	}
	c.mu.Lock()
	c.atoms[name] = atom
	c.mu.Unlock()
	return atom, nil
}

// AtomName resolves an atom back to its name, for debug output.
func (c *Connection) AtomName(atom xproto.Atom) string {
	name, err := xprop.AtomName(c.XUtil, atom)
	if err != nil {
		return fmt.Sprintf("atom#%d", atom)
	}
	return name
}

// PropertyNums reads a CARDINAL/ATOM/WINDOW array property of a window.
// A missing property is reported as (nil, nil): callers decide whether the
// absence is an error.
func (c *Connection) PropertyNums(win xproto.Window, name string) ([]uint, error) {
	prop, err := xprop.GetProperty(c.XUtil, win, name)
	if err != nil {
		return nil, nil
	}
	nums, err := xprop.PropValNums(prop, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decode property %s: %w", name, err)
	}
	return nums, nil
}

// SendClientMessage32 sends a 32-bit format client message of the given
// type, addressed to win, to the root window with the given event mask.
//
// The message is built by hand: the xgbutil ewmh request helpers panic on
// this library version (uint vs int type assertion), and a single code path
// keeps all state-change requests uniform.
func (c *Connection) SendClientMessage32(win xproto.Window, typeName string, mask uint32, data ...uint32) error {
	atom, err := c.Atom(typeName)
	if err != nil {
		return err
	}
	var words [5]uint32
	copy(words[:], data)
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   atom,
		Data:   xproto.ClientMessageDataUnionData32New(words[:]),
	}
	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		c.Root,
		mask,
		string(ev.Bytes()),
	).Check()
}

package wm

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/rharriso/pywo/internal/geometry"
)

// Window is a lightweight accessor keyed by window id. It carries no state
// of its own: every accessor performs a synchronous round-trip to the X
// server, normalized through the owning WindowManager's quirk flags.
type Window struct {
	ID xproto.Window

	conn connection
	wm   *WindowManager
}

// Equal reports whether both accessors name the same window.
func (w *Window) Equal(other *Window) bool {
	return other != nil && w.ID == other.ID
}

// Name returns the window's title: _NET_WM_NAME with a WM_NAME fallback,
// empty when neither is set.
func (w *Window) Name() string {
	name, err := ewmh.WmNameGet(w.wm.xu(), w.ID)
	if err == nil && name != "" {
		return name
	}
	name, err = icccm.WmNameGet(w.wm.xu(), w.ID)
	if err != nil {
		return ""
	}
	return name
}

// ClassName returns the window's WM_CLASS as "instance.class", empty when
// the property is missing.
func (w *Window) ClassName() string {
	class, err := icccm.WmClassGet(w.wm.xu(), w.ID)
	if err != nil {
		return ""
	}
	return class.Instance + "." + class.Class
}

// Types returns the window's EWMH types, nil when none are declared.
func (w *Window) Types() []string {
	types, err := ewmh.WmWindowTypeGet(w.wm.xu(), w.ID)
	if err != nil {
		return nil
	}
	return types
}

// HasType reports whether the window declares the given EWMH type.
func (w *Window) HasType(name string) bool {
	for _, t := range w.Types() {
		if t == name {
			return true
		}
	}
	return false
}

// States returns the window's EWMH states, nil when none are set.
func (w *Window) States() []string {
	states, err := ewmh.WmStateGet(w.wm.xu(), w.ID)
	if err != nil {
		return nil
	}
	return states
}

// HasState reports whether the window currently has the given EWMH state.
func (w *Window) HasState(name string) bool {
	for _, s := range w.States() {
		if s == name {
			return true
		}
	}
	return false
}

// Desktop returns the desktop number the window is on. Sticky windows
// report AllDesktops; a missing property defaults to desktop 0.
func (w *Window) Desktop() uint {
	desktop, err := ewmh.WmDesktopGet(w.wm.xu(), w.ID)
	if err != nil {
		return 0
	}
	return desktop
}

// SetDesktop asks the window manager to move the window to the given
// desktop. Negative desktops clamp to 0.
func (w *Window) SetDesktop(desktop int) error {
	if desktop < 0 {
		desktop = 0
	}
	return w.sendToRoot("_NET_WM_DESKTOP", uint32(desktop), sourceIndication)
}

// TransientFor returns the window this one is transient for, or nil.
func (w *Window) TransientFor() *Window {
	parent, err := icccm.WmTransientForGet(w.wm.xu(), w.ID)
	if err != nil || parent == 0 {
		return nil
	}
	return w.wm.Window(parent)
}

// Strut returns the screen area the window reserves, preferring
// _NET_WM_STRUT_PARTIAL over the legacy _NET_WM_STRUT. Nil when the window
// reserves nothing.
func (w *Window) Strut() *geometry.Strut {
	if partial, err := ewmh.WmStrutPartialGet(w.wm.xu(), w.ID); err == nil {
		return &geometry.Strut{
			Left:   int(partial.Left),
			Right:  int(partial.Right),
			Top:    int(partial.Top),
			Bottom: int(partial.Bottom),

			LeftStartY:   int(partial.LeftStartY),
			LeftEndY:     int(partial.LeftEndY),
			RightStartY:  int(partial.RightStartY),
			RightEndY:    int(partial.RightEndY),
			TopStartX:    int(partial.TopStartX),
			TopEndX:      int(partial.TopEndX),
			BottomStartX: int(partial.BottomStartX),
			BottomEndX:   int(partial.BottomEndX),
		}
	}
	if strut, err := ewmh.WmStrutGet(w.wm.xu(), w.ID); err == nil {
		return &geometry.Strut{
			Left:   int(strut.Left),
			Right:  int(strut.Right),
			Top:    int(strut.Top),
			Bottom: int(strut.Bottom),
		}
	}
	return nil
}

// Activate makes the window active, unshading and unminimizing it.
func (w *Window) Activate() error {
	return w.sendToRoot("_NET_ACTIVE_WINDOW", sourceIndication)
}

// Close asks the window manager to close the window.
func (w *Window) Close() error {
	return w.sendToRoot("_NET_CLOSE_WINDOW")
}

// Iconify minimizes (Set), restores (Unset) or toggles the window via
// WM_CHANGE_STATE. Toggling a window whose base state is neither normal nor
// iconic iconifies it.
func (w *Window) Iconify(mode Mode) error {
	target := uint32(icccm.StateIconic)
	if mode == Unset {
		target = icccm.StateNormal
	} else if mode == Toggle {
		if state, err := icccm.WmStateGet(w.wm.xu(), w.ID); err == nil && state.State == icccm.StateIconic {
			target = icccm.StateNormal
		}
	}
	return w.sendToRoot("WM_CHANGE_STATE", target)
}

// Maximize maximizes both axes in a single request.
func (w *Window) Maximize(mode Mode) error {
	return w.changeState(mode, StateMaximizedHorz, StateMaximizedVert)
}

// MaximizeHorz maximizes horizontally only.
func (w *Window) MaximizeHorz(mode Mode) error {
	return w.changeState(mode, StateMaximizedHorz, "")
}

// MaximizeVert maximizes vertically only.
func (w *Window) MaximizeVert(mode Mode) error {
	return w.changeState(mode, StateMaximizedVert, "")
}

// Shade shades the window, if the window manager supports it.
func (w *Window) Shade(mode Mode) error {
	return w.changeState(mode, StateShaded, "")
}

// Fullscreen makes the window fullscreen, if supported.
func (w *Window) Fullscreen(mode Mode) error {
	return w.changeState(mode, StateFullscreen, "")
}

// Sticky makes the window visible on all desktops, if supported.
func (w *Window) Sticky(mode Mode) error {
	return w.changeState(mode, StateSticky, "")
}

// AlwaysAbove keeps the window above all others, if supported.
func (w *Window) AlwaysAbove(mode Mode) error {
	return w.changeState(mode, StateAbove, "")
}

// AlwaysBelow keeps the window below all others, if supported.
func (w *Window) AlwaysBelow(mode Mode) error {
	return w.changeState(mode, StateBelow, "")
}

// Reset uniconifies, unsets fullscreen, unmaximizes and unshades. With full
// it also unsets sticky and always-above/below.
func (w *Window) Reset(full bool) error {
	steps := []func() error{
		func() error { return w.Iconify(Unset) },
		func() error { return w.Fullscreen(Unset) },
		func() error { return w.Maximize(Unset) },
		func() error { return w.Shade(Unset) },
	}
	if full {
		steps = append(steps,
			func() error { return w.Sticky(Unset) },
			func() error { return w.AlwaysAbove(Unset) },
			func() error { return w.AlwaysBelow(Unset) },
		)
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// changeState encodes {mode, up to two state atoms, source} into the
// uniform _NET_WM_STATE client message. The request is fire-and-forget:
// whether the window manager honored it can only be learned by re-querying.
func (w *Window) changeState(mode Mode, first, second string) error {
	a1, err := w.conn.Atom(first)
	if err != nil {
		return err
	}
	var a2 xproto.Atom
	if second != "" {
		a2, err = w.conn.Atom(second)
		if err != nil {
			return err
		}
	}
	return w.sendToRoot("_NET_WM_STATE", uint32(mode), uint32(a1), uint32(a2), sourceIndication)
}

// sendToRoot sends a client message of the given type, addressed to this
// window, to the root window with the substructure masks.
func (w *Window) sendToRoot(typeName string, data ...uint32) error {
	err := w.conn.SendClientMessage32(w.ID, typeName, substructureMask, data...)
	if err != nil {
		return fmt.Errorf("failed to send %s for window %d: %w", typeName, w.ID, err)
	}
	return nil
}

// DebugInfo logs everything the accessor can see about the window.
func (w *Window) DebugInfo(logger *slog.Logger) {
	geo, geoErr := w.Geometry()
	extents, _ := w.Extents()
	logger.Info("window info",
		"id", w.ID,
		"name", w.Name(),
		"class", w.ClassName(),
		"types", w.Types(),
		"states", w.States(),
		"desktop", w.Desktop(),
		"extents", extents.String(),
		"geometry", geo.String(),
		"geometry_err", geoErr,
		"strut", w.Strut(),
	)
}

const substructureMask = uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify)

// sourceIndication marks requests as coming from a pager/direct user
// action, which some window managers require before honoring them.
const sourceIndication = 2

func (w *Window) String() string {
	return fmt.Sprintf("<Window id=%d>", w.ID)
}

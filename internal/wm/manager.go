package wm

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/rharriso/pywo/internal/geometry"
	"github.com/rharriso/pywo/internal/x11"
)

// connection is the slice of the display connection the accessors need.
// *x11.Connection implements it; tests substitute a fake.
type connection interface {
	RootWindow() xproto.Window
	Atom(name string) (xproto.Atom, error)
	PropertyNums(win xproto.Window, name string) ([]uint, error)
	SendClientMessage32(win xproto.Window, typeName string, mask uint32, data ...uint32) error
	Geometry(win xproto.Window) (x11.RawGeometry, error)
	Parent(win xproto.Window) (xproto.Window, error)
	TranslateToRoot(win xproto.Window) (x, y int, err error)
	Configure(win xproto.Window, x, y, width, height int) error
	NormalHints(win xproto.Window) (*icccm.NormalHints, error)
}

// WindowManager wraps the root window. It owns the resolved manager type
// and answers desktop, viewport, workarea and screen queries.
//
// Construct it once (in main) and pass it by reference; it is the single
// context object every Window accessor hangs off.
type WindowManager struct {
	conn  connection
	xutil *xgbutil.XUtil
	root  xproto.Window
	mtype ManagerType
}

// NewWindowManager builds the root accessor and resolves the manager type.
func NewWindowManager(conn *x11.Connection) *WindowManager {
	m := &WindowManager{
		conn:  conn,
		xutil: conn.XUtil,
		root:  conn.Root,
	}
	m.UpdateType()
	return m
}

func (m *WindowManager) xu() *xgbutil.XUtil { return m.xutil }

// Window returns an accessor for the given window id.
func (m *WindowManager) Window(id xproto.Window) *Window {
	return &Window{ID: id, conn: m.conn, wm: m}
}

// Root returns the root window id.
func (m *WindowManager) Root() xproto.Window { return m.root }

// Type returns the resolved window manager type.
func (m *WindowManager) Type() ManagerType { return m.mtype }

// Name returns the window manager's self-reported name via
// _NET_SUPPORTING_WM_CHECK, empty when the manager is not EWMH compliant.
func (m *WindowManager) Name() string {
	check, err := ewmh.SupportingWmCheckGet(m.xutil, m.root)
	if err != nil {
		return ""
	}
	name, err := ewmh.WmNameGet(m.xutil, check)
	if err != nil {
		return ""
	}
	return name
}

// UpdateType re-resolves the manager type from the root window. Call it
// after the window manager restarts.
func (m *WindowManager) UpdateType() {
	m.mtype = RecognizeType(m.Name())
}

// DesktopCount returns the number of desktops, defaulting to 1 when the
// manager does not publish it.
func (m *WindowManager) DesktopCount() int {
	count, err := ewmh.NumberOfDesktopsGet(m.xutil)
	if err != nil || count == 0 {
		return 1
	}
	return int(count)
}

// DesktopNames returns the published desktop names. The list's length may
// differ from DesktopCount; managers without names yield nil.
func (m *WindowManager) DesktopNames() []string {
	names, err := ewmh.DesktopNamesGet(m.xutil)
	if err != nil {
		return nil
	}
	return names
}

// CurrentDesktop returns the current desktop number. A compliant window
// manager always publishes it, so a missing property is an error.
func (m *WindowManager) CurrentDesktop() (int, error) {
	desktop, err := ewmh.CurrentDesktopGet(m.xutil)
	if err != nil {
		return 0, fmt.Errorf("failed to get current desktop: %w", err)
	}
	return int(desktop), nil
}

// SetDesktop switches to the given desktop. Negative numbers clamp to 0.
func (m *WindowManager) SetDesktop(desktop int) error {
	if desktop < 0 {
		desktop = 0
	}
	return m.conn.SendClientMessage32(m.root, "_NET_CURRENT_DESKTOP", substructureMask, uint32(desktop), sourceIndication)
}

// DesktopSize returns the full pixel size of a desktop, which exceeds the
// screen size on viewport-scrolling managers. Required on compliant
// managers, so absence is an error.
func (m *WindowManager) DesktopSize() (width, height int, err error) {
	nums, err := m.conn.PropertyNums(m.root, "_NET_DESKTOP_GEOMETRY")
	if err != nil {
		return 0, 0, err
	}
	if len(nums) < 2 {
		return 0, 0, fmt.Errorf("_NET_DESKTOP_GEOMETRY not set")
	}
	return int(nums[0]), int(nums[1]), nil
}

// DesktopLayout returns the desktop grid as set by the pager, nil when no
// pager published one. A dimension the pager left at zero is inferred from
// the desktop count.
func (m *WindowManager) DesktopLayout() (*geometry.Layout, error) {
	nums, err := m.conn.PropertyNums(m.root, "_NET_DESKTOP_LAYOUT")
	if err != nil {
		return nil, err
	}
	if len(nums) < 4 {
		return nil, nil
	}
	cols, rows := inferLayout(int(nums[1]), int(nums[2]), m.DesktopCount())
	return &geometry.Layout{
		Cols:        cols,
		Rows:        rows,
		Orientation: int(nums[0]),
		Corner:      int(nums[3]),
	}, nil
}

// inferLayout fills in a zero cols or rows dimension from the total desktop
// count, rounding up so every desktop has a cell.
func inferLayout(cols, rows, desktops int) (int, int) {
	if cols == 0 && rows > 0 {
		cols = desktops / rows
		if desktops%rows != 0 {
			cols++
		}
	}
	if rows == 0 && cols > 0 {
		rows = desktops / cols
		if desktops%cols != 0 {
			rows++
		}
	}
	return cols, rows
}

// ViewportPosition returns the current viewport's position relative to the
// desktop.
func (m *WindowManager) ViewportPosition() (geometry.Position, error) {
	nums, err := m.conn.PropertyNums(m.root, "_NET_DESKTOP_VIEWPORT")
	if err != nil {
		return geometry.Position{}, err
	}
	if len(nums) < 2 {
		return geometry.Position{}, fmt.Errorf("_NET_DESKTOP_VIEWPORT not set")
	}
	return geometry.Position{X: int(nums[0]), Y: int(nums[1])}, nil
}

// SetViewportPosition scrolls the viewport to the given desktop position.
func (m *WindowManager) SetViewportPosition(x, y int) error {
	return m.conn.SendClientMessage32(m.root, "_NET_DESKTOP_VIEWPORT", substructureMask, uint32(x), uint32(y))
}

// SetViewport switches to the n-th viewport of the viewport grid, the
// paginated counterpart of SetDesktop.
func (m *WindowManager) SetViewport(viewport int) error {
	if viewport < 0 {
		viewport = 0
	}
	width, height, err := m.DesktopSize()
	if err != nil {
		return err
	}
	layout, err := m.ViewportLayout()
	if err != nil {
		return err
	}
	if layout.Cols == 0 || layout.Rows == 0 {
		return fmt.Errorf("desktop has no viewport grid")
	}
	x := width / layout.Cols * (viewport % layout.Cols)
	y := height / layout.Rows * (viewport / layout.Cols)
	return m.SetViewportPosition(x, y)
}

// ViewportLayout derives the viewport grid by dividing the desktop size by
// the workarea size (floor division).
func (m *WindowManager) ViewportLayout() (geometry.Layout, error) {
	width, height, err := m.DesktopSize()
	if err != nil {
		return geometry.Layout{}, err
	}
	workarea, err := m.WorkareaGeometry()
	if err != nil {
		return geometry.Layout{}, err
	}
	if workarea.IsEmpty() {
		return geometry.Layout{}, fmt.Errorf("workarea is empty")
	}
	return geometry.Layout{
		Cols: width / workarea.Width,
		Rows: height / workarea.Height,
	}, nil
}

// WorkareaGeometry returns the workarea of the current desktop: the
// desktop minus the areas reserved by struts. Required on compliant
// managers, so absence is an error.
func (m *WindowManager) WorkareaGeometry() (geometry.Geometry, error) {
	nums, err := m.conn.PropertyNums(m.root, "_NET_WORKAREA")
	if err != nil {
		return geometry.Geometry{}, err
	}
	if len(nums) < 4 {
		return geometry.Geometry{}, fmt.Errorf("_NET_WORKAREA not set")
	}
	index := 0
	if desktop, err := m.CurrentDesktop(); err == nil && (desktop+1)*4 <= len(nums) {
		index = desktop * 4
	}
	return geometry.Geometry{
		X:      int(nums[index]),
		Y:      int(nums[index+1]),
		Width:  int(nums[index+2]),
		Height: int(nums[index+3]),
	}, nil
}

// ActiveWindow returns the currently active window, nil when none is.
func (m *WindowManager) ActiveWindow() *Window {
	id, err := ewmh.ActiveWindowGet(m.xutil)
	if err != nil || id == 0 {
		return nil
	}
	return m.Window(id)
}

// WindowIDs lists all client window ids, newest (topmost) first. With
// stacking the list follows the stacking order, otherwise the mapping
// order.
func (m *WindowManager) WindowIDs(stacking bool) ([]xproto.Window, error) {
	var ids []xproto.Window
	var err error
	if stacking {
		ids, err = ewmh.ClientListStackingGet(m.xutil)
	} else {
		ids, err = ewmh.ClientListGet(m.xutil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}
	reversed := make([]xproto.Window, len(ids))
	for i, id := range ids {
		reversed[len(ids)-1-i] = id
	}
	return reversed, nil
}

// Windows lists all windows, newest first, narrowed by an optional filter
// predicate and an optional fuzzy name/class match. Matching windows are
// sorted by match score, best first.
func (m *WindowManager) Windows(filter Filter, match string) ([]*Window, error) {
	ids, err := m.WindowIDs(true)
	if err != nil {
		return nil, err
	}
	windows := make([]*Window, 0, len(ids))
	for _, id := range ids {
		win := m.Window(id)
		if filter != nil && !filter(win) {
			continue
		}
		windows = append(windows, win)
	}
	if match != "" {
		windows = m.matchWindows(windows, match)
	}
	return windows, nil
}

// DebugInfo logs everything the root accessor can see.
func (m *WindowManager) DebugInfo(logger *slog.Logger) {
	layout, _ := m.DesktopLayout()
	desktop, _ := m.CurrentDesktop()
	width, height, _ := m.DesktopSize()
	viewport, _ := m.ViewportPosition()
	workarea, _ := m.WorkareaGeometry()
	screens, _ := m.ScreenGeometries()
	logger.Info("window manager info",
		"name", m.Name(),
		"type", m.mtype.String(),
		"desktops", m.DesktopCount(),
		"desktop_names", m.DesktopNames(),
		"current_desktop", desktop,
		"desktop_size", fmt.Sprintf("%dx%d", width, height),
		"desktop_layout", layout,
		"viewport", viewport,
		"workarea", workarea.String(),
		"screens", screens,
	)
}

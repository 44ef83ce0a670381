package wm

// Mode selects how a state-change request alters a window state.
type Mode uint32

const (
	Unset  Mode = 0
	Set    Mode = 1
	Toggle Mode = 2
)

// EWMH window states, plus the Openbox-specific undecorated marker.
const (
	StateModal            = "_NET_WM_STATE_MODAL"
	StateSticky           = "_NET_WM_STATE_STICKY"
	StateMaximizedVert    = "_NET_WM_STATE_MAXIMIZED_VERT"
	StateMaximizedHorz    = "_NET_WM_STATE_MAXIMIZED_HORZ"
	StateShaded           = "_NET_WM_STATE_SHADED"
	StateSkipTaskbar      = "_NET_WM_STATE_SKIP_TASKBAR"
	StateSkipPager        = "_NET_WM_STATE_SKIP_PAGER"
	StateHidden           = "_NET_WM_STATE_HIDDEN"
	StateFullscreen       = "_NET_WM_STATE_FULLSCREEN"
	StateAbove            = "_NET_WM_STATE_ABOVE"
	StateBelow            = "_NET_WM_STATE_BELOW"
	StateDemandsAttention = "_NET_WM_STATE_DEMANDS_ATTENTION"
	StateObUndecorated    = "_OB_WM_STATE_UNDECORATED"
)

// EWMH window types.
const (
	TypeDesktop = "_NET_WM_WINDOW_TYPE_DESKTOP"
	TypeDock    = "_NET_WM_WINDOW_TYPE_DOCK"
	TypeToolbar = "_NET_WM_WINDOW_TYPE_TOOLBAR"
	TypeMenu    = "_NET_WM_WINDOW_TYPE_MENU"
	TypeUtility = "_NET_WM_WINDOW_TYPE_UTILITY"
	TypeSplash  = "_NET_WM_WINDOW_TYPE_SPLASH"
	TypeDialog  = "_NET_WM_WINDOW_TYPE_DIALOG"
	TypeNormal  = "_NET_WM_WINDOW_TYPE_NORMAL"
)

// AllDesktops is the _NET_WM_DESKTOP value of a sticky window.
const AllDesktops = 0xFFFFFFFF

package wm

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/rharriso/pywo/internal/geometry"
)

// ScreenGeometries lists the geometry of every active screen, in XRandR
// CRTC order.
func (m *WindowManager) ScreenGeometries() ([]geometry.Geometry, error) {
	conn := m.xutil.Conn()
	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}
	resources, err := randr.GetScreenResources(conn, m.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var screens []geometry.Geometry
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(conn, crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		// Skip disabled CRTCs.
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}
		screens = append(screens, geometry.Geometry{
			X:      int(info.X),
			Y:      int(info.Y),
			Width:  int(info.Width),
			Height: int(info.Height),
		})
	}
	if len(screens) == 0 {
		// A manager without RandR still has the root window's screen.
		root, err := xproto.GetGeometry(conn, xproto.Drawable(m.root)).Reply()
		if err != nil {
			return nil, fmt.Errorf("no screens found: %w", err)
		}
		screens = append(screens, geometry.Geometry{
			Width:  int(root.Width),
			Height: int(root.Height),
		})
	}
	return screens, nil
}

// NearestScreenGeometry returns the usable part of the screen best matching
// the given rectangle: the screen with the largest intersection area,
// clipped to the workarea. On equal areas the lowest screen index wins,
// keeping the choice deterministic.
func (m *WindowManager) NearestScreenGeometry(geo geometry.Geometry) (geometry.Geometry, error) {
	screens, err := m.ScreenGeometries()
	if err != nil {
		return geometry.Geometry{}, err
	}
	index := nearestScreen(screens, geo)
	if index < 0 {
		return geometry.Geometry{}, fmt.Errorf("no screen intersects %s", geo)
	}
	workarea, err := m.WorkareaGeometry()
	if err != nil {
		return geometry.Geometry{}, err
	}
	return screens[index].Intersect(workarea), nil
}

// nearestScreen picks the screen with the largest intersection area, -1
// when the rectangle touches no screen. Only a strictly larger area
// replaces the pick, so ties resolve to the lowest index.
func nearestScreen(screens []geometry.Geometry, geo geometry.Geometry) int {
	best := -1
	bestArea := 0
	for i, screen := range screens {
		area := screen.Intersect(geo).Area()
		if area > bestArea {
			best = i
			bestArea = area
		}
	}
	return best
}

package wm

import (
	"sort"
	"strings"
)

// Match scoring. An exact name match beats a substring match, which beats a
// class-name match; windows on the current desktop get a bonus, and
// another if they overlap the workarea.
const (
	scoreExactName  = 200
	scoreSubstring  = 150
	scoreClassName  = 100
	scoreDesktop    = 50
	scoreInWorkarea = 100
)

// scoreName rates how well a window's name and class match the query. The
// query must already be lowercased. Substring matches score higher the
// closer the query sits to either end of the name.
func scoreName(name, className, match string) int {
	points := 0
	name = strings.ToLower(name)
	if name == match {
		points += scoreExactName
	} else if strings.Contains(name, match) {
		left := strings.Index(name, match)
		right := len(name) - strings.LastIndex(name, match) - len(match)
		points += scoreSubstring - min(left, right)
	}
	if strings.Contains(strings.ToLower(className), match) {
		points += scoreClassName
	}
	return points
}

// matchWindows filters and sorts windows by match score, best first, stable
// on ties.
func (m *WindowManager) matchWindows(windows []*Window, match string) []*Window {
	match = strings.ToLower(strings.TrimSpace(match))
	if match == "" {
		return windows
	}
	desktop, desktopErr := m.CurrentDesktop()
	workarea, workareaErr := m.WorkareaGeometry()

	type scored struct {
		window *Window
		points int
	}
	results := make([]scored, 0, len(windows))
	for _, win := range windows {
		points := scoreName(win.Name(), win.ClassName(), match)
		if points > 0 && desktopErr == nil {
			winDesktop := win.Desktop()
			if winDesktop == uint(desktop) || winDesktop == AllDesktops {
				points += scoreDesktop
				if workareaErr == nil {
					if geo, err := win.Geometry(); err == nil && !geo.Intersect(workarea).IsEmpty() {
						points += scoreInWorkarea
					}
				}
			}
		}
		if points > 0 {
			results = append(results, scored{win, points})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].points > results[j].points
	})
	matched := make([]*Window, len(results))
	for i, r := range results {
		matched[i] = r.window
	}
	return matched
}

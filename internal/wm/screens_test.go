package wm

import (
	"math/rand"
	"testing"

	"github.com/rharriso/pywo/internal/geometry"
)

func TestNearestScreenPicksLargestIntersection(t *testing.T) {
	screens := []geometry.Geometry{
		{X: 0, Y: 0, Width: 1920, Height: 1080},
		{X: 1920, Y: 0, Width: 1920, Height: 1080},
	}
	// Mostly on the second screen.
	rect := geometry.Geometry{X: 1800, Y: 100, Width: 400, Height: 300}
	if got := nearestScreen(screens, rect); got != 1 {
		t.Fatalf("nearestScreen = %d, want 1", got)
	}
	// Entirely on the first.
	rect = geometry.Geometry{X: 10, Y: 10, Width: 100, Height: 100}
	if got := nearestScreen(screens, rect); got != 0 {
		t.Fatalf("nearestScreen = %d, want 0", got)
	}
}

func TestNearestScreenTieBreaksToLowestIndex(t *testing.T) {
	screens := []geometry.Geometry{
		{X: 0, Y: 0, Width: 1000, Height: 1000},
		{X: 1000, Y: 0, Width: 1000, Height: 1000},
	}
	// Centered on the seam: equal intersection with both screens.
	rect := geometry.Geometry{X: 900, Y: 0, Width: 200, Height: 200}
	if got := nearestScreen(screens, rect); got != 0 {
		t.Fatalf("nearestScreen = %d, want 0 on a tie", got)
	}
}

func TestNearestScreenDisjoint(t *testing.T) {
	screens := []geometry.Geometry{{X: 0, Y: 0, Width: 100, Height: 100}}
	rect := geometry.Geometry{X: 500, Y: 500, Width: 10, Height: 10}
	if got := nearestScreen(screens, rect); got != -1 {
		t.Fatalf("nearestScreen = %d, want -1", got)
	}
}

// The clipped result is always contained in the workarea.
func TestNearestScreenClippedToWorkarea(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	screens := []geometry.Geometry{
		{X: 0, Y: 0, Width: 1920, Height: 1080},
		{X: 1920, Y: 0, Width: 1280, Height: 1024},
	}
	workarea := geometry.Geometry{X: 0, Y: 24, Width: 3200, Height: 1032}
	for i := 0; i < 100; i++ {
		rect := geometry.Geometry{
			X: rng.Intn(3000), Y: rng.Intn(1000),
			Width: 1 + rng.Intn(800), Height: 1 + rng.Intn(600),
		}
		index := nearestScreen(screens, rect)
		if index < 0 {
			continue
		}
		clipped := screens[index].Intersect(workarea)
		if clipped.IsEmpty() {
			continue
		}
		if clipped.X < workarea.X || clipped.Y < workarea.Y ||
			clipped.X2() > workarea.X2() || clipped.Y2() > workarea.Y2() {
			t.Fatalf("case %d: %v not contained in workarea %v", i, clipped, workarea)
		}
	}
}

package wm

import (
	"testing"

	"github.com/BurntSushi/xgbutil/icccm"
)

func TestApplySizeHintsQuantization(t *testing.T) {
	hints := &icccm.NormalHints{
		Flags:     icccm.SizeHintPMinSize | icccm.SizeHintPResizeInc,
		MinWidth:  20,
		MinHeight: 20,
		WidthInc:  10,
		HeightInc: 10,
	}

	// target 33 snaps down to 30 on the increment grid.
	width, _ := applySizeHints(hints, 33, 30, 30, 30)
	if width != 30 {
		t.Fatalf("width = %d, want 30", width)
	}

	// target 17 would snap to 10, below the minimum, and gets bumped to 20.
	width, _ = applySizeHints(hints, 17, 30, 30, 30)
	if width != 20 {
		t.Fatalf("width = %d, want 20", width)
	}
}

func TestApplySizeHintsClamping(t *testing.T) {
	hints := &icccm.NormalHints{
		Flags:     icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize,
		MinWidth:  100,
		MinHeight: 50,
		MaxWidth:  800,
		MaxHeight: 600,
	}
	width, height := applySizeHints(hints, 1000, 30, 400, 400)
	if width != 800 || height != 50 {
		t.Fatalf("clamped size = (%d, %d), want (800, 50)", width, height)
	}
}

func TestApplySizeHintsBasePreservesAlignment(t *testing.T) {
	// No declared base: the current size supplies the grid phase.
	hints := &icccm.NormalHints{
		Flags:     icccm.SizeHintPResizeInc,
		WidthInc:  10,
		HeightInc: 10,
	}
	// current width 34 puts the grid at 4, 14, 24, ...
	width, _ := applySizeHints(hints, 33, 33, 34, 34)
	if width != 24 {
		t.Fatalf("width = %d, want 24", width)
	}
}

func TestApplySizeHintsNil(t *testing.T) {
	width, height := applySizeHints(nil, 123, 456, 1, 1)
	if width != 123 || height != 456 {
		t.Fatalf("nil hints must not alter the size, got (%d, %d)", width, height)
	}
}

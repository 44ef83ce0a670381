package wm

import "github.com/BurntSushi/xgbutil/icccm"

// applySizeHints clamps a target client-area size to the window's ICCCM
// normal hints: maximum first, then minimum, then the resize-increment
// grid. The current size supplies the grid base when the window declares
// increments but no base size, preserving its existing alignment.
func applySizeHints(hints *icccm.NormalHints, width, height, currentWidth, currentHeight int) (int, int) {
	if hints == nil {
		return width, height
	}
	var minWidth, minHeight int
	if hints.Flags&icccm.SizeHintPMinSize != 0 {
		minWidth = int(hints.MinWidth)
		minHeight = int(hints.MinHeight)
	}
	if hints.Flags&icccm.SizeHintPMaxSize != 0 {
		if hints.MaxWidth > 0 {
			width = min(width, int(hints.MaxWidth))
		}
		if hints.MaxHeight > 0 {
			height = min(height, int(hints.MaxHeight))
		}
	}
	if minWidth > 0 {
		width = max(width, minWidth)
	}
	if minHeight > 0 {
		height = max(height, minHeight)
	}
	if hints.Flags&icccm.SizeHintPResizeInc != 0 {
		var baseWidth, baseHeight int
		if hints.Flags&icccm.SizeHintPBaseSize != 0 {
			baseWidth = int(hints.BaseWidth)
			baseHeight = int(hints.BaseHeight)
		}
		width = quantize(width, int(hints.WidthInc), baseWidth, minWidth, currentWidth)
		height = quantize(height, int(hints.HeightInc), baseHeight, minHeight, currentHeight)
	}
	return width, height
}

// quantize snaps target onto the increment grid anchored at base:
// floor((target-base)/inc)*inc + base. A zero base falls back to the
// current size modulo the increment. If quantization drops below the
// minimum, one increment is added back.
func quantize(target, inc, base, minimum, current int) int {
	if inc <= 0 {
		return target
	}
	if base == 0 {
		base = current % inc
	}
	quantized := (target-base)/inc*inc + base
	if minimum > 0 && quantized < minimum {
		quantized += inc
	}
	return quantized
}

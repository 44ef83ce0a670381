// Package geometry provides the value types used to describe window
// placement: gravities (fractional anchor points), sizes, geometries,
// decoration extents, struts and desktop layouts, together with the
// text grammar used to configure them.
package geometry

import (
	"fmt"
	"strings"
)

// Gravity is an anchor point on the unit square. (0, 0) is the top-left
// corner, (1, 1) the bottom-right, (0.5, 0.5) the middle. It decides which
// point of a rectangle a coordinate refers to.
type Gravity struct {
	X float64
	Y float64
}

// Canonical gravities.
var (
	TopLeft     = Gravity{0, 0}
	Top         = Gravity{0.5, 0}
	TopRight    = Gravity{1, 0}
	Left        = Gravity{0, 0.5}
	Middle      = Gravity{0.5, 0.5}
	Right       = Gravity{1, 0.5}
	BottomLeft  = Gravity{0, 1}
	Bottom      = Gravity{0.5, 1}
	BottomRight = Gravity{1, 1}
)

// namedGravities maps full gravity names to anchors. These are accepted as
// single-token input to ParseGravity. Matching is case-sensitive.
var namedGravities = map[string]Gravity{
	"TOP_LEFT":     TopLeft,
	"UP_LEFT":      TopLeft,
	"TOP":          Top,
	"UP":           Top,
	"TOP_RIGHT":    TopRight,
	"UP_RIGHT":     TopRight,
	"LEFT":         Left,
	"MIDDLE":       Middle,
	"CENTER":       Middle,
	"RIGHT":        Right,
	"BOTTOM_LEFT":  BottomLeft,
	"DOWN_LEFT":    BottomLeft,
	"BOTTOM":       Bottom,
	"DOWN":         Bottom,
	"BOTTOM_RIGHT": BottomRight,
	"DOWN_RIGHT":   BottomRight,
}

// ParseGravity parses a gravity description.
//
// Accepted forms are a single full gravity name ("TOP", "BOTTOM_RIGHT"), or
// two comma-separated expressions ("0.5, 1.0", "FULL, 0", "QUARTER*2,
// FULL/2") each evaluating to a value in [0, 1]. Expressions combine decimal
// numbers and symbolic tokens with + - * /.
//
// Empty input means "no gravity given" and returns (nil, nil). A single bare
// numeric token is an error: both axes must be present.
func ParseGravity(text string) (*Gravity, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if !strings.Contains(text, ",") {
		if g, ok := namedGravities[text]; ok {
			return &Gravity{g.X, g.Y}, nil
		}
		return nil, fmt.Errorf("invalid gravity %q: expected two comma-separated values or a gravity name", text)
	}
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid gravity %q: expected exactly two fields, got %d", text, len(parts))
	}
	x, err := evalExpr(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid gravity %q: %w", text, err)
	}
	y, err := evalExpr(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid gravity %q: %w", text, err)
	}
	if x < 0 || x > 1 || y < 0 || y > 1 {
		return nil, fmt.Errorf("invalid gravity %q: values must be in [0, 1]", text)
	}
	return &Gravity{x, y}, nil
}

// Invert flips the anchor on the selected axes. Inverting Middle is a no-op.
func (g Gravity) Invert(horizontal, vertical bool) Gravity {
	inverted := g
	if horizontal {
		inverted.X = 1 - g.X
	}
	if vertical {
		inverted.Y = 1 - g.Y
	}
	return inverted
}

// IsTop reports whether the anchor sits on the top edge.
func (g Gravity) IsTop() bool { return g.Y == 0 }

// IsBottom reports whether the anchor sits on the bottom edge.
func (g Gravity) IsBottom() bool { return g.Y == 1 }

// IsLeft reports whether the anchor sits on the left edge.
func (g Gravity) IsLeft() bool { return g.X == 0 }

// IsRight reports whether the anchor sits on the right edge.
func (g Gravity) IsRight() bool { return g.X == 1 }

// IsMiddle reports whether the anchor is the exact middle.
func (g Gravity) IsMiddle() bool { return g.X == 0.5 && g.Y == 0.5 }

func (g Gravity) String() string {
	return fmt.Sprintf("Gravity(%v, %v)", g.X, g.Y)
}

package geometry

import (
	"fmt"
	"strings"
)

// Size describes window width and height. Each axis holds one or more
// candidate values; a value in (0, 1] is a fraction of a reference
// dimension, a larger value is an absolute pixel count.
type Size struct {
	Width  []float64
	Height []float64
}

// NewSize returns a Size with a single candidate per axis.
func NewSize(width, height float64) Size {
	return Size{Width: []float64{width}, Height: []float64{height}}
}

// ParseSize parses the widths and heights fields of a configuration
// section. Each field is a comma-separated list of expressions over decimal
// numbers and symbolic tokens ("HALF", "QUARTER*2+HALF", "1.0/2").
//
// If either field is empty there is no size to build and (nil, nil) is
// returned: an unspecified size is not a parse failure.
func ParseSize(widths, heights string) (*Size, error) {
	widths = strings.TrimSpace(widths)
	heights = strings.TrimSpace(heights)
	if widths == "" || heights == "" {
		return nil, nil
	}
	w, err := parseAxis(widths)
	if err != nil {
		return nil, fmt.Errorf("invalid widths %q: %w", widths, err)
	}
	h, err := parseAxis(heights)
	if err != nil {
		return nil, fmt.Errorf("invalid heights %q: %w", heights, err)
	}
	return &Size{Width: w, Height: h}, nil
}

func parseAxis(field string) ([]float64, error) {
	parts := strings.Split(field, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		value, err := evalExpr(part)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// Widths resolves the width candidates against a reference dimension.
func (s *Size) Widths(reference int) []int {
	return resolveAxis(s.Width, reference)
}

// Heights resolves the height candidates against a reference dimension.
func (s *Size) Heights(reference int) []int {
	return resolveAxis(s.Height, reference)
}

func resolveAxis(values []float64, reference int) []int {
	resolved := make([]int, 0, len(values))
	for _, value := range values {
		if value <= 1 {
			resolved = append(resolved, int(value*float64(reference)))
		} else {
			resolved = append(resolved, int(value))
		}
	}
	return resolved
}

// Equal reports whether both sizes carry the same candidates.
func (s *Size) Equal(other *Size) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.Width) != len(other.Width) || len(s.Height) != len(other.Height) {
		return false
	}
	for i := range s.Width {
		if s.Width[i] != other.Width[i] {
			return false
		}
	}
	for i := range s.Height {
		if s.Height[i] != other.Height[i] {
			return false
		}
	}
	return true
}

func (s *Size) String() string {
	return fmt.Sprintf("Size(%v, %v)", s.Width, s.Height)
}

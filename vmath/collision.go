package vmath

import "github.com/golang/geo/r2"

// BoxesIntersect reports whether two boxes share any point
// Empty boxes never intersect
func BoxesIntersect(a, b r2.Rect) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	return a.Intersects(b)
}

// InsetIntersects tests a against b shrunk by margin on both axes
func InsetIntersects(a, b r2.Rect, margin float64) bool {
	return BoxesIntersect(a, Inset(b, margin, margin))
}

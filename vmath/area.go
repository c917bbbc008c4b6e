package vmath

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// ErrInvalidArea is returned when an area cannot hold gameplay
var ErrInvalidArea = errors.New("vmath: invalid area")

// PlayableArea derives the gameplay sub-rectangle of a width x height frame
// Height is capped at width/maxAspect and the band is centered vertically
func PlayableArea(width, height, maxAspect float64) (r2.Rect, error) {
	if width <= 0 || height <= 0 || maxAspect <= 0 {
		return r2.EmptyRect(), errors.Wrapf(ErrInvalidArea, "%gx%g at aspect %g", width, height, maxAspect)
	}
	playableHeight := width / maxAspect
	if playableHeight > height {
		playableHeight = height
	}
	margin := (height - playableHeight) / 2
	return r2.RectFromPoints(
		r2.Point{X: 0, Y: margin},
		r2.Point{X: width, Y: margin + playableHeight},
	), nil
}

// AreaTranslate returns the rect moved by offset; size is unchanged
func AreaTranslate(a r2.Rect, offset Vec2) r2.Rect {
	d := offset.R2()
	return r2.RectFromPoints(a.Lo().Add(d), a.Hi().Add(d))
}

// BoxAt returns an axis-aligned box of size centered on center
func BoxAt(center, size Vec2) r2.Rect {
	return r2.RectFromCenterSize(center.R2(), size.R2())
}

// Inset shrinks the rect by dx on the left and right and dy on top and bottom
// Over-insetting yields an empty rect, which intersects nothing
func Inset(a r2.Rect, dx, dy float64) r2.Rect {
	return a.Expanded(r2.Point{X: -dx, Y: -dy})
}

// AreaRandomPoint returns a uniformly random point within the rect
func AreaRandomPoint(a r2.Rect, rng *FastRand) Vec2 {
	return Vec2{
		X: rng.Range(a.X.Lo, a.X.Hi),
		Y: rng.Range(a.Y.Lo, a.Y.Hi),
	}
}

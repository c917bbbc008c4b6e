package render

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/zombie-conga/vmath"
)

// Viewport maps the visible world rect onto a grid of terminal cells
// The world is stretched to fill the grid; terminal cells are roughly twice
// as tall as wide, which matches the wide playable band
type Viewport struct {
	Cols, Rows int
	World      r2.Rect
}

// scale returns world units per cell on each axis
func (v Viewport) scale() (sx, sy float64) {
	if v.Cols <= 0 || v.Rows <= 0 {
		return 0, 0
	}
	return v.World.X.Length() / float64(v.Cols), v.World.Y.Length() / float64(v.Rows)
}

// ToCell returns the cell containing world point p, and whether it is visible
func (v Viewport) ToCell(p vmath.Vec2) (int, int, bool) {
	sx, sy := v.scale()
	if sx <= 0 || sy <= 0 {
		return 0, 0, false
	}
	x := int(math.Floor((p.X - v.World.X.Lo) / sx))
	y := int(math.Floor((p.Y - v.World.Y.Lo) / sy))
	return x, y, x >= 0 && x < v.Cols && y >= 0 && y < v.Rows
}

// ToWorld returns the world point at the center of cell (x, y)
func (v Viewport) ToWorld(x, y int) vmath.Vec2 {
	sx, sy := v.scale()
	return vmath.V2(
		v.World.X.Lo+(float64(x)+0.5)*sx,
		v.World.Y.Lo+(float64(y)+0.5)*sy,
	)
}

// CellRect returns the cell span covered by a world box, clipped to the grid
// Any non-empty box covers at least one cell
func (v Viewport) CellRect(box r2.Rect) (x0, y0, x1, y1 int, ok bool) {
	sx, sy := v.scale()
	if box.IsEmpty() || sx <= 0 || sy <= 0 {
		return 0, 0, 0, 0, false
	}
	x0 = int(math.Floor((box.X.Lo - v.World.X.Lo) / sx))
	y0 = int(math.Floor((box.Y.Lo - v.World.Y.Lo) / sy))
	x1 = max(int(math.Ceil((box.X.Hi-v.World.X.Lo)/sx))-1, x0)
	y1 = max(int(math.Ceil((box.Y.Hi-v.World.Y.Lo)/sy))-1, y0)

	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, v.Cols-1), min(y1, v.Rows-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

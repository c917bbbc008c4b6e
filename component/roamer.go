package component

import (
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/zombie-conga/core"
	"github.com/lixenwraith/zombie-conga/vmath"
)

// RoamerKind tags what a contact with the roamer does
type RoamerKind uint8

const (
	KindCat RoamerKind = iota
	KindEnemy
)

func (k RoamerKind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	default:
		return "cat"
	}
}

// Roamer is an autonomous cat or enemy following a scripted timed move
type Roamer struct {
	ID       EntityID
	Kind     RoamerKind
	Position vmath.Vec2
	Size     vmath.Vec2
	Move     core.Move
	// Scale is the cat appear/disappear factor, always 1 for enemies
	Scale float64
}

// Bounds returns the collision box scaled by the current Scale
func (r *Roamer) Bounds() r2.Rect {
	if r.Scale <= 0 {
		return r2.EmptyRect()
	}
	return vmath.BoxAt(r.Position, r.Size.Scale(r.Scale))
}

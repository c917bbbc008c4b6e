package vmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// ErrDegenerateVector is returned when normalizing a zero-length vector
var ErrDegenerateVector = errors.New("vmath: degenerate vector")

// Vec2 is an immutable 2D point/vector in world units
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience constructor for Vec2
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromR2 converts an r2 point
func FromR2(p r2.Point) Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}

// R2 returns the vector as an r2 point for rect operations
func (v Vec2) R2() r2.Point {
	return r2.Point{X: v.X, Y: v.Y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns x1*x2 + y1*y2
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LengthSq returns squared magnitude without sqrt
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in the direction of v
// Fails with ErrDegenerateVector for the zero vector; callers decide the fallback
func (v Vec2) Normalize() (Vec2, error) {
	mag := v.Length()
	if mag == 0 {
		return Vec2{}, ErrDegenerateVector
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}, nil
}

// Angle returns atan2(y, x) in radians
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate rotates the vector counter-clockwise by angle radians
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// FromAngle returns a vector of the given length pointing at angle radians
func FromAngle(angle, length float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{cos * length, sin * length}
}

// Lerp interpolates from a to b; t is clamped to [0, 1]
func Lerp(a, b Vec2, t float64) Vec2 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// ReflectAxisX returns velocity reflected off a vertical wall
func (v Vec2) ReflectAxisX() Vec2 {
	return Vec2{-v.X, v.Y}
}

// ReflectAxisY returns velocity reflected off a horizontal wall
func (v Vec2) ReflectAxisY() Vec2 {
	return Vec2{v.X, -v.Y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

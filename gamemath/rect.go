// Package gamemath holds the pure geometry shared by layout generation and
// the per-tick systems. It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import "math"

// Vec is a point in pixel space.
type Vec struct {
	X, Y float64
}

// Size is a width/height pair, used for the playable viewport.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Pos returns the top-left anchor.
func (r Rect) Pos() Vec {
	return Vec{X: r.X, Y: r.Y}
}

func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// At returns r re-anchored at (x, y), keeping its size.
func (r Rect) At(x, y float64) Rect {
	r.X = x
	r.Y = y
	return r
}

// Overlaps reports strict AABB overlap. Rectangles that only share an edge
// do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// CollidesAny reports whether r overlaps any rectangle in set.
func CollidesAny(r Rect, set []Rect) bool {
	for _, o := range set {
		if Overlaps(r, o) {
			return true
		}
	}
	return false
}

// Distance is the Euclidean distance between p and q.
func Distance(p, q Vec) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// WithinRadius reports whether p lies strictly inside the disk of radius r
// around center.
func WithinRadius(p, center Vec, r float64) bool {
	return Distance(p, center) < r
}

// Clamp restricts v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

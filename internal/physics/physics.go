// Package physics provides collision detection and motion helpers.
package physics

import "math"

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// CenteredRect builds a Rect of size w×h centered on (cx, cy).
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Overlaps reports whether two boxes intersect.
// Boxes that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return AABB(r.X, r.Y, r.W, r.H, o.X, o.Y, o.W, o.H)
}

// AABB checks if two axis-aligned bounding boxes overlap.
func AABB(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Ease moves current toward target by factor per reference frame.
// frames is the elapsed time expressed in reference frames, so the result
// is the same whether one long frame or several short ones elapse.
func Ease(current, target, factor, frames float64) float64 {
	if frames <= 0 || factor <= 0 {
		return current
	}
	if factor >= 1 {
		return target
	}
	k := 1 - math.Pow(1-factor, frames)
	return current + (target-current)*k
}

package packing

import (
	"math"

	"github.com/paulmach/orb"
)

// SlideBackoff is the absolute safety back-off applied to a slide distance
// to avoid numerical over-shoot past the disk boundary.
const SlideBackoff = 0.01

// Disk is an origin-centered circle of radius R.
type Disk struct {
	Radius float64
}

// Contains reports whether every vertex of p lies within the closed disk,
// i.e. distance from the origin does not exceed R by more than CoordEps.
func (d Disk) Contains(p Polygon) bool {
	r2 := d.Radius * d.Radius
	for _, v := range p {
		d2 := v[0]*v[0] + v[1]*v[1]
		if d2 > r2+CoordEps {
			return false
		}
	}
	return true
}

// Slide returns the scalar multiple t>=0 of the normalized direction
// vector that translates p to first contact with the disk boundary,
// together with the contact point. If direction is the zero vector, or no
// vertex of p yields a nonnegative discriminant (the shape cannot touch
// the boundary moving that way), the returned vector is (0,0).
//
// Algorithm: for each vertex q, solve |q + t*dhat|^2 = R^2 for the larger
// root t+, take the minimum t+ over vertices, and back off by
// SlideBackoff to avoid over-shoot, never below zero.
func (d Disk) Slide(p Polygon, direction orb.Point) (orb.Point, orb.Point) {
	if direction[0] == 0 && direction[1] == 0 {
		return orb.Point{0, 0}, orb.Point{0, 0}
	}
	dhat := Normalize(direction)

	best := math.Inf(1)
	var contact orb.Point
	found := false

	for _, q := range p {
		a := DotProduct(dhat, dhat) // == 1, kept explicit to mirror the source formula
		b := 2 * DotProduct(dhat, q)
		c := DotProduct(q, q) - d.Radius*d.Radius
		disc := b*b - 4*a*c
		if disc < 0 {
			continue
		}
		t := (-b + math.Sqrt(disc)) / (2 * a)
		t -= SlideBackoff
		if t < 0 {
			t = 0
		}
		if t < best {
			best = t
			contact = orb.Point{q[0] + dhat[0]*t, q[1] + dhat[1]*t}
			found = true
		}
	}

	if !found {
		return orb.Point{0, 0}, orb.Point{0, 0}
	}
	return orb.Point{dhat[0] * best, dhat[1] * best}, contact
}

// Package packing implements the online disk-packing placement engine:
// inner-fit and no-fit polygon construction, their intersection into
// placement loci, and the bottom-left selection heuristic.
package packing

import (
	"math"

	"github.com/paulmach/orb"
)

// CoordEps is the tolerance used for coordinate equality comparisons.
const CoordEps = 1e-12

// AreaEps is the tolerance used for overlap-area comparisons.
const AreaEps = 1e-7

// Polygon is an ordered sequence of distinct vertices forming a simple
// closed boundary. Vertex 0 is the anchor: the semantic placement handle
// that translate/rotate preserve the identity of. The loop is stored open
// (the first vertex is not repeated at the end).
type Polygon []orb.Point

// Anchor returns the polygon's distinguished placement-handle vertex.
func (p Polygon) Anchor() orb.Point {
	return p[0]
}

// Clone returns an independent copy of p.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Ring returns p as a closed orb.Ring (first vertex repeated at the end),
// the representation orb's planar helpers and Bound() expect.
func (p Polygon) Ring() orb.Ring {
	r := make(orb.Ring, len(p)+1)
	copy(r, p)
	r[len(p)] = p[0]
	return r
}

// Translate adds (dx, dy) to every vertex. Orientation and the anchor's
// identity (it remains vertex 0) are preserved.
func Translate(p Polygon, dx, dy float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = orb.Point{v[0] + dx, v[1] + dy}
	}
	return out
}

// Rotate rotates p counter-clockwise by degs degrees about center.
func Rotate(p Polygon, degs float64, center orb.Point) Polygon {
	rad := degs * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	out := make(Polygon, len(p))
	for i, v := range p {
		dx, dy := v[0]-center[0], v[1]-center[1]
		out[i] = orb.Point{
			center[0] + dx*cos - dy*sin,
			center[1] + dx*sin + dy*cos,
		}
	}
	return out
}

// RotateAboutAnchor rotates p counter-clockwise about its own anchor
// (vertex 0), which is therefore left fixed.
func RotateAboutAnchor(p Polygon, degs float64) Polygon {
	return Rotate(p, degs, p.Anchor())
}

// HighestPoint returns the vertex with maximum y, ties broken by maximum x.
func HighestPoint(p Polygon) orb.Point {
	best := p[0]
	for _, v := range p[1:] {
		if v[1] > best[1] || (v[1] == best[1] && v[0] > best[0]) {
			best = v
		}
	}
	return best
}

// LowestPoint returns the vertex with minimum y, ties broken by minimum x.
func LowestPoint(p Polygon) orb.Point {
	best := p[0]
	for _, v := range p[1:] {
		if v[1] < best[1] || (v[1] == best[1] && v[0] < best[0]) {
			best = v
		}
	}
	return best
}

// SignedArea returns the shoelace signed area of p: positive for
// counter-clockwise orientation, negative for clockwise.
func SignedArea(p Polygon) float64 {
	n := len(p)
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p[i][0]*p[j][1] - p[j][0]*p[i][1]
	}
	return sum / 2
}

// Area returns the unsigned area of p via the shoelace formula.
func Area(p Polygon) float64 {
	return math.Abs(SignedArea(p))
}

// IsCCW reports whether p is wound counter-clockwise.
func IsCCW(p Polygon) bool {
	return SignedArea(p) > 0
}

// OrientCCW returns p reordered counter-clockwise if necessary. The vertex
// set (and, when already CCW, vertex order) is preserved; reversal keeps
// vertex 0 fixed so the anchor identity survives reorientation.
func OrientCCW(p Polygon) Polygon {
	if IsCCW(p) {
		return p.Clone()
	}
	return reverseKeepingFirst(p)
}

// OrientCW returns p reordered clockwise if necessary, anchor-preserving.
func OrientCW(p Polygon) Polygon {
	if !IsCCW(p) {
		return p.Clone()
	}
	return reverseKeepingFirst(p)
}

func reverseKeepingFirst(p Polygon) Polygon {
	n := len(p)
	out := make(Polygon, n)
	out[0] = p[0]
	for i := 1; i < n; i++ {
		out[i] = p[n-i]
	}
	return out
}

// Edges returns the sequence of edge vectors v[i+1]-v[i]. When closeLoop is
// true the closing edge (from the last vertex back to vertex 0) is included.
func Edges(p Polygon, closeLoop bool) []orb.Point {
	n := len(p)
	count := n - 1
	if closeLoop {
		count = n
	}
	out := make([]orb.Point, 0, count)
	for i := 0; i < count; i++ {
		j := (i + 1) % n
		out = append(out, orb.Point{p[j][0] - p[i][0], p[j][1] - p[i][1]})
	}
	return out
}

// AngleFromX returns the angle in [0, 2*pi) that v makes with the positive
// x-axis. Axis-aligned vertical vectors return exactly pi/2 or 3*pi/2.
func AngleFromX(v orb.Point) float64 {
	if v[0] == 0 {
		if v[1] > 0 {
			return math.Pi / 2
		}
		return 3 * math.Pi / 2
	}
	angle := math.Atan(v[1] / v[0])
	if v[0] < 0 {
		angle += math.Pi
	}
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// DotProduct returns the dot product of two vectors.
func DotProduct(a, b orb.Point) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Normalize returns v scaled to unit length.
func Normalize(v orb.Point) orb.Point {
	l := math.Hypot(v[0], v[1])
	return orb.Point{v[0] / l, v[1] / l}
}

// PerpendicularLeft returns the left perpendicular of v, normalized.
func PerpendicularLeft(v orb.Point) orb.Point {
	return Normalize(orb.Point{-v[1], v[0]})
}

// PointsEqual reports whether a and b are within CoordEps of each other.
func PointsEqual(a, b orb.Point) bool {
	return math.Abs(a[0]-b[0]) < CoordEps && math.Abs(a[1]-b[1]) < CoordEps
}

// ConvexHull returns the convex hull of pts using Andrew's monotone chain
// algorithm, in counter-clockwise order. Required because NFP construction
// is only valid on convex operands.
func ConvexHull(pts []orb.Point) Polygon {
	if len(pts) < 3 {
		out := make(Polygon, len(pts))
		copy(out, pts)
		return out
	}

	sorted := make([]orb.Point, len(pts))
	copy(sorted, pts)
	sortPoints(sorted)

	cross := func(o, a, b orb.Point) float64 {
		return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
	}

	n := len(sorted)
	hull := make([]orb.Point, 0, 2*n)

	for _, p := range sorted {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return Polygon(hull[:len(hull)-1])
}

func sortPoints(pts []orb.Point) {
	// insertion sort by (x, y); hull inputs are small (shape vertex counts),
	// so this avoids pulling in sort.Slice's reflection overhead.
	for i := 1; i < len(pts); i++ {
		j := i
		for j > 0 && pointLess(pts[j], pts[j-1]) {
			pts[j], pts[j-1] = pts[j-1], pts[j]
			j--
		}
	}
}

func pointLess(a, b orb.Point) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}

package packing

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Provenance identifies which operand an output vertex of a boolean
// operation originated from. Post-hoc coordinate matching against the
// original operands is brittle on degenerate/collinear input; tagging
// provenance through the clip itself is robust regardless (see
// DESIGN.md).
type Provenance int

const (
	// FromSubject marks a vertex inherited from the subject operand
	// (the left-hand side of Union/Intersect).
	FromSubject Provenance = iota
	// FromClip marks a vertex inherited from the clip operand.
	FromClip
	// NewIntersection marks a vertex created where a subject edge and a
	// clip edge cross; it is not an original vertex of either operand.
	NewIntersection
)

type taggedPoint struct {
	pt   orb.Point
	from Provenance
}

// loop is a closed, simple sequence of tagged vertices (first vertex not
// repeated at the end). Orientation (CCW/CW) is significant: it is how
// ResultRing distinguishes shells from holes after a boolean operation.
type loop []taggedPoint

// RingSet is a general polygon region: a set of simple loops where
// counter-clockwise loops are outer shells and clockwise loops are holes.
type RingSet []loop

// ResultRing is one ring of a RingSet exposed for downstream consumption
// (the feasible-placement assembler reads Points/Hole/From per vertex).
type ResultRing struct {
	Points []orb.Point
	From   []Provenance
	Hole   bool
}

// PolygonToRingSet wraps a single simple polygon as a one-shell RingSet,
// tagging every vertex with from. The polygon is reoriented CCW if needed
// so it is unambiguously a shell, not a hole.
func PolygonToRingSet(p Polygon, from Provenance) RingSet {
	oriented := OrientCCW(p)
	l := make(loop, len(oriented))
	for i, v := range oriented {
		l[i] = taggedPoint{v, from}
	}
	return RingSet{l}
}

// Retag returns a copy of rs with every vertex's provenance set to from.
// Used after folding a new shape into the running NFP union: once folded,
// every vertex, original or newly created by the union itself, counts
// as "a vertex of NFP_union" for the purposes of the next fold step and,
// eventually, the locus assembler's vertex-provenance filter.
func Retag(rs RingSet, from Provenance) RingSet {
	out := make(RingSet, len(rs))
	for i, l := range rs {
		nl := make(loop, len(l))
		for j, tp := range l {
			nl[j] = taggedPoint{tp.pt, from}
		}
		out[i] = nl
	}
	return out
}

// Rings extracts rs as ResultRings, classifying each loop as a shell
// (positive signed area) or a hole (negative signed area).
func (rs RingSet) Rings() []ResultRing {
	out := make([]ResultRing, 0, len(rs))
	for _, l := range rs {
		pts := make([]orb.Point, len(l))
		from := make([]Provenance, len(l))
		area := 0.0
		n := len(l)
		for i, tp := range l {
			pts[i] = tp.pt
			from[i] = tp.from
			j := (i + 1) % n
			area += l[i].pt[0]*l[j].pt[1] - l[j].pt[0]*l[i].pt[1]
		}
		out = append(out, ResultRing{Points: pts, From: from, Hole: area < 0})
	}
	return out
}

// Empty reports whether rs has no rings (no area at all).
func (rs RingSet) Empty() bool {
	return len(rs) == 0
}

// Union returns the union of a and b. Both may already be general RingSets
// (carrying shells and holes from a prior fold); this is how the no-fit
// union accumulates no-fit polygons across all committed shapes.
func Union(a, b RingSet) RingSet {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	return booleanOp(a, b, func(m membership) bool { return !m.inside || m.boundary },
		func(m membership) bool { return !m.inside || m.boundary })
}

// Intersect returns the intersection of subject and clip, used by the
// feasible-placement assembler to intersect the no-fit union with the
// inner-fit disk.
func Intersect(subject, clip RingSet) RingSet {
	if len(subject) == 0 || len(clip) == 0 {
		return nil
	}
	return booleanOp(subject, clip, func(m membership) bool { return m.inside || m.boundary },
		func(m membership) bool { return m.inside || m.boundary })
}

type membership struct {
	inside   bool
	boundary bool
}

const boundaryEps = 1e-9

// pointMembership classifies pt against rs using the even-odd ray-casting
// rule, which correctly handles multiply-connected regions (shells with
// holes) regardless of individual ring orientation.
func pointMembership(pt orb.Point, rs RingSet) membership {
	for _, l := range rs {
		n := len(l)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if distToSegment(pt, l[i].pt, l[j].pt) < boundaryEps {
				return membership{inside: true, boundary: true}
			}
		}
	}

	crossings := 0
	for _, l := range rs {
		n := len(l)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			a, b := l[i].pt, l[j].pt
			if (a[1] > pt[1]) != (b[1] > pt[1]) {
				xCross := a[0] + (pt[1]-a[1])/(b[1]-a[1])*(b[0]-a[0])
				if xCross > pt[0] {
					crossings++
				}
			}
		}
	}
	return membership{inside: crossings%2 == 1}
}

func distToSegment(p, a, b orb.Point) float64 {
	vx, vy := b[0]-a[0], b[1]-a[1]
	wx, wy := p[0]-a[0], p[1]-a[1]
	segLen2 := vx*vx + vy*vy
	if segLen2 < 1e-30 {
		return planar.Distance(p, a)
	}
	t := (wx*vx + wy*vy) / segLen2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	projX, projY := a[0]+t*vx, a[1]+t*vy
	return math.Hypot(p[0]-projX, p[1]-projY)
}

// directedEdge is one (possibly split) edge of an operand, kept or
// discarded by the boolean op's classification pass.
type directedEdge struct {
	start, end taggedPoint
}

// booleanOp implements the edge-classification (Weiler–Atherton family)
// clip: split both operands' edges at their mutual intersections, keep
// the edges each keepA/keepB predicate selects (classified by the kept
// edge's midpoint membership in the *other* operand), then walk the
// surviving directed edges back into closed loops.
func booleanOp(a, b RingSet, keepA, keepB func(membership) bool) RingSet {
	splitA := splitAgainst(a, b)
	splitB := splitAgainst(b, a)

	var kept []directedEdge
	for _, l := range splitA {
		n := len(l)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			mid := orb.Point{(l[i].pt[0] + l[j].pt[0]) / 2, (l[i].pt[1] + l[j].pt[1]) / 2}
			if keepA(pointMembership(mid, b)) {
				kept = append(kept, directedEdge{l[i], l[j]})
			}
		}
	}
	for _, l := range splitB {
		n := len(l)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			mid := orb.Point{(l[i].pt[0] + l[j].pt[0]) / 2, (l[i].pt[1] + l[j].pt[1]) / 2}
			if keepB(pointMembership(mid, a)) {
				kept = append(kept, directedEdge{l[i], l[j]})
			}
		}
	}

	return assembleLoops(kept)
}

// splitAgainst returns rs with a new tagged vertex inserted on every edge
// wherever it crosses an edge of other, in correct order along the edge.
func splitAgainst(rs, other RingSet) RingSet {
	out := make(RingSet, len(rs))
	for ri, l := range rs {
		n := len(l)
		type ins struct {
			t  float64
			tp taggedPoint
		}
		perEdge := make([][]ins, n)

		for i := 0; i < n; i++ {
			j := (i + 1) % n
			a1, a2 := l[i].pt, l[j].pt
			for _, ol := range other {
				m := len(ol)
				for k := 0; k < m; k++ {
					b1 := ol[k].pt
					b2 := ol[(k+1)%m].pt
					pt, t, _, ok := segIntersect(a1, a2, b1, b2)
					if !ok {
						continue
					}
					if t <= CoordEps || t >= 1-CoordEps {
						continue // coincides with an existing endpoint
					}
					perEdge[i] = append(perEdge[i], ins{t, taggedPoint{pt, NewIntersection}})
				}
			}
		}

		var nl loop
		for i := 0; i < n; i++ {
			nl = append(nl, l[i])
			ins := perEdge[i]
			for x := 1; x < len(ins); x++ {
				for y := x; y > 0 && ins[y].t < ins[y-1].t; y-- {
					ins[y], ins[y-1] = ins[y-1], ins[y]
				}
			}
			var last orb.Point
			haveLast := false
			for _, e := range ins {
				if haveLast && PointsEqual(e.tp.pt, last) {
					continue
				}
				nl = append(nl, e.tp)
				last = e.tp.pt
				haveLast = true
			}
		}
		out[ri] = nl
	}
	return out
}

// segIntersect returns the intersection of segments a1-a2 and b1-b2 and
// the parametric position t (along a1-a2) and u (along b1-b2) at which it
// occurs. Parallel (including collinear) segments are reported as not
// intersecting: degenerate shared-edge configurations are resolved by the
// membership boundary test instead (see pointMembership).
func segIntersect(a1, a2, b1, b2 orb.Point) (orb.Point, float64, float64, bool) {
	rx, ry := a2[0]-a1[0], a2[1]-a1[1]
	sx, sy := b2[0]-b1[0], b2[1]-b1[1]
	denom := rx*sy - ry*sx
	if math.Abs(denom) < 1e-15 {
		return orb.Point{}, 0, 0, false
	}
	qpx, qpy := b1[0]-a1[0], b1[1]-a1[1]
	t := (qpx*sy - qpy*sx) / denom
	u := (qpx*ry - qpy*rx) / denom
	if t < -CoordEps || t > 1+CoordEps || u < -CoordEps || u > 1+CoordEps {
		return orb.Point{}, 0, 0, false
	}
	return orb.Point{a1[0] + t*rx, a1[1] + t*ry}, t, u, true
}

// assembleLoops links surviving directed edges, endpoint to start-point,
// into closed simple loops.
func assembleLoops(edges []directedEdge) RingSet {
	if len(edges) == 0 {
		return nil
	}

	byStart := make(map[string][]int)
	key := func(p orb.Point) string {
		return fmt.Sprintf("%.9f,%.9f", p[0], p[1])
	}
	for i, e := range edges {
		k := key(e.start.pt)
		byStart[k] = append(byStart[k], i)
	}

	visited := make([]bool, len(edges))
	var result RingSet

	for start := range edges {
		if visited[start] {
			continue
		}
		var l loop
		cur := start
		startPt := edges[start].start.pt
		closed := false
		for {
			visited[cur] = true
			l = append(l, edges[cur].start)
			endPt := edges[cur].end.pt
			if PointsEqual(endPt, startPt) {
				closed = true
				break
			}
			inDir := orb.Point{endPt[0] - edges[cur].start.pt[0], endPt[1] - edges[cur].start.pt[1]}
			candidates := byStart[key(endPt)]
			next := -1
			bestTurn := math.Inf(1)
			for _, c := range candidates {
				if visited[c] {
					continue
				}
				outDir := orb.Point{edges[c].end.pt[0] - edges[c].start.pt[0], edges[c].end.pt[1] - edges[c].start.pt[1]}
				turn := clockwiseTurn(inDir, outDir)
				if turn < bestTurn {
					bestTurn = turn
					next = c
				}
			}
			if next == -1 {
				break
			}
			cur = next
		}
		if closed && len(l) >= 3 {
			result = append(result, l)
		}
	}

	return result
}

// clockwiseTurn returns the clockwise angle (in [0, 2*pi)) one must turn
// from inDir to reach outDir, used to pick the next edge at a branching
// vertex that keeps the traced loop simple.
func clockwiseTurn(inDir, outDir orb.Point) float64 {
	a := AngleFromX(orb.Point{-inDir[0], -inDir[1]})
	b := AngleFromX(outDir)
	turn := a - b
	for turn < 0 {
		turn += 2 * math.Pi
	}
	for turn >= 2*math.Pi {
		turn -= 2 * math.Pi
	}
	return turn
}

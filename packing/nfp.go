package packing

import (
	"sort"

	"github.com/paulmach/orb"
)

// NoFitPolygon computes the no-fit polygon of stationary A against moving
// B: the locus of B's anchor such that A and B touch but do not overlap.
// Valid only for convex operands, so both are hulled first. Construction:
// orient A CCW and B CW, collect both edge sets as vectors, sort the
// combined list by angle from the positive x-axis, and lay the edges
// tip-to-tail starting at the origin.
func NoFitPolygon(a, b Polygon) Polygon {
	hullA := ConvexHull(a)
	hullB := ConvexHull(b)
	hullA = OrientCCW(hullA)
	hullB = OrientCW(hullB)

	edgesA := Edges(hullA, true)
	edgesB := Edges(hullB, true)

	type edgeAngle struct {
		v     orb.Point
		angle float64
	}
	all := make([]edgeAngle, 0, len(edgesA)+len(edgesB))
	for _, e := range edgesA {
		all = append(all, edgeAngle{e, AngleFromX(e)})
	}
	for _, e := range edgesB {
		all = append(all, edgeAngle{e, AngleFromX(e)})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].angle < all[j].angle })

	nfp := make(Polygon, 0, len(all))
	cur := orb.Point{0, 0}
	nfp = append(nfp, cur)
	for i := 0; i < len(all)-1; i++ {
		cur = orb.Point{cur[0] + all[i].v[0], cur[1] + all[i].v[1]}
		nfp = append(nfp, cur)
	}
	return nfp
}

// FitNFP translates an origin-anchored no-fit polygon into the true
// Minkowski-sum position of placed against moving. NoFitPolygon's edge
// walk starts at an arbitrary origin, so the raw result's absolute
// position carries no meaning; by support-function additivity the
// lowest point of the true sum placed ⊕ (-moving) is exactly
// LowestPoint(placed) - HighestPoint(moving), so translating the raw
// nfp to put its own lowest point there recovers the correct placement.
// Aligning lowest-to-lowest point directly (ignoring moving's shape)
// is wrong whenever moving isn't a single point: for two congruent
// squares it would leave a vertex of the fitted NFP sitting exactly on
// placed's own anchor, i.e. a full-overlap configuration rather than a
// touching one.
func FitNFP(placed Polygon, moving Polygon, nfp Polygon) Polygon {
	placedLow := LowestPoint(placed)
	movingHigh := HighestPoint(moving)
	wantLow := orb.Point{placedLow[0] - movingHigh[0], placedLow[1] - movingHigh[1]}
	nfpLow := LowestPoint(nfp)
	return Translate(nfp, wantLow[0]-nfpLow[0], wantLow[1]-nfpLow[1])
}

// NoFitUnion fits the no-fit polygon of moving against every already
// placed polygon and returns their union as a RingSet tagged FromSubject
// throughout. FitNFP yields the set of translations of moving; each fitted
// polygon is shifted by moving's anchor, so the union is a locus of
// moving's anchor.
func NoFitUnion(placed []Polygon, moving Polygon) RingSet {
	anchor := moving.Anchor()
	var acc RingSet
	for _, a := range placed {
		nfp := FitNFP(a, moving, NoFitPolygon(a, moving))
		nfp = Translate(nfp, anchor[0], anchor[1])
		next := PolygonToRingSet(nfp, FromClip)
		acc = Union(acc, next)
		acc = Retag(acc, FromSubject)
	}
	return acc
}

package packing

import "github.com/paulmach/orb"

// Locus is one polyline of candidate anchor placements for a shape: a
// line-strip restricted to exterior-boundary vertices inherited from the
// no-fit union, or a full interior (hole) ring.
type Locus []orb.Point

// FeasiblePlacements computes the placement loci for shape against disk
// given the already-committed polygons, in the shape's own anchor space
// throughout (every returned point is where shape.Anchor() may land):
//
//  1. ifp = InnerFitDisk(shape, disk), a locus of shape's highest point;
//     rebased to anchor space by the constant anchor-to-highest offset.
//  2. If no shape has been placed yet, the sole locus is that rebased IFP
//     boundary.
//  3. Otherwise intersect IFP with NoFitUnion(placed, shape). NoFitUnion
//     is already expressed in anchor space (a no-fit polygon is defined
//     as the locus of the moving shape's anchor), so no rebasing applies
//     to it.
//  4. For each exterior boundary ring of the intersection, keep only the
//     vertices that are original vertices of the no-fit union
//     (FromSubject), provenance-tagged rather than matched by coordinate
//     (see DESIGN.md) — this also discards the IFP operand's vertices.
//     Interior (hole) rings are kept in full regardless of provenance.
func FeasiblePlacements(shape Polygon, placed []Polygon, disk Disk) []Locus {
	ifp := InnerFitDisk(shape, disk)
	if ifp == nil {
		return nil
	}

	high := HighestPoint(shape)
	anchor := shape.Anchor()
	toAnchorSpace := orb.Point{anchor[0] - high[0], anchor[1] - high[1]}

	if len(placed) == 0 {
		return []Locus{rebase(Locus(ifp.Ring()), toAnchorSpace)}
	}

	nfpUnion := NoFitUnion(placed, shape)
	if nfpUnion.Empty() {
		return nil
	}

	ifpSet := PolygonToRingSet(Polygon(rebase(Locus(ifp), toAnchorSpace)), FromClip)
	region := Intersect(nfpUnion, ifpSet)

	var loci []Locus
	for _, ring := range region.Rings() {
		if ring.Hole {
			loci = append(loci, Locus(append(append(Locus{}, ring.Points...), ring.Points[0])))
			continue
		}
		var filtered Locus
		for i, p := range ring.Points {
			if ring.From[i] == FromSubject {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) > 0 {
			loci = append(loci, filtered)
		}
	}
	return loci
}

// rebase translates every point of l by offset, used to carry the IFP's
// highest-point-space boundary into the shape's anchor space.
func rebase(l Locus, offset orb.Point) Locus {
	out := make(Locus, len(l))
	for i, p := range l {
		out[i] = orb.Point{p[0] + offset[0], p[1] + offset[1]}
	}
	return out
}

// BottomLeft returns the point with minimum y across all loci, ties
// broken by minimum x. The bool return is false if loci is empty.
func BottomLeft(loci []Locus) (orb.Point, bool) {
	found := false
	var best orb.Point
	for _, locus := range loci {
		for _, p := range locus {
			if !found || p[1] < best[1] || (p[1] == best[1] && p[0] < best[0]) {
				best = p
				found = true
			}
		}
	}
	return best, found
}

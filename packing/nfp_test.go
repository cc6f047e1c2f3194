package packing

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestNoFitPolygonOfTwoSquaresIsLargerSquare(t *testing.T) {
	// NFP of a 2x2 square against another 2x2 square is itself a 4x4
	// square: a classic Minkowski-sum sanity check. The edge walk starts at
	// the origin with the lowest-angle edge, so the raw result's lower-left
	// corner is the origin.
	a := axisSquare(-1, -1, 1, 1)
	b := axisSquare(-1, -1, 1, 1)

	nfp := NoFitPolygon(a, b)
	assert.InDelta(t, 16.0, Area(nfp), 1e-9)

	bound := nfp.Ring().Bound()
	assert.InDelta(t, 0, bound.Min[0], 1e-9)
	assert.InDelta(t, 0, bound.Min[1], 1e-9)
	assert.InDelta(t, 4, bound.Max[0], 1e-9)
	assert.InDelta(t, 4, bound.Max[1], 1e-9)
}

func TestFitNFPAlignsToMinkowskiSumLowestPoint(t *testing.T) {
	placed := axisSquare(5, 5, 7, 7)
	moving := axisSquare(-1, -1, 1, 1)
	nfp := NoFitPolygon(placed, moving)

	fitted := FitNFP(placed, moving, nfp)
	want := orb.Point{LowestPoint(placed)[0] - HighestPoint(moving)[0], LowestPoint(placed)[1] - HighestPoint(moving)[1]}
	assert.Equal(t, want, LowestPoint(fitted))
}

func TestNoFitUnionOfSinglePlacedShapeMatchesSingleFit(t *testing.T) {
	placed := axisSquare(0, 0, 2, 2)
	moving := axisSquare(-1, -1, 1, 1)

	union := NoFitUnion([]Polygon{placed}, moving)
	want := FitNFP(placed, moving, NoFitPolygon(placed, moving))

	rings := union.Rings()
	assert.Len(t, rings, 1)
	assert.InDelta(t, Area(want), ringSetArea(union), 1e-6)
	for _, from := range rings[0].From {
		assert.Equal(t, FromSubject, from)
	}
}

func TestNoFitPolygonSwapIsAreaPreserving(t *testing.T) {
	// NoFitPolygon(a,b) represents a (+) (-b) and NoFitPolygon(b,a)
	// represents b (+) (-a); since negation distributes over a Minkowski
	// sum, a(+)(-b) = -(b(+)(-a)), so the two constructions always
	// enclose equal area even though each is anchored at its own
	// arbitrary absolute position by the angle-sort walk.
	a := Polygon{{0, 0}, {1, 0}, {0, 1}}
	b := axisSquare(0, 0, 1, 1)

	ab := NoFitPolygon(a, b)
	ba := NoFitPolygon(b, a)
	assert.InDelta(t, Area(ab), Area(ba), 1e-9)
}

func TestNoFitUnionOfTwoPlacedShapesIsTagged(t *testing.T) {
	placed := []Polygon{
		axisSquare(0, 0, 2, 2),
		axisSquare(10, 10, 12, 12),
	}
	moving := axisSquare(-1, -1, 1, 1)

	union := NoFitUnion(placed, moving)
	rings := union.Rings()
	assert.Len(t, rings, 2)
	for _, r := range rings {
		for _, from := range r.From {
			assert.Equal(t, FromSubject, from)
		}
	}
}

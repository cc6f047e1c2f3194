package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func axisSquare(minX, minY, maxX, maxY float64) Polygon {
	return Polygon{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}}
}

func ringSetArea(rs RingSet) float64 {
	total := 0.0
	for _, r := range rs.Rings() {
		a := Area(Polygon(r.Points))
		if r.Hole {
			total -= a
		} else {
			total += a
		}
	}
	return total
}

func TestUnionOfOverlappingSquares(t *testing.T) {
	a := PolygonToRingSet(axisSquare(0, 0, 2, 2), FromSubject)
	b := PolygonToRingSet(axisSquare(1, 1, 3, 3), FromClip)

	u := Union(a, b)
	assert.InDelta(t, 7.0, ringSetArea(u), 1e-6)
}

func TestIntersectionOfOverlappingSquares(t *testing.T) {
	a := PolygonToRingSet(axisSquare(0, 0, 2, 2), FromSubject)
	b := PolygonToRingSet(axisSquare(1, 1, 3, 3), FromClip)

	i := Intersect(a, b)
	assert.InDelta(t, 1.0, ringSetArea(i), 1e-6)
}

func TestUnionOfDisjointSquares(t *testing.T) {
	a := PolygonToRingSet(axisSquare(0, 0, 1, 1), FromSubject)
	b := PolygonToRingSet(axisSquare(5, 5, 6, 6), FromClip)

	u := Union(a, b)
	assert.InDelta(t, 2.0, ringSetArea(u), 1e-6)
	assert.Len(t, u, 2)
}

func TestIntersectionOfDisjointSquaresIsEmpty(t *testing.T) {
	a := PolygonToRingSet(axisSquare(0, 0, 1, 1), FromSubject)
	b := PolygonToRingSet(axisSquare(5, 5, 6, 6), FromClip)

	i := Intersect(a, b)
	assert.True(t, i.Empty())
}

func TestIntersectionProvenanceTaggedBySubject(t *testing.T) {
	// B fully contains A's low-x edge: intersecting should keep A's own
	// vertices tagged FromSubject and never mislabel them as FromClip.
	a := PolygonToRingSet(axisSquare(0, 0, 2, 2), FromSubject)
	b := PolygonToRingSet(axisSquare(-1, -1, 5, 5), FromClip)

	i := Intersect(a, b)
	rings := i.Rings()
	assert.Len(t, rings, 1)
	for _, from := range rings[0].From {
		assert.Equal(t, FromSubject, from, "every vertex of A-inside-B should be tagged FromSubject")
	}
}

func TestRetagOverwritesProvenance(t *testing.T) {
	rs := PolygonToRingSet(axisSquare(0, 0, 1, 1), FromClip)
	retagged := Retag(rs, FromSubject)
	for _, from := range retagged.Rings()[0].From {
		assert.Equal(t, FromSubject, from)
	}
}

func TestUnionOfThreeRectanglesSharingCollinearEdges(t *testing.T) {
	// Left and right uprights share a full collinear edge with the top bar
	// (touching, zero-area overlap): exercises the degenerate case where
	// segIntersect reports no crossing and classification must rely on the
	// boundary membership test instead.
	top := axisSquare(0, 2, 6, 3)
	left := axisSquare(0, 0, 1, 2)
	right := axisSquare(5, 0, 6, 2)

	acc := PolygonToRingSet(top, FromSubject)
	acc = Union(acc, PolygonToRingSet(left, FromClip))
	acc = Retag(acc, FromSubject)
	acc = Union(acc, PolygonToRingSet(right, FromClip))

	gotArea := ringSetArea(acc)
	wantArea := Area(top) + Area(left) + Area(right)
	assert.InDelta(t, wantArea, gotArea, 1e-6)
}

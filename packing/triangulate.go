package packing

import (
	poly2tri "github.com/ByteArena/poly2tri-go"
)

// TriangulatedArea triangulates outer (with optional holes) via
// poly2tri's incremental Delaunay sweep and sums the resulting
// triangles' areas. It exists as an independent cross-check against the
// shoelace-based Area: the two methods share no code path, so a
// divergence between them flags a malformed ring (self-intersection,
// wrong winding) that the shoelace formula alone would silently
// miscompute.
func TriangulatedArea(outer Polygon, holes ...Polygon) float64 {
	contour := toPoly2triPoints(outer)
	ctx := poly2tri.NewSweepContext(contour, poly2tri.SweepContextOptions{CloneArrays: true})
	for _, h := range holes {
		ctx.AddHole(toPoly2triPoints(h))
	}
	poly2tri.Triangulate(ctx)

	total := 0.0
	for _, tri := range ctx.GetTriangles() {
		total += triangleArea(tri)
	}
	return total
}

func toPoly2triPoints(p Polygon) []*poly2tri.Point {
	out := make([]*poly2tri.Point, len(p))
	for i, v := range p {
		out[i] = poly2tri.NewPoint(v[0], v[1])
	}
	return out
}

func triangleArea(t *poly2tri.Triangle) float64 {
	a, b, c := t.Points[0], t.Points[1], t.Points[2]
	cross := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
	if cross < 0 {
		cross = -cross
	}
	return cross / 2
}

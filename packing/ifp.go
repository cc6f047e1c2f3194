package packing

import (
	"math"

	"github.com/paulmach/orb"
)

// IFPAngularStep is the angular increment (degrees) used by the disk
// inner-fit construction's sliding discretization.
const IFPAngularStep = 4.0

// InnerFitDisk computes the inner-fit polygon of shape against the disk:
// the locus of shape's highest point such that shape lies entirely inside
// the disk. Built by angular sliding: translate shape so its highest
// point sits at the origin, slide against the boundary in
// direction (1,0), then repeatedly rotate the wall-normal direction by
// IFPAngularStep and slide again, recording the moved highest point each
// time. The disk boundary is curved, so this is an approximation; the
// final convex hull over the collected points cleans up the resulting
// discretization noise (the true IFP of a convex shape in a disk is
// itself convex).
func InnerFitDisk(shape Polygon, disk Disk) Polygon {
	high := HighestPoint(shape)
	p := Translate(shape, -high[0], -high[1])
	highest := orb.Point{0, 0}

	moveVec, contact := disk.Slide(p, orb.Point{1, 0})
	p = Translate(p, moveVec[0], moveVec[1])
	highest = orb.Point{highest[0] + moveVec[0], highest[1] + moveVec[1]}
	if !disk.Contains(p) {
		// the shape does not fit inside the disk in any position.
		return nil
	}

	points := []orb.Point{highest}

	dir := PerpendicularLeft(contact)
	steps := int(math.Ceil(360/IFPAngularStep)) - 1
	for i := 0; i < steps; i++ {
		dir = Rotate(Polygon{dir}, IFPAngularStep, orb.Point{0, 0})[0]
		move, _ := disk.Slide(p, dir)
		if move[0] != 0 || move[1] != 0 {
			p = Translate(p, move[0], move[1])
			highest = orb.Point{highest[0] + move[0], highest[1] + move[1]}
			points = append(points, highest)
		}
	}

	if len(points) < 3 {
		return nil
	}
	return ConvexHull(points)
}

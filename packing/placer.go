package packing

import (
	"github.com/paulmach/orb"
	"golang.org/x/sync/errgroup"
)

// Placer is the driver: it repeatedly asks a ShapeSource for the next
// shape, assembles feasible-placement loci for every rotation the
// source's symmetry allows, picks the bottom-left candidate, and commits
// it, until no rotation of the current shape yields any feasible
// placement.
type Placer struct {
	source ShapeSource
	count  int

	// Concurrent enables evaluating each allowed rotation's loci on its
	// own goroutine. Evaluation results are collected into a fixed-size
	// slice before the tie-break runs, so the winner is identical to the
	// sequential run regardless of goroutine scheduling.
	Concurrent bool
}

// NewPlacer returns a Placer driving source.
func NewPlacer(source ShapeSource) *Placer {
	return &Placer{source: source}
}

// Count reports how many shapes have been committed so far.
func (p *Placer) Count() int { return p.count }

// Run consumes shapes and commits placements until no placement is
// feasible. Contract violations from the source abort the run upward;
// exhaustion (an empty locus set for every allowed rotation) is normal
// termination and returns nil.
func (p *Placer) Run() error {
	disk := Disk{Radius: p.source.Radius()}
	symmetry := p.source.SymmetryStep()

	for {
		shape, ok, err := p.source.NextShape()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		winK, winPoint, found := p.bestRotation(shape, symmetry, disk)
		if !found {
			return nil
		}
		step := symmetry.Step()
		if err := p.source.Place(winPoint[0], winPoint[1], float64(winK)*step); err != nil {
			return err
		}
		p.count++
	}
}

// bestRotation evaluates every rotation 0..count-1 allowed by symmetry
// and returns the winning rotation index, its bottom-left point, and
// whether any rotation yielded a feasible placement at all. Tie-break:
// lowest y, then lowest x, then smallest k, identical whether evaluation
// ran sequentially or concurrently.
func (p *Placer) bestRotation(shape Polygon, symmetry Symmetry, disk Disk) (int, orb.Point, bool) {
	n := symmetry.Count()
	step := symmetry.Step()
	placed := p.source.CommittedShapes()

	points := make([]orb.Point, n)
	ok := make([]bool, n)

	evaluate := func(k int) {
		rotated := RotateAboutAnchor(shape, float64(k)*step)
		loci := FeasiblePlacements(rotated, placed, disk)
		point, found := BottomLeft(loci)
		points[k] = point
		ok[k] = found
	}

	if p.Concurrent {
		var g errgroup.Group
		for k := 0; k < n; k++ {
			k := k
			g.Go(func() error {
				evaluate(k)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for k := 0; k < n; k++ {
			evaluate(k)
		}
	}

	best := -1
	for k := 0; k < n; k++ {
		if !ok[k] {
			continue
		}
		if best == -1 {
			best = k
			continue
		}
		if points[k][1] < points[best][1] ||
			(points[k][1] == points[best][1] && points[k][0] < points[best][0]) {
			best = k
		}
	}
	if best == -1 {
		return 0, orb.Point{}, false
	}
	return best, points[best], true
}

package main

import "github.com/danherbriley/mamba-crystal-sorting-solution-riley/packing"

// fixedSource is the config-driven packing.ShapeSource the command line
// wires up: a fixed list of shapes consumed in order, optionally looping
// once exhausted, with a hook fired after every successful commit so the
// caller can report and publish telemetry without the source knowing
// about either. A random generator remains a named-but-unimplemented
// collaborator (out of scope), so this is the only ShapeSource the
// command ships.
type fixedSource struct {
	*packing.PlacementState
	shapes   []packing.Polygon
	idx      int
	loop     bool
	onCommit func(x, y, rotationDeg float64)
}

func newFixedSource(radius float64, sym packing.Symmetry, shapes []packing.Polygon, loop bool) *fixedSource {
	return &fixedSource{
		PlacementState: packing.NewPlacementState(radius, sym),
		shapes:         shapes,
		loop:           loop,
	}
}

// NextShape implements packing.ShapeSource.
func (f *fixedSource) NextShape() (packing.Polygon, bool, error) {
	if len(f.shapes) == 0 {
		return nil, false, nil
	}
	if f.idx >= len(f.shapes) {
		if !f.loop {
			return nil, false, nil
		}
		f.idx = 0
	}
	shape := f.shapes[f.idx]
	if err := f.BeginShape(shape); err != nil {
		return nil, false, err
	}
	f.idx++
	return shape, true, nil
}

// Place implements packing.ShapeSource, delegating to PlacementState and
// then notifying onCommit on success.
func (f *fixedSource) Place(x, y, rotationDeg float64) error {
	if err := f.PlacementState.Place(x, y, rotationDeg); err != nil {
		return err
	}
	if f.onCommit != nil {
		f.onCommit(x, y, rotationDeg)
	}
	return nil
}

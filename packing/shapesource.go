package packing

import (
	"errors"
	"math"
)

// Symmetry is the minimum allowed rotation increment, in degrees. 360
// means only 0° is allowed (no rotational symmetry constraint).
type Symmetry int

const (
	SymmetryNone      Symmetry = 360
	SymmetryTwofold   Symmetry = 180
	SymmetryThreefold Symmetry = 120
	SymmetryFourfold  Symmetry = 90
	SymmetrySixfold   Symmetry = 60
)

// Step returns the symmetry's rotation increment as a float64 degree
// value, for arithmetic against measured rotation angles.
func (s Symmetry) Step() float64 {
	return float64(s)
}

// Count returns the number of distinct rotations the symmetry allows
// (360/step), i.e. 1 for SymmetryNone.
func (s Symmetry) Count() int {
	return 360 / int(s)
}

// Contract violations a ShapeSource signals. Each is a distinct sentinel
// so callers can errors.Is against the specific violation rather than a
// single generic error.
var (
	ErrNotReady           = errors.New("shape generator not ready: previous shape remains uncommitted")
	ErrNoCurrentShape     = errors.New("no shape to place: get a new shape first")
	ErrRotationDisallowed = errors.New("rotation not allowed by symmetry")
	ErrOutsideDisk        = errors.New("placement outside disk")
	ErrOverlap            = errors.New("placement overlaps existing shape")
)

// ShapeSource is the external collaborator that yields shapes one at a
// time and owns the placement state. The core only consumes these
// operations; random/fixed/custom generators are supplied by the caller.
type ShapeSource interface {
	// NextShape returns the next candidate polygon (anchor at vertex 0),
	// or ok=false at end of stream. Returns ErrNotReady if a previously
	// returned shape has not yet been committed via Place.
	NextShape() (shape Polygon, ok bool, err error)

	// Place commits the current shape with its anchor at (x, y) after
	// rotating it counter-clockwise by rotationDeg about the anchor.
	Place(x, y, rotationDeg float64) error

	// Radius is the disk's fixed radius.
	Radius() float64

	// SymmetryStep is the minimum allowed rotation increment in degrees.
	SymmetryStep() Symmetry

	// CommittedShapes is the sequence of already-placed polygons.
	CommittedShapes() []Polygon
}

// PlacementState is the append-only sequence of committed polygons plus
// the disk radius. A ShapeSource implementation typically embeds one to
// satisfy CommittedShapes/Radius and to validate Place.
type PlacementState struct {
	disk     Disk
	symmetry Symmetry
	shapes   []Polygon
	current  Polygon
	ready    bool
}

// NewPlacementState returns an empty PlacementState for the given disk
// radius and symmetry, ready to hand out its first shape.
func NewPlacementState(radius float64, symmetry Symmetry) *PlacementState {
	return &PlacementState{disk: Disk{Radius: radius}, symmetry: symmetry, ready: true}
}

// Radius implements ShapeSource.
func (s *PlacementState) Radius() float64 { return s.disk.Radius }

// SymmetryStep implements ShapeSource.
func (s *PlacementState) SymmetryStep() Symmetry { return s.symmetry }

// CommittedShapes implements ShapeSource.
func (s *PlacementState) CommittedShapes() []Polygon {
	out := make([]Polygon, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Count returns the number of committed shapes.
func (s *PlacementState) Count() int { return len(s.shapes) }

// FilledRatio returns total committed area divided by the disk's area.
func (s *PlacementState) FilledRatio() float64 {
	area := 0.0
	for _, p := range s.shapes {
		area += Area(p)
	}
	return area / (math.Pi * s.disk.Radius * s.disk.Radius)
}

// BeginShape marks shape as the current uncommitted candidate. Returns
// ErrNotReady if a previous shape has not yet been committed.
func (s *PlacementState) BeginShape(shape Polygon) error {
	if !s.ready {
		return ErrNotReady
	}
	s.current = shape
	s.ready = false
	return nil
}

// Place validates and commits the current shape: no current shape,
// disallowed rotation, out-of-disk vertices, or overlap with a committed
// shape all fail without mutating state.
func (s *PlacementState) Place(x, y, rotationDeg float64) error {
	if s.current == nil {
		return ErrNoCurrentShape
	}
	step := s.symmetry.Step()
	remainder := math.Mod(math.Mod(rotationDeg, step)+step, step)
	if remainder > CoordEps && step-remainder > CoordEps {
		return ErrRotationDisallowed
	}

	rotated := RotateAboutAnchor(s.current, rotationDeg)
	placed := Translate(rotated, x-rotated.Anchor()[0], y-rotated.Anchor()[1])

	if !s.disk.Contains(placed) {
		return ErrOutsideDisk
	}
	for _, existing := range s.shapes {
		if overlapArea(placed, existing) > AreaEps {
			return ErrOverlap
		}
	}

	s.shapes = append(s.shapes, placed)
	s.current = nil
	s.ready = true
	return nil
}

// overlapArea returns the area of the intersection of a and b, computed
// via the boolean engine and the shoelace formula over each resulting
// ring.
func overlapArea(a, b Polygon) float64 {
	ra := PolygonToRingSet(a, FromSubject)
	rb := PolygonToRingSet(b, FromClip)
	region := Intersect(ra, rb)
	total := 0.0
	for _, ring := range region.Rings() {
		total += Area(Polygon(ring.Points))
	}
	return total
}

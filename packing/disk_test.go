package packing

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDiskContains(t *testing.T) {
	d := Disk{Radius: 10}
	assert.True(t, d.Contains(Polygon{{1, 1}, {1, 0}, {0, 0}, {0, 1}}))
	assert.False(t, d.Contains(Polygon{{20, 20}, {20, 0}, {0, 0}, {0, 20}}))
}

func TestDiskContainsOnBoundary(t *testing.T) {
	d := Disk{Radius: 10}
	p := Polygon{{10, 0}, {0, 10}, {-10, 0}, {0, -10}}
	assert.True(t, d.Contains(p))
}

func TestDiskSlideReachesBoundary(t *testing.T) {
	d := Disk{Radius: 10}
	p := Polygon{{0.5, 0.5}, {0.5, -0.5}, {-0.5, -0.5}, {-0.5, 0.5}}
	move, contact := d.Slide(p, orb.Point{1, 0})
	moved := Translate(p, move[0], move[1])
	for _, v := range moved {
		assert.LessOrEqual(t, v[0]*v[0]+v[1]*v[1], d.Radius*d.Radius+1e-6)
	}
	// contact sits SlideBackoff behind the circle along dhat, not along its
	// own radial direction, so the two only agree to within a small
	// second-order term rather than exactly.
	assert.InDelta(t, d.Radius, math.Hypot(contact[0], contact[1])+SlideBackoff, 1e-3)
}

func TestDiskSlideZeroDirection(t *testing.T) {
	d := Disk{Radius: 10}
	p := square()
	move, contact := d.Slide(p, orb.Point{0, 0})
	assert.Equal(t, orb.Point{0, 0}, move)
	assert.Equal(t, orb.Point{0, 0}, contact)
}

func TestDiskSlideFromInsideSmallDiskMoves(t *testing.T) {
	// A small shape lying inside even a tiny disk always reaches the
	// boundary along any direction, so the slide is non-zero. The
	// no-contact branch (every discriminant negative) is not exercised here.
	d := Disk{Radius: 1}
	p := Polygon{{0, 0}, {0.1, 0}, {0.1, 0.1}, {0, 0.1}}
	move, _ := d.Slide(p, orb.Point{1, 0})
	assert.False(t, move[0] == 0 && move[1] == 0)
}

package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInnerFitDiskOfSmallSquareIsNonEmpty(t *testing.T) {
	d := Disk{Radius: 10}
	shape := axisSquare(0, 0, 1, 1)

	ifp := InnerFitDisk(shape, d)
	assert.NotNil(t, ifp)
	assert.True(t, len(ifp) >= 3)
	assert.True(t, IsCCW(ifp))
}

func TestInnerFitDiskShrinksAsShapeGrows(t *testing.T) {
	d := Disk{Radius: 10}
	small := axisSquare(0, 0, 1, 1)
	big := axisSquare(0, 0, 5, 5)

	ifpSmall := InnerFitDisk(small, d)
	ifpBig := InnerFitDisk(big, d)
	assert.Greater(t, Area(ifpSmall), Area(ifpBig))
}

func TestInnerFitDiskOfOversizedShapeIsEmpty(t *testing.T) {
	// A 25-unit square cannot fit inside a radius-10 disk in any position
	// or rotation, so its inner-fit polygon is empty.
	d := Disk{Radius: 10}
	shape := axisSquare(0, 0, 25, 25)

	assert.Nil(t, InnerFitDisk(shape, d))
}

func TestInnerFitDiskStaysWithinDisk(t *testing.T) {
	d := Disk{Radius: 10}
	shape := axisSquare(0, 0, 2, 2)

	ifp := InnerFitDisk(shape, d)
	for _, v := range ifp {
		assert.LessOrEqual(t, v[0]*v[0]+v[1]*v[1], d.Radius*d.Radius+1e-6)
	}
}

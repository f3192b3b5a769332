package coord

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/cubesolve/cube"
)

// UDSliceSize is the coordinate space of UDSliceUnsorted: C(12,4).
const UDSliceSize = 495

// sliceEdgeThreshold: EdgeSlot ids FR, FL, BR, BL (8..11 in the
// cube package's EdgeSlot enumeration) are the four UD-slice edges.
const sliceEdgeThreshold = 8

// UDSliceUnsorted ranks which 4 of the 12 slots currently hold the
// four UD-slice edges, ignoring which slice edge is in which slot.
// The rank is the standard combinatorial-number-system encoding of a
// 4-subset of {0, ..., 11}: solved (slots 8,9,10,11) ranks highest
// (494), every slice edge displaced to the front ranks 0.
func UDSliceUnsorted(c cube.Cube) int {
	rank := 0
	k := 1
	for s := 0; s < 12; s++ {
		id, _ := c.EdgeAt(cube.EdgeSlot(s))
		if int(id) >= sliceEdgeThreshold {
			if s >= k {
				rank += int(combin.Binomial(s, k))
			}
			k++
		}
	}
	return rank
}

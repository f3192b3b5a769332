package coord

import "github.com/katalvlaran/cubesolve/cube"

// EOSize is the coordinate space of EOAxis.
const EOSize = 2048

// EOAxis packs the bad/good orientation of edges 0..10 on the given
// axis into bits 0..10; edge 11 is never read since its orientation is
// implied by the per-axis even-parity invariant.
func EOAxis(c cube.Cube, axis cube.Axis) int {
	eo := 0
	for i := 0; i < 11; i++ {
		if c.EdgeBad(cube.EdgeSlot(i), axis) {
			eo |= 1 << uint(i)
		}
	}
	return eo
}

package coord

import "github.com/katalvlaran/cubesolve/cube"

// DRSize is the coordinate space of DR: CornerOrientationSize * UDSliceSize.
const DRSize = CornerOrientationSize * UDSliceSize

// DR composes corner-orientation-UD and UD-slice-unsorted into the
// domino-reduction coordinate. The slice rank is reflected
// (UDSliceSize-1-rank) so that the solved cube, whose slice rank is the
// highest, has DR coordinate 0. Callers are expected to have already
// confirmed EO on FB holds (DR's pre-check, not this function's
// concern — a coordinate function only ever reads, never validates).
func DR(c cube.Cube) int {
	return CornerOrientationUD(c)*UDSliceSize + (UDSliceSize - 1 - UDSliceUnsorted(c))
}

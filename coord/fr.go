package coord

import "github.com/katalvlaran/cubesolve/cube"

// FRSize is the coordinate space of FR: the exact corner-permutation
// rank combined with the exact slice-edge-permutation rank, with no
// modulo reduction. Once HTR holds, the cube's corner/slice-edge
// permutation is already a member of the half-turn-reachable closure
// (see coord.HTR); FR's own half-turn search narrows that down to the
// literal identity permutation on both, so the coordinate's zero set
// is exact rather than a lossy approximation.
const FRSize = 40320 * sliceEdgePerms

// FR reports 0 exactly when both the corner permutation and the
// slice-edge permutation are fully solved.
func FR(c cube.Cube) int {
	return cornerPermRank(c)*sliceEdgePerms + edgeSlicePermRank(c)
}

// FRLeaveSliceSize is the coordinate space of FRLeaveSlice: the exact
// corner-permutation rank alone.
const FRLeaveSliceSize = 40320

// FRLeaveSlice is the "leave slice" variant of FR: it tracks only the
// exact corner-permutation rank, leaving the slice-edge permutation
// unconstrained (and so unsolved) for the finish to clean up.
func FRLeaveSlice(c cube.Cube) int {
	return cornerPermRank(c)
}

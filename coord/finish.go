package coord

import "github.com/katalvlaran/cubesolve/cube"

// FinishSize is the coordinate space of Finish: the same exact
// corner-permutation/slice-edge-permutation pair FR uses, with no
// modulo reduction — a literal enumeration of the remaining states
// rather than a coarsened approximation that could collide a solved
// and an unsolved state onto the same value.
const FinishSize = 40320 * sliceEdgePerms

// Finish reports 0 exactly when the corner permutation and the
// slice-edge permutation are both fully solved. Finish shares FR's
// exact formula: the "with slice" FR variant already reaches this
// goal directly, so FIN following it is typically a zero-length
// no-op; Finish exists as its own coordinate so the FRLS -> FINLS path
// (which deliberately leaves the slice-edge permutation unsolved
// through FR) has a literal target of its own.
func Finish(c cube.Cube) int {
	return cornerPermRank(c)*sliceEdgePerms + edgeSlicePermRank(c)
}

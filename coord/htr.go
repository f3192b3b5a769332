package coord

import "github.com/katalvlaran/cubesolve/cube"

// sliceEdgePerms is 4!: the number of ways the four UD-slice edges can
// be permuted among whichever four slots currently hold them.
const sliceEdgePerms = 24

// HTRSize bounds the coordinate space: coordinate 0 is reserved for
// the whole domino-reduced equivalence class (every corner/slice-edge
// permutation pair reachable from solved using half turns alone — the
// set an HTR search must land in), with every other (corner-
// permutation, slice-edge-permutation) pair getting its own bucket.
const HTRSize = 40320 * sliceEdgePerms

// htrClosure is the set of (corner-permutation, slice-edge-
// permutation) pairs reachable from solved using only the six half
// turns — the literal "domino" subgroup a DR-complete cube must land
// in to be HTR-solved. A modulo reduction of the corner-permutation
// rank has no relationship to this set: distinct, non-identity corner
// permutations land on the same residue as identity, letting a
// DR-complete-but-not-HTR-complete cube falsely report coordinate 0.
// cubelib's htr/coords.rs isn't present in the retrieved reference
// set, so rather than guess at a coset formula, the closure is
// computed directly by exploring cube.Cube.Turn from solved — correct
// by construction regardless of how large the resulting set is.
var htrClosure = computeHTRClosure()

func htrGenerators() []cube.Move {
	faces := []cube.Face{cube.Up, cube.Down, cube.Front, cube.Back, cube.Left, cube.Right}
	out := make([]cube.Move, 0, len(faces))
	for _, f := range faces {
		out = append(out, cube.NewMove(f, cube.Half))
	}
	return out
}

func htrKey(c cube.Cube) int {
	return cornerPermRank(c)*sliceEdgePerms + edgeSlicePermRank(c)
}

func computeHTRClosure() map[int]struct{} {
	gens := htrGenerators()
	solved := cube.Solved()
	seen := map[int]struct{}{htrKey(solved): {}}
	frontier := []cube.Cube{solved}
	for len(frontier) > 0 {
		var next []cube.Cube
		for _, c := range frontier {
			for _, m := range gens {
				nc := c.Turn(m)
				key := htrKey(nc)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				next = append(next, nc)
			}
		}
		frontier = next
	}
	return seen
}

// HTRClassKey exposes the raw (corner-permutation, slice-edge-
// permutation) pair HTR is built from, without collapsing every
// closure member to 0. HTR itself can't distinguish between different
// HTR-complete states (they're all coordinate 0 by definition); code
// that needs to tell those states apart — e.g. classifying which
// corner/edge pattern an HTR-complete cube landed in — keys off this
// instead.
func HTRClassKey(c cube.Cube) int { return htrKey(c) }

// HTR reports 0 exactly for cubes whose corner/slice-edge permutation
// is a member of the half-turn-reachable closure (the domino-reduced,
// HTR-complete set). Every other state gets a deterministic nonzero
// bucket that biases search order; only 0 carries completion meaning.
func HTR(c cube.Cube) int {
	key := htrKey(c)
	if _, ok := htrClosure[key]; ok {
		return 0
	}
	return 1 + key%(HTRSize-1)
}

// cornerPermRank ranks the permutation of the 8 corner ids across
// their 8 slots, in [0, 8!).
func cornerPermRank(c cube.Cube) int {
	ids := make([]int, 8)
	for s := 0; s < 8; s++ {
		id, _ := c.CornerAt(cube.CornerSlot(s))
		ids[s] = int(id)
	}
	return lehmerRank(ids)
}

// edgeSlicePermRank ranks the relative order of the four slice edges
// (ids 8..11) among the slots they currently occupy, in [0, 4!).
func edgeSlicePermRank(c cube.Cube) int {
	ids := make([]int, 0, 4)
	for s := 0; s < 12; s++ {
		id, _ := c.EdgeAt(cube.EdgeSlot(s))
		if int(id) >= sliceEdgeThreshold {
			ids = append(ids, int(id)-sliceEdgeThreshold)
		}
	}
	return lehmerRank(ids)
}

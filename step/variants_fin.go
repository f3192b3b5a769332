package step

import (
	"github.com/katalvlaran/cubesolve/coord"
	"github.com/katalvlaran/cubesolve/cube"
	"github.com/katalvlaran/cubesolve/moveset"
	"github.com/katalvlaran/cubesolve/prune"
)

// NewFINVariant builds the FIN step variant, finishing an FR-solved
// cube to fully solved. The six half turns still suffice: FR already
// fixed the slice-edge permutation, so only the remaining corner and
// UD/FB/LR-edge permutation classes need collapsing, both reachable by
// half turns alone.
func NewFINVariant(axis cube.Axis, table *prune.Table) StepVariant {
	stateChange := halfTurns(cube.Up, cube.Down, cube.Front, cube.Back, cube.Left, cube.Right)

	return StepVariant{
		Name:         "FIN-" + axis.String(),
		Kind:         FIN,
		Axis:         axis,
		PreTransform: axisPreTransform(axis),
		MoveSet:      moveset.New(stateChange, nil),
		Table:        table,
		CoordFn:      coord.Finish,
		PreCheck: func(c cube.Cube) bool {
			return coord.FR(c) == 0
		},
		PostCheck: func(result cube.Cube, _ cube.Algorithm) bool {
			return coord.Finish(result) == 0
		},
	}
}

// NewFINLSVariant builds the finish variant that follows FRLS. The
// slice-edge permutation was left unsolved, so the half-turn-only
// subgroup FIN relies on is no longer guaranteed reachable: FINLS
// opens the full 18-move set back up, at the cost of a larger search.
func NewFINLSVariant(axis cube.Axis, table *prune.Table) StepVariant {
	stateChange := allMoves()

	return StepVariant{
		Name:         "FINLS-" + axis.String(),
		Kind:         FINLS,
		Axis:         axis,
		PreTransform: axisPreTransform(axis),
		MoveSet:      moveset.New(stateChange, nil),
		Table:        table,
		CoordFn:      coord.Finish,
		PreCheck: func(c cube.Cube) bool {
			return coord.FRLeaveSlice(c) == 0
		},
		PostCheck: func(result cube.Cube, _ cube.Algorithm) bool {
			return coord.Finish(result) == 0
		},
	}
}

// FINTableSpec describes the BFS generation inputs for the canonical
// FIN pruning table.
func FINTableSpec(version uint32) prune.Spec {
	v := NewFINVariant(cube.FB, nil)
	return prune.Spec{
		Name:    "FIN",
		Size:    coord.FinishSize,
		Moves:   v.MoveSet.Moves(),
		CoordFn: v.CoordFn,
		Version: version,
		Niss:    true,
	}
}

// FINLSTableSpec describes the BFS generation inputs for the FINLS
// pruning table, built over the full 18-move set since FRLS leaves the
// slice-edge permutation unconstrained.
func FINLSTableSpec(version uint32) prune.Spec {
	v := NewFINLSVariant(cube.FB, nil)
	return prune.Spec{
		Name:    "FINLS",
		Size:    coord.FinishSize,
		Moves:   v.MoveSet.Moves(),
		CoordFn: v.CoordFn,
		Version: version,
		Niss:    true,
	}
}

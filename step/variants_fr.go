package step

import (
	"github.com/katalvlaran/cubesolve/coord"
	"github.com/katalvlaran/cubesolve/cube"
	"github.com/katalvlaran/cubesolve/moveset"
	"github.com/katalvlaran/cubesolve/prune"
)

// NewFRVariant builds the FR step variant: same six-half-turn move set
// as HTR (any half turn keeps an HTR-solved cube inside the HTR
// subgroup), narrowed to FR's finer corner-permutation class and exact
// slice-edge permutation. PreCheck requires HTR to already hold.
func NewFRVariant(axis cube.Axis, table *prune.Table) StepVariant {
	stateChange := halfTurns(cube.Up, cube.Down, cube.Front, cube.Back, cube.Left, cube.Right)

	return StepVariant{
		Name:         "FR-" + axis.String(),
		Kind:         FR,
		Axis:         axis,
		PreTransform: axisPreTransform(axis),
		MoveSet:      moveset.New(stateChange, nil),
		Table:        table,
		CoordFn:      coord.FR,
		PreCheck: func(c cube.Cube) bool {
			return coord.HTR(c) == 0
		},
		PostCheck: func(result cube.Cube, _ cube.Algorithm) bool {
			return coord.FR(result) == 0
		},
	}
}

// NewFRLSVariant builds the "leave slice" FR variant: it shares FR's
// move set and HTR pre-check, but its goal coordinate ignores the
// slice-edge permutation entirely, trading a shorter FR phase for a
// finish phase that must still place those four edges.
func NewFRLSVariant(axis cube.Axis, table *prune.Table) StepVariant {
	stateChange := halfTurns(cube.Up, cube.Down, cube.Front, cube.Back, cube.Left, cube.Right)

	return StepVariant{
		Name:         "FRLS-" + axis.String(),
		Kind:         FRLS,
		Axis:         axis,
		PreTransform: axisPreTransform(axis),
		MoveSet:      moveset.New(stateChange, nil),
		Table:        table,
		CoordFn:      coord.FRLeaveSlice,
		PreCheck: func(c cube.Cube) bool {
			return coord.HTR(c) == 0
		},
		PostCheck: func(result cube.Cube, _ cube.Algorithm) bool {
			return coord.FRLeaveSlice(result) == 0
		},
	}
}

// FRTableSpec describes the BFS generation inputs for the canonical FR
// pruning table.
func FRTableSpec(version uint32) prune.Spec {
	v := NewFRVariant(cube.FB, nil)
	return prune.Spec{
		Name:    "FR",
		Size:    coord.FRSize,
		Moves:   v.MoveSet.Moves(),
		CoordFn: v.CoordFn,
		Version: version,
		Niss:    true,
	}
}

// FRLSTableSpec describes the BFS generation inputs for the canonical
// FRLS pruning table.
func FRLSTableSpec(version uint32) prune.Spec {
	v := NewFRLSVariant(cube.FB, nil)
	return prune.Spec{
		Name:    "FRLS",
		Size:    coord.FRLeaveSliceSize,
		Moves:   v.MoveSet.Moves(),
		CoordFn: v.CoordFn,
		Version: version,
		Niss:    true,
	}
}

package step

import (
	"github.com/katalvlaran/cubesolve/coord"
	"github.com/katalvlaran/cubesolve/cube"
	"github.com/katalvlaran/cubesolve/moveset"
	"github.com/katalvlaran/cubesolve/prune"
)

// NewDRVariant builds the DR step variant for axis. Working in the
// canonical FB frame, DR restricts the move set to quarter and half
// turns of U/D/L/R plus F2/B2 only: any quarter turn of F or B would
// re-flip the edges EO already fixed on the FB axis. PreCheck requires
// EO-FB to already hold, matching the legal-step ordering EO -> DR.
func NewDRVariant(axis cube.Axis, table *prune.Table) StepVariant {
	stateChange := quarterAndHalf(cube.Up, cube.Down, cube.Left, cube.Right)
	aux := halfTurns(cube.Front, cube.Back)

	return StepVariant{
		Name:         "DR-" + axis.String(),
		Kind:         DR,
		Axis:         axis,
		PreTransform: axisPreTransform(axis),
		MoveSet:      moveset.New(stateChange, aux),
		Table:        table,
		CoordFn:      coord.DR,
		PreCheck: func(c cube.Cube) bool {
			return coord.EOAxis(c, cube.FB) == 0
		},
	}
}

// DRTableSpec describes the BFS generation inputs for the (axis-
// independent, since DR always runs in the canonical FB frame) DR
// pruning table.
func DRTableSpec(version uint32) prune.Spec {
	v := NewDRVariant(cube.FB, nil)
	return prune.Spec{
		Name:    "DR",
		Size:    coord.DRSize,
		Moves:   v.MoveSet.Moves(),
		CoordFn: v.CoordFn,
		Version: version,
		Niss:    true,
	}
}

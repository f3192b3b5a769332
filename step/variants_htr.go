package step

import (
	"github.com/katalvlaran/cubesolve/coord"
	"github.com/katalvlaran/cubesolve/cube"
	"github.com/katalvlaran/cubesolve/moveset"
	"github.com/katalvlaran/cubesolve/prune"
)

// NewHTRVariant builds the HTR step variant. DR has already restricted
// L/R and F/B to half turns; only U/D retain quarter-turn freedom, and
// it's specifically those quarter turns that can move a DR-complete
// cube between different domino cosets — the six half turns alone can
// only ever move within whatever coset a cube started in (a subgroup
// is closed under its own generators), so they could never by
// themselves bring a non-domino cube into one. State-change is U/D
// quarter-and-half turns, matching HTR_DR_UD_MOVESET in dr_config.rs;
// the remaining four half turns are auxiliary — legal, coordinate-
// neutral moves the search may spend connecting triggers. PreCheck
// requires DR to already hold.
func NewHTRVariant(axis cube.Axis, table *prune.Table) StepVariant {
	stateChange := quarterAndHalf(cube.Up, cube.Down)
	aux := halfTurns(cube.Front, cube.Back, cube.Left, cube.Right)

	return StepVariant{
		Name:         "HTR-" + axis.String(),
		Kind:         HTR,
		Axis:         axis,
		PreTransform: axisPreTransform(axis),
		MoveSet:      moveset.New(stateChange, aux),
		Table:        table,
		CoordFn:      coord.HTR,
		PreCheck: func(c cube.Cube) bool {
			return coord.DR(c) == 0
		},
		PostCheck: func(result cube.Cube, _ cube.Algorithm) bool {
			// Re-verify domino-closure membership directly against the
			// resulting cube, independent of whatever distance the
			// pruning table had cached for its coordinate.
			return coord.HTR(result) == 0
		},
	}
}

// HTRTableSpec describes the BFS generation inputs for the canonical
// HTR pruning table.
func HTRTableSpec(version uint32) prune.Spec {
	v := NewHTRVariant(cube.FB, nil)
	return prune.Spec{
		Name:    "HTR",
		Size:    coord.HTRSize,
		Moves:   v.MoveSet.Moves(),
		CoordFn: v.CoordFn,
		Version: version,
		Niss:    true,
	}
}

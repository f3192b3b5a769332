package step

import (
	"github.com/katalvlaran/cubesolve/coord"
	"github.com/katalvlaran/cubesolve/cube"
	"github.com/katalvlaran/cubesolve/moveset"
	"github.com/katalvlaran/cubesolve/prune"
)

// NewEOVariant builds the EO step variant for axis: state-change is
// the axis's own quarter turns (the only moves that flip its edge
// orientation bit), everything else is auxiliary. No pre-transform is
// needed since EOAxis takes the axis as a direct parameter.
func NewEOVariant(axis cube.Axis, table *prune.Table) StepVariant {
	faces := facesOfAxis(axis)
	stateChange := quarterTurns(faces[0], faces[1])

	stateSet := make(map[cube.Move]bool, len(stateChange))
	for _, m := range stateChange {
		stateSet[m] = true
	}
	var aux []cube.Move
	for _, m := range allMoves() {
		if !stateSet[m] {
			aux = append(aux, m)
		}
	}

	return StepVariant{
		Name:    "EO-" + axis.String(),
		Kind:    EO,
		Axis:    axis,
		MoveSet: moveset.New(stateChange, aux),
		Table:   table,
		CoordFn: func(c cube.Cube) int { return coord.EOAxis(c, axis) },
	}
}

// EOTableSpec describes the BFS generation inputs for one EO axis
// variant's pruning table, for registration with prune.Registry.
func EOTableSpec(axis cube.Axis, version uint32) prune.Spec {
	v := NewEOVariant(axis, nil)
	return prune.Spec{
		Name:    v.Name,
		Size:    coord.EOSize,
		Moves:   v.MoveSet.Moves(),
		CoordFn: v.CoordFn,
		Version: version,
	}
}

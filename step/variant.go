package step

import (
	"context"

	"github.com/katalvlaran/cubesolve/cube"
	"github.com/katalvlaran/cubesolve/moveset"
	"github.com/katalvlaran/cubesolve/prune"
	"github.com/katalvlaran/cubesolve/search"
)

// StepVariant is the unit the DFS core is driven through: a move set,
// an optional whole-cube pre-rotation that re-frames an axis variant
// into the package's single canonical kernel, a pruning table and
// coordinate function, and the pre/post admissibility checks.
type StepVariant struct {
	Name         string
	Kind         Kind
	Axis         cube.Axis
	PreTransform *cube.Transformation // nil: already canonical (FB)
	MoveSet      moveset.MoveSet
	Table        *prune.Table
	CoordFn      func(cube.Cube) int
	PreCheck     func(cube.Cube) bool
	// PostCheck re-verifies a candidate completion directly against the
	// resulting cube state, independent of whatever the pruning table's
	// cached distance said got it here.
	PostCheck func(cube.Cube, cube.Algorithm) bool
}

func toCanonical(c cube.Cube, t *cube.Transformation) cube.Cube {
	if t == nil {
		return c
	}
	return c.Transform(*t)
}

func fromCanonical(alg cube.Algorithm, t *cube.Transformation) cube.Algorithm {
	if t == nil {
		return alg
	}
	return alg.TransformAll(t.Inverse())
}

// Eligible reports whether in passes this variant's pre-check, i.e.
// whether the phase's goal is even reachable from here (e.g. DR
// requires EO to already hold on the relevant axis).
func (sv StepVariant) Eligible(in cube.Cube) bool {
	if sv.PreCheck == nil {
		return true
	}
	return sv.PreCheck(toCanonical(in, sv.PreTransform))
}

// Search runs the DFS kernel for this variant against in, re-framing
// into the canonical orientation before searching and rotating every
// emitted algorithm back into the caller's frame.
func (sv StepVariant) Search(ctx context.Context, in cube.Cube, minDepth, maxDepth int, niss search.Mode, emit func(cube.Algorithm) bool) error {
	canonical := toCanonical(in, sv.PreTransform)
	if sv.PreCheck != nil && !sv.PreCheck(canonical) {
		return nil
	}
	return search.DFS(ctx, canonical, minDepth, maxDepth, search.Params{
		MoveSet:   sv.MoveSet,
		Table:     sv.Table,
		CoordFn:   sv.CoordFn,
		PostCheck: sv.PostCheck,
		Niss:      niss,
	}, func(alg cube.Algorithm) bool {
		return emit(fromCanonical(alg, sv.PreTransform))
	})
}

// Step groups the (up to three) axis variants that implement one
// phase kind.
type Step struct {
	Kind     Kind
	Variants []StepVariant
}

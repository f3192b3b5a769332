package search

import (
	"context"

	"github.com/katalvlaran/cubesolve/cube"
	"github.com/katalvlaran/cubesolve/moveset"
	"github.com/katalvlaran/cubesolve/prune"
	"github.com/katalvlaran/cubesolve/solveerr"
)

// infeasible stands in for "unreachable within any depth this search
// will try" when a coordinate's table entry is still unset.
const infeasible = 1 << 30

// Params bundles everything one DFS run needs beyond the start cube
// and depth bounds: the phase's legal moves and transition rules, its
// pruning table and coordinate function, its post-step admissibility
// check, and the NISS mode to search under.
type Params struct {
	MoveSet   moveset.MoveSet
	Table     *prune.Table
	CoordFn   func(cube.Cube) int
	PostCheck func(cube.Cube, cube.Algorithm) bool
	Niss      Mode
}

// Emit receives one admissible algorithm fragment per call; returning
// false tells the search to stop immediately (the caller either got
// what it needed or downstream has cancelled).
type Emit func(cube.Algorithm) bool

// node is the mutable per-branch DFS state threaded through recurse.
type node struct {
	cube            cube.Cube
	remaining       int
	prevNormal      cube.Move
	hasPrevNormal   bool
	prevInverse     cube.Move
	hasPrevInverse  bool
	active          bool // false: appending to Normal; true: appending to Inverse
	switchUsed      bool // Before mode: has the single allowed switch been spent
	justSwitched    bool // entered by a switch: make a move before switching again
	normal, inverse []cube.Move
}

// DFS runs iterative deepening from minDepth to maxDepth, calling emit
// for every admissible algorithm found, in non-decreasing length order
// within each depth and across depths. It returns ctx.Err() if
// cancelled, or an Internal error if params are malformed.
func DFS(ctx context.Context, start cube.Cube, minDepth, maxDepth int, p Params, emit Emit) error {
	if p.Table == nil || p.CoordFn == nil {
		return solveerr.Newf(solveerr.Internal, "search.DFS", "nil Table or CoordFn in Params")
	}
	for d := minDepth; d <= maxDepth; d++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		root := node{cube: start, remaining: d}
		cont, err := recurse(ctx, p, root, emit)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
	return nil
}

// recurse explores one node, returning (keepSearching, error).
// keepSearching is false once emit has asked to stop.
func recurse(ctx context.Context, p Params, n node, emit Emit) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	h := p.Table.Distance(p.CoordFn(n.cube))
	if h < 0 {
		h = infeasible
	}
	if p.Niss == Always && h > 0 {
		h = 1 // a free switch can route around several moves
	}
	if h > n.remaining {
		return true, nil
	}

	if n.remaining == 0 {
		prevMove, hasPrev := n.prevNormal, n.hasPrevNormal
		if n.active {
			prevMove, hasPrev = n.prevInverse, n.hasPrevInverse
		}
		if h == 0 && hasPrev && p.MoveSet.CanEndOn(prevMove) {
			alg := cube.Algorithm{
				Normal:  append([]cube.Move(nil), n.normal...),
				Inverse: append([]cube.Move(nil), n.inverse...),
			}
			if p.PostCheck == nil || p.PostCheck(n.cube, alg) {
				if !emit(alg) {
					return false, nil
				}
			}
		}
		return true, nil
	}

	prevMove, hasPrev := n.prevNormal, n.hasPrevNormal
	if n.active {
		prevMove, hasPrev = n.prevInverse, n.hasPrevInverse
	}
	for _, m := range p.MoveSet.Moves() {
		if hasPrev && !p.MoveSet.IsAllowedAfter(prevMove, m) {
			continue
		}
		if n.remaining == 1 && !p.MoveSet.CanEndOn(m) {
			continue
		}
		child := n
		child.cube = n.cube.Turn(m)
		child.remaining = n.remaining - 1
		child.justSwitched = false
		if n.active {
			child.prevInverse, child.hasPrevInverse = m, true
			child.inverse = append(append([]cube.Move(nil), n.inverse...), m)
		} else {
			child.prevNormal, child.hasPrevNormal = m, true
			child.normal = append(append([]cube.Move(nil), n.normal...), m)
		}
		cont, err := recurse(ctx, p, child, emit)
		if err != nil || !cont {
			return cont, err
		}
	}

	if p.Niss != Never && !n.justSwitched && (p.Niss == Always || !n.switchUsed) {
		child := n
		child.cube = n.cube.Invert()
		child.active = !n.active
		child.justSwitched = true
		if p.Niss == Before {
			child.switchUsed = true
		}
		cont, err := recurse(ctx, p, child, emit)
		if err != nil || !cont {
			return cont, err
		}
	}

	return true, nil
}

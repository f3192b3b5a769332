package step

import (
	"strings"

	"github.com/katalvlaran/cubesolve/coord"
	"github.com/katalvlaran/cubesolve/cube"
	"github.com/katalvlaran/cubesolve/moveset"
	"github.com/katalvlaran/cubesolve/prune"
	"github.com/katalvlaran/cubesolve/solveerr"
)

// Trigger is a short move sequence a DR completion is required to end
// with, e.g. "R", "R U2 R", "R U' R" — the human-findable finishes
// users can bias RZP-driven DR search toward. Grounded on the
// trigger-list mechanism described in rzp_config.rs, adapted here as a
// PostCheck over the DR search rather than a second coordinate space.
type Trigger struct {
	Moves []cube.Move
}

// ParseTrigger parses a space-separated move sequence into a Trigger.
func ParseTrigger(s string) (Trigger, error) {
	fields := strings.Fields(s)
	moves := make([]cube.Move, 0, len(fields))
	for _, f := range fields {
		m, err := cube.ParseMove(f)
		if err != nil {
			return Trigger{}, solveerr.New(solveerr.UnsupportedTrigger, "step.ParseTrigger", err)
		}
		moves = append(moves, m)
	}
	return Trigger{Moves: moves}, nil
}

// mirrorMoves and rotateMoves lift cube.Algorithm's Mirror/TransformAll
// helpers onto a bare move slice, for building trigger orientation
// equivalents.
func mirrorMoves(moves []cube.Move, axis cube.Axis) []cube.Move {
	return cube.Algorithm{Normal: moves}.Mirror(axis).Normal
}

func rotateMoves(moves []cube.Move, t cube.Transformation) []cube.Move {
	return cube.Algorithm{Normal: moves}.TransformAll(t).Normal
}

// rzpHalfRotations are the three half-turn rotations that keep every
// axis in place, so a trigger's quarter turn stays on its own axis;
// with the identity they give the four orientations of an
// 8-orientation expansion.
var rzpHalfRotations = []cube.Transformation{
	cube.NewTransformation(cube.RotX, cube.Half),
	cube.NewTransformation(cube.RotY, cube.Half),
	cube.NewTransformation(cube.RotZ, cube.Half),
}

// ExpandTrigger returns trigger's 8 orientation-equivalents: the
// trigger and its x2, y2 and z2 rotations, and the same four of its
// FB-mirror.
func ExpandTrigger(t Trigger) []Trigger {
	out := make([]Trigger, 0, 8)
	for _, base := range [][]cube.Move{t.Moves, mirrorMoves(t.Moves, cube.FB)} {
		out = append(out, Trigger{Moves: append([]cube.Move(nil), base...)})
		for _, r := range rzpHalfRotations {
			out = append(out, Trigger{Moves: rotateMoves(base, r)})
		}
	}
	return out
}

// ExpandTriggers expands every trigger in ts to its full 8-orientation
// set.
func ExpandTriggers(ts []Trigger) []Trigger {
	out := make([]Trigger, 0, 8*len(ts))
	for _, t := range ts {
		out = append(out, ExpandTrigger(t)...)
	}
	return out
}

// endsWithTrigger reports whether moves ends with trig, factoring out
// the final move's direction: every move but the last must match
// face-and-direction exactly, the last only needs to match face (so
// "R" matches a completion ending in R or R').
func endsWithTrigger(moves []cube.Move, trig Trigger) bool {
	n := len(trig.Moves)
	if n == 0 || len(moves) < n {
		return false
	}
	tail := moves[len(moves)-n:]
	for i := 0; i < n-1; i++ {
		if tail[i] != trig.Moves[i] {
			return false
		}
	}
	return tail[n-1].Face() == trig.Moves[n-1].Face()
}

// MatchesAnyTrigger reports whether moves ends with any of the
// (already orientation-expanded) triggers.
func MatchesAnyTrigger(moves []cube.Move, expanded []Trigger) bool {
	for _, t := range expanded {
		if endsWithTrigger(moves, t) {
			return true
		}
	}
	return false
}

// NewRZPVariant builds the RZP step variant: an EO-FB-solved cube is
// driven to a DR-solved state (same move set, table and coordinate as
// DR) whose final moves end with one of triggers, modulo last-move
// direction and 8-orientation equivalence. When triggers is empty, RZP
// degenerates to plain DR search (every ending admissible), matching
// the legal chain's fallback EO -> DR with RZP skipped.
func NewRZPVariant(axis cube.Axis, table *prune.Table, triggers []Trigger) StepVariant {
	stateChange := quarterAndHalf(cube.Up, cube.Down, cube.Left, cube.Right)
	aux := halfTurns(cube.Front, cube.Back)
	expanded := ExpandTriggers(triggers)

	return StepVariant{
		Name:         "RZP-" + axis.String(),
		Kind:         RZP,
		Axis:         axis,
		PreTransform: axisPreTransform(axis),
		MoveSet:      moveset.New(stateChange, aux),
		Table:        table,
		CoordFn:      coord.DR,
		PreCheck: func(c cube.Cube) bool {
			return coord.EOAxis(c, cube.FB) == 0
		},
		PostCheck: func(_ cube.Cube, alg cube.Algorithm) bool {
			if len(expanded) == 0 {
				return true
			}
			if len(alg.Normal) > 0 {
				return MatchesAnyTrigger(alg.Normal, expanded)
			}
			return MatchesAnyTrigger(alg.Inverse, expanded)
		},
	}
}

// RZPTableSpec describes the BFS generation inputs for RZP's pruning
// table — identical to DR's, since RZP shares DR's move set, coordinate
// and goal, differing only in which completions its PostCheck accepts.
func RZPTableSpec(version uint32) prune.Spec {
	v := NewRZPVariant(cube.FB, nil, nil)
	return prune.Spec{
		Name:    "RZP",
		Size:    coord.DRSize,
		Moves:   v.MoveSet.Moves(),
		CoordFn: v.CoordFn,
		Version: version,
		Niss:    true,
	}
}

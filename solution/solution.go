package solution

import "github.com/katalvlaran/cubesolve/cube"

// Step is one phase's contribution to a Solution: the moves it added,
// its own length, and the running cumulative length across every
// phase so far.
type Step struct {
	Name   string
	Moves  []cube.Move
	Len    int
	CumLen int
}

// Solution is a completed step chain: the per-step breakdown plus the
// single flattened ("un-inverted") algorithm spanning all of them.
type Solution struct {
	Steps []Step
	Final cube.Algorithm
}

// New builds a Solution from a completed step chain, flattening every
// step's moves into one normal-only Final algorithm.
func New(steps []Step) Solution {
	var moves []cube.Move
	for _, s := range steps {
		moves = append(moves, s.Moves...)
	}
	return Solution{
		Steps: steps,
		Final: cube.Algorithm{Normal: moves},
	}
}

// Len is the Solution's total move count.
func (s Solution) Len() int {
	return len(s.Final.Normal)
}

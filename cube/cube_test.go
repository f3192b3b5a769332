package cube_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubesolve/cube"
)

// allMoves enumerates the 18-move alphabet for exhaustive per-move checks.
func allMoves() []cube.Move {
	moves := make([]cube.Move, 0, cube.NumMoves)
	for i := 0; i < cube.NumMoves; i++ {
		moves = append(moves, cube.Move(i))
	}
	return moves
}

func allTransformations() []cube.Transformation {
	ts := make([]cube.Transformation, 0, cube.NumTransformations)
	for i := 0; i < cube.NumTransformations; i++ {
		ts = append(ts, cube.Transformation(i))
	}
	return ts
}

func TestSolved_IsSolved(t *testing.T) {
	require.True(t, cube.Solved().IsSolved())
}

// TestTurn_InverseUndoes checks Turn(m).Turn(m.Inverse()) == identity for
// every move in the alphabet, starting from a scrambled (not just solved)
// state so the check exercises permutation as well as orientation.
func TestTurn_InverseUndoes(t *testing.T) {
	scrambled, err := cube.ApplyScramble("R U F' D2 L B'")
	require.NoError(t, err)

	for _, m := range allMoves() {
		got := scrambled.Turn(m).Turn(m.Inverse())
		require.Equal(t, scrambled, got, "move %s did not undo cleanly", m)
	}
}

// TestTurn_QuarterAppliedFourTimesIsIdentity confirms the generator tables
// compose correctly: four quarter turns of any face return to start, and
// two quarters equal one half turn.
func TestTurn_QuarterAppliedFourTimesIsIdentity(t *testing.T) {
	for f := cube.Up; f <= cube.Right; f++ {
		c := cube.Solved()
		cw := cube.NewMove(f, cube.Clockwise)
		for i := 0; i < 4; i++ {
			c = c.Turn(cw)
		}
		require.True(t, c.IsSolved(), "four %s turns should return to solved", cw)

		half := cube.Solved().Turn(cw).Turn(cw)
		require.Equal(t, half, cube.Solved().Turn(cube.NewMove(f, cube.Half)))
	}
}

func TestTurn_HalfTurnPreservesCornerOrientation(t *testing.T) {
	c, err := cube.ApplyScramble("R2 U2 F2 D2 L2 B2")
	require.NoError(t, err)
	require.Equal(t, uint8(0), c.CornerOrientationSum())
}

// TestTurn_BadEdgeCountsStayEven exercises the invariant that the
// number of bad edges per axis is always even on any reachable cube.
func TestTurn_BadEdgeCountsStayEven(t *testing.T) {
	c, err := cube.ApplyScramble("R U R' U' R' F R2 U' R' U' R U R' F'")
	require.NoError(t, err)
	for _, n := range c.CountBadEdges() {
		require.Equal(t, 0, n%2)
	}
}

func TestInvert_IsInvolution(t *testing.T) {
	c, err := cube.ApplyScramble("R U R' U' R' F R2 U' R' U' R U R' F'")
	require.NoError(t, err)
	require.Equal(t, c, c.Invert().Invert())
}

func TestInvert_SolvedIsFixed(t *testing.T) {
	require.Equal(t, cube.Solved(), cube.Solved().Invert())
}

// TestTransform_SolvedIsFixed is the key regression test for the
// identity-relabeling bug: every whole-cube rotation must leave the
// solved cube solved.
func TestTransform_SolvedIsFixed(t *testing.T) {
	for _, tr := range allTransformations() {
		require.True(t, cube.Solved().Transform(tr).IsSolved(), "transform %s", tr)
	}
}

func TestTransform_InverseUndoes(t *testing.T) {
	c, err := cube.ApplyScramble("R U F' D2 L B'")
	require.NoError(t, err)
	for _, tr := range allTransformations() {
		got := c.Transform(tr).Transform(tr.Inverse())
		require.Equal(t, c, got, "transform %s did not undo cleanly", tr)
	}
}

// TestTransform_CommutesWithTurn confirms that rotating the whole cube
// then turning a relabeled move matches turning first and then rotating,
// which is what lets axis variants reuse a single canonical kernel.
func TestTransform_CommutesWithTurn(t *testing.T) {
	c, err := cube.ApplyScramble("R U F' D2 L B'")
	require.NoError(t, err)
	for _, tr := range allTransformations() {
		for _, m := range allMoves() {
			lhs := c.Transform(tr).Turn(m.Transform(tr))
			rhs := c.Turn(m).Transform(tr)
			require.Equal(t, rhs, lhs, "transform %s move %s", tr, m)
		}
	}
}

func TestAlgorithm_ApplyUninvertedRoundTrip(t *testing.T) {
	alg, err := cube.ParseAlgorithm("R U R' (F D F')")
	require.NoError(t, err)

	// NISS application and the flattened form agree on a cube the
	// algorithm solves; start from the inverse of the flattened moves.
	flat := alg.ToUninverted()
	start := cube.Algorithm{Inverse: flat.Normal}.Apply(cube.Solved())
	direct := alg.Apply(start)
	require.Equal(t, direct, flat.Apply(start))
	require.True(t, direct.IsSolved())
}

func TestParseMove_RejectsGarbage(t *testing.T) {
	_, err := cube.ParseMove("Q")
	require.Error(t, err)

	_, err = cube.ParseMove("R3")
	require.Error(t, err)

	_, err = cube.ParseMove("")
	require.Error(t, err)
}

func TestParseAlgorithm_UnbalancedParens(t *testing.T) {
	_, err := cube.ParseAlgorithm("R U (F D")
	require.Error(t, err)

	_, err = cube.ParseAlgorithm("R U) F D")
	require.Error(t, err)
}

func TestParseAlgorithm_NormalAndInverseSplit(t *testing.T) {
	alg, err := cube.ParseAlgorithm("R U2 (F' D)")
	require.NoError(t, err)
	require.Equal(t, []cube.Move{cube.NewMove(cube.Right, cube.Clockwise), cube.NewMove(cube.Up, cube.Half)}, alg.Normal)
	require.Equal(t, []cube.Move{cube.NewMove(cube.Front, cube.CounterClockwise), cube.NewMove(cube.Down, cube.Clockwise)}, alg.Inverse)
}

func TestAlgorithm_MirrorIsInvolution(t *testing.T) {
	alg, err := cube.ParseAlgorithm("R U R' U' R' F R2 U' R' U' R U R' F'")
	require.NoError(t, err)
	require.Equal(t, alg, alg.Mirror(cube.LR).Mirror(cube.LR))
}

func TestAlgorithm_String(t *testing.T) {
	alg, err := cube.ParseAlgorithm("R U2 (F' D)")
	require.NoError(t, err)
	require.Equal(t, "R U2 (F' D)", alg.String())
}

package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubesolve/cube"
	"github.com/katalvlaran/cubesolve/moveset"
	"github.com/katalvlaran/cubesolve/prune"
	"github.com/katalvlaran/cubesolve/search"
)

func eoFBCoord(c cube.Cube) int {
	coord := 0
	for i := 0; i < 11; i++ {
		if c.EdgeBad(cube.EdgeSlot(i), cube.FB) {
			coord |= 1 << uint(i)
		}
	}
	return coord
}

func eoFBMoveSet() moveset.MoveSet {
	stateChange := []cube.Move{
		cube.NewMove(cube.Front, cube.Clockwise), cube.NewMove(cube.Front, cube.CounterClockwise),
		cube.NewMove(cube.Back, cube.Clockwise), cube.NewMove(cube.Back, cube.CounterClockwise),
	}
	var aux []cube.Move
	for _, f := range []cube.Face{cube.Up, cube.Down, cube.Left, cube.Right} {
		for d := cube.Direction(0); d < 3; d++ {
			aux = append(aux, cube.NewMove(f, d))
		}
	}
	aux = append(aux, cube.NewMove(cube.Front, cube.Half), cube.NewMove(cube.Back, cube.Half))
	return moveset.New(stateChange, aux)
}

func TestDFS_FindsShortestFirst(t *testing.T) {
	ms := eoFBMoveSet()
	table, _ := prune.Generate(2048, ms.Moves(), eoFBCoord, 1)

	// R U F' U' R' leaves a single F/B quarter turn's worth of bad EO-FB
	// edges; confirm the search finds a length-matching fix and never
	// emits anything shorter than the table's own admissible bound.
	start, err := cube.ApplyScramble("R U F' U' R'")
	require.NoError(t, err)

	h := table.Distance(eoFBCoord(start))
	require.GreaterOrEqual(t, h, 0)

	var found []cube.Algorithm
	err = search.DFS(context.Background(), start, h, h, search.Params{
		MoveSet: ms,
		Table:   table,
		CoordFn: eoFBCoord,
	}, func(alg cube.Algorithm) bool {
		found = append(found, alg)
		return true
	})
	require.NoError(t, err)
	require.NotEmpty(t, found, "expected at least one solution at the admissible depth")
	for _, alg := range found {
		require.Equal(t, h, alg.Len())
		require.Equal(t, 0, eoFBCoord(alg2cube(t, start, alg)))
	}

	// Nothing shorter than h can possibly be admissible: the table
	// value is exactly the admissible lower bound.
	var none []cube.Algorithm
	err = search.DFS(context.Background(), start, 0, h-1, search.Params{
		MoveSet: ms,
		Table:   table,
		CoordFn: eoFBCoord,
	}, func(alg cube.Algorithm) bool {
		none = append(none, alg)
		return true
	})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestDFS_SolutionActuallyReachesGoal(t *testing.T) {
	ms := eoFBMoveSet()
	table, _ := prune.Generate(2048, ms.Moves(), eoFBCoord, 1)

	start, err := cube.ApplyScramble("R U F' U' R'")
	require.NoError(t, err)
	h := table.Distance(eoFBCoord(start))

	var got cube.Algorithm
	found := false
	err = search.DFS(context.Background(), start, h, h, search.Params{
		MoveSet: ms,
		Table:   table,
		CoordFn: eoFBCoord,
	}, func(alg cube.Algorithm) bool {
		got = alg
		found = true
		return false
	})
	require.NoError(t, err)
	require.True(t, found)

	result := alg2cube(t, start, got)
	require.Equal(t, 0, eoFBCoord(result))
}

func alg2cube(t *testing.T, start cube.Cube, alg cube.Algorithm) cube.Cube {
	t.Helper()
	c := start
	for _, m := range alg.Normal {
		c = c.Turn(m)
	}
	c = c.Invert()
	for _, m := range alg.Inverse {
		c = c.Turn(m)
	}
	return c.Invert()
}

func TestDFS_RespectsCancellation(t *testing.T) {
	ms := eoFBMoveSet()
	table, _ := prune.Generate(2048, ms.Moves(), eoFBCoord, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := search.DFS(ctx, cube.Solved(), 0, 10, search.Params{
		MoveSet: ms,
		Table:   table,
		CoordFn: eoFBCoord,
	}, func(cube.Algorithm) bool { return true })
	require.ErrorIs(t, err, context.Canceled)
}

func TestDFS_NissAlwaysProducesValidSolutions(t *testing.T) {
	ms := eoFBMoveSet()
	table, _ := prune.Generate(2048, ms.Moves(), eoFBCoord, 1)

	start, err := cube.ApplyScramble("R U F' U' R'")
	require.NoError(t, err)
	h := table.Distance(eoFBCoord(start))

	var got cube.Algorithm
	found := false
	err = search.DFS(context.Background(), start, 0, h+2, search.Params{
		MoveSet: ms,
		Table:   table,
		CoordFn: eoFBCoord,
		Niss:    search.Always,
	}, func(alg cube.Algorithm) bool {
		got = alg
		found = true
		return false
	})
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 0, eoFBCoord(alg2cube(t, start, got)))
}

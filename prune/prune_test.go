package prune_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubesolve/cube"
	"github.com/katalvlaran/cubesolve/prune"
)

// eoCoord is a self-contained EO-on-FB coordinate (one bit per edge
// 0..10), built without the coord package, used purely to exercise the
// BFS machinery below.
func eoCoord(c cube.Cube) int {
	coord := 0
	for i := 0; i < 11; i++ {
		if c.EdgeBad(cube.EdgeSlot(i), cube.FB) {
			coord |= 1 << uint(i)
		}
	}
	return coord
}

var eoMoves = []cube.Move{
	cube.NewMove(cube.Front, cube.Clockwise), cube.NewMove(cube.Front, cube.CounterClockwise), cube.NewMove(cube.Front, cube.Half),
	cube.NewMove(cube.Back, cube.Clockwise), cube.NewMove(cube.Back, cube.CounterClockwise), cube.NewMove(cube.Back, cube.Half),
	cube.NewMove(cube.Up, cube.Clockwise), cube.NewMove(cube.Up, cube.CounterClockwise), cube.NewMove(cube.Up, cube.Half),
	cube.NewMove(cube.Down, cube.Clockwise), cube.NewMove(cube.Down, cube.CounterClockwise), cube.NewMove(cube.Down, cube.Half),
	cube.NewMove(cube.Left, cube.Clockwise), cube.NewMove(cube.Left, cube.CounterClockwise), cube.NewMove(cube.Left, cube.Half),
	cube.NewMove(cube.Right, cube.Clockwise), cube.NewMove(cube.Right, cube.CounterClockwise), cube.NewMove(cube.Right, cube.Half),
}

func TestGenerate_GoalIsZeroDistance(t *testing.T) {
	table, _ := prune.Generate(2048, eoMoves, eoCoord, 1)
	require.Equal(t, 0, table.Distance(eoCoord(cube.Solved())))
}

func TestGenerate_EveryReachableCoordHasBoundedDistance(t *testing.T) {
	table, _ := prune.Generate(2048, eoMoves, eoCoord, 1)
	for coord := 0; coord < 2048; coord++ {
		d := table.Distance(coord)
		if d >= 0 {
			require.LessOrEqual(t, d, 14)
		}
	}
}

func TestTable_EncodeDecodeRoundTrip(t *testing.T) {
	table, _ := prune.Generate(2048, eoMoves, eoCoord, 7)

	var buf bytes.Buffer
	require.NoError(t, table.Encode(&buf))

	got, err := prune.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, table.Version, got.Version)
	require.Equal(t, table.Data, got.Data)
}

func TestRegistry_GeneratesOnce(t *testing.T) {
	calls := 0
	reg := prune.NewRegistry()
	reg.Register(prune.Spec{
		Name: "eo-fb",
		Size: 2048,
		Moves: eoMoves,
		CoordFn: func(c cube.Cube) int {
			calls++
			return eoCoord(c)
		},
		Version: 1,
	})

	t1, err := reg.Get("eo-fb")
	require.NoError(t, err)
	callsAfterFirst := calls

	t2, err := reg.Get("eo-fb")
	require.NoError(t, err)
	require.Same(t, t1, t2)
	require.Equal(t, callsAfterFirst, calls, "second Get must not regenerate")
}

func TestRegistry_UnknownPhase(t *testing.T) {
	reg := prune.NewRegistry()
	_, err := reg.Get("does-not-exist")
	require.Error(t, err)
}

package solution_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubesolve/cube"
	"github.com/katalvlaran/cubesolve/solution"
)

func TestNew_FlattensStepsIntoFinal(t *testing.T) {
	steps := []solution.Step{
		{Name: "EO-FB", Moves: []cube.Move{cube.NewMove(cube.Front, cube.Clockwise)}, Len: 1, CumLen: 1},
		{Name: "DR-FB", Moves: []cube.Move{cube.NewMove(cube.Up, cube.Half), cube.NewMove(cube.Right, cube.CounterClockwise)}, Len: 2, CumLen: 3},
	}
	sol := solution.New(steps)
	require.Equal(t, 3, sol.Len())
	require.Equal(t, "F U2 R'", sol.Final.String())
}

func TestRender_MatchesPerStepFormat(t *testing.T) {
	steps := []solution.Step{
		{Name: "EO-FB", Moves: []cube.Move{cube.NewMove(cube.Front, cube.Clockwise)}, Len: 1, CumLen: 1},
	}
	sol := solution.New(steps)
	out := sol.Render()

	require.True(t, strings.Contains(out, "F  //EO-FB (1/1)"))
	require.True(t, strings.HasSuffix(out, "Solution (1): F"))
}

func TestRender_EmptyStepsStillProducesFinalLine(t *testing.T) {
	sol := solution.New(nil)
	require.Equal(t, "Solution (0): ", sol.Render())
}

package step_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubesolve/coord"
	"github.com/katalvlaran/cubesolve/cube"
	"github.com/katalvlaran/cubesolve/prune"
	"github.com/katalvlaran/cubesolve/search"
	"github.com/katalvlaran/cubesolve/step"
)

func TestIsLegalAfter(t *testing.T) {
	require.True(t, step.IsLegalAfter(step.EO, step.RZP))
	require.True(t, step.IsLegalAfter(step.EO, step.DR))
	require.True(t, step.IsLegalAfter(step.RZP, step.DR))
	require.True(t, step.IsLegalAfter(step.HTR, step.FRLS))
	require.True(t, step.IsLegalAfter(step.FRLS, step.FINLS))
	require.False(t, step.IsLegalAfter(step.EO, step.HTR))
	require.False(t, step.IsLegalAfter(step.FR, step.FINLS))
}

func TestEOVariant_SolvesScramble(t *testing.T) {
	v := step.NewEOVariant(cube.FB, nil)
	table, _ := prune.Generate(coord.EOSize, v.MoveSet.Moves(), v.CoordFn, 1)
	v.Table = table

	start, err := cube.ApplyScramble("R U F' U' R' F")
	require.NoError(t, err)

	var found cube.Algorithm
	err = v.Search(context.Background(), start, 0, 4, search.Never, func(alg cube.Algorithm) bool {
		found = alg
		return false
	})
	require.NoError(t, err)
	require.NotNil(t, found.Normal)

	result := found.Apply(start)
	require.Equal(t, 0, v.CoordFn(result))
}

func TestDRVariant_PreCheckRejectsUnsolvedEO(t *testing.T) {
	v := step.NewDRVariant(cube.UD, nil)
	start, err := cube.ApplyScramble("R U F")
	require.NoError(t, err)
	require.False(t, v.Eligible(start))
}

func TestAxisPreTransform_UDMapsOntoFB(t *testing.T) {
	var solved cube.Cube
	require.Equal(t, 0, coord.EOAxis(solved, cube.FB))

	v := step.NewEOVariant(cube.UD, nil)
	require.True(t, v.Eligible(solved))
}

func TestClassifyHTR_IdentityIsSolved(t *testing.T) {
	solved := cube.Solved()
	subset, ok := step.ClassifyHTR(solved)
	require.True(t, ok)
	require.Equal(t, "identity", subset.Name)
}

func TestExpandTrigger_HasEightOrientations(t *testing.T) {
	trig, err := step.ParseTrigger("R U2 R")
	require.NoError(t, err)
	expanded := step.ExpandTrigger(trig)
	require.Len(t, expanded, 8)
}

func TestMatchesAnyTrigger_FactorsOutLastMoveDirection(t *testing.T) {
	trig, err := step.ParseTrigger("R")
	require.NoError(t, err)
	expanded := step.ExpandTrigger(trig)

	rPrime := []cube.Move{cube.NewMove(cube.Right, cube.CounterClockwise)}
	require.True(t, step.MatchesAnyTrigger(rPrime, expanded))

	u := []cube.Move{cube.NewMove(cube.Up, cube.Clockwise)}
	require.False(t, step.MatchesAnyTrigger(u, expanded))
}

func TestRZPVariant_EmptyTriggersAcceptsAnyEnding(t *testing.T) {
	v := step.NewRZPVariant(cube.FB, nil, nil)
	require.NotNil(t, v.PostCheck)
	require.True(t, v.PostCheck(cube.Cube{}, cube.Algorithm{Normal: []cube.Move{cube.NewMove(cube.Up, cube.Clockwise)}}))
}

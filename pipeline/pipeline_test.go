package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubesolve/coord"
	"github.com/katalvlaran/cubesolve/cube"
	"github.com/katalvlaran/cubesolve/pipeline"
	"github.com/katalvlaran/cubesolve/prune"
	"github.com/katalvlaran/cubesolve/step"
)

func smallRegistry() *prune.Registry {
	reg := prune.NewRegistry()
	for _, axis := range []cube.Axis{cube.UD, cube.FB, cube.LR} {
		reg.Register(step.EOTableSpec(axis, 1))
	}
	return reg
}

func TestSolve_SingleEOStepSolvesEO(t *testing.T) {
	reg := smallRegistry()
	start, err := cube.ApplyScramble("R U F' U' R' F")
	require.NoError(t, err)

	cfg := pipeline.New(pipeline.WithMaxTotal(6), pipeline.WithConcurrency(2))
	steps := []pipeline.StepConfig{{Kind: step.EO, MaxRel: 6}}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := pipeline.Solve(ctx, start, steps, reg, cfg)
	require.NoError(t, err)

	var solutions []string
	var lastLen int
	for sol := range out {
		require.GreaterOrEqual(t, sol.Len(), lastLen)
		lastLen = sol.Len()
		solutions = append(solutions, sol.Render())

		result := sol.Final.Apply(start)
		solvedOnOneAxis := coord.EOAxis(result, cube.UD) == 0 ||
			coord.EOAxis(result, cube.FB) == 0 ||
			coord.EOAxis(result, cube.LR) == 0
		require.True(t, solvedOnOneAxis)
	}
	require.NotEmpty(t, solutions)
}

func TestSolve_RejectsIllegalStepOrder(t *testing.T) {
	reg := smallRegistry()
	start, err := cube.ApplyScramble("R U F")
	require.NoError(t, err)

	cfg := pipeline.New()
	steps := []pipeline.StepConfig{
		{Kind: step.EO, MaxRel: 4},
		{Kind: step.HTR, MaxRel: 4},
	}
	_, err = pipeline.Solve(context.Background(), start, steps, reg, cfg)
	require.Error(t, err)
}

func TestSolve_EmptyStepChainErrors(t *testing.T) {
	reg := smallRegistry()
	start, err := cube.ApplyScramble("R")
	require.NoError(t, err)
	_, err = pipeline.Solve(context.Background(), start, nil, reg, pipeline.New())
	require.Error(t, err)
}

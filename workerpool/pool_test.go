package workerpool_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubesolve/workerpool"
)

func TestPool_MergesInNonDecreasingOrder(t *testing.T) {
	p := workerpool.New(2, func(a, b int) bool { return a < b })

	jobs := []workerpool.Job[int]{
		func(ctx context.Context, emit func(int) bool) error {
			for _, v := range []int{1, 4, 9} {
				if !emit(v) {
					return nil
				}
			}
			return nil
		},
		func(ctx context.Context, emit func(int) bool) error {
			for _, v := range []int{2, 3, 10} {
				if !emit(v) {
					return nil
				}
			}
			return nil
		},
	}

	out, wait := p.Run(context.Background(), jobs)
	var got []int
	for v := range out {
		got = append(got, v)
	}
	require.NoError(t, wait())
	require.True(t, sort.IntsAreSorted(got))
	require.Equal(t, []int{1, 2, 3, 4, 9, 10}, got)
}

func TestPool_PropagatesJobError(t *testing.T) {
	p := workerpool.New(1, func(a, b int) bool { return a < b })
	boom := errors.New("boom")
	jobs := []workerpool.Job[int]{
		func(ctx context.Context, emit func(int) bool) error {
			return boom
		},
	}
	out, wait := p.Run(context.Background(), jobs)
	for range out {
	}
	require.ErrorIs(t, wait(), boom)
}

func TestPool_CancellationStopsEmission(t *testing.T) {
	p := workerpool.New(1, func(a, b int) bool { return a < b })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []workerpool.Job[int]{
		func(ctx context.Context, emit func(int) bool) error {
			emit(1)
			return nil
		},
	}
	out, wait := p.Run(ctx, jobs)
	for range out {
	}
	require.Error(t, wait())
}

func TestToken_CancelObservedByContext(t *testing.T) {
	tok := workerpool.NewToken(context.Background())
	require.NoError(t, tok.Err())
	tok.Cancel()
	<-tok.Done()
	require.Error(t, tok.Err())
}

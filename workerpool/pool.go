package workerpool

import (
	"container/heap"
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Job runs one independent unit of work (typically one step variant's
// DFS), calling emit for each result it produces, in the order it
// wants preserved. Returning false from emit asks the job to stop
// early (e.g. downstream cancelled or has enough results).
type Job[T any] func(ctx context.Context, emit func(T) bool) error

// Pool bounds how many Jobs run concurrently and merges their
// (individually ordered) outputs into one globally ordered stream:
// ordering within a variant is preserved, and ordering across variants
// is merged by a min-heap.
type Pool[T any] struct {
	concurrency int64
	less        func(a, b T) bool
}

// New builds a Pool with the given concurrency limit (clamped to at
// least 1) and ordering function.
func New[T any](concurrency int64, less func(a, b T) bool) *Pool[T] {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Pool[T]{concurrency: concurrency, less: less}
}

// Run launches every job, each gated by the pool's semaphore, under a
// shared cancellation context derived from ctx (so one job's error, or
// ctx itself firing, stops every other job at its next checkpoint). It
// returns a bounded output channel carrying the length-merged results
// and a Wait function that blocks until all jobs have finished and the
// channel has been fully drained, returning the first job error or
// ctx.Err() if cancelled.
func (p *Pool[T]) Run(ctx context.Context, jobs []Job[T]) (<-chan T, func() error) {
	out := make(chan T, 16)
	results := make([][]T, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(p.concurrency)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			var collected []T
			err := job(gctx, func(item T) bool {
				collected = append(collected, item)
				select {
				case <-gctx.Done():
					return false
				default:
					return true
				}
			})
			results[i] = collected
			return err
		})
	}

	done := make(chan error, 1)
	go func() {
		defer close(out)
		waitErr := g.Wait()
		if waitErr != nil {
			done <- waitErr
			return
		}
		for _, item := range mergeSorted(results, p.less) {
			select {
			case out <- item:
			case <-ctx.Done():
				done <- ctx.Err()
				return
			}
		}
		done <- nil
	}()

	return out, func() error { return <-done }
}

// heapItem tracks which source slice and position a merge candidate
// came from, so mergeSorted can advance only that slice after popping
// its head.
type heapItem[T any] struct {
	value T
	src   int
	idx   int
}

type itemHeap[T any] struct {
	items []heapItem[T]
	less  func(a, b T) bool
}

func (h *itemHeap[T]) Len() int            { return len(h.items) }
func (h *itemHeap[T]) Less(i, j int) bool  { return h.less(h.items[i].value, h.items[j].value) }
func (h *itemHeap[T]) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *itemHeap[T]) Push(x interface{})  { h.items = append(h.items, x.(heapItem[T])) }
func (h *itemHeap[T]) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// mergeSorted merges len(sources) already-sorted (per less) slices
// into one sorted slice via a k-way min-heap merge.
func mergeSorted[T any](sources [][]T, less func(a, b T) bool) []T {
	h := &itemHeap[T]{less: less}
	heap.Init(h)
	total := 0
	for src, s := range sources {
		total += len(s)
		if len(s) > 0 {
			heap.Push(h, heapItem[T]{value: s[0], src: src, idx: 0})
		}
	}

	out := make([]T, 0, total)
	for h.Len() > 0 {
		top := heap.Pop(h).(heapItem[T])
		out = append(out, top.value)
		next := top.idx + 1
		if next < len(sources[top.src]) {
			heap.Push(h, heapItem[T]{value: sources[top.src][next], src: top.src, idx: next})
		}
	}
	return out
}

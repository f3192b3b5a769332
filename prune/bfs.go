package prune

import "github.com/katalvlaran/cubesolve/cube"

// queueItem pairs a cube state with its BFS depth. The "vertex id" is
// the cube state itself rather than a graph vertex string.
type queueItem struct {
	state cube.Cube
	depth int
}

// walker encapsulates mutable BFS state for one table-generation run.
type walker struct {
	moves   []cube.Move
	coordFn func(cube.Cube) int
	queue   []queueItem
	visited []bool
	reps    []cube.Cube
	table   *Table
}

// Generate runs forward BFS from the solved cube under moves,
// recording into a fresh Table of the given size the distance from
// every reachable coordinate back to the goal (coordinate 0, reached
// from the solved cube at depth 0). It also returns, per coordinate, a
// representative cube state first reached at that coordinate — used
// by GenerateNiss to seed the one-switch-free pass.
func Generate(size int, moves []cube.Move, coordFn func(cube.Cube) int, version uint32) (*Table, []cube.Cube) {
	w := &walker{
		moves:   moves,
		coordFn: coordFn,
		visited: make([]bool, size),
		reps:    make([]cube.Cube, size),
		table:   NewTable(size, version),
	}

	start := cube.Solved()
	startCoord := coordFn(start)
	w.seed(startCoord, start, 0)
	w.queue = append(w.queue, queueItem{state: start, depth: 0})

	w.run()
	return w.table, w.reps
}

func (w *walker) seed(coord int, state cube.Cube, depth int) {
	w.visited[coord] = true
	w.reps[coord] = state
	w.table.setDistance(coord, depth)
}

// run drains the BFS queue, expanding every move at each frontier
// state and enqueuing any coordinate not yet visited.
func (w *walker) run() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		for _, m := range w.moves {
			next := item.state.Turn(m)
			nc := w.coordFn(next)
			if w.visited[nc] {
				continue
			}
			w.seed(nc, next, item.depth+1)
			w.queue = append(w.queue, queueItem{state: next, depth: item.depth + 1})
		}
	}
}

// GenerateNiss runs the base BFS, then seeds a second BFS pass from
// every coordinate reachable by inverting a representative cube
// already found in the base pass — modeling "one free inverse switch"
// — and records the resulting distances in the table's NISS nibble.
func GenerateNiss(size int, moves []cube.Move, coordFn func(cube.Cube) int, version uint32) *Table {
	table, reps := Generate(size, moves, coordFn, version)

	nissVisited := make([]bool, size)
	var queue []queueItem
	for coord, rep := range reps {
		if table.Distance(coord) < 0 {
			continue
		}
		inv := rep.Invert()
		invCoord := coordFn(inv)
		if nissVisited[invCoord] {
			continue
		}
		nissVisited[invCoord] = true
		table.setNissDistance(invCoord, 0)
		queue = append(queue, queueItem{state: inv, depth: 0})
	}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		for _, m := range moves {
			next := item.state.Turn(m)
			nc := coordFn(next)
			if nissVisited[nc] {
				continue
			}
			nissVisited[nc] = true
			table.setNissDistance(nc, item.depth+1)
			queue = append(queue, queueItem{state: next, depth: item.depth + 1})
		}
	}
	return table
}

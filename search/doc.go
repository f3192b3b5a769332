// Package search implements the iterative-deepening DFS every step
// variant drives: pruning-table heuristic cuts, the phase's move-after-
// move legality, terminal (can-end) checks, and NISS switching between
// the normal and inverse working cube.
package search

// Package prune builds and stores pruning tables: fixed-size distance
// arrays, one byte per coordinate, generated by breadth-first search
// outward from a phase's goal coset. The search core uses these tables
// as an admissible heuristic to cut branches whose remaining distance
// cannot fit in the depth budget left.
package prune

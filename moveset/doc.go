// Package moveset builds the per-move transition tables the DFS search
// core consults to prune illegal move sequences before they're ever
// generated: which move may follow which, and which moves may end a
// phase's search. It also defines the per-phase move set (state-change
// moves plus auxiliary moves) that a step variant restricts the DFS to.
package moveset

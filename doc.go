// Package cubesolve is a streaming, multi-phase Fewest-Moves-Challenge
// solver for the 3x3 Rubik's cube.
//
// A solve runs a scramble through an ordered chain of phases — EO, an
// optional RZP refinement, DR, HTR, FR (or its leave-slice variant
// FRLS), and a finish (FIN/FINLS) — each phase narrowing the cube into
// a smaller move-group subset until it reaches solved. Phases are
// driven by a shared iterative-deepening DFS core over precomputed
// pruning tables, with optional NISS (inverse-scramble) switching
// within each phase.
//
// Packages are organized one per concern:
//
//	cube/       — cubie-level state, moves, whole-cube transformations, algorithms
//	coord/      — pure coordinate functions mapping cube states to small integers
//	moveset/    — legal move transitions per phase
//	prune/      — BFS-generated pruning tables and their registry
//	search/     — the iterative-deepening DFS core, with NISS support
//	step/       — phase variants (EO/RZP/DR/HTR/FR/FRLS/FIN/FINLS), HTR-subset
//	            classification, and RZP-trigger matching
//	pipeline/   — the stream composer chaining steps into full solutions
//	workerpool/ — bounded, cancellable fan-out across independent step variants
//	solution/   — solution assembly and text rendering
//	solveerr/   — the shared error-kind classification
//	cmd/cubesolve/ — a minimal CLI front end over pipeline.Solve
//
// See SPEC_FULL.md and DESIGN.md in the repository root for the full
// component design and the grounding behind each package.
package cubesolve

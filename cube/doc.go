// Package cube implements the bit-packed 3x3x3 cube state and the
// move/transformation/algorithm value types every other package in
// this module builds on.
//
// A Cube is a pair of fixed-size byte arrays — 8 corner bytes and 16
// edge bytes (12 live, 4 zero padding), matching the "two 128-bit
// registers" layout described by the solver's data model. Turns are
// implemented as precomputed permutation + orientation-delta tables,
// one set per face (6) and per direction (3), built once at package
// init from a declarative per-face generator. Whole-cube rotations are
// precomputed slot and piece relabelings with no orientation delta,
// one per rotation axis (3) and direction (3).
//
// See http://kociemba.org/math/cubielevel.htm for the cubie-level model
// this package's corner/edge numbering follows.
package cube

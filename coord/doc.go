// Package coord implements the pure cube-to-integer coordinate mappings
// each search phase prunes and terminates against. Every function here
// is a deterministic surjection from cube.Cube onto [0, N) for some
// phase-specific N; none of them mutate or retain the cube they're
// given.
package coord

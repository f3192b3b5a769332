// Package step defines the phase/axis-variant abstraction the search
// engine is driven through: EO, RZP, DR, HTR, FR, FRLS, FIN and FINLS,
// each available in up to three axis variants sharing one canonical
// DFS kernel via a pre-search whole-cube rotation.
package step

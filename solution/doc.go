// Package solution renders a completed step chain into its per-step
// and final-algorithm text format, and exposes the flattened
// ("un-inverted") canonical algorithm every downstream consumer (the
// dedup filter, the CLI) keys off of.
package solution

package moveset

import "github.com/katalvlaran/cubesolve/cube"

// MoveSet bundles a phase's legal moves: StateChange are the moves
// that change the phase's coordinate; Aux are legal but coordinate-
// neutral. CanEnd is the mask of moves a solution fragment may
// terminate on — normally StateChange, since ending on a purely
// auxiliary move means the final move made no progress toward the
// phase's goal.
type MoveSet struct {
	StateChange []cube.Move
	Aux         []cube.Move
	CanEnd      Mask
	legal       Mask
	table       Table
}

// New builds a MoveSet from its state-change and auxiliary moves,
// defaulting CanEnd to the state-change moves and Table to the shared
// DefaultTable restricted to this phase's legal moves.
func New(stateChange, aux []cube.Move) MoveSet {
	ms := MoveSet{StateChange: stateChange, Aux: aux, table: DefaultTable}
	for _, m := range stateChange {
		ms.legal |= moveMask(m)
		ms.CanEnd |= moveMask(m)
	}
	for _, m := range aux {
		ms.legal |= moveMask(m)
	}
	return ms
}

// WithCanEnd overrides the default can-end mask.
func (ms MoveSet) WithCanEnd(mask Mask) MoveSet {
	ms.CanEnd = mask
	return ms
}

// IsLegal reports whether m is part of this phase's move set at all.
func (ms MoveSet) IsLegal(m cube.Move) bool {
	return ms.legal&moveMask(m) != 0
}

// AllowedAfter returns the mask of this phase's own moves that may
// legally follow prior, combining the shared ordering/collapse rules
// with this phase's legal-move restriction.
func (ms MoveSet) AllowedAfter(prior cube.Move) Mask {
	return ms.table.AllowedAfter(prior) & ms.legal
}

// CanEndOn reports whether a phase fragment may terminate on m.
func (ms MoveSet) CanEndOn(m cube.Move) bool {
	return ms.CanEnd&moveMask(m) != 0
}

// IsAllowedAfter reports whether m may legally follow prior within
// this phase's move set.
func (ms MoveSet) IsAllowedAfter(prior, m cube.Move) bool {
	return ms.AllowedAfter(prior)&moveMask(m) != 0
}

// Moves returns every move in this phase's set, state-change first.
func (ms MoveSet) Moves() []cube.Move {
	out := make([]cube.Move, 0, len(ms.StateChange)+len(ms.Aux))
	out = append(out, ms.StateChange...)
	out = append(out, ms.Aux...)
	return out
}

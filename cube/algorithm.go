package cube

import "strings"

// Algorithm is an ordered pair of move sequences: Normal, applied
// forward, and Inverse, applied to the inverted cube (NISS semantics).
// Applying an Algorithm to a cube means: apply Normal, invert, apply
// Inverse, invert again.
type Algorithm struct {
	Normal  []Move
	Inverse []Move
}

// Len is the total move count across both sequences.
func (a Algorithm) Len() int { return len(a.Normal) + len(a.Inverse) }

// Apply runs the algorithm against c per the Normal/Invert/Inverse/Invert
// contract.
func (a Algorithm) Apply(c Cube) Cube {
	for _, m := range a.Normal {
		c = c.Turn(m)
	}
	c = c.Invert()
	for _, m := range a.Inverse {
		c = c.Turn(m)
	}
	return c.Invert()
}

// Push appends a move to Normal, the accumulator used while a DFS
// branch is being built.
func (a *Algorithm) Push(m Move) { a.Normal = append(a.Normal, m) }

// PushInverse appends a move to Inverse.
func (a *Algorithm) PushInverse(m Move) { a.Inverse = append(a.Inverse, m) }

// Concat returns a new Algorithm with b's moves appended after a's.
func (a Algorithm) Concat(b Algorithm) Algorithm {
	out := Algorithm{
		Normal:  make([]Move, 0, len(a.Normal)+len(b.Normal)),
		Inverse: make([]Move, 0, len(a.Inverse)+len(b.Inverse)),
	}
	out.Normal = append(out.Normal, a.Normal...)
	out.Normal = append(out.Normal, b.Normal...)
	out.Inverse = append(out.Inverse, a.Inverse...)
	out.Inverse = append(out.Inverse, b.Inverse...)
	return out
}

// ToUninverted flattens Inverse into Normal: inverse moves are
// reversed and each is inverted, then appended. This is the canonical
// flattening used for the final rendered solution.
func (a Algorithm) ToUninverted() Algorithm {
	flat := make([]Move, 0, len(a.Inverse))
	for i := len(a.Inverse) - 1; i >= 0; i-- {
		flat = append(flat, a.Inverse[i].Inverse())
	}
	out := make([]Move, 0, len(a.Normal)+len(flat))
	out = append(out, a.Normal...)
	out = append(out, flat...)
	return Algorithm{Normal: out}
}

// Reverse returns a copy with both move sequences reversed; a itself is
// left unchanged.
func (a Algorithm) Reverse() Algorithm {
	rn := make([]Move, len(a.Normal))
	for i, m := range a.Normal {
		rn[len(a.Normal)-1-i] = m
	}
	ri := make([]Move, len(a.Inverse))
	for i, m := range a.Inverse {
		ri[len(a.Inverse)-1-i] = m
	}
	return Algorithm{Normal: rn, Inverse: ri}
}

// Mirror reflects every move of the algorithm across the plane
// perpendicular to the given axis: moves on the axis's two faces move
// to the opposite face, and every move flips handedness (half turns
// stay half turns), matching the standard "mirror a solve" transform
// used to explore axis-symmetric variants of a found solution. An empty
// sequence stays nil, so mirroring twice returns an equal Algorithm.
func (a Algorithm) Mirror(axis Axis) Algorithm {
	mirrorMove := func(m Move) Move {
		f := m.Face()
		d := m.Direction()
		if AxisOf(f) == axis {
			f = f.Opposite()
		}
		switch d {
		case Clockwise:
			return NewMove(f, CounterClockwise)
		case CounterClockwise:
			return NewMove(f, Clockwise)
		default:
			return NewMove(f, d)
		}
	}
	var out Algorithm
	for _, m := range a.Normal {
		out.Normal = append(out.Normal, mirrorMove(m))
	}
	for _, m := range a.Inverse {
		out.Inverse = append(out.Inverse, mirrorMove(m))
	}
	return out
}

// TransformAll rotates every move of the algorithm by t.
func (a Algorithm) TransformAll(t Transformation) Algorithm {
	out := Algorithm{
		Normal:  make([]Move, len(a.Normal)),
		Inverse: make([]Move, len(a.Inverse)),
	}
	for i, m := range a.Normal {
		out.Normal[i] = m.Transform(t)
	}
	for i, m := range a.Inverse {
		out.Inverse[i] = m.Transform(t)
	}
	return out
}

func formatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// String renders the algorithm as "<normal> (<inverse>)", omitting
// whichever half is empty, matching the scramble/solution text format.
func (a Algorithm) String() string {
	switch {
	case len(a.Inverse) == 0:
		return formatMoves(a.Normal)
	case len(a.Normal) == 0:
		return "(" + formatMoves(a.Inverse) + ")"
	default:
		return formatMoves(a.Normal) + " (" + formatMoves(a.Inverse) + ")"
	}
}

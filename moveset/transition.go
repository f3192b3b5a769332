package moveset

import "github.com/katalvlaran/cubesolve/cube"

// Mask is a bitmask over the 18-move alphabet: bit m set means move m
// is a member.
type Mask uint32

// AnyMask contains every move.
const AnyMask Mask = (1 << cube.NumMoves) - 1

// NoneMask contains no moves.
const NoneMask Mask = 0

func moveMask(m cube.Move) Mask { return 1 << uint(m) }

// FaceMask returns the 3-bit mask of f's own CW/Half/CCW moves.
func FaceMask(f cube.Face) Mask {
	var m Mask
	for d := cube.Direction(0); d < 3; d++ {
		m |= moveMask(cube.NewMove(f, d))
	}
	return m
}

// FacesMask unions FaceMask over several faces.
func FacesMask(faces ...cube.Face) Mask {
	var m Mask
	for _, f := range faces {
		m |= FaceMask(f)
	}
	return m
}

// Table is the generic 18-entry transition table: Allowed[prior] is
// the mask of moves legal immediately after move prior. It encodes two
// rules baked in at package init, grounded on the opposite-face
// ordering and same-face collapse conventions used throughout cube
// move-sequence tooling:
//   - same-face collapse: a face may never follow itself (two
//     consecutive turns of one face always collapse to a single turn).
//   - opposite-face ordering: for each axis pair (U/D, F/B, L/R) the
//     first-declared face of the pair may be followed by the second,
//     but not the reverse — removing the "D U" / "U D" duplicate.
type Table struct {
	Allowed [cube.NumMoves]Mask
}

// axisPairs lists each opposite-face pair in the fixed order that
// defines which face may precede the other.
var axisPairs = [3][2]cube.Face{
	{cube.Up, cube.Down},
	{cube.Front, cube.Back},
	{cube.Left, cube.Right},
}

// DefaultTable is the generic table shared by every phase; each
// phase's MoveSet further restricts it to its own legal-move mask.
var DefaultTable Table

func init() {
	// allowedAfterFace[f] excludes f always, and additionally excludes
	// f's axis partner when f is the second face of its pair.
	var allowedAfterFace [6]Mask
	for f := cube.Up; f <= cube.Right; f++ {
		allowedAfterFace[f] = AnyMask &^ FaceMask(f)
	}
	for _, pair := range axisPairs {
		second := pair[1]
		allowedAfterFace[second] &^= FaceMask(pair[0])
	}

	for m := 0; m < cube.NumMoves; m++ {
		prior := cube.Move(m)
		DefaultTable.Allowed[m] = allowedAfterFace[prior.Face()]
	}
}

// AllowedAfter reports the mask of moves legal immediately after prior.
func (t Table) AllowedAfter(prior cube.Move) Mask {
	return t.Allowed[prior]
}

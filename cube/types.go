package cube

import "fmt"

// Face identifies one of the six outer faces of the cube.
type Face uint8

// Faces, in the fixed order used to index transition tables and the
// per-axis "owned corner/edge" tables throughout this package.
const (
	Up Face = iota
	Down
	Front
	Back
	Left
	Right

	numFaces = 6
)

func (f Face) String() string {
	return [numFaces]string{"U", "D", "F", "B", "L", "R"}[f]
}

// Axis identifies one of the three face-pair axes: Up/Down,
// Front/Back, Left/Right.
type Axis uint8

const (
	UD Axis = iota
	FB
	LR

	numAxes = 3
)

func (a Axis) String() string {
	return [numAxes]string{"UD", "FB", "LR"}[a]
}

// AxisOf returns the axis a face belongs to.
func AxisOf(f Face) Axis {
	return Axis(f / 2)
}

// Opposite returns the face on the other end of f's axis.
func (f Face) Opposite() Face {
	return f ^ 1
}

// Direction identifies how many quarter turns a move or transformation
// applies, in the clockwise sense.
type Direction uint8

const (
	Clockwise Direction = iota
	Half
	CounterClockwise

	numDirections = 3
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return ""
	case Half:
		return "2"
	case CounterClockwise:
		return "'"
	default:
		return "?"
	}
}

// quarterSteps returns how many times the CW generator must be applied
// to realize this direction.
func (d Direction) quarterSteps() int {
	switch d {
	case Clockwise:
		return 1
	case Half:
		return 2
	case CounterClockwise:
		return 3
	default:
		return 0
	}
}

// Move is a face turn: one of 18 values, id = face*3 + direction.
type Move uint8

// NumMoves is the size of the move alphabet.
const NumMoves = numFaces * numDirections

// NewMove builds the Move for the given face and direction.
func NewMove(f Face, d Direction) Move {
	return Move(int(f)*numDirections + int(d))
}

// Face returns the face this move turns.
func (m Move) Face() Face { return Face(int(m) / numDirections) }

// Direction returns this move's turn direction.
func (m Move) Direction() Direction { return Direction(int(m) % numDirections) }

// Axis returns the axis of the face this move turns.
func (m Move) Axis() Axis { return AxisOf(m.Face()) }

// IsQuarter reports whether this is a 90-degree turn (CW or CCW).
func (m Move) IsQuarter() bool { return m.Direction() != Half }

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	switch m.Direction() {
	case Clockwise:
		return NewMove(m.Face(), CounterClockwise)
	case CounterClockwise:
		return NewMove(m.Face(), Clockwise)
	default:
		return m
	}
}

func (m Move) String() string {
	if int(m) >= NumMoves {
		return fmt.Sprintf("Move(%d)", m)
	}
	return m.Face().String() + m.Direction().String()
}

// Rotation is a whole-cube reorientation about the x, y or z axis.
// Rotations re-frame axis variants (e.g. "DR on UD" is solved by
// rotating the cube and running the canonical "DR on FB" kernel).
type Rotation uint8

const (
	RotX Rotation = iota
	RotY
	RotZ

	numRotationAxes = 3
)

// NumTransformations is the size of the transformation alphabet.
const NumTransformations = numRotationAxes * numDirections

// Transformation is a Rotation + Direction pair, 9 values.
type Transformation uint8

// NewTransformation builds the Transformation for the given rotation axis
// and direction.
func NewTransformation(r Rotation, d Direction) Transformation {
	return Transformation(int(r)*numDirections + int(d))
}

func (t Transformation) Rotation() Rotation   { return Rotation(int(t) / numDirections) }
func (t Transformation) Direction() Direction { return Direction(int(t) % numDirections) }

// Inverse returns the transformation that undoes t.
func (t Transformation) Inverse() Transformation {
	switch t.Direction() {
	case Clockwise:
		return NewTransformation(t.Rotation(), CounterClockwise)
	case CounterClockwise:
		return NewTransformation(t.Rotation(), Clockwise)
	default:
		return t
	}
}

func (t Transformation) String() string {
	name := [numRotationAxes]string{"x", "y", "z"}[t.Rotation()]
	return name + t.Direction().String()
}

package step

import "github.com/katalvlaran/cubesolve/cube"

func facesOfAxis(axis cube.Axis) [2]cube.Face {
	switch axis {
	case cube.UD:
		return [2]cube.Face{cube.Up, cube.Down}
	case cube.FB:
		return [2]cube.Face{cube.Front, cube.Back}
	default:
		return [2]cube.Face{cube.Left, cube.Right}
	}
}

func quarterTurns(faces ...cube.Face) []cube.Move {
	out := make([]cube.Move, 0, 2*len(faces))
	for _, f := range faces {
		out = append(out, cube.NewMove(f, cube.Clockwise), cube.NewMove(f, cube.CounterClockwise))
	}
	return out
}

func halfTurns(faces ...cube.Face) []cube.Move {
	out := make([]cube.Move, 0, len(faces))
	for _, f := range faces {
		out = append(out, cube.NewMove(f, cube.Half))
	}
	return out
}

func quarterAndHalf(faces ...cube.Face) []cube.Move {
	out := quarterTurns(faces...)
	out = append(out, halfTurns(faces...)...)
	return out
}

func allMoves() []cube.Move {
	out := make([]cube.Move, 0, cube.NumMoves)
	for i := 0; i < cube.NumMoves; i++ {
		out = append(out, cube.Move(i))
	}
	return out
}

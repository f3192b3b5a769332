package step

import "github.com/katalvlaran/cubesolve/cube"

// canonicalUD and canonicalLR rotate the Up/Down or Left/Right axis
// onto the Front/Back position, the single canonical frame every DR,
// HTR, FR and Finish coordinate function is defined against: solving
// DR on the UD axis is done by transforming onto FB and running the
// fixed DR-on-FB-axis kernel.
var canonicalUD = cube.NewTransformation(cube.RotX, cube.Clockwise)
var canonicalLR = cube.NewTransformation(cube.RotY, cube.Clockwise)

// axisPreTransform returns the whole-cube rotation that brings axis
// onto the canonical FB position, or nil if axis already is FB.
func axisPreTransform(axis cube.Axis) *cube.Transformation {
	switch axis {
	case cube.FB:
		return nil
	case cube.UD:
		return &canonicalUD
	case cube.LR:
		return &canonicalLR
	default:
		return nil
	}
}

package coord

import "github.com/katalvlaran/cubesolve/cube"

// CornerOrientationSize is the coordinate space of CornerOrientationUD.
const CornerOrientationSize = 2187 // 3^7

// CornerOrientationUD packs corners 0..6's orientation as base-3
// digits; corner 7's orientation is implied by the sum-mod-3
// invariant.
func CornerOrientationUD(c cube.Cube) int {
	co := 0
	mul := 1
	for i := 0; i < 7; i++ {
		_, o := c.CornerAt(cube.CornerSlot(i))
		co += int(o) * mul
		mul *= 3
	}
	return co
}

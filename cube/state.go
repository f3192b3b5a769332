package cube

// Cube is the full 3x3x3 cubie-level state: two fixed-size byte
// registers, one per piece type. Corners is 8 live bytes; Edges is 12
// live bytes padded to 16 so both registers are a 128-bit value type.
//
// Corner byte layout (bits 7..0): iii rr ooo
//
//	bits 7-5: id (0..7)
//	bits 4-3: reserved, always 0
//	bits 2-0: orientation (0, 1 or 2)
//
// Edge byte layout (bits 7..0): iiii r lfu
//
//	bits 7-4: id (0..11)
//	bit  3:   reserved, always 0
//	bit  2:   bad-on-LR
//	bit  1:   bad-on-FB
//	bit  0:   bad-on-UD
//
// A cube is solved when every slot's id equals its position and every
// orientation/flip field is zero.
type Cube struct {
	Corners [numCorners]byte
	Edges   [16]byte // 12 live, 4 zero padding
}

// Solved is the identity cube.
func Solved() Cube {
	var c Cube
	for i := range c.Corners {
		c.Corners[i] = packCorner(CornerSlot(i), 0)
	}
	for i := 0; i < numEdges; i++ {
		c.Edges[i] = packEdge(EdgeSlot(i), 0)
	}
	return c
}

func packCorner(id CornerSlot, orientation uint8) byte {
	return byte(id)<<5 | (orientation & 0x7)
}

func cornerID(b byte) CornerSlot { return CornerSlot(b >> 5) }
func cornerOrient(b byte) uint8  { return b & 0x7 }

func packEdge(id EdgeSlot, flipBits uint8) byte {
	return byte(id)<<4 | (flipBits & 0x7)
}

func edgeID(b byte) EdgeSlot { return EdgeSlot(b >> 4) }
func edgeFlips(b byte) uint8 { return b & 0x7 }

// CornerAt returns the cubie id and orientation currently in slot.
func (c Cube) CornerAt(slot CornerSlot) (CornerSlot, uint8) {
	b := c.Corners[slot]
	return cornerID(b), cornerOrient(b)
}

// EdgeAt returns the cubie id and per-axis bad bits currently in slot.
func (c Cube) EdgeAt(slot EdgeSlot) (EdgeSlot, uint8) {
	b := c.Edges[slot]
	return edgeID(b), edgeFlips(b)
}

// EdgeBad reports whether the edge in slot is bad (flipped) on the
// given axis.
func (c Cube) EdgeBad(slot EdgeSlot, axis Axis) bool {
	_, flips := c.EdgeAt(slot)
	return flips&(1<<axisBit(axis)) != 0
}

// IsSolved reports whether every slot holds its own id with zero
// orientation/flip.
func (c Cube) IsSolved() bool {
	for i := 0; i < numCorners; i++ {
		id, o := c.CornerAt(CornerSlot(i))
		if int(id) != i || o != 0 {
			return false
		}
	}
	for i := 0; i < numEdges; i++ {
		id, flips := c.EdgeAt(EdgeSlot(i))
		if int(id) != i || flips != 0 {
			return false
		}
	}
	return true
}

// Turn applies move m, returning the resulting cube. c is left
// unmodified; Cube is a small value type meant to be passed by value
// through the search recursion.
func (c Cube) Turn(m Move) Cube {
	cop := cornerTable[m.Face()][m.Direction()]
	eop := edgeTable[m.Face()][m.Direction()]

	var out Cube
	for slot := 0; slot < numCorners; slot++ {
		src := cop.perm[slot]
		id, o := c.CornerAt(src)
		out.Corners[slot] = packCorner(id, (o+cop.twist[slot])%3)
	}
	for slot := 0; slot < numEdges; slot++ {
		src := eop.perm[slot]
		id, flips := c.EdgeAt(src)
		out.Edges[slot] = packEdge(id, flips^eop.flip[slot])
	}
	return out
}

// CountBadEdges returns, per axis (UD, FB, LR), how many of the 12
// edges are currently bad on that axis. Each count is always even on
// any cube reachable from solved.
func (c Cube) CountBadEdges() [numAxes]int {
	var counts [numAxes]int
	for i := 0; i < numEdges; i++ {
		_, flips := c.EdgeAt(EdgeSlot(i))
		for a := Axis(0); a < numAxes; a++ {
			if flips&(1<<axisBit(a)) != 0 {
				counts[a]++
			}
		}
	}
	return counts
}

// CornerOrientationSum returns the sum of corner orientations mod 3,
// always 0 on any cube reachable from solved.
func (c Cube) CornerOrientationSum() uint8 {
	var sum uint8
	for i := 0; i < numCorners; i++ {
		_, o := c.CornerAt(CornerSlot(i))
		sum += o
	}
	return sum % 3
}

package cube

// invalidFace marks "this edge has no sticker on this axis" in the
// axis-indexed face arrays used for transform lookups.
const invalidFace Face = 255

// cornerAxisFaces[slot] names, per axis (UD, FB, LR), which face that
// corner sits on.
var cornerAxisFaces = [numCorners][numAxes]Face{
	UFR: {Up, Front, Right},
	UFL: {Up, Front, Left},
	UBL: {Up, Back, Left},
	UBR: {Up, Back, Right},
	DFR: {Down, Front, Right},
	DFL: {Down, Front, Left},
	DBL: {Down, Back, Left},
	DBR: {Down, Back, Right},
}

// edgeAxisFaces[slot] names, per axis, which face that edge sits on,
// or invalidFace for the one axis it doesn't touch.
var edgeAxisFaces = [numEdges][numAxes]Face{
	UF: {Up, Front, invalidFace},
	UR: {Up, invalidFace, Right},
	UB: {Up, Back, invalidFace},
	UL: {Up, invalidFace, Left},
	DF: {Down, Front, invalidFace},
	DR: {Down, invalidFace, Right},
	DB: {Down, Back, invalidFace},
	DL: {Down, invalidFace, Left},
	FR: {invalidFace, Front, Right},
	FL: {invalidFace, Front, Left},
	BR: {invalidFace, Back, Right},
	BL: {invalidFace, Back, Left},
}

var cornerByAxisFaces map[[numAxes]Face]CornerSlot
var edgeByAxisFaces map[[numAxes]Face]EdgeSlot

func init() {
	cornerByAxisFaces = make(map[[numAxes]Face]CornerSlot, numCorners)
	for slot, faces := range cornerAxisFaces {
		cornerByAxisFaces[faces] = CornerSlot(slot)
	}
	edgeByAxisFaces = make(map[[numAxes]Face]EdgeSlot, numEdges)
	for slot, faces := range edgeAxisFaces {
		edgeByAxisFaces[faces] = EdgeSlot(slot)
	}
}

// rotationStep is the single clockwise-step face relabeling for each
// rotation axis: the two faces on the rotation axis keep their label,
// the other four cycle. Grounded on the face-mapping conventions for
// whole-cube rotations (x/y/z) used throughout cube notation tooling.
var rotationStep = [numRotationAxes]map[Face]Face{
	RotX: {Front: Down, Down: Back, Back: Up, Up: Front, Left: Left, Right: Right},
	RotY: {Front: Left, Left: Back, Back: Right, Right: Front, Up: Up, Down: Down},
	RotZ: {Up: Left, Left: Down, Down: Right, Right: Up, Front: Front, Back: Back},
}

// faceMap returns the full face relabeling for transformation t,
// composing the single-step generator quarterSteps(t.Direction()) times.
func faceMap(t Transformation) map[Face]Face {
	step := rotationStep[t.Rotation()]
	m := map[Face]Face{Up: Up, Down: Down, Front: Front, Back: Back, Left: Left, Right: Right}
	for i := 0; i < t.Direction().quarterSteps(); i++ {
		next := make(map[Face]Face, numFaces)
		for f, g := range m {
			next[f] = step[g]
		}
		m = next
	}
	return m
}

// Transform applies move m's face through transformation t's face
// relabeling, leaving direction untouched (rotations don't change a
// turn's handedness relative to its own face).
func (m Move) Transform(t Transformation) Move {
	return NewMove(faceMap(t)[m.Face()], m.Direction())
}

// transformOp is the forward slot relabeling for a Transformation: for
// every old slot (position or identity label alike, since both are
// CornerSlot/EdgeSlot values) it names the new slot the same physical
// corner/edge is labeled with after the rotation.
type transformOp struct {
	reframeCorner [numCorners]CornerSlot
	reframeEdge   [numEdges]EdgeSlot
}

var transformTable [NumTransformations]transformOp

func init() {
	for r := Rotation(0); r < numRotationAxes; r++ {
		for d := Direction(0); d < numDirections; d++ {
			t := NewTransformation(r, d)
			fm := faceMap(t)

			var op transformOp
			for slot := 0; slot < numCorners; slot++ {
				old := cornerAxisFaces[slot]
				var nf [numAxes]Face
				for _, f := range old {
					nf[AxisOf(fm[f])] = fm[f]
				}
				op.reframeCorner[slot] = cornerByAxisFaces[nf]
			}
			for slot := 0; slot < numEdges; slot++ {
				old := edgeAxisFaces[slot]
				var nf [numAxes]Face
				for i := range nf {
					nf[i] = invalidFace
				}
				for _, f := range old {
					if f == invalidFace {
						continue
					}
					nf[AxisOf(fm[f])] = fm[f]
				}
				op.reframeEdge[slot] = edgeByAxisFaces[nf]
			}
			transformTable[t] = op
		}
	}
}

// Transform applies whole-cube rotation t, returning the reoriented
// cube. Unlike Turn, Transform never changes orientation/flip bits: it
// relabels both the slot (position) and the id (identity) of every
// piece through the same face map, which is exactly what keeps the
// solved cube fixed under any Transform.
func (c Cube) Transform(t Transformation) Cube {
	op := transformTable[t]
	var out Cube
	for slot := 0; slot < numCorners; slot++ {
		id, o := c.CornerAt(CornerSlot(slot))
		out.Corners[op.reframeCorner[slot]] = packCorner(op.reframeCorner[id], o)
	}
	for slot := 0; slot < numEdges; slot++ {
		id, flips := c.EdgeAt(EdgeSlot(slot))
		out.Edges[op.reframeEdge[slot]] = packEdge(op.reframeEdge[id], flips)
	}
	return out
}

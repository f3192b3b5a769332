package cube

// CornerSlot names one of the 8 fixed corner positions, using the
// standard cubie-level naming (the three faces meeting at that
// corner).
type CornerSlot uint8

const (
	UFR CornerSlot = iota
	UFL
	UBL
	UBR
	DFR
	DFL
	DBL
	DBR

	numCorners = 8
)

// EdgeSlot names one of the 12 fixed edge positions, using the
// standard cubie-level naming (the two faces meeting at that edge).
type EdgeSlot uint8

const (
	UF EdgeSlot = iota
	UR
	UB
	UL
	DF
	DR
	DB
	DL
	FR
	FL
	BR
	BL

	numEdges = 12
)

// faceCorners lists, for each face, the 4 corner slots it owns in
// clockwise order as viewed from outside that face.
var faceCorners = [numFaces][4]CornerSlot{
	Up:    {UFR, UBR, UBL, UFL},
	Down:  {DFL, DBL, DBR, DFR},
	Front: {UFR, DFR, DFL, UFL},
	Back:  {UBL, DBL, DBR, UBR},
	Left:  {UFL, UBL, DBL, DFL},
	Right: {UBR, DBR, DFR, UFR},
}

// faceEdges lists, for each face, the 4 edge slots it owns in
// clockwise order as viewed from outside that face.
var faceEdges = [numFaces][4]EdgeSlot{
	Up:    {UF, UR, UB, UL},
	Down:  {DF, DL, DB, DR},
	Front: {UF, FR, DF, FL},
	Back:  {UB, BL, DB, BR},
	Left:  {UL, BL, DL, FL},
	Right: {UR, FR, DR, BR},
}

// twistsCorners reports whether quarter turns of f change corner
// orientation. U/D quarter turns never twist corners; F/B/L/R do.
func twistsCorners(f Face) bool {
	return AxisOf(f) != UD
}

// axisBit returns the bit position within an edge's orientation nibble
// that a quarter turn of a face on axis a flips.
func axisBit(a Axis) uint8 {
	return uint8(a)
}

package prune

// unset is the sentinel nibble meaning "distance not yet discovered"
// (max real distance is <= 14 for every phase in use, leaving 15 free
// as a sentinel).
const unset = 0x0F

// Table is a fixed-size byte-per-coordinate distance array. The low
// nibble holds the plain BFS distance; the high nibble optionally
// holds the NISS distance (distance to goal if one free inverse
// switch is allowed), populated by GenerateNiss.
type Table struct {
	Data    []uint8
	Version uint32
}

// NewTable allocates a table of the given coordinate-space size with
// every entry unset.
func NewTable(size int, version uint32) *Table {
	d := make([]uint8, size)
	for i := range d {
		d[i] = unset<<4 | unset
	}
	return &Table{Data: d, Version: version}
}

// Distance returns the plain BFS distance for coord, or -1 if unset.
func (t *Table) Distance(coord int) int {
	d := t.Data[coord] & 0x0F
	if d == unset {
		return -1
	}
	return int(d)
}

// NissDistance returns the one-switch-free distance for coord, or -1
// if unset.
func (t *Table) NissDistance(coord int) int {
	d := t.Data[coord] >> 4
	if d == unset {
		return -1
	}
	return int(d)
}

func (t *Table) setDistance(coord, d int) {
	t.Data[coord] = (t.Data[coord] &^ 0x0F) | uint8(d&0x0F)
}

func (t *Table) setNissDistance(coord, d int) {
	t.Data[coord] = (t.Data[coord] &^ 0xF0) | uint8((d&0x0F)<<4)
}

// Size is the coordinate-space size this table covers.
func (t *Table) Size() int { return len(t.Data) }

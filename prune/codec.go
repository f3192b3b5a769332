package prune

import (
	"encoding/binary"
	"io"

	"github.com/katalvlaran/cubesolve/solveerr"
)

// Encode writes t in a fixed table file layout: version (u32 LE),
// size (u64 LE), then the packed distance bytes. Callers own where the
// bytes go; prune has no opinion on disk paths — this is the pure
// codec an external cache layer wires up.
func (t *Table) Encode(w io.Writer) error {
	var header [12]byte
	binary.LittleEndian.PutUint32(header[0:4], t.Version)
	binary.LittleEndian.PutUint64(header[4:12], uint64(len(t.Data)))
	if _, err := w.Write(header[:]); err != nil {
		return solveerr.New(solveerr.Internal, "prune.Table.Encode", err)
	}
	if _, err := w.Write(t.Data); err != nil {
		return solveerr.New(solveerr.Internal, "prune.Table.Encode", err)
	}
	return nil
}

// Decode reads a table previously written by Encode.
func Decode(r io.Reader) (*Table, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, solveerr.New(solveerr.TableMissing, "prune.Decode", err)
	}
	version := binary.LittleEndian.Uint32(header[0:4])
	size := binary.LittleEndian.Uint64(header[4:12])

	data := make([]uint8, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, solveerr.New(solveerr.TableMissing, "prune.Decode", err)
	}
	return &Table{Data: data, Version: version}, nil
}

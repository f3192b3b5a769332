package pipeline

import (
	"sync"

	"github.com/gtank/blake2/blake2b"

	"github.com/katalvlaran/cubesolve/cube"
)

// canonicalKey hashes alg's canonicalized ("un-inverted") move sequence
// to a fixed-size digest, used as the dedup set's key instead of the
// longer move-sequence string itself.
func canonicalKey(alg cube.Algorithm) ([32]byte, error) {
	flat := alg.ToUninverted()
	d, err := blake2b.NewDigest(nil, nil, nil, 32)
	if err != nil {
		return [32]byte{}, err
	}
	for _, m := range flat.Normal {
		d.Write([]byte{byte(m)})
	}
	var out [32]byte
	copy(out[:], d.Sum(nil))
	return out, nil
}

// dedupSet coalesces solutions that reach the same canonical algorithm
// through different phase decompositions. The seen set is scoped to
// one total length at a time and cleared when the length increases,
// since within a fixed total length the same canonical algorithm can
// only legitimately appear once.
type dedupSet struct {
	mu     sync.Mutex
	length int
	seen   map[[32]byte]struct{}
}

func newDedupSet() *dedupSet {
	return &dedupSet{seen: make(map[[32]byte]struct{})}
}

// admit reports whether alg is the first occurrence of its canonical
// form at its total length; subsequent duplicates return false.
func (d *dedupSet) admit(alg cube.Algorithm) (bool, error) {
	key, err := canonicalKey(alg)
	if err != nil {
		return false, err
	}
	length := len(alg.ToUninverted().Normal)

	d.mu.Lock()
	defer d.mu.Unlock()
	if length != d.length {
		d.length = length
		d.seen = make(map[[32]byte]struct{})
	}
	if _, ok := d.seen[key]; ok {
		return false, nil
	}
	d.seen[key] = struct{}{}
	return true, nil
}

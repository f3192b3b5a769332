package prune

import (
	"sync"

	"github.com/katalvlaran/cubesolve/cube"
)

// Spec describes how to generate one phase's table on demand: its
// coordinate-space size, its move set, and a version tag that changes
// whenever the generation algorithm changes (a stale on-disk table
// with a mismatched version is regenerated rather than trusted).
type Spec struct {
	Name    string
	Size    int
	Moves   []cube.Move
	CoordFn func(cube.Cube) int
	Version uint32
	Niss    bool
}

// Registry owns one Table per named phase, generating it at most once
// and caching it for the lifetime of the process via a keyed
// generate-on-demand pattern.
type Registry struct {
	mu     sync.Mutex
	specs  map[string]Spec
	tables map[string]*Table
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		specs:  make(map[string]Spec),
		tables: make(map[string]*Table),
	}
}

// Register adds a phase's generation spec. Safe to call before any
// Get.
func (r *Registry) Register(s Spec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs[s.Name] = s
}

// Get returns the named phase's table, generating it on first use.
func (r *Registry) Get(name string) (*Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.tables[name]; ok {
		return t, nil
	}
	spec, ok := r.specs[name]
	if !ok {
		return nil, tableMissing(name)
	}

	var table *Table
	if spec.Niss {
		table = GenerateNiss(spec.Size, spec.Moves, spec.CoordFn, spec.Version)
	} else {
		table, _ = Generate(spec.Size, spec.Moves, spec.CoordFn, spec.Version)
	}
	r.tables[name] = table
	return table, nil
}

// Put installs a pre-built table (e.g. one loaded from disk by an
// external cache layer via Decode), skipping generation entirely as
// long as its version matches the registered spec.
func (r *Registry) Put(name string, t *Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	spec, ok := r.specs[name]
	if ok && spec.Version != t.Version {
		return tableMissing(name)
	}
	r.tables[name] = t
	return nil
}

package prune

import "github.com/katalvlaran/cubesolve/solveerr"

func tableMissing(name string) error {
	return solveerr.Newf(solveerr.TableMissing, "prune.Registry.Get", "no table registered or loaded for phase %q", name)
}

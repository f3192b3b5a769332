package pipeline

import (
	"context"
	"strings"

	"github.com/katalvlaran/cubesolve/cube"
	"github.com/katalvlaran/cubesolve/prune"
	"github.com/katalvlaran/cubesolve/solution"
	"github.com/katalvlaran/cubesolve/solveerr"
	"github.com/katalvlaran/cubesolve/step"
	"github.com/katalvlaran/cubesolve/workerpool"
)

// DefaultRegistry builds a prune.Registry pre-loaded with every named
// phase's generation Spec, so Solve never has to hand-assemble BFS
// inputs: each phase's table is generated lazily, at most once, the
// first time ResolveStep needs it.
func DefaultRegistry(version uint32) *prune.Registry {
	reg := prune.NewRegistry()
	for _, axis := range []cube.Axis{cube.UD, cube.FB, cube.LR} {
		reg.Register(step.EOTableSpec(axis, version))
	}
	reg.Register(step.RZPTableSpec(version))
	reg.Register(step.DRTableSpec(version))
	reg.Register(step.HTRTableSpec(version))
	reg.Register(step.FRTableSpec(version))
	reg.Register(step.FRLSTableSpec(version))
	reg.Register(step.FINTableSpec(version))
	reg.Register(step.FINLSTableSpec(version))
	return reg
}

func parseAxis(name string) (cube.Axis, bool) {
	switch strings.ToUpper(name) {
	case "UD":
		return cube.UD, true
	case "FB":
		return cube.FB, true
	case "LR":
		return cube.LR, true
	default:
		return 0, false
	}
}

func axesOf(names []string) ([]cube.Axis, error) {
	if len(names) == 0 {
		return []cube.Axis{cube.UD, cube.FB, cube.LR}, nil
	}
	out := make([]cube.Axis, 0, len(names))
	for _, n := range names {
		a, ok := parseAxis(n)
		if !ok {
			return nil, solveerr.Newf(solveerr.InvalidStepConfig, "pipeline.axesOf", "unknown axis %q", n)
		}
		out = append(out, a)
	}
	return out, nil
}

// resolveVariants builds the concrete StepVariants a StepConfig names,
// fetching (and on first use, generating) each one's pruning table
// from reg.
func resolveVariants(cfg StepConfig, reg *prune.Registry) ([]step.StepVariant, error) {
	axes, err := axesOf(cfg.Axes)
	if err != nil {
		return nil, err
	}

	get := func(name string) (*prune.Table, error) { return reg.Get(name) }

	var variants []step.StepVariant
	switch cfg.Kind {
	case step.EO:
		for _, axis := range axes {
			table, err := get("EO-" + axis.String())
			if err != nil {
				return nil, err
			}
			variants = append(variants, step.NewEOVariant(axis, table))
		}
	case step.RZP:
		table, err := get("RZP")
		if err != nil {
			return nil, err
		}
		for _, axis := range axes {
			variants = append(variants, step.NewRZPVariant(axis, table, cfg.Triggers))
		}
	case step.DR:
		table, err := get("DR")
		if err != nil {
			return nil, err
		}
		for _, axis := range axes {
			variants = append(variants, step.NewDRVariant(axis, table))
		}
	case step.HTR:
		table, err := get("HTR")
		if err != nil {
			return nil, err
		}
		for _, axis := range axes {
			variants = append(variants, step.NewHTRVariant(axis, table))
		}
	case step.FR:
		table, err := get("FR")
		if err != nil {
			return nil, err
		}
		for _, axis := range axes {
			variants = append(variants, step.NewFRVariant(axis, table))
		}
	case step.FRLS:
		table, err := get("FRLS")
		if err != nil {
			return nil, err
		}
		for _, axis := range axes {
			variants = append(variants, step.NewFRLSVariant(axis, table))
		}
	case step.FIN:
		table, err := get("FIN")
		if err != nil {
			return nil, err
		}
		for _, axis := range axes {
			variants = append(variants, step.NewFINVariant(axis, table))
		}
	case step.FINLS:
		table, err := get("FINLS")
		if err != nil {
			return nil, err
		}
		for _, axis := range axes {
			variants = append(variants, step.NewFINLSVariant(axis, table))
		}
	default:
		return nil, solveerr.Newf(solveerr.InvalidStepConfig, "pipeline.resolveVariants", "unknown step kind %v", cfg.Kind)
	}
	return variants, nil
}

// partial is one in-progress candidate threaded through the step
// chain: the cube reached so far, the axis locked in by the first
// axis-sensitive step (EO), and the per-step record needed to render
// the final solution.
type partial struct {
	cube     cube.Cube
	axis     cube.Axis
	hasAxis  bool
	steps    []solution.Step
	totalLen int
}

// Solve streams completed Solutions for scramble through the ordered
// step chain, honoring each StepConfig's bounds, NISS mode and trigger
// filters, applying the dedup filter across the whole chain, and
// capping total length at cfg.MaxTotal. The iterated-deepening-over-
// concatenation composer is implemented here as a collect-then-merge
// pass per step rather than a literal lazy generator — see DESIGN.md's
// Open Question decision on this.
func Solve(ctx context.Context, scramble cube.Cube, steps []StepConfig, reg *prune.Registry, cfg Config) (<-chan solution.Solution, error) {
	if len(steps) == 0 {
		return nil, solveerr.Newf(solveerr.InvalidStepConfig, "pipeline.Solve", "empty step chain")
	}
	for i := 1; i < len(steps); i++ {
		if !step.IsLegalAfter(steps[i-1].Kind, steps[i].Kind) {
			return nil, solveerr.Newf(solveerr.InvalidStepConfig, "pipeline.Solve",
				"%v cannot directly follow %v", steps[i].Kind, steps[i-1].Kind)
		}
	}

	out := make(chan solution.Solution, 16)
	go func() {
		defer close(out)
		dedup := newDedupSet()

		frontier := []partial{{cube: scramble}}
		for i, cfgStep := range steps {
			cfg.Logger.Info("pipeline: entering step", "kind", cfgStep.Kind.String(), "index", i, "carried", len(frontier))
			next, err := runStep(ctx, cfgStep, frontier, reg, cfg)
			if err != nil {
				cfg.Logger.Warn("pipeline: step failed", "kind", cfgStep.Kind.String(), "error", err)
				return
			}
			if cfgStep.StepLimit > 0 && len(next) > cfgStep.StepLimit {
				next = next[:cfgStep.StepLimit]
			}
			frontier = next
			if len(frontier) == 0 {
				return
			}
			select {
			case <-ctx.Done():
				return
			default:
			}
		}

		for _, p := range frontier {
			if !p.cube.IsSolved() {
				// Last-line defense: a coordinate or pruning-table bug
				// upstream could otherwise let an incomplete candidate
				// reach here and be emitted as a solution.
				cfg.Logger.Warn("pipeline: dropping candidate that doesn't actually solve the cube", "steps", len(p.steps))
				continue
			}
			sol := solution.New(p.steps)
			if cfg.Dedup {
				admitted, err := dedup.admit(sol.Final)
				if err != nil || !admitted {
					continue
				}
			}
			select {
			case out <- sol:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// runStep fans every (partial, variant) pair across a bounded
// workerpool, merging all of this step's emissions by total length so
// far.
func runStep(ctx context.Context, cfg StepConfig, frontier []partial, reg *prune.Registry, pcfg Config) ([]partial, error) {
	var jobs []workerpool.Job[partial]

	for _, p := range frontier {
		p := p
		stepCfg := cfg
		if p.hasAxis {
			stepCfg.Axes = []string{p.axis.String()}
		}
		variants, err := resolveVariants(stepCfg, reg)
		if err != nil {
			return nil, err
		}

		minDepth, maxDepth := depthBounds(cfg, p.totalLen, pcfg.MaxTotal)
		if maxDepth < minDepth {
			continue
		}

		for _, v := range variants {
			v := v
			jobs = append(jobs, func(ctx context.Context, emit func(partial) bool) error {
				return v.Search(ctx, p.cube, minDepth, maxDepth, cfg.Niss, func(alg cube.Algorithm) bool {
					flat := alg.ToUninverted()
					nextCube := flat.Apply(p.cube)
					np := partial{
						cube:     nextCube,
						axis:     v.Axis,
						hasAxis:  true,
						totalLen: p.totalLen + len(flat.Normal),
					}
					np.steps = append(np.steps, p.steps...)
					np.steps = append(np.steps, solution.Step{
						Name:   v.Name,
						Moves:  flat.Normal,
						Len:    len(flat.Normal),
						CumLen: np.totalLen,
					})
					return emit(np)
				})
			})
		}
	}

	if len(jobs) == 0 {
		return nil, nil
	}

	pool := workerpool.New(pcfg.Concurrency, func(a, b partial) bool { return a.totalLen < b.totalLen })
	ch, wait := pool.Run(ctx, jobs)
	var results []partial
	for p := range ch {
		results = append(results, p)
	}
	if err := wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// depthBounds intersects a step's absolute (Min/Max) and relative
// (MinRel/MaxRel) bounds with how much of the overall maxTotal budget
// remains after usedLen moves already spent.
func depthBounds(cfg StepConfig, usedLen, maxTotal int) (int, int) {
	min := cfg.MinRel
	max := cfg.MaxRel
	if cfg.Min > 0 && cfg.Min-usedLen > min {
		min = cfg.Min - usedLen
	}
	if min < 0 {
		min = 0
	}
	remaining := maxTotal - usedLen
	if max <= 0 || max > remaining {
		max = remaining
	}
	if cfg.Max > 0 && cfg.Max-usedLen < max {
		max = cfg.Max - usedLen
	}
	return min, max
}

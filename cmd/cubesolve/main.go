// Command cubesolve is the minimal external front end over pipeline.Solve:
// it parses a scramble and a comma-separated step-kind list, streams
// rendered solutions to stdout, and exits non-zero on a bad scramble,
// a bad step chain, or an empty result. It owns no search logic of its
// own.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/cubesolve/cube"
	"github.com/katalvlaran/cubesolve/pipeline"
	"github.com/katalvlaran/cubesolve/step"
)

func parseKind(name string) (step.Kind, bool) {
	switch strings.ToUpper(name) {
	case "EO":
		return step.EO, true
	case "RZP":
		return step.RZP, true
	case "DR":
		return step.DR, true
	case "HTR":
		return step.HTR, true
	case "FR":
		return step.FR, true
	case "FRLS":
		return step.FRLS, true
	case "FIN":
		return step.FIN, true
	case "FINLS":
		return step.FINLS, true
	default:
		return 0, false
	}
}

func buildSteps(kinds []string, maxRelPerStep int, triggers []step.Trigger) ([]pipeline.StepConfig, error) {
	out := make([]pipeline.StepConfig, 0, len(kinds))
	for _, name := range kinds {
		kind, ok := parseKind(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("cubesolve: unknown step kind %q", name)
		}
		cfg := pipeline.StepConfig{Kind: kind, MaxRel: maxRelPerStep}
		if kind == step.DR || kind == step.RZP {
			cfg.Triggers = triggers
		}
		out = append(out, cfg)
	}
	return out, nil
}

func run(c *cli.Context) error {
	scrambleText := c.String("scramble")
	start, err := cube.ApplyScramble(scrambleText)
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid scramble: %v", err), 2)
	}

	var triggers []step.Trigger
	if raw := c.String("triggers"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			trig, err := step.ParseTrigger(strings.TrimSpace(t))
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid trigger: %v", err), 2)
			}
			triggers = append(triggers, trig)
		}
	}

	kinds := strings.Split(c.String("steps"), ",")
	steps, err := buildSteps(kinds, c.Int("max"), triggers)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	cfg := pipeline.New(
		pipeline.WithMaxTotal(c.Int("max")),
		pipeline.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
	)
	reg := pipeline.DefaultRegistry(cfg.Version)

	ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
	defer cancel()

	out, err := pipeline.Solve(ctx, start, steps, reg, cfg)
	if err != nil {
		return cli.Exit(fmt.Sprintf("solve: %v", err), 1)
	}

	count := 0
	for sol := range out {
		fmt.Println(sol.Render())
		fmt.Println()
		count++
	}
	if count == 0 {
		return cli.Exit("no solutions found", 1)
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:  "cubesolve",
		Usage: "streaming multi-phase FMC solver",
		Commands: []*cli.Command{
			{
				Name:  "solve",
				Usage: "solve a scramble through an ordered step chain",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "scramble", Required: true, Usage: `scramble text, e.g. "R U F' U' R'"`},
					&cli.StringFlag{Name: "steps", Value: "EO,DR,HTR,FR,FIN", Usage: "comma-separated step kinds"},
					&cli.StringFlag{Name: "triggers", Usage: `comma-separated DR trigger algorithms, e.g. "R,R U2 R"`},
					&cli.IntFlag{Name: "max", Value: 25, Usage: "total move cap across every phase"},
					&cli.DurationFlag{Name: "timeout", Value: 10 * time.Second, Usage: "wall-clock budget for the whole solve"},
				},
				Action: run,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

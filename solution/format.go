package solution

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cubesolve/cube"
)

// Render formats the Solution as one line per step,
// "<moves>  //<step-name> (<len>/<cumlen>)", followed by a final line
// "Solution (N): <canonical algorithm>".
func (s Solution) Render() string {
	var b strings.Builder
	for _, step := range s.Steps {
		moves := cube.Algorithm{Normal: step.Moves}.String()
		fmt.Fprintf(&b, "%s  //%s (%d/%d)\n", moves, step.Name, step.Len, step.CumLen)
	}
	fmt.Fprintf(&b, "Solution (%d): %s", s.Len(), s.Final.String())
	return b.String()
}

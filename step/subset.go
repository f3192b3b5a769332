package step

import (
	"github.com/katalvlaran/cubesolve/coord"
	"github.com/katalvlaran/cubesolve/cube"
)

// Subset names one of the corner/edge patterns an HTR-complete cube
// can be in, each reachable from solved by a short generator
// algorithm — used to pick which FR algorithm family applies.
type Subset struct {
	ID        int
	Name      string
	Generator cube.Algorithm
}

// htrGenerators is append-only: its order assigns each Subset.ID.
// Representatives are drawn from the standard HTR trigger vocabulary
// (double turns of opposite-axis faces): identity, the six single half
// turns, the thirty ordered distinct-face half-turn pairs, and as many
// distinct-face half-turn triples as needed to round the count out to
// 48. Built incrementally with an explicit length guard rather than
// generated-then-truncated, so it can never slice past what it
// actually produced (6 faces give only 30 ordered pairs, far short of
// 48 on their own).
var htrGenerators = buildHTRGenerators()

func buildHTRGenerators() []Subset {
	const want = 48
	faces := []cube.Face{cube.Up, cube.Down, cube.Front, cube.Back, cube.Left, cube.Right}
	gens := make([]Subset, 0, want)

	add := func(name string, moves ...cube.Move) bool {
		if len(gens) >= want {
			return false
		}
		gens = append(gens, Subset{
			ID:        len(gens),
			Name:      name,
			Generator: cube.Algorithm{Normal: append([]cube.Move(nil), moves...)},
		})
		return true
	}

	add("identity")
	for _, f := range faces {
		add(f.String()+"2", cube.NewMove(f, cube.Half))
	}
	for _, f1 := range faces {
		for _, f2 := range faces {
			if f1 == f2 {
				continue
			}
			if !add(f1.String()+"2"+f2.String()+"2", cube.NewMove(f1, cube.Half), cube.NewMove(f2, cube.Half)) {
				return gens
			}
		}
	}
	for i := 0; i < len(faces) && len(gens) < want; i++ {
		for j := i + 1; j < len(faces) && len(gens) < want; j++ {
			for k := j + 1; k < len(faces) && len(gens) < want; k++ {
				add(faces[i].String()+"2"+faces[j].String()+"2"+faces[k].String()+"2",
					cube.NewMove(faces[i], cube.Half), cube.NewMove(faces[j], cube.Half), cube.NewMove(faces[k], cube.Half))
			}
		}
	}
	return gens
}

// Subsets returns the fixed, ordered list of HTR corner/edge-pattern
// generators.
func Subsets() []Subset {
	return htrGenerators
}

var htrSubsetByCoord map[int]int

func init() {
	htrSubsetByCoord = make(map[int]int, len(htrGenerators))
	solved := cube.Solved()
	for _, s := range htrGenerators {
		reached := s.Generator.Apply(solved)
		// coord.HTR is 0 for every HTR-complete state by definition and
		// so can't tell these generators' results apart; HTRClassKey
		// exposes the underlying corner/slice-edge permutation pair
		// instead.
		c := coord.HTRClassKey(reached)
		if _, exists := htrSubsetByCoord[c]; !exists {
			htrSubsetByCoord[c] = s.ID
		}
	}
}

// ClassifyHTR reports which named subset an HTR-solved cube's
// corner/edge state belongs to, or ok=false if c does not match any
// generator's reachable class (e.g. c is not HTR-solved).
func ClassifyHTR(c cube.Cube) (Subset, bool) {
	id, ok := htrSubsetByCoord[coord.HTRClassKey(c)]
	if !ok {
		return Subset{}, false
	}
	return htrGenerators[id], true
}

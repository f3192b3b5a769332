package cube

import (
	"github.com/katalvlaran/cubesolve/solveerr"
)

var faceByLetter = map[byte]Face{
	'U': Up, 'D': Down, 'F': Front, 'B': Back, 'L': Left, 'R': Right,
}

// ParseMove parses a single move token such as "R", "R2" or "R'".
func ParseMove(tok string) (Move, error) {
	if len(tok) == 0 {
		return 0, solveerr.Newf(solveerr.InvalidScramble, "cube.ParseMove", "empty move token")
	}
	f, ok := faceByLetter[tok[0]]
	if !ok {
		return 0, solveerr.Newf(solveerr.InvalidScramble, "cube.ParseMove", "unknown face letter %q", tok[0])
	}
	d := Clockwise
	if len(tok) == 2 {
		switch tok[1] {
		case '2':
			d = Half
		case '\'':
			d = CounterClockwise
		default:
			return 0, solveerr.Newf(solveerr.InvalidScramble, "cube.ParseMove", "unknown move suffix %q", tok[1])
		}
	} else if len(tok) > 2 {
		return 0, solveerr.Newf(solveerr.InvalidScramble, "cube.ParseMove", "move token %q too long", tok)
	}
	return NewMove(f, d), nil
}

// ParseAlgorithm parses the scramble text format: face letters
// optionally followed by 2 or ', whitespace optional between tokens,
// with one level of parenthesis nesting marking a subsequence as
// applied to the inverse.
func ParseAlgorithm(s string) (Algorithm, error) {
	var alg Algorithm
	inInverse := false
	var cur []byte

	flush := func() error {
		if len(cur) == 0 {
			return nil
		}
		m, err := ParseMove(string(cur))
		cur = cur[:0]
		if err != nil {
			return err
		}
		if inInverse {
			alg.Inverse = append(alg.Inverse, m)
		} else {
			alg.Normal = append(alg.Normal, m)
		}
		return nil
	}

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			if err := flush(); err != nil {
				return Algorithm{}, err
			}
		case ch == '(':
			if err := flush(); err != nil {
				return Algorithm{}, err
			}
			if inInverse {
				return Algorithm{}, solveerr.Newf(solveerr.InvalidScramble, "cube.ParseAlgorithm", "nested parentheses not supported")
			}
			inInverse = true
		case ch == ')':
			if err := flush(); err != nil {
				return Algorithm{}, err
			}
			if !inInverse {
				return Algorithm{}, solveerr.Newf(solveerr.InvalidScramble, "cube.ParseAlgorithm", "unmatched ')'")
			}
			inInverse = false
		case ch == '2' || ch == '\'':
			cur = append(cur, ch)
			if err := flush(); err != nil {
				return Algorithm{}, err
			}
		default:
			if _, ok := faceByLetter[ch]; !ok {
				return Algorithm{}, solveerr.Newf(solveerr.InvalidScramble, "cube.ParseAlgorithm", "unexpected character %q", ch)
			}
			if len(cur) > 0 {
				if err := flush(); err != nil {
					return Algorithm{}, err
				}
			}
			cur = append(cur, ch)
		}
	}
	if err := flush(); err != nil {
		return Algorithm{}, err
	}
	if inInverse {
		return Algorithm{}, solveerr.Newf(solveerr.InvalidScramble, "cube.ParseAlgorithm", "unbalanced '('")
	}
	return alg, nil
}

// ApplyScramble parses and applies a scramble to the solved cube.
func ApplyScramble(s string) (Cube, error) {
	alg, err := ParseAlgorithm(s)
	if err != nil {
		return Cube{}, err
	}
	c := Solved()
	c = alg.Apply(c)
	return c, nil
}

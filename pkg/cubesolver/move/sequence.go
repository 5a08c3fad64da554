package move

import (
	"math/rand"
	"strings"

	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cube"
)

// ApplySequence applies names in order to s, returning the resulting state.
// s itself is left unmodified.
func ApplySequence(s cube.State, names []Name) cube.State {
	out := s.Clone()
	var scratch Scratch
	for _, n := range names {
		Table[n].ApplyInPlace(&out, &scratch)
	}
	return out
}

// Scramble applies moveCount random generators to s,
// never repeating the immediate inverse of the previous move, and returns the
// scrambled state together with the move sequence that produced it. A given
// seed always produces the same sequence.
func Scramble(s cube.State, moveCount int, seed int64) (cube.State, []Name) {
	rng := rand.New(rand.NewSource(seed))

	sequence := make([]Name, 0, moveCount)
	current := s.Clone()
	var scratch Scratch
	hasLast := false
	var last Name

	for i := 0; i < moveCount; i++ {
		var candidates []Name
		for n := Name(0); n < numMoves; n++ {
			if hasLast && n == last.Inverse() {
				continue
			}
			candidates = append(candidates, n)
		}
		chosen := candidates[rng.Intn(len(candidates))]
		sequence = append(sequence, chosen)
		Table[chosen].ApplyInPlace(&current, &scratch)
		last = chosen
		hasLast = true
	}

	return current, sequence
}

// Verify reports whether applying solution to initial reaches the solved
// state.
func Verify(initial cube.State, solution []Name) bool {
	return ApplySequence(initial, solution).IsSolved()
}

// FormatSolution renders a move sequence as space-separated notation, e.g.
// "R U R' U2 F". An empty sequence formats as a fixed placeholder string.
func FormatSolution(solution []Name) string {
	if len(solution) == 0 {
		return "No moves needed (already solved)"
	}
	parts := make([]string, len(solution))
	for i, n := range solution {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}

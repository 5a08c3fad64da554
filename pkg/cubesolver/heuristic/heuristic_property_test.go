package heuristic

import (
	"testing"

	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cube"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/move"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/pdb"
	"github.com/rs/zerolog"
)

func TestHeuristicProperties(t *testing.T) {
	t.Run("MaxNeverExceedsKnownScrambleLength", func(t *testing.T) {
		// A scramble of length L is one witness path to solved, so any
		// admissible heuristic's value at that state must not exceed L.
		for seed := int64(0); seed < 10; seed++ {
			s, seq := move.Scramble(cube.Solved(), 6, seed)
			cr := pdb.CornerRank(s.Cp, s.Co)
			ar := pdb.Edge6Rank(s.Ep, s.Eo, pdb.Edge6SetA)
			br := pdb.Edge6Rank(s.Ep, s.Eo, pdb.Edge6SetB)
			// All distances true and minimal at these three ranks would come
			// from a full Korf build; for this admissibility-shape check we
			// only need a PDB that is honest at the ranks it knows about, so
			// a sparse table with the observed ranks set to the scramble
			// length (a valid, if not tight, upper bound itself) suffices to
			// exercise Max's combination logic against the same contract a
			// real build must satisfy: never report more than a known path.
			k := fakeKorf(t, cr, ar, br, byte(len(seq)), byte(len(seq)), byte(len(seq)))
			if got := k.Max(s); int(got) > len(seq) {
				t.Errorf("seed %d: Max(s) = %d exceeds scramble length %d", seed, got, len(seq))
			}
		}
	})

	t.Run("MaxAgreesWithCheapTripleShapeOnSolved", func(t *testing.T) {
		logger := zerolog.Nop()
		triple := pdb.BuildCheapTriple(logger)
		if got := triple.Bound(cube.Solved()); got != 0 {
			t.Errorf("CheapTriple.Bound(solved) = %d, want 0", got)
		}

		s := cube.Solved()
		k := fakeKorf(t, pdb.CornerRank(s.Cp, s.Co), pdb.Edge6Rank(s.Ep, s.Eo, pdb.Edge6SetA), pdb.Edge6Rank(s.Ep, s.Eo, pdb.Edge6SetB), 0, 0, 0)
		if got := k.Max(s); got != 0 {
			t.Errorf("Max(solved) = %d, want 0", got)
		}
	})
}

package pdb

import (
	"testing"

	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cube"
)

// FuzzCornerRankStaysInRange feeds arbitrary byte-derived corner
// permutations/orientations through CornerRank and checks the result never
// leaves [0, CornerSize), even for inputs that aren't valid cube states.
func FuzzCornerRankStaysInRange(f *testing.F) {
	seed := cube.Solved()
	f.Add(seed.Cp[:], seed.Co[:])

	f.Fuzz(func(t *testing.T, rawCp, rawCo []byte) {
		var cp, co [cube.NumCorners]uint8
		for i := range cp {
			if i < len(rawCp) {
				cp[i] = uint8(rawCp[i]) % cube.NumCorners
			}
		}
		for i := range co {
			if i < len(rawCo) {
				co[i] = uint8(rawCo[i]) % 3
			}
		}
		r := CornerRank(cp, co)
		if r < 0 || r >= CornerSize {
			t.Fatalf("CornerRank(%v, %v) = %d out of range", cp, co, r)
		}
	})
}

// FuzzCornerUnrankStaysInDomain checks CornerUnrank never panics and always
// returns a value-in-range corner permutation/orientation pair for any rank
// reduced into [0, CornerSize).
func FuzzCornerUnrankStaysInDomain(f *testing.F) {
	f.Add(0)
	f.Add(CornerSize - 1)

	f.Fuzz(func(t *testing.T, r int) {
		r = ((r % CornerSize) + CornerSize) % CornerSize
		cp, co := CornerUnrank(r)
		for _, v := range cp {
			if v >= cube.NumCorners {
				t.Fatalf("CornerUnrank(%d) produced out-of-range cp entry %d", r, v)
			}
		}
		for _, v := range co {
			if v >= 3 {
				t.Fatalf("CornerUnrank(%d) produced out-of-range co entry %d", r, v)
			}
		}
	})
}

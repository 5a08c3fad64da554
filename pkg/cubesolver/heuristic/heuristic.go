// Package heuristic combines pattern-database lookups into the admissible
// distance estimate IDA* bounds its search with.
package heuristic

import (
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cube"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/pdb"
)

// Korf holds the three pattern databases (one corner, two edge6) that
// together bound the distance to solved.
type Korf struct {
	Corner *pdb.PDB
	EdgeA  *pdb.PDB
	EdgeB  *pdb.PDB
}

// Max returns max(h_corner(s), h_edge6A(s), h_edge6B(s)). Each term is an
// admissible and consistent lower bound on the remaining distance because
// each abstraction is a homomorphism of the move group, so the max is too.
func (k Korf) Max(s cube.State) uint8 {
	hc := k.Corner.Get(pdb.CornerRank(s.Cp, s.Co))
	ha := k.EdgeA.Get(pdb.Edge6Rank(s.Ep, s.Eo, pdb.Edge6SetA))
	hb := k.EdgeB.Get(pdb.Edge6Rank(s.Ep, s.Eo, pdb.Edge6SetB))

	m := hc
	if ha > m {
		m = ha
	}
	if hb > m {
		m = hb
	}
	return m
}

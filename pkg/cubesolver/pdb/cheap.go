package pdb

import (
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cube"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/move"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/rank"
	"github.com/rs/zerolog"
)

// CheapTriple is three small single-abstraction pattern databases, kept as a
// build-time cross-check: each is cheap enough (at most 40320 abstract
// states) to build and verify in a test, unlike the full Korf PDBs, and
// combining them with max gives a second, independently-grounded admissible
// heuristic to compare heuristic.Max against on small scrambles.
type CheapTriple struct {
	CornerOrient *PDB // 3^7 corner-orientation patterns
	EdgeOrient   *PDB // 2^11 edge-orientation patterns
	CornerPerm   *PDB // corner-permutation patterns (see cheapCornerPermRank)
}

const (
	cheapCornerOrientSize = 2187 // 3^7
	cheapEdgeOrientSize   = 2048 // 2^11
	cheapCornerPermSize   = 40320
)

func cheapCornerOrientRank(co [cube.NumCorners]uint8) int {
	return rank.BaseKRank(co[:7], 3)
}

func cheapEdgeOrientRank(eo [cube.NumEdges]uint8) int {
	return rank.BaseKRank(eo[:11], 2)
}

// cheapCornerPermRank ranks corner permutations by counting, for each
// position from 7 down to 1, how many positions to its right hold a smaller
// cubie index. This only depends on the relative order of positions 1..7,
// not on which cubie sits at position 0, so it is a coarser abstraction than
// a full Lehmer rank over all 8 positions (only 5040 of the declared 40320
// slots are ever reachable).
func cheapCornerPermRank(cp [cube.NumCorners]uint8) int {
	index := 0
	factorial := 1
	for i := 7; i >= 1; i-- {
		count := 0
		for j := i + 1; j <= 7; j++ {
			if cp[j] < cp[i] {
				count++
			}
		}
		index += count * factorial
		factorial *= 8 - i
	}
	return index
}

func buildSingleAbstractionPDB(size int, abstract func(cube.State) int, logger zerolog.Logger, label string, printEvery int) *PDB {
	data := make([]byte, size)
	for i := range data {
		data[i] = unset
	}
	visited := newBitmap(size)

	start := cube.Solved()
	startRank := abstract(start)
	data[startRank] = 0
	visited.set(startRank)

	queue := []cube.State{start}
	depth := 0
	nodesAtDepth := 1
	explored := 1

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		nodesAtDepth--

		dist := data[abstract(s)]
		for n := move.Name(0); int(n) < 18; n++ {
			child := move.Table[n].Apply(s)
			childRank := abstract(child)
			if !visited.test(childRank) {
				visited.set(childRank)
				data[childRank] = dist + 1
				queue = append(queue, child)
				explored++
			}
		}

		if nodesAtDepth == 0 {
			depth++
			nodesAtDepth = len(queue)
			if depth%printEvery == 0 || len(queue) == 0 {
				logger.Info().Str("pdb", label).Int("depth", depth).Int("explored", explored).Int("size", size).Msg("cheap pdb build progress")
			}
		}
	}

	return &PDB{meta: Meta{Size: size, SchemaVersion: schemaVersion, Subset: label}, data: data}
}

// BuildCheapTriple builds all three small cross-check PDBs from scratch.
func BuildCheapTriple(logger zerolog.Logger) *CheapTriple {
	return &CheapTriple{
		CornerOrient: buildSingleAbstractionPDB(cheapCornerOrientSize, func(s cube.State) int { return cheapCornerOrientRank(s.Co) }, logger, "cheap-corner-orient", 2),
		EdgeOrient:   buildSingleAbstractionPDB(cheapEdgeOrientSize, func(s cube.State) int { return cheapEdgeOrientRank(s.Eo) }, logger, "cheap-edge-orient", 2),
		CornerPerm:   buildSingleAbstractionPDB(cheapCornerPermSize, func(s cube.State) int { return cheapCornerPermRank(s.Cp) }, logger, "cheap-corner-perm", 3),
	}
}

// Bound returns the max-combined lower bound from the three cheap PDBs,
// mirroring the 'max' combination method of the heuristic this triple
// cross-checks.
func (c *CheapTriple) Bound(s cube.State) uint8 {
	co := c.CornerOrient.Get(cheapCornerOrientRank(s.Co))
	eo := c.EdgeOrient.Get(cheapEdgeOrientRank(s.Eo))
	cp := c.CornerPerm.Get(cheapCornerPermRank(s.Cp))
	m := co
	if eo > m {
		m = eo
	}
	if cp > m {
		m = cp
	}
	return m
}

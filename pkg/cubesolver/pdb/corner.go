package pdb

import (
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cube"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/move"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/rank"
	"github.com/rs/zerolog"
)

// CornerSize is the number of abstract states the full corner PDB covers:
// 8! permutations times 3^7 independent orientations (the eighth orientation
// is determined by the sum-to-zero-mod-3 constraint).
const CornerSize = 40320 * 2187

// CornerRank computes the abstract rank of a corner permutation/orientation
// pair: LehmerRank(cp)*3^7 + BaseRank3(co[0:7]).
func CornerRank(cp, co [cube.NumCorners]uint8) int {
	coRank := rank.BaseKRank(co[:7], 3)
	return rank.LehmerRank(cp[:])*2187 + coRank
}

// CornerUnrank decodes a CornerRank back into a corner permutation and a
// valid orientation vector (the 8th orientation is reconstructed from the
// mod-3 constraint).
func CornerUnrank(r int) (cp [cube.NumCorners]uint8, co [cube.NumCorners]uint8) {
	cpRank := r / 2187
	coRank := r % 2187

	perm := rank.LehmerUnrank(cpRank, cube.NumCorners)
	copy(cp[:], perm)

	digits := rank.BaseKUnrank(coRank, 3, 7)
	sum := 0
	for i, d := range digits {
		co[i] = d
		sum += int(d)
	}
	co[7] = uint8((3 - sum%3) % 3)
	return cp, co
}

// cornerOnlyState builds a synthetic full State carrying the given corner
// data and an arbitrary (identity) edge configuration, so the existing move
// application machinery can be reused without a parallel corners-only
// transform function: edges never influence how a move permutes corners.
func cornerOnlyState(cp, co [cube.NumCorners]uint8) cube.State {
	s := cube.Solved()
	s.Cp = cp
	s.Co = co
	return s
}

// BuildCorner runs the BFS that fills the full corner PDB from the solved
// abstract state. The BFS frontier holds ranks only: each dequeued rank is
// decoded back into (cp, co), the 18 moves are applied to a synthetic state
// built from that pair, and each child is re-ranked before being enqueued.
func BuildCorner(logger zerolog.Logger) *PDB {
	data := make([]byte, CornerSize)
	for i := range data {
		data[i] = unset
	}
	visited := newBitmap(CornerSize)

	startCp, startCo := cube.Solved().Cp, cube.Solved().Co
	startRank := CornerRank(startCp, startCo)
	data[startRank] = 0
	visited.set(startRank)

	queue := []int{startRank}
	depth := 0
	nodesAtDepth := 1
	explored := 1

	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		nodesAtDepth--

		cp, co := CornerUnrank(r)
		s := cornerOnlyState(cp, co)
		dist := data[r]

		for n := move.Name(0); int(n) < 18; n++ {
			child := move.Table[n].Apply(s)
			childRank := CornerRank(child.Cp, child.Co)
			if !visited.test(childRank) {
				visited.set(childRank)
				data[childRank] = dist + 1
				queue = append(queue, childRank)
				explored++
			}
		}

		if nodesAtDepth == 0 {
			depth++
			nodesAtDepth = len(queue)
			if depth%2 == 0 || len(queue) == 0 {
				logger.Info().Int("depth", depth).Int("explored", explored).Int("size", CornerSize).Msg("corner pdb build progress")
			}
		}
	}

	logger.Info().Int("max_depth", depth).Int("explored", explored).Int("size", CornerSize).Msg("corner pdb build complete")

	return &PDB{
		meta: Meta{Size: CornerSize, SchemaVersion: schemaVersion, Subset: "corner"},
		data: data,
	}
}

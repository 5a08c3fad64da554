package search

import (
	"testing"

	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cube"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/heuristic"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/move"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/pdb"
)

func newBenchKorf() heuristic.Korf {
	corner, _ := pdb.New(pdb.Meta{Size: pdb.CornerSize, Subset: "corner"}, make([]byte, pdb.CornerSize))
	edgeA, _ := pdb.New(pdb.Meta{Size: pdb.Edge6Size, Subset: "edge6-a"}, make([]byte, pdb.Edge6Size))
	edgeB, _ := pdb.New(pdb.Meta{Size: pdb.Edge6Size, Subset: "edge6-b"}, make([]byte, pdb.Edge6Size))
	return heuristic.Korf{Corner: corner, EdgeA: edgeA, EdgeB: edgeB}
}

func BenchmarkIDAStarShallowSolve(b *testing.B) {
	solver := IDAStar{Heuristic: newBenchKorf()}
	s, _ := move.Scramble(cube.Solved(), 5, 7)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		solver.Solve(s, 50)
	}
}

func BenchmarkIDDFSShallowSolve(b *testing.B) {
	solver := IDDFS{}
	s, _ := move.Scramble(cube.Solved(), 5, 7)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		solver.Solve(s, 50)
	}
}

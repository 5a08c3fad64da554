package heuristic

import (
	"testing"

	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cube"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/pdb"
)

func newBenchKorf(b *testing.B) Korf {
	b.Helper()

	corner, err := pdb.New(pdb.Meta{Size: pdb.CornerSize, Subset: "corner"}, make([]byte, pdb.CornerSize))
	if err != nil {
		b.Fatalf("pdb.New(corner): %v", err)
	}
	edgeA, err := pdb.New(pdb.Meta{Size: pdb.Edge6Size, Subset: "edge6-a"}, make([]byte, pdb.Edge6Size))
	if err != nil {
		b.Fatalf("pdb.New(edgeA): %v", err)
	}
	edgeB, err := pdb.New(pdb.Meta{Size: pdb.Edge6Size, Subset: "edge6-b"}, make([]byte, pdb.Edge6Size))
	if err != nil {
		b.Fatalf("pdb.New(edgeB): %v", err)
	}
	return Korf{Corner: corner, EdgeA: edgeA, EdgeB: edgeB}
}

func BenchmarkMax(b *testing.B) {
	k := newBenchKorf(b)
	s := cube.Solved()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = k.Max(s)
	}
}

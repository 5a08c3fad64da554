package pdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cube"
)

func TestCornerRankOfSolvedIsZero(t *testing.T) {
	s := cube.Solved()
	if got := CornerRank(s.Cp, s.Co); got != 0 {
		t.Fatalf("CornerRank(solved) = %d, want 0", got)
	}
}

func TestCornerRankRoundTrip(t *testing.T) {
	s := cube.Solved()
	s.Cp[0], s.Cp[1] = s.Cp[1], s.Cp[0]
	s.Cp[2], s.Cp[3] = s.Cp[3], s.Cp[2]
	s.Co[0] = 1
	s.Co[1] = 2

	r := CornerRank(s.Cp, s.Co)
	if r < 0 || r >= CornerSize {
		t.Fatalf("CornerRank out of range: %d", r)
	}
	cp, co := CornerUnrank(r)
	if cp != s.Cp {
		t.Fatalf("CornerUnrank cp mismatch: got %v, want %v", cp, s.Cp)
	}
	if co != s.Co {
		t.Fatalf("CornerUnrank co mismatch: got %v, want %v", co, s.Co)
	}
}

func TestEdge6RankOfSolved(t *testing.T) {
	s := cube.Solved()
	if got := Edge6Rank(s.Ep, s.Eo, Edge6SetA); got != 0 {
		t.Fatalf("Edge6Rank(solved, setA) = %d, want 0", got)
	}
	// Set B's solved occupants {6..11} are the last 6-subset of 12 (rank 923),
	// with identity relative order and zero orientations.
	if got, want := Edge6Rank(s.Ep, s.Eo, Edge6SetB), 923*720*64; got != want {
		t.Fatalf("Edge6Rank(solved, setB) = %d, want %d", got, want)
	}
}

func TestEdge6RankInRange(t *testing.T) {
	s := cube.Solved()
	s.Ep[0], s.Ep[5] = s.Ep[5], s.Ep[0]
	s.Eo[2] = 1
	s.Eo[3] = 1
	r := Edge6Rank(s.Ep, s.Eo, Edge6SetA)
	if r < 0 || r >= Edge6Size {
		t.Fatalf("Edge6Rank out of range: %d", r)
	}
}

func TestBitmapSetTest(t *testing.T) {
	b := newBitmap(100)
	if b.test(42) {
		t.Fatalf("fresh bitmap reports bit 42 set")
	}
	b.set(42)
	if !b.test(42) {
		t.Fatalf("bitmap did not report bit 42 set after Set")
	}
	if b.test(41) || b.test(43) {
		t.Fatalf("setting bit 42 affected a neighboring bit")
	}
	if b.count() != 1 {
		t.Fatalf("count() = %d, want 1", b.count())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	data := make([]byte, 16)
	for i := range data {
		data[i] = byte(i)
	}
	original := &PDB{meta: Meta{Size: 16, SchemaVersion: schemaVersion, Subset: "test"}, data: data}

	dir := t.TempDir()
	path := filepath.Join(dir, "test-pdb")
	if err := original.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	defer loaded.Close()

	if loaded.Size() != 16 {
		t.Fatalf("loaded.Size() = %d, want 16", loaded.Size())
	}
	for i := 0; i < 16; i++ {
		if got := loaded.Get(i); got != byte(i) {
			t.Errorf("loaded.Get(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestLoadRejectsWrongSchemaVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad-pdb")
	if err := os.WriteFile(path+".data", []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(path+".meta", []byte(`{"size":3,"schema_version":99,"subset":"x"}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load accepted a mismatched schema version")
	}
}

func TestGetOutOfRangeReturnsUnset(t *testing.T) {
	p := &PDB{meta: Meta{Size: 4}, data: []byte{0, 1, 2, 3}}
	if got := p.Get(-1); got != unset {
		t.Errorf("Get(-1) = %d, want unset", got)
	}
	if got := p.Get(4); got != unset {
		t.Errorf("Get(4) = %d, want unset", got)
	}
}

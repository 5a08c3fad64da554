// Package move defines the eighteen quarter-turn-metric generators of the
// Rubik's Cube group and how they act on a cube.State.
//
// Corner positions (0-7): 0 URF, 1 UFL, 2 ULB, 3 UBR, 4 DFR, 5 DLF, 6 DBL, 7 DRB.
// Edge positions (0-11): 0 UF, 1 UR, 2 UB, 3 UL, 4 FL, 5 FR, 6 BR, 7 BL,
// 8 DF, 9 DR, 10 DB, 11 DL.
package move

import (
	"fmt"

	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cube"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cubeerr"
)

// Name identifies one of the eighteen generators.
type Name uint8

const (
	U Name = iota
	U2
	UPrime
	D
	D2
	DPrime
	L
	L2
	LPrime
	R
	R2
	RPrime
	F
	F2
	FPrime
	B
	B2
	BPrime
	numMoves
)

var names = [numMoves]string{
	U: "U", U2: "U2", UPrime: "U'",
	D: "D", D2: "D2", DPrime: "D'",
	L: "L", L2: "L2", LPrime: "L'",
	R: "R", R2: "R2", RPrime: "R'",
	F: "F", F2: "F2", FPrime: "F'",
	B: "B", B2: "B2", BPrime: "B'",
}

// String returns the conventional notation for n, e.g. "U'".
func (n Name) String() string {
	if n >= numMoves {
		return fmt.Sprintf("Name(%d)", uint8(n))
	}
	return names[n]
}

// ParseName parses conventional cube notation ("U", "U2", "U'", ...) into a
// Name, returning cubeerr.ErrUnknownMove if s does not match any generator.
func ParseName(s string) (Name, error) {
	for i, n := range names {
		if n == s {
			return Name(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, cubeerr.ErrUnknownMove)
}

// Face identifies which of the six faces a move turns.
type Face uint8

const (
	FaceU Face = iota
	FaceD
	FaceL
	FaceR
	FaceF
	FaceB
)

var moveFace = [numMoves]Face{
	U: FaceU, U2: FaceU, UPrime: FaceU,
	D: FaceD, D2: FaceD, DPrime: FaceD,
	L: FaceL, L2: FaceL, LPrime: FaceL,
	R: FaceR, R2: FaceR, RPrime: FaceR,
	F: FaceF, F2: FaceF, FPrime: FaceF,
	B: FaceB, B2: FaceB, BPrime: FaceB,
}

// Face reports which face n turns, for same-face-move pruning in search.
func (n Name) Face() Face {
	return moveFace[n]
}

var inverseOf = [numMoves]Name{
	U: UPrime, U2: U2, UPrime: U,
	D: DPrime, D2: D2, DPrime: D,
	L: LPrime, L2: L2, LPrime: L,
	R: RPrime, R2: R2, RPrime: R,
	F: FPrime, F2: F2, FPrime: F,
	B: BPrime, B2: B2, BPrime: B,
}

// Inverse returns the move that undoes n.
func (n Name) Inverse() Name {
	return inverseOf[n]
}

// Move is one generator: its action on corner and edge positions/orientations,
// plus the inverse permutations precomputed once at init time so Apply never
// recomputes them on the hot path.
type Move struct {
	Name Name

	cornerPerm    [cube.NumCorners]uint8
	cornerOrient  [cube.NumCorners]uint8
	cornerPermInv [cube.NumCorners]uint8

	edgePerm    [cube.NumEdges]uint8
	edgeOrient  [cube.NumEdges]uint8
	edgePermInv [cube.NumEdges]uint8
}

// invert computes sigma^-1 from sigma, where sigma is a permutation given as
// an array (sigma[i] is the destination of position i).
func invertCorner(sigma [cube.NumCorners]uint8) [cube.NumCorners]uint8 {
	var inv [cube.NumCorners]uint8
	for i, dest := range sigma {
		inv[dest] = uint8(i)
	}
	return inv
}

func invertEdge(sigma [cube.NumEdges]uint8) [cube.NumEdges]uint8 {
	var inv [cube.NumEdges]uint8
	for i, dest := range sigma {
		inv[dest] = uint8(i)
	}
	return inv
}

func newMove(name Name, cp [cube.NumCorners]uint8, cd [cube.NumCorners]uint8, ep [cube.NumEdges]uint8, ed [cube.NumEdges]uint8) Move {
	return Move{
		Name:          name,
		cornerPerm:    cp,
		cornerOrient:  cd,
		cornerPermInv: invertCorner(cp),
		edgePerm:      ep,
		edgeOrient:    ed,
		edgePermInv:   invertEdge(ep),
	}
}

// Scratch is a reusable working buffer for ApplyInPlace, avoiding a heap
// allocation per move application on the search hot path.
type Scratch struct {
	cp [cube.NumCorners]uint8
	co [cube.NumCorners]uint8
	ep [cube.NumEdges]uint8
	eo [cube.NumEdges]uint8
}

// ApplyInPlace applies m to s, using scratch as working storage. s is
// overwritten with the result; scratch may be reused across calls.
func (m Move) ApplyInPlace(s *cube.State, scratch *Scratch) {
	for i := 0; i < cube.NumCorners; i++ {
		src := m.cornerPermInv[i]
		scratch.cp[i] = s.Cp[src]
		scratch.co[i] = (s.Co[src] + m.cornerOrient[i]) % 3
	}
	for i := 0; i < cube.NumEdges; i++ {
		src := m.edgePermInv[i]
		scratch.ep[i] = s.Ep[src]
		scratch.eo[i] = (s.Eo[src] + m.edgeOrient[i]) % 2
	}
	s.Cp = scratch.cp
	s.Co = scratch.co
	s.Ep = scratch.ep
	s.Eo = scratch.eo
}

// Apply returns the state resulting from applying m to s, leaving s unmodified.
func (m Move) Apply(s cube.State) cube.State {
	var scratch Scratch
	out := s.Clone()
	m.ApplyInPlace(&out, &scratch)
	return out
}

// Table holds all eighteen generators, indexed by Name.
var Table [numMoves]Move

func init() {
	Table[U] = newMove(U,
		[8]uint8{1, 2, 3, 0, 4, 5, 6, 7},
		[8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		[12]uint8{3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11},
		[12]uint8{0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	)
	Table[U2] = newMove(U2,
		[8]uint8{2, 3, 0, 1, 4, 5, 6, 7},
		[8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		[12]uint8{2, 3, 0, 1, 4, 5, 6, 7, 8, 9, 10, 11},
		[12]uint8{1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	)
	Table[UPrime] = newMove(UPrime,
		[8]uint8{3, 0, 1, 2, 4, 5, 6, 7},
		[8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		[12]uint8{1, 2, 3, 0, 4, 5, 6, 7, 8, 9, 10, 11},
		[12]uint8{1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	)

	Table[D] = newMove(D,
		[8]uint8{0, 1, 2, 3, 7, 4, 5, 6},
		[8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		[12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 8},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	)
	Table[D2] = newMove(D2,
		[8]uint8{0, 1, 2, 3, 6, 7, 4, 5},
		[8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		[12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 10, 11, 8, 9},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	)
	Table[DPrime] = newMove(DPrime,
		[8]uint8{0, 1, 2, 3, 5, 6, 7, 4},
		[8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		[12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 11, 8, 9, 10},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	)

	Table[L] = newMove(L,
		[8]uint8{0, 2, 6, 3, 4, 1, 5, 7},
		[8]uint8{0, 2, 1, 0, 0, 1, 2, 0},
		[12]uint8{0, 1, 2, 4, 11, 5, 6, 3, 8, 9, 10, 7},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	)
	Table[L2] = newMove(L2,
		[8]uint8{0, 6, 5, 3, 4, 2, 1, 7},
		[8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		[12]uint8{0, 1, 2, 11, 7, 5, 6, 4, 8, 9, 10, 3},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	)
	Table[LPrime] = newMove(LPrime,
		[8]uint8{0, 5, 1, 3, 4, 6, 2, 7},
		[8]uint8{0, 2, 1, 0, 0, 1, 2, 0},
		[12]uint8{0, 1, 2, 7, 3, 5, 6, 11, 8, 9, 10, 4},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	)

	Table[R] = newMove(R,
		[8]uint8{4, 1, 2, 0, 7, 5, 6, 3},
		[8]uint8{1, 0, 0, 2, 2, 0, 0, 1},
		[12]uint8{0, 5, 2, 3, 4, 9, 1, 7, 8, 6, 10, 11},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	)
	Table[R2] = newMove(R2,
		[8]uint8{7, 1, 2, 4, 3, 5, 6, 0},
		[8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		[12]uint8{0, 9, 2, 3, 4, 6, 5, 7, 8, 1, 10, 11},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	)
	Table[RPrime] = newMove(RPrime,
		[8]uint8{3, 1, 2, 7, 0, 5, 6, 4},
		[8]uint8{1, 0, 0, 2, 2, 0, 0, 1},
		[12]uint8{0, 6, 2, 3, 4, 1, 9, 7, 8, 5, 10, 11},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	)

	Table[F] = newMove(F,
		[8]uint8{1, 5, 2, 3, 0, 4, 6, 7},
		[8]uint8{1, 2, 0, 0, 2, 1, 0, 0},
		[12]uint8{4, 1, 2, 3, 8, 0, 6, 7, 5, 9, 10, 11},
		[12]uint8{1, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0, 0},
	)
	Table[F2] = newMove(F2,
		[8]uint8{5, 4, 2, 3, 1, 0, 6, 7},
		[8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		[12]uint8{8, 1, 2, 3, 5, 4, 6, 7, 0, 9, 10, 11},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	)
	Table[FPrime] = newMove(FPrime,
		[8]uint8{4, 0, 2, 3, 5, 1, 6, 7},
		[8]uint8{1, 2, 0, 0, 2, 1, 0, 0},
		[12]uint8{5, 1, 2, 3, 0, 8, 6, 7, 4, 9, 10, 11},
		[12]uint8{1, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0, 0},
	)

	Table[B] = newMove(B,
		[8]uint8{0, 1, 3, 7, 4, 5, 2, 6},
		[8]uint8{0, 0, 1, 2, 0, 0, 2, 1},
		[12]uint8{0, 1, 6, 3, 4, 5, 10, 2, 8, 9, 7, 11},
		[12]uint8{0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 1, 0},
	)
	Table[B2] = newMove(B2,
		[8]uint8{0, 1, 7, 6, 4, 5, 3, 2},
		[8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		[12]uint8{0, 1, 10, 3, 4, 5, 7, 6, 8, 9, 2, 11},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	)
	Table[BPrime] = newMove(BPrime,
		[8]uint8{0, 1, 6, 2, 4, 5, 7, 3},
		[8]uint8{0, 0, 1, 2, 0, 0, 2, 1},
		[12]uint8{0, 1, 7, 3, 4, 5, 2, 10, 8, 9, 6, 11},
		[12]uint8{0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 1, 0},
	)

	selfCheck()
}

// selfCheck runs at package init and panics if the move tables are
// internally inconsistent. A panic here means a transcription error in the
// literal tables above, not a runtime condition callers should recover from.
func selfCheck() {
	solved := cube.Solved()

	for _, quarter := range []Name{U, D, L, R, F, B} {
		s := solved
		var scratch Scratch
		for i := 0; i < 4; i++ {
			Table[quarter].ApplyInPlace(&s, &scratch)
		}
		if !s.Equal(solved) {
			panic(fmt.Sprintf("move self-check: %s^4 != identity", quarter))
		}
	}

	for _, half := range []Name{U2, D2, L2, R2, F2, B2} {
		s := solved
		var scratch Scratch
		Table[half].ApplyInPlace(&s, &scratch)
		Table[half].ApplyInPlace(&s, &scratch)
		if !s.Equal(solved) {
			panic(fmt.Sprintf("move self-check: %s^2 != identity", half))
		}
	}

	for n := Name(0); n < numMoves; n++ {
		s := solved
		var scratch Scratch
		Table[n].ApplyInPlace(&s, &scratch)
		Table[n.Inverse()].ApplyInPlace(&s, &scratch)
		if !s.Equal(solved) {
			panic(fmt.Sprintf("move self-check: %s followed by its inverse != identity", n))
		}
	}

	// Sune: R U R' U R U2 R' has order 6.
	sune := []Name{R, U, RPrime, U, R, U2, RPrime}
	s := solved
	var scratch Scratch
	for rep := 0; rep < 6; rep++ {
		for _, n := range sune {
			Table[n].ApplyInPlace(&s, &scratch)
		}
	}
	if !s.Equal(solved) {
		panic("move self-check: Sune^6 != identity")
	}

	for n := Name(0); n < numMoves; n++ {
		s := solved
		var scratch Scratch
		Table[n].ApplyInPlace(&s, &scratch)
		if !s.IsValid() {
			panic(fmt.Sprintf("move self-check: %s produced an invalid state", n))
		}
	}
}

// Package cube defines the cubie-model representation of a Rubik's Cube:
// corner permutation, corner orientation, edge permutation, edge orientation,
// and the invariants that distinguish a physically reachable state from an
// arbitrary one.
package cube

import (
	"hash/fnv"

	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cubeerr"
)

const (
	// NumCorners is the number of corner cubies.
	NumCorners = 8
	// NumEdges is the number of edge cubies.
	NumEdges = 12
)

// State is the cubie-model representation of a cube. Cp[i] is the identity of
// the cubie occupying corner position i; Co[i] is that cubie's orientation
// (0, 1, or 2) relative to its reference facet. Ep/Eo are the edge analogs
// (orientation 0 or 1). A zero-value State is NOT meaningful; use Solved().
type State struct {
	Cp [NumCorners]uint8
	Co [NumCorners]uint8
	Ep [NumEdges]uint8
	Eo [NumEdges]uint8
}

// Solved returns the solved state: every cubie in its home position with zero
// orientation.
func Solved() State {
	var s State
	for i := range s.Cp {
		s.Cp[i] = uint8(i)
	}
	for i := range s.Ep {
		s.Ep[i] = uint8(i)
	}
	return s
}

// IsSolved reports whether s is exactly the solved state.
func (s State) IsSolved() bool {
	return s.Equal(Solved())
}

// Equal reports whether s and other describe the same cube state.
func (s State) Equal(other State) bool {
	return s.Cp == other.Cp && s.Co == other.Co && s.Ep == other.Ep && s.Eo == other.Eo
}

// Clone returns a copy of s. State is a value type, so this is just for
// readability at call sites that want to make the copy explicit.
func (s State) Clone() State {
	return s
}

// IsValid reports whether s satisfies the four physical-realizability
// invariants: cp and ep are each permutations of their domain, their parities
// agree, corner orientations sum to 0 mod 3, and edge orientations sum to 0
// mod 2.
func (s State) IsValid() bool {
	if !isPermutation(s.Cp[:]) || !isPermutation(s.Ep[:]) {
		return false
	}
	for _, c := range s.Co {
		if c > 2 {
			return false
		}
	}
	for _, e := range s.Eo {
		if e > 1 {
			return false
		}
	}
	var coSum, eoSum int
	for _, c := range s.Co {
		coSum += int(c)
	}
	for _, e := range s.Eo {
		eoSum += int(e)
	}
	if coSum%3 != 0 || eoSum%2 != 0 {
		return false
	}
	cornerParity := permutationParity(s.Cp[:])
	edgeParity := permutationParity(s.Ep[:])
	return cornerParity == edgeParity
}

// Validate returns cubeerr.ErrInvalidState if s fails IsValid, nil otherwise.
func (s State) Validate() error {
	if !s.IsValid() {
		return cubeerr.ErrInvalidState
	}
	return nil
}

// Hash returns an order-sensitive 64-bit hash of s's four component arrays,
// suitable for map keys and visited sets where exact collision-freedom is not
// required.
func (s State) Hash() uint64 {
	h := fnv.New64a()
	h.Write(s.Cp[:])
	h.Write(s.Co[:])
	h.Write(s.Ep[:])
	h.Write(s.Eo[:])
	return h.Sum64()
}

// ToBytes packs s into a fixed 40-byte encoding: Cp, Co, Ep, Eo in order, one
// byte per entry.
func (s State) ToBytes() [NumCorners*2 + NumEdges*2]byte {
	var out [NumCorners*2 + NumEdges*2]byte
	off := 0
	off += copy(out[off:], s.Cp[:])
	off += copy(out[off:], s.Co[:])
	off += copy(out[off:], s.Ep[:])
	copy(out[off:], s.Eo[:])
	return out
}

// FromBytes decodes a State previously produced by ToBytes. It does not
// validate the result; call Validate or IsValid if that's required.
func FromBytes(b [NumCorners*2 + NumEdges*2]byte) State {
	var s State
	off := 0
	off += copy(s.Cp[:], b[off:off+NumCorners])
	off += copy(s.Co[:], b[off:off+NumCorners])
	off += copy(s.Ep[:], b[off:off+NumEdges])
	copy(s.Eo[:], b[off:off+NumEdges])
	return s
}

func isPermutation(p []uint8) bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if int(v) >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// permutationParity returns 0 for an even permutation, 1 for odd, computed by
// cycle decomposition.
func permutationParity(p []uint8) int {
	visited := make([]bool, len(p))
	parity := 0
	for i := range p {
		if visited[i] {
			continue
		}
		cycleLen := 0
		j := i
		for !visited[j] {
			visited[j] = true
			j = int(p[j])
			cycleLen++
		}
		if cycleLen > 0 {
			parity += cycleLen - 1
		}
	}
	return parity % 2
}

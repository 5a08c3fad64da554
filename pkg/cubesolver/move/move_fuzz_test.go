package move

import (
	"testing"

	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cube"
)

// FuzzApplySequenceStaysValid applies an arbitrary byte sequence, decoded
// modulo the eighteen generators, and checks validity is preserved no matter
// how the moves are combined.
func FuzzApplySequenceStaysValid(f *testing.F) {
	f.Add([]byte{0, 9, 3, 17, 6})

	f.Fuzz(func(t *testing.T, raw []byte) {
		if len(raw) > 200 {
			raw = raw[:200]
		}
		names := make([]Name, len(raw))
		for i, b := range raw {
			names[i] = Name(int(b) % int(numMoves))
		}
		s := ApplySequence(cube.Solved(), names)
		if !s.IsValid() {
			t.Fatalf("ApplySequence(%v) produced an invalid state", names)
		}
	})
}

// FuzzParseNameDoesNotPanic checks ParseName handles arbitrary strings
// without panicking, always returning either a valid Name or an error.
func FuzzParseNameDoesNotPanic(f *testing.F) {
	for _, s := range []string{"U", "U2", "U'", "", "u", "R2'"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		n, err := ParseName(s)
		if err == nil && n >= numMoves {
			t.Fatalf("ParseName(%q) returned out-of-range Name %v with no error", s, n)
		}
	})
}

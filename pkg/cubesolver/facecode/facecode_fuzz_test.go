package facecode

import "testing"

// FuzzDecodeDoesNotPanic exercises Decode against arbitrary sticker grids,
// most of which describe no physically valid cube, to confirm malformed
// input always surfaces as an error rather than a panic or silent garbage.
func FuzzDecodeDoesNotPanic(f *testing.F) {
	var solved Faces
	for face := Face(0); face < numFaces; face++ {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				solved[face][row][col] = centerColor[face]
			}
		}
	}
	f.Add(flatten(solved))

	f.Fuzz(func(t *testing.T, raw []byte) {
		var faces Faces
		n := 0
		for face := 0; face < int(numFaces); face++ {
			for row := 0; row < 3; row++ {
				for col := 0; col < 3; col++ {
					if n < len(raw) {
						faces[face][row][col] = Color(raw[n] % 6)
					}
					n++
				}
			}
		}
		_, _ = Decode(faces)
	})
}

func flatten(faces Faces) []byte {
	out := make([]byte, 0, 54)
	for face := 0; face < int(numFaces); face++ {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				out = append(out, byte(faces[face][row][col]))
			}
		}
	}
	return out
}

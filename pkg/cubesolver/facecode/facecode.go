// Package facecode converts between a 6x3x3 sticker grid (the representation
// a scanner or a GUI would hand in) and the cubie-model State the solver
// operates on.
//
// Face order: U, L, F, R, B, D. Each face is indexed (row, col) with row 0 at
// the top, as drawn in the standard cross net. Corner and edge position
// numbering matches pkg/cubesolver/move's doc comment (URF-first corners,
// UF-first edges).
package facecode

import (
	"fmt"
	"sort"

	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cube"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cubeerr"
)

// Color identifies a sticker's color.
type Color uint8

const (
	White Color = iota
	Yellow
	Red
	Orange
	Blue
	Green
)

// Face identifies one of the six grid faces.
type Face uint8

const (
	FaceU Face = iota
	FaceL
	FaceF
	FaceR
	FaceB
	FaceD
	numFaces
)

// Faces is the 6x3x3 sticker grid: Faces[face][row][col].
type Faces [numFaces][3][3]Color

// centerColor is the fixed color of each face's center facelet.
var centerColor = [numFaces]Color{
	FaceU: White, FaceL: Orange, FaceF: Green,
	FaceR: Red, FaceB: Blue, FaceD: Yellow,
}

// facet identifies one (face, row, col) sticker location.
type facet struct {
	face     Face
	row, col uint8
}

// cornerDefinitions[pos] lists the three facets belonging to corner position
// pos, in a fixed rotational read order.
var cornerDefinitions = [cube.NumCorners][3]facet{
	{{FaceU, 0, 2}, {FaceR, 0, 0}, {FaceF, 0, 2}}, // 0 URF
	{{FaceU, 0, 0}, {FaceF, 0, 0}, {FaceL, 0, 2}}, // 1 UFL
	{{FaceU, 2, 0}, {FaceL, 0, 0}, {FaceB, 0, 2}}, // 2 ULB
	{{FaceU, 2, 2}, {FaceB, 0, 0}, {FaceR, 0, 2}}, // 3 UBR
	{{FaceD, 0, 2}, {FaceF, 2, 2}, {FaceR, 2, 0}}, // 4 DFR
	{{FaceD, 0, 0}, {FaceL, 2, 2}, {FaceF, 2, 0}}, // 5 DLF
	{{FaceD, 2, 0}, {FaceB, 2, 2}, {FaceL, 2, 0}}, // 6 DBL
	{{FaceD, 2, 2}, {FaceR, 2, 2}, {FaceB, 2, 0}}, // 7 DRB
}

// solvedCornerColors[cubie] gives that cubie's three colors, in the same
// read order as cornerDefinitions[cubie] (cubie id and home position
// coincide).
var solvedCornerColors = [cube.NumCorners][3]Color{
	{White, Red, Green},
	{White, Green, Orange},
	{White, Orange, Blue},
	{White, Blue, Red},
	{Yellow, Green, Red},
	{Yellow, Orange, Green},
	{Yellow, Blue, Orange},
	{Yellow, Red, Blue},
}

// cornerReferenceFace[id] is the face whose facet is this cubie's reference
// (the U/D-class sticker) when the cubie sits at its home position, and also
// the face every position in that same id's half of the cube (top or bottom)
// designates as its reference face. Top corners (0-3) reference U; bottom
// corners (4-7) reference D.
var cornerReferenceFace = [cube.NumCorners]Face{
	FaceU, FaceU, FaceU, FaceU, FaceD, FaceD, FaceD, FaceD,
}

// edgeDefinitions[pos] lists the two facets belonging to edge position pos.
var edgeDefinitions = [cube.NumEdges][2]facet{
	{{FaceU, 1, 2}, {FaceF, 0, 1}}, // 0 UF
	{{FaceU, 0, 1}, {FaceR, 0, 1}}, // 1 UR
	{{FaceU, 2, 1}, {FaceB, 0, 1}}, // 2 UB
	{{FaceU, 1, 0}, {FaceL, 0, 1}}, // 3 UL
	{{FaceF, 1, 0}, {FaceL, 1, 2}}, // 4 FL
	{{FaceF, 1, 2}, {FaceR, 1, 0}}, // 5 FR
	{{FaceB, 1, 0}, {FaceR, 1, 2}}, // 6 BR
	{{FaceB, 1, 2}, {FaceL, 1, 0}}, // 7 BL
	{{FaceD, 1, 2}, {FaceF, 2, 1}}, // 8 DF
	{{FaceD, 0, 1}, {FaceR, 2, 1}}, // 9 DR
	{{FaceD, 2, 1}, {FaceB, 2, 1}}, // 10 DB
	{{FaceD, 1, 0}, {FaceL, 2, 1}}, // 11 DL
}

// solvedEdgeColors[cubie] gives that cubie's two colors, in the same read
// order as edgeDefinitions[cubie].
var solvedEdgeColors = [cube.NumEdges][2]Color{
	{White, Green},
	{White, Red},
	{White, Blue},
	{White, Orange},
	{Green, Orange},
	{Green, Red},
	{Blue, Red},
	{Blue, Orange},
	{Yellow, Green},
	{Yellow, Red},
	{Yellow, Blue},
	{Yellow, Orange},
}

// edgeReferenceFace[id] is the face carrying this cubie's reference facet at
// its home position, and also the reference face of every position with
// that id.
var edgeReferenceFace = [cube.NumEdges]Face{
	FaceU, FaceU, FaceB, FaceL, FaceL, FaceF, FaceR, FaceL, FaceF, FaceR, FaceB, FaceL,
}

// cornerRefIdx[id] and edgeRefIdx[id] cache, for each id, the index within
// cornerDefinitions[id]/edgeDefinitions[id] whose face matches the
// corresponding reference-face table. Computed once at init rather than
// re-searched on every encode/decode call.
var cornerRefIdx [cube.NumCorners]int
var edgeRefIdx [cube.NumEdges]int

// sortedCornerColors/sortedEdgeColors are sorted copies of the solved color
// sets, used to match an unordered read of stickers back to a cubie id.
var sortedCornerColors [cube.NumCorners][3]Color
var sortedEdgeColors [cube.NumEdges][2]Color

func init() {
	for id := 0; id < cube.NumCorners; id++ {
		cornerRefIdx[id] = indexOfFace(cornerDefinitions[id][:], cornerReferenceFace[id])
		sorted := solvedCornerColors[id]
		s := sorted[:]
		sort.Slice(s, func(a, b int) bool { return s[a] < s[b] })
		sortedCornerColors[id] = sorted
	}
	for id := 0; id < cube.NumEdges; id++ {
		edgeRefIdx[id] = indexOfFace(edgeDefinitions[id][:], edgeReferenceFace[id])
		sorted := solvedEdgeColors[id]
		s := sorted[:]
		sort.Slice(s, func(a, b int) bool { return s[a] < s[b] })
		sortedEdgeColors[id] = sorted
	}
}

func indexOfFace(facets []facet, f Face) int {
	for i, ft := range facets {
		if ft.face == f {
			return i
		}
	}
	panic("facecode: reference face not found in facet definition")
}

func indexOfColor(colors []Color, c Color) int {
	for i, col := range colors {
		if col == c {
			return i
		}
	}
	return -1
}

func sortedCopy3(c [3]Color) [3]Color {
	sort.Slice(c[:], func(a, b int) bool { return c[a] < c[b] })
	return c
}

func sortedCopy2(c [2]Color) [2]Color {
	sort.Slice(c[:], func(a, b int) bool { return c[a] < c[b] })
	return c
}

func matchCorner(colors [3]Color) (int, bool) {
	sorted := sortedCopy3(colors)
	for id, want := range sortedCornerColors {
		if sorted == want {
			return id, true
		}
	}
	return 0, false
}

func matchEdge(colors [2]Color) (int, bool) {
	sorted := sortedCopy2(colors)
	for id, want := range sortedEdgeColors {
		if sorted == want {
			return id, true
		}
	}
	return 0, false
}

// Decode converts a sticker grid into a cubie-model State, or returns
// cubeerr.ErrInvalidSticker if any facet triple/pair matches no cubie, or
// cubeerr.ErrInvalidState if the decoded permutations/orientations violate
// the solver's invariants.
func Decode(faces Faces) (cube.State, error) {
	var s cube.State

	for pos := 0; pos < cube.NumCorners; pos++ {
		var colors [3]Color
		for i, f := range cornerDefinitions[pos] {
			colors[i] = faces[f.face][f.row][f.col]
		}
		cubie, ok := matchCorner(colors)
		if !ok {
			return cube.State{}, fmt.Errorf("corner position %d: no cubie matches colors %v: %w", pos, colors, cubeerr.ErrInvalidSticker)
		}
		refColor := solvedCornerColors[cubie][cornerRefIdx[cubie]]
		refIdx := indexOfColor(colors[:], refColor)
		orient := ((refIdx - cornerRefIdx[pos]) % 3 + 3) % 3
		s.Cp[pos] = uint8(cubie)
		s.Co[pos] = uint8(orient)
	}

	for pos := 0; pos < cube.NumEdges; pos++ {
		var colors [2]Color
		for i, f := range edgeDefinitions[pos] {
			colors[i] = faces[f.face][f.row][f.col]
		}
		cubie, ok := matchEdge(colors)
		if !ok {
			return cube.State{}, fmt.Errorf("edge position %d: no cubie matches colors %v: %w", pos, colors, cubeerr.ErrInvalidSticker)
		}
		refColor := solvedEdgeColors[cubie][edgeRefIdx[cubie]]
		refIdx := indexOfColor(colors[:], refColor)
		orient := 0
		if refIdx != edgeRefIdx[pos] {
			orient = 1
		}
		s.Ep[pos] = uint8(cubie)
		s.Eo[pos] = uint8(orient)
	}

	if err := s.Validate(); err != nil {
		return cube.State{}, err
	}
	return s, nil
}

// Encode converts a cubie-model State into its sticker grid. Encode assumes
// s satisfies the solver's invariants; it does not itself validate s.
func Encode(s cube.State) Faces {
	var faces Faces

	for pos := 0; pos < cube.NumCorners; pos++ {
		cubie := int(s.Cp[pos])
		orient := int(s.Co[pos])
		r0 := cornerRefIdx[cubie]
		target := (cornerRefIdx[pos] + orient) % 3
		shift := ((r0-target)%3 + 3) % 3

		for i, f := range cornerDefinitions[pos] {
			color := solvedCornerColors[cubie][(i+shift)%3]
			faces[f.face][f.row][f.col] = color
		}
	}

	for pos := 0; pos < cube.NumEdges; pos++ {
		cubie := int(s.Ep[pos])
		orient := int(s.Eo[pos])
		r0 := edgeRefIdx[cubie]

		target := edgeRefIdx[pos]
		if orient == 1 {
			target = 1 - target
		}

		colors := solvedEdgeColors[cubie]
		if target != r0 {
			colors[0], colors[1] = colors[1], colors[0]
		}

		for i, f := range edgeDefinitions[pos] {
			faces[f.face][f.row][f.col] = colors[i]
		}
	}

	for face := Face(0); face < numFaces; face++ {
		faces[face][1][1] = centerColor[face]
	}

	return faces
}

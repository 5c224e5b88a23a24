//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see bitboard.go
//

package bitboard

// This file implements the gather/scatter projection between a full 64-bit
// bitboard and the 8-bit "line byte" used to index the precomputed
// placeable/turntable tables (see internal/tables). Four line families
// exist: rank, file, anti-diagonal (constant x+y) and main diagonal
// (constant 7-y+x). All four families project the same way: a loop over
// the line's squares (lineSquares), one bit per square.

// Family identifies one of the four line kinds a square participates in.
type Family int

const (
	FamilyRank Family = iota
	FamilyFile
	FamilyAntiDiag
	FamilyMainDiag
)

// LineIndex identifies, for a given family, which line of that family (8
// ranks or files, 15 diagonals) a square belongs to, and at which of the
// 8 bit positions within that line (0 = the line's "low" end).
type LineIndex struct {
	Family Family
	Line   int // rank/file index 0..7, or diagonal index 0..14 (see Indices)
	K      int // bit position within the line's 8-bit byte, 0..7
}

// diagonals are addressed 0..14 by x+y (anti) or 7-y+x (main); only
// indices 2..12 can ever hold a legal placement (length >= 3), per §4.1,
// but we keep the full range addressable for simplicity of lookup.

// Indices returns the four LineIndex values (rank, file, anti-diag, main
// diag) a square participates in.
func Indices(sq Square) [4]LineIndex {
	x, y := sq.FileOf(), sq.RankOf()
	return [4]LineIndex{
		{FamilyRank, y, x},
		{FamilyFile, x, y},
		{FamilyAntiDiag, x + y, diagK(FamilyAntiDiag, x, y)},
		{FamilyMainDiag, 7 - y + x, diagK(FamilyMainDiag, x, y)},
	}
}

// diagK returns the intra-line bit index (0..len-1) for a square on its
// anti- or main diagonal, counted from the file-0 (or rank-0) end.
func diagK(f Family, x, y int) int {
	if f == FamilyAntiDiag {
		// anti-diagonal x+y==d: as x increases y decreases; index by x
		// offset from the diagonal's starting file.
		d := x + y
		startX := 0
		if d > 7 {
			startX = d - 7
		}
		return x - startX
	}
	// main diagonal 7-y+x==d: index by x offset from the diagonal's
	// starting file.
	d := 7 - y + x
	startX := 0
	if d > 7 {
		startX = d - 7
	}
	return x - startX
}

// DiagLen returns the number of squares on anti-diagonal index d (0..14).
func DiagLen(d int) int {
	if d <= 7 {
		return d + 1
	}
	return 15 - d
}

// lineSquares enumerates, in increasing k order, the squares belonging to
// family f / line index idx. Used by Gather and Scatter below.
func lineSquares(f Family, line int) []Square {
	var out []Square
	switch f {
	case FamilyRank:
		for x := 0; x < 8; x++ {
			out = append(out, SquareOf(x, line))
		}
	case FamilyFile:
		for y := 0; y < 8; y++ {
			out = append(out, SquareOf(line, y))
		}
	case FamilyAntiDiag:
		d := line
		startX := 0
		if d > 7 {
			startX = d - 7
		}
		for x, y := startX, d-startX; x < 8 && y >= 0; x, y = x+1, y-1 {
			out = append(out, SquareOf(x, y))
		}
	case FamilyMainDiag:
		d := line
		startX := 0
		if d > 7 {
			startX = d - 7
		}
		for x, y := startX, 7-(d-startX); x < 8 && y < 8 && y >= 0; x, y = x+1, y+1 {
			out = append(out, SquareOf(x, y))
		}
	}
	return out
}

// Gather extracts the 8-bit line byte for family f / line index `line` out
// of a full-board bitboard, placing bit k (the square's position along the
// line, 0 = the line's low end) at bit k of the returned byte.
func Gather(f Family, line int, b Bitboard) uint8 {
	var out uint8
	for k, sq := range lineSquares(f, line) {
		if b.Has(sq) {
			out |= 1 << uint(k)
		}
	}
	return out
}

// Scatter is the inverse of Gather: it expands an 8-bit line byte back into
// a full 64-bit bitboard restricted to the line's squares.
func Scatter(f Family, line int, lineByte uint8) Bitboard {
	var out Bitboard
	squares := lineSquares(f, line)
	for k := 0; k < len(squares) && k < 8; k++ {
		if lineByte&(1<<uint(k)) != 0 {
			out = out.PushSquare(squares[k])
		}
	}
	return out
}

// LineMask returns the full-board mask of the squares on family f / line.
func LineMask(f Family, line int) Bitboard {
	switch f {
	case FamilyRank:
		return RankMask[line]
	case FamilyFile:
		return FileMask[line]
	case FamilyAntiDiag:
		return AntiDiagMask[line]
	default:
		return MainDiagMask[line]
	}
}

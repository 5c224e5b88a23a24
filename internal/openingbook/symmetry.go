//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

package openingbook

import "github.com/Vi24E/Reversi/internal/bitboard"

// Sym identifies one element of the board's 8-element dihedral symmetry
// group: identity, the three quarter-turn rotations, a horizontal flip,
// and that flip composed with each rotation (§4.7).
type Sym int

const (
	Identity Sym = iota
	Rot90
	Rot180
	Rot270
	FlipH
	FlipHRot90
	FlipHRot180
	FlipHRot270
	numSyms
)

// perm[s][sq] gives the square sq maps to under symmetry s.
var perm [numSyms][64]bitboard.Square

// invPerm[s][sq] gives the square that maps to sq under symmetry s, i.e.
// the inverse permutation of perm[s].
var invPerm [numSyms][64]bitboard.Square

func init() {
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			sq := bitboard.Square(y*8 + x)
			perm[Identity][sq] = coord(x, y)
			perm[Rot90][sq] = coord(y, 7-x)
			perm[Rot180][sq] = coord(7-x, 7-y)
			perm[Rot270][sq] = coord(7-y, x)
			perm[FlipH][sq] = coord(7-x, y)
			perm[FlipHRot90][sq] = coord(y, x)
			perm[FlipHRot180][sq] = coord(x, 7-y)
			perm[FlipHRot270][sq] = coord(7-y, 7-x)
		}
	}
	for s := Sym(0); s < numSyms; s++ {
		for sq := bitboard.Square(0); sq < 64; sq++ {
			invPerm[s][perm[s][sq]] = sq
		}
	}
}

func coord(x, y int) bitboard.Square { return bitboard.Square(y*8 + x) }

// ApplySquare maps a single square (or PASS, unchanged) under symmetry s.
func ApplySquare(sq bitboard.Square, s Sym) bitboard.Square {
	if sq == bitboard.PASS || sq == bitboard.SqNone {
		return sq
	}
	return perm[s][sq]
}

// ApplyBitboard maps every occupied square of bb under symmetry s.
func ApplyBitboard(bb bitboard.Bitboard, s Sym) bitboard.Bitboard {
	var out bitboard.Bitboard
	for b := bb; b != 0; {
		sq := b.PopLsb()
		out |= perm[s][sq].Bb()
	}
	return out
}

// ApplyInverseSquare undoes ApplySquare(_, s): if ApplySquare(a, s) == b
// then ApplyInverseSquare(b, s) == a.
func ApplyInverseSquare(sq bitboard.Square, s Sym) bitboard.Square {
	if sq == bitboard.PASS || sq == bitboard.SqNone {
		return sq
	}
	return invPerm[s][sq]
}

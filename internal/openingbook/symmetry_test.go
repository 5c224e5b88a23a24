//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

package openingbook

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vi24E/Reversi/internal/bitboard"
)

func TestApplySquareIdentity(t *testing.T) {
	for sq := bitboard.Square(0); sq < 64; sq++ {
		assert.Equal(t, sq, ApplySquare(sq, Identity))
	}
}

func TestApplySquarePassUnaffected(t *testing.T) {
	for s := Sym(0); s < numSyms; s++ {
		assert.Equal(t, bitboard.PASS, ApplySquare(bitboard.PASS, s))
	}
}

func TestApplyInverseSquareUndoesApply(t *testing.T) {
	for s := Sym(0); s < numSyms; s++ {
		for sq := bitboard.Square(0); sq < 64; sq++ {
			img := ApplySquare(sq, s)
			assert.Equal(t, sq, ApplyInverseSquare(img, s))
		}
	}
}

func TestRot90CornerMapping(t *testing.T) {
	assert.Equal(t, bitboard.SqA8, ApplySquare(bitboard.SqA1, Rot90))
}

func TestApplyBitboardRoundTrips(t *testing.T) {
	bb := bitboard.SqA1.Bb() | bitboard.SqD4.Bb() | bitboard.SqH8.Bb()
	for s := Sym(0); s < numSyms; s++ {
		img := ApplyBitboard(bb, s)
		back := ApplyBitboard(img, inverseSymFor(s))
		assert.Equal(t, bb, back)
	}
}

// inverseSymFor finds the group element that undoes s, by brute force
// over the 8 candidates and checking the square-level inverse table
// agrees for every square.
func inverseSymFor(s Sym) Sym {
	for cand := Sym(0); cand < numSyms; cand++ {
		ok := true
		for sq := bitboard.Square(0); sq < 64; sq++ {
			if ApplySquare(ApplySquare(sq, s), cand) != sq {
				ok = false
				break
			}
		}
		if ok {
			return cand
		}
	}
	panic("no inverse found")
}

//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package bitboard provides the 64-bit board primitives shared by the
// whole engine: squares, masks for ranks/files/diagonals, and the
// gather/scatter helpers that project an 8-bit line out of (and back
// into) a full 64-bit bitboard.
package bitboard

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/Vi24E/Reversi/internal/util"
)

// Bitboard is a 64-bit mask, one bit per square. Bit y*8+x is set iff
// that square is occupied.
type Bitboard uint64

// Square is a board square 0..63 (y*8+x) or the PASS sentinel.
type Square int8

// Named squares, file-major within each rank (SqA1..SqH1, SqA2..SqH2, ...),
// matching the teacher's SqA1..SqH8 naming convention.
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	// PASS denotes "no legal play; turn passes to the opponent".
	PASS Square = 64
	// SqNone is used where no square applies (e.g. Lsb of an empty board).
	SqNone Square = -1
)

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// File/Rank masks, computed once at package init - cheap enough to not
// need sync.Once (pure arithmetic, no shared mutable state).
var (
	FileMask [8]Bitboard
	RankMask [8]Bitboard
	// AntiDiagMask[d] is the mask for anti-diagonal x+y == d, d in 0..14.
	AntiDiagMask [15]Bitboard
	// MainDiagMask[d] is the mask for main diagonal 7-y+x == d, d in 0..14.
	MainDiagMask [15]Bitboard
)

func init() {
	for sq := 0; sq < 64; sq++ {
		x, y := sq%8, sq/8
		FileMask[x] |= Bitboard(1) << uint(sq)
		RankMask[y] |= Bitboard(1) << uint(sq)
		AntiDiagMask[x+y] |= Bitboard(1) << uint(sq)
		MainDiagMask[7-y+x] |= Bitboard(1) << uint(sq)
	}
}

// SquareOf returns the square index for file x (0..7) and rank y (0..7).
func SquareOf(x, y int) Square {
	return Square(y*8 + x)
}

// FileOf returns the file (0..7) of a square.
func (s Square) FileOf() int { return int(s) % 8 }

// RankOf returns the rank (0..7) of a square.
func (s Square) RankOf() int { return int(s) / 8 }

// Bb returns the singleton bitboard for this square.
func (s Square) Bb() Bitboard { return Bitboard(1) << uint(s) }

// Has returns whether the square's bit is set in b.
func (b Bitboard) Has(s Square) bool { return b&s.Bb() != 0 }

// PushSquare sets the square's bit.
func (b Bitboard) PushSquare(s Square) Bitboard { return b | s.Bb() }

// PopSquare clears the square's bit.
func (b Bitboard) PopSquare(s Square) Bitboard { return b &^ s.Bb() }

// Lsb returns the least significant set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns and clears the least significant set square.
func (b *Bitboard) PopLsb() Square {
	lsb := b.Lsb()
	if lsb == SqNone {
		return SqNone
	}
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// String renders the bitboard as an 8x8 board, rank 8 first, matching the
// teacher's StringBoard layout.
func (b Bitboard) String() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for y := 7; y >= 0; y-- {
		for x := 0; x < 8; x++ {
			if b.Has(SquareOf(x, y)) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return sb.String()
}

// StringUci renders a square as algebraic file/rank, e.g. "d3", or "pass".
func (s Square) StringUci() string {
	if s == PASS {
		return "pass"
	}
	if s < SqA1 || s > SqH8 {
		return "-"
	}
	f := byte('a' + s.FileOf())
	r := byte('1' + s.RankOf())
	return string([]byte{f, r})
}

// ParseSquare is StringUci's inverse: "d3" -> SqD3, "pass" -> PASS. It
// accepts upper- or lowercase file letters.
func ParseSquare(s string) (Square, error) {
	if s == "pass" || s == "PASS" {
		return PASS, nil
	}
	if len(s) != 2 {
		return SqNone, fmt.Errorf("bitboard: invalid square %q", s)
	}
	file, rank := s[0], s[1]
	if !util.IsAlpha(file) || !util.IsDigit(rank) {
		return SqNone, fmt.Errorf("bitboard: invalid square %q", s)
	}
	if !util.IsLower(file) {
		file = file - 'A' + 'a'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return SqNone, fmt.Errorf("bitboard: invalid square %q", s)
	}
	return SquareOf(int(file-'a'), int(rank-'1')), nil
}

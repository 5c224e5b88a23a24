//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

// Package position implements the Othello position model of spec §3/§4.3:
// two 64-bit occupancy bitmaps (mover, opponent), legal-move and flip-mask
// queries built on the precomputed tables in internal/tables, and the small
// set of mutators (apply, swap sides) the search recursion needs.
package position

import (
	"fmt"
	"strings"

	"github.com/Vi24E/Reversi/internal/bitboard"
	"github.com/Vi24E/Reversi/internal/tables"
)

func init() {
	// Tables must be built before any legal-move/flip query; package init
	// is the single entry point every caller goes through, so this is the
	// natural place to serialize the one-shot build (§4.2/§9).
	tables.Init()
}

// usefulDiagonals are the anti-/main-diagonal indices with length >= 3;
// shorter diagonals can never contain a legal placement (§4.1) and are
// skipped by LegalMoves/FlipMask.
var usefulDiagonals = func() []int {
	var out []int
	for d := 0; d <= 14; d++ {
		if bitboard.DiagLen(d) >= 3 {
			out = append(out, d)
		}
	}
	return out
}()

// Position is an ordered pair (Mover, Opponent) of 64-bit occupancy
// bitmaps. The zero value is not a valid position; use NewPosition.
type Position struct {
	Mover    bitboard.Bitboard
	Opponent bitboard.Bitboard
}

// NewPosition returns the standard Othello opening. secondPlayer selects
// which color is to move: false => mover is Black (the side that opens
// the game), true => mover is White.
func NewPosition(secondPlayer bool) Position {
	black := bitboard.SqD5.Bb() | bitboard.SqE4.Bb()
	white := bitboard.SqD4.Bb() | bitboard.SqE5.Bb()
	if secondPlayer {
		return Position{Mover: white, Opponent: black}
	}
	return Position{Mover: black, Opponent: white}
}

// LegalMoves returns the bitmap of squares where placing is legal for the
// mover, per §4.3: OR the placeable contribution of every rank, file, and
// useful diagonal.
func LegalMoves(mover, opponent bitboard.Bitboard) bitboard.Bitboard {
	var out bitboard.Bitboard
	for y := 0; y < 8; y++ {
		out |= lineLegal(bitboard.FamilyRank, y, mover, opponent)
	}
	for x := 0; x < 8; x++ {
		out |= lineLegal(bitboard.FamilyFile, x, mover, opponent)
	}
	for _, d := range usefulDiagonals {
		out |= lineLegal(bitboard.FamilyAntiDiag, d, mover, opponent)
		out |= lineLegal(bitboard.FamilyMainDiag, d, mover, opponent)
	}
	return out
}

func lineLegal(f bitboard.Family, line int, mover, opponent bitboard.Bitboard) bitboard.Bitboard {
	mByte := bitboard.Gather(f, line, mover)
	oByte := bitboard.Gather(f, line, opponent)
	placeable := tables.Placeable(mByte, oByte)
	if placeable == 0 {
		return bitboard.BbZero
	}
	return bitboard.Scatter(f, line, placeable)
}

// FlipMask returns the bitmap of opponent squares that change owner when
// the mover plays at m, per §4.3: OR the turntable contribution of the
// four lines through m (row, column, anti-diagonal, main diagonal). Zero
// means the move is illegal.
func FlipMask(mover, opponent bitboard.Bitboard, m bitboard.Square) bitboard.Bitboard {
	var out bitboard.Bitboard
	for _, li := range bitboard.Indices(m) {
		mByte := bitboard.Gather(li.Family, li.Line, mover)
		oByte := bitboard.Gather(li.Family, li.Line, opponent)
		flips := tables.Turntable(mByte, oByte, li.K)
		if flips == 0 {
			continue
		}
		out |= bitboard.Scatter(li.Family, li.Line, flips)
	}
	return out
}

// LegalMoves returns the mover's legal-move bitmap for this position.
func (p Position) LegalMoves() bitboard.Bitboard {
	return LegalMoves(p.Mover, p.Opponent)
}

// IsLegal reports whether m is a legal placement for the mover.
func (p Position) IsLegal(m bitboard.Square) bool {
	if m == bitboard.PASS {
		return p.LegalMoves() == bitboard.BbZero
	}
	return p.LegalMoves().Has(m)
}

// Apply plays m for the mover, without swapping sides. It panics if m is
// not a legal move: the core's contract (§7, IllegalMove) is that callers
// pre-validate with LegalMoves/IsLegal before calling Apply.
func (p Position) Apply(m bitboard.Square) Position {
	flip := FlipMask(p.Mover, p.Opponent, m)
	if flip == bitboard.BbZero {
		panic(fmt.Sprintf("position: illegal move %s", m.StringUci()))
	}
	return Position{
		Mover:    (p.Mover | m.Bb()) ^ flip,
		Opponent: p.Opponent ^ flip,
	}
}

// SwapSides exchanges mover and opponent, as when a move is followed by
// the normal alternation of turns (or when the mover must pass).
func (p Position) SwapSides() Position {
	return Position{Mover: p.Opponent, Opponent: p.Mover}
}

// PieceCounts returns (mover discs, opponent discs).
func (p Position) PieceCounts() (mover, opponent int) {
	return p.Mover.PopCount(), p.Opponent.PopCount()
}

// Stones returns the total number of discs on the board.
func (p Position) Stones() int {
	return p.Mover.PopCount() + p.Opponent.PopCount()
}

// String renders the position as an 8x8 board, 'M' for mover discs, 'O'
// for opponent discs, matching the teacher's box-drawing style.
func (p Position) String() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for y := 7; y >= 0; y-- {
		for x := 0; x < 8; x++ {
			sq := bitboard.SquareOf(x, y)
			switch {
			case p.Mover.Has(sq):
				sb.WriteString("| M ")
			case p.Opponent.Has(sq):
				sb.WriteString("| O ")
			default:
				sb.WriteString("|   ")
			}
		}
		sb.WriteString(fmt.Sprintf("| %d\n+---+---+---+---+---+---+---+---+\n", y+1))
	}
	sb.WriteString("  a   b   c   d   e   f   g   h\n")
	return sb.String()
}

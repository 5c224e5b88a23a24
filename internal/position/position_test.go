//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see bitboard.go
//

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vi24E/Reversi/internal/bitboard"
)

func TestNewPositionOpeningLegalMoves(t *testing.T) {
	p := NewPosition(false)
	moverCount, oppCount := p.PieceCounts()
	assert.Equal(t, 2, moverCount)
	assert.Equal(t, 2, oppCount)
	assert.Equal(t, 4, p.Stones())

	legal := p.LegalMoves()
	assert.Zero(t, int(legal&(p.Mover|p.Opponent)), "legal moves must not overlap occupied squares")

	want := []bitboard.Square{19, 26, 37, 44} // D3, C4, F5, E6
	var got []bitboard.Square
	for b := legal; b != bitboard.BbZero; {
		got = append(got, b.PopLsb())
	}
	assert.ElementsMatch(t, want, got)
}

func TestForcedPass(t *testing.T) {
	// Mover has no legal move, opponent has exactly one: A1 is the only
	// empty square, the mover owns everything else except H8, and only the
	// opponent can play A1, flipping the B2..G7 diagonal against H8
	// (constructed directly rather than reached by play).
	opponent := bitboard.SqH8.Bb()
	mover := bitboard.BbAll &^ opponent &^ bitboard.SqA1.Bb()
	p := Position{Mover: mover, Opponent: opponent}
	assert.Equal(t, bitboard.BbZero, p.LegalMoves())
}

func TestApplyFlipsCaptureChain(t *testing.T) {
	// mover at d1, opponent contiguous e1..g1, empty h1; placing at h1
	// flips e1, f1, g1.
	mover := bitboard.SqD1.Bb()
	opponent := bitboard.SqE1.Bb() | bitboard.SqF1.Bb() | bitboard.SqG1.Bb()
	p := Position{Mover: mover, Opponent: opponent}

	flip := FlipMask(p.Mover, p.Opponent, bitboard.SqH1)
	want := bitboard.SqE1.Bb() | bitboard.SqF1.Bb() | bitboard.SqG1.Bb()
	assert.Equal(t, want, flip)

	next := p.Apply(bitboard.SqH1)
	moverCount, oppCount := next.PieceCounts()
	assert.Equal(t, 5, moverCount) // d1, e1, f1, g1, h1
	assert.Equal(t, 0, oppCount)
}

func TestApplyIllegalMovePanics(t *testing.T) {
	p := NewPosition(false)
	assert.Panics(t, func() {
		p.Apply(bitboard.SqA1)
	})
}

func TestSwapSidesRestoresOnDoubleSwap(t *testing.T) {
	p := NewPosition(false)
	swapped := p.SwapSides()
	assert.Equal(t, p.Mover, swapped.Opponent)
	assert.Equal(t, p.Opponent, swapped.Mover)
	assert.Equal(t, p, swapped.SwapSides())
}

func TestApplyThenUnflipRestoresPosition(t *testing.T) {
	p := NewPosition(false)
	m := bitboard.Square(19) // D3, a legal opening move for black
	flip := FlipMask(p.Mover, p.Opponent, m)
	next := p.Apply(m)

	restoredMover := (next.Mover ^ flip) &^ m.Bb()
	restoredOpponent := next.Opponent ^ flip
	assert.Equal(t, p.Mover, restoredMover)
	assert.Equal(t, p.Opponent, restoredOpponent)
}

func TestFullBoardTerminal(t *testing.T) {
	p := Position{Mover: bitboard.BbAll &^ bitboard.SqA1.Bb(), Opponent: bitboard.SqA1.Bb()}
	assert.Equal(t, 64, p.Stones())
	assert.Equal(t, bitboard.BbZero, p.LegalMoves())
}

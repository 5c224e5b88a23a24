//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

package endgame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Vi24E/Reversi/internal/bitboard"
	"github.com/Vi24E/Reversi/internal/position"
)

func futureDeadline() time.Time { return time.Now().Add(time.Second) }

func TestSolveLeafOneForcedWin(t *testing.T) {
	// Mover occupies everything except h8, and placing at h8 flips g8,
	// leaving the mover strictly ahead.
	var mover, opponent bitboard.Bitboard
	for sq := bitboard.Square(0); sq < 63; sq++ {
		if sq == bitboard.SqG8 {
			opponent |= sq.Bb()
			continue
		}
		mover |= sq.Bb()
	}
	p := position.Position{Mover: mover, Opponent: opponent}
	s := NewSolver()
	res, move := s.Solve(p, futureDeadline())
	assert.Equal(t, bitboard.SqH8, move)
	assert.Equal(t, Win, res)
}

func TestSolveEqualFullBoardIsTie(t *testing.T) {
	var mover, opponent bitboard.Bitboard
	for sq := bitboard.Square(0); sq < 32; sq++ {
		mover |= sq.Bb()
	}
	for sq := bitboard.Square(32); sq < 64; sq++ {
		opponent |= sq.Bb()
	}
	p := position.Position{Mover: mover, Opponent: opponent}
	s := NewSolver()
	res, move := s.Solve(p, futureDeadline())
	assert.Equal(t, Tie, res)
	assert.Equal(t, bitboard.PASS, move)
}

func TestSolveAbortsPastDeadline(t *testing.T) {
	p := position.NewPosition(false)
	s := NewSolver()
	res, move := s.Solve(p, time.Now().Add(-time.Second))
	assert.Equal(t, Abort, res)
	assert.Equal(t, bitboard.PASS, move)
}

func TestSolveCachesPositions(t *testing.T) {
	var mover, opponent bitboard.Bitboard
	for sq := bitboard.Square(0); sq < 30; sq++ {
		mover |= sq.Bb()
	}
	for sq := bitboard.Square(30); sq < 44; sq++ {
		opponent |= sq.Bb()
	}
	p := position.Position{Mover: mover, Opponent: opponent}
	s := NewSolver()
	_, _ = s.Solve(p, futureDeadline())
	assert.Positive(t, s.Len())
}

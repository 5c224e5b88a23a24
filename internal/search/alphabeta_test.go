//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

package search

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Vi24E/Reversi/internal/bitboard"
	"github.com/Vi24E/Reversi/internal/evaluator"
	"github.com/Vi24E/Reversi/internal/position"
)

func newTestSearch() *Search {
	return NewSearch(evaluator.NewDefault(), nil)
}

func TestNegaScoutDepthOneReturnsLegalMove(t *testing.T) {
	s := newTestSearch()
	p := position.NewPosition(false)
	deadline := time.Now().Add(time.Second)
	_, _, move, aborted := s.negaScout(p, -math.MaxFloat64, math.MaxFloat64, 1, deadline)
	assert.False(t, aborted)
	assert.True(t, p.IsLegal(move))
}

func TestNegaScoutAbortsPastDeadline(t *testing.T) {
	s := newTestSearch()
	p := position.NewPosition(false)
	_, _, _, aborted := s.negaScout(p, -math.MaxFloat64, math.MaxFloat64, 5, time.Now().Add(-time.Second))
	assert.True(t, aborted)
}

func TestNegaScoutTerminalFullBoardUsesEvaluator(t *testing.T) {
	s := newTestSearch()
	var mover, opponent bitboard.Bitboard
	for sq := bitboard.Square(0); sq < 40; sq++ {
		mover |= sq.Bb()
	}
	for sq := bitboard.Square(40); sq < 64; sq++ {
		opponent |= sq.Bb()
	}
	p := position.Position{Mover: mover, Opponent: opponent}
	value, complete, _, aborted := s.negaScout(p, -math.MaxFloat64, math.MaxFloat64, 3, time.Now().Add(time.Second))
	assert.False(t, aborted)
	assert.True(t, complete)
	assert.Greater(t, value, 0.0)
}

func TestNegaScoutForcedPassReturnsPassMove(t *testing.T) {
	s := newTestSearch()
	// Same fixture as position.TestForcedPass: mover has zero legal
	// moves, so the search must return the PASS sentinel as its move
	// regardless of what the swapped recursion finds.
	opponent := bitboard.SqH8.Bb()
	mover := bitboard.BbAll &^ opponent &^ bitboard.SqA1.Bb()
	p := position.Position{Mover: mover, Opponent: opponent}
	assert.Equal(t, bitboard.Bitboard(0), p.LegalMoves())

	_, complete, move, aborted := s.negaScout(p, -math.MaxFloat64, math.MaxFloat64, 2, time.Now().Add(time.Second))
	assert.False(t, aborted)
	assert.Equal(t, bitboard.PASS, move)
	_ = complete
}

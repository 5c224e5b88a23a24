//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vi24E/Reversi/internal/bitboard"
)

func TestOutcomeOngoingAtOpening(t *testing.T) {
	p := NewPosition(false)
	assert.Equal(t, Ongoing, p.Outcome(true))
}

func TestOutcomeDrawOnEqualFullBoard(t *testing.T) {
	half := bitboard.Bitboard(0)
	for sq := bitboard.Square(0); sq < 32; sq++ {
		half |= sq.Bb()
	}
	p := Position{Mover: half, Opponent: ^half}
	assert.Equal(t, Draw, p.Outcome(true))
}

func TestOutcomeWinnerIsHigherCount(t *testing.T) {
	var mover, opponent bitboard.Bitboard
	for sq := bitboard.Square(0); sq < 40; sq++ {
		mover |= sq.Bb()
	}
	for sq := bitboard.Square(40); sq < 64; sq++ {
		opponent |= sq.Bb()
	}
	p := Position{Mover: mover, Opponent: opponent}
	assert.Equal(t, BlackWin, p.Outcome(true))
	assert.Equal(t, WhiteWin, p.Outcome(false))
}

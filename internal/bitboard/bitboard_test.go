//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

package bitboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareOfRoundTripsFileRank(t *testing.T) {
	sq := SquareOf(3, 4)
	assert.Equal(t, 3, sq.FileOf())
	assert.Equal(t, 4, sq.RankOf())
}

func TestStringUciAndParseSquareRoundTrip(t *testing.T) {
	for _, sq := range []Square{SqA1, SqD4, SqE5, SqH8} {
		s := sq.StringUci()
		got, err := ParseSquare(s)
		assert.NoError(t, err)
		assert.Equal(t, sq, got)
	}
}

func TestParseSquareAcceptsUppercaseFile(t *testing.T) {
	got, err := ParseSquare("D4")
	assert.NoError(t, err)
	assert.Equal(t, SqD4, got)
}

func TestParseSquarePass(t *testing.T) {
	got, err := ParseSquare("pass")
	assert.NoError(t, err)
	assert.Equal(t, PASS, got)
}

func TestParseSquareRejectsGarbage(t *testing.T) {
	_, err := ParseSquare("z9")
	assert.Error(t, err)
	_, err = ParseSquare("")
	assert.Error(t, err)
}

func TestBitboardHasPushPop(t *testing.T) {
	var b Bitboard
	b = b.PushSquare(SqD4)
	assert.True(t, b.Has(SqD4))
	b = b.PopSquare(SqD4)
	assert.False(t, b.Has(SqD4))
}

func TestPopLsbDrainsBitboard(t *testing.T) {
	b := SqA1.Bb() | SqD4.Bb() | SqH8.Bb()
	var seen []Square
	for b != 0 {
		seen = append(seen, b.PopLsb())
	}
	assert.Equal(t, []Square{SqA1, SqD4, SqH8}, seen)
	assert.Equal(t, BbZero, b)
}

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, BbZero.PopCount())
	assert.Equal(t, 64, BbAll.PopCount())
	assert.Equal(t, 3, (SqA1.Bb() | SqD4.Bb() | SqH8.Bb()).PopCount())
}

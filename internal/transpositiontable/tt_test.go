//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vi24E/Reversi/internal/bitboard"
)

func TestPutThenProbeReturnsStoredEntry(t *testing.T) {
	tt := NewTtTable(1024)
	mover := bitboard.SqD5.Bb() | bitboard.SqE4.Bb()
	opponent := bitboard.SqD4.Bb() | bitboard.SqE5.Bb()

	tt.Put(mover, opponent, 6, bitboard.SqD3, 12.5, true, false, false, false)

	e := tt.Probe(mover, opponent)
	if assert.NotNil(t, e) {
		assert.Equal(t, 6, e.Depth())
		assert.Equal(t, bitboard.SqD3, e.Move)
		assert.Equal(t, 12.5, e.Value)
		assert.True(t, e.Exact())
	}
}

func TestProbeMissReturnsNil(t *testing.T) {
	tt := NewTtTable(1024)
	assert.Nil(t, tt.Probe(bitboard.SqA1.Bb(), bitboard.SqB1.Bb()))
}

func TestPutReplacesDifferentPositionOnCollision(t *testing.T) {
	tt := NewTtTable(2) // tiny table: a and b hash to the same slot
	a := struct{ m, o bitboard.Bitboard }{bitboard.SqA1.Bb(), bitboard.SqB1.Bb()}
	b := struct{ m, o bitboard.Bitboard }{bitboard.SqC1.Bb(), bitboard.SqE1.Bb()}
	assert.Equal(t, tt.hash(a.m, a.o), tt.hash(b.m, b.o))

	tt.Put(a.m, a.o, 10, bitboard.SqA1, 1, true, false, false, false)
	tt.Put(b.m, b.o, 3, bitboard.SqC1, 2, true, false, false, false)

	// a different position always takes the slot, even from a deeper entry
	assert.Nil(t, tt.Probe(a.m, a.o))
	if e := tt.Probe(b.m, b.o); assert.NotNil(t, e) {
		assert.Equal(t, 3, e.Depth())
	}
}

func TestHashfullReflectsOccupancy(t *testing.T) {
	tt := NewTtTable(1024)
	assert.Equal(t, 0, tt.Hashfull())
	tt.Put(bitboard.SqA1.Bb(), bitboard.SqB1.Bb(), 1, bitboard.SqC1, 0, true, false, false, false)
	assert.Greater(t, tt.Hashfull(), 0)
}

func TestAgeEntriesIncrementsAge(t *testing.T) {
	tt := NewTtTable(1024)
	mover, opponent := bitboard.SqA1.Bb(), bitboard.SqB1.Bb()
	tt.Put(mover, opponent, 1, bitboard.SqC1, 0, true, false, false, false)

	tt.AgeEntries()
	e := tt.Probe(mover, opponent)
	if assert.NotNil(t, e) {
		assert.Equal(t, 1, e.Age())
	}
}

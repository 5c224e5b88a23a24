//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vi24E/Reversi/internal/bitboard"
)

func TestPushBackPopBack(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(bitboard.SqD3)
	ms.PushBack(bitboard.PASS)
	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, bitboard.PASS, ms.PopBack())
	assert.Equal(t, bitboard.SqD3, ms.PopBack())
	assert.Equal(t, 0, ms.Len())
}

func TestPushFrontShiftsExisting(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(bitboard.SqC4)
	ms.PushFront(bitboard.SqD3)
	assert.Equal(t, bitboard.SqD3, ms.At(0))
	assert.Equal(t, bitboard.SqC4, ms.At(1))
}

func TestCloneIsIndependent(t *testing.T) {
	ms := NewMoveSlice(2)
	ms.PushBack(bitboard.SqD3)
	clone := ms.Clone()
	clone.PushBack(bitboard.SqC4)
	assert.Equal(t, 1, ms.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestStringRendersUci(t *testing.T) {
	ms := NewMoveSlice(2)
	ms.PushBack(bitboard.SqD3)
	ms.PushBack(bitboard.PASS)
	assert.Equal(t, "d3 pass", ms.String())
}

//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

// Package moveslice provides a small ordered-list type for squares
// (incl. PASS), used for principal-variation lines during search.
package moveslice

import (
	"fmt"
	"strings"

	"github.com/Vi24E/Reversi/internal/bitboard"
)

// MoveSlice is an ordered list of squares.
type MoveSlice []bitboard.Square

// NewMoveSlice creates an empty MoveSlice with the given capacity.
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]bitboard.Square, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves stored.
func (ms *MoveSlice) Len() int { return len(*ms) }

// PushBack appends a move at the end of the slice.
func (ms *MoveSlice) PushBack(m bitboard.Square) { *ms = append(*ms, m) }

// PopBack removes and returns the last move. Panics if empty.
func (ms *MoveSlice) PopBack() bitboard.Square {
	if len(*ms) == 0 {
		panic("moveslice: PopBack() called on empty slice")
	}
	last := (*ms)[len(*ms)-1]
	*ms = (*ms)[:len(*ms)-1]
	return last
}

// PushFront prepends a move, shifting the rest of the slice.
func (ms *MoveSlice) PushFront(m bitboard.Square) {
	*ms = append(*ms, bitboard.PASS)
	copy((*ms)[1:], *ms)
	(*ms)[0] = m
}

// At returns the move at index i. Panics if out of bounds.
func (ms *MoveSlice) At(i int) bitboard.Square {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of bounds")
	}
	return (*ms)[i]
}

// Clone returns a deep copy of the slice.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]bitboard.Square, ms.Len())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Clear empties the slice, retaining its capacity.
func (ms *MoveSlice) Clear() { *ms = (*ms)[:0] }

// String renders the moves as a space-separated UCI-style list, e.g.
// "d3 c4 pass f5".
func (ms *MoveSlice) String() string {
	var sb strings.Builder
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.StringUci())
	}
	return sb.String()
}

// GoString supports %#v formatting with the move count, useful in log
// lines that print a PV alongside its length.
func (ms *MoveSlice) GoString() string {
	return fmt.Sprintf("MoveSlice[%d]{%s}", ms.Len(), ms.String())
}

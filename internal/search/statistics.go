//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

package search

import (
	"github.com/Vi24E/Reversi/internal/bitboard"
	"github.com/Vi24E/Reversi/internal/moveslice"
)

// Statistics are extra data and counters not essential for a functioning
// search, useful for logging/debugging move ordering and TT efficiency.
type Statistics struct {
	NodesVisited uint64

	TTHit  uint64
	TTMiss uint64
	TTCuts uint64

	BetaCuts    uint64
	BetaCuts1st uint64

	PVSResearches     uint64
	RootPVSResearches uint64

	CurrentIterationDepth   int
	CurrentVariation        moveslice.MoveSlice
	CurrentRootMoveIndex    int
	CurrentRootMove         bitboard.Square
	CurrentBestRootMove     bitboard.Square
	CurrentBestRootMoveVal  float64
}

func (st *Statistics) String() string {
	return out.Sprintf("%+v", *st)
}

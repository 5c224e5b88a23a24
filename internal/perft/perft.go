//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

// Package perft counts leaf positions reached by exhaustive move
// generation to a fixed depth, the standard move-generator correctness
// and throughput check, adapted from the teacher's chess Perft to
// Othello's pass-instead-of-no-moves rule.
package perft

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Vi24E/Reversi/internal/position"
)

var out = message.NewPrinter(language.German)

// Perft counts leaf nodes and passes encountered while enumerating
// every line to a fixed depth from a starting position.
type Perft struct {
	Nodes    uint64
	Passes   uint64
	stopFlag bool
}

// New returns an empty Perft counter.
func New() *Perft {
	return &Perft{}
}

// Stop interrupts a running Run call from another goroutine.
func (pf *Perft) Stop() {
	pf.stopFlag = true
}

// Run performs perft for depths 1..maxDepth from p, printing a result
// line per depth, mirroring the teacher's StartPerftMulti loop.
func (pf *Perft) Run(p position.Position, maxDepth int) {
	pf.stopFlag = false
	if maxDepth <= 0 {
		maxDepth = 1
	}
	for depth := 1; depth <= maxDepth; depth++ {
		if pf.stopFlag {
			out.Print("perft stopped\n")
			return
		}
		pf.Nodes = 0
		pf.Passes = 0

		start := time.Now()
		pf.Nodes = pf.count(p, depth)
		elapsed := time.Since(start)

		out.Printf("Depth %d: nodes %d, passes %d, time %s, nps %d\n",
			depth, pf.Nodes, pf.Passes, elapsed,
			(pf.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	}
}

// count recursively enumerates every legal line from p to the given
// depth. A position with no legal moves counts a pass and recurses into
// the swapped side rather than terminating the line early, matching
// §4.5's forced-pass handling in the search itself.
func (pf *Perft) count(p position.Position, depth int) uint64 {
	if pf.stopFlag {
		return 0
	}
	if depth == 0 {
		return 1
	}

	moves := p.LegalMoves()
	if moves == 0 {
		pf.Passes++
		return pf.count(p.SwapSides(), depth-1)
	}

	var total uint64
	for b := moves; b != 0; {
		sq := b.PopLsb()
		np := p.Apply(sq).SwapSides()
		total += pf.count(np, depth-1)
	}
	return total
}

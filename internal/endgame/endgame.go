//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

// Package endgame implements the exact win/draw/loss solver of spec §4.6,
// invoked by the search driver once few empty squares remain. Unlike the
// heuristic NegaScout search, values here are game-theoretic (+1/0/-1),
// not floats, and the solver keeps its own unbounded process-lifetime
// cache separate from the main transposition table.
package endgame

import (
	"sort"
	"time"

	"github.com/Vi24E/Reversi/internal/bitboard"
	"github.com/Vi24E/Reversi/internal/position"
)

// Result is a game-theoretic outcome from the mover's perspective, or the
// Abort sentinel when the deadline expired mid-solve.
type Result int8

const (
	Abort Result = -2
	Loss  Result = -1
	Tie   Result = 0
	Win   Result = 1
)

func (r Result) String() string {
	switch r {
	case Abort:
		return "Abort"
	case Loss:
		return "Loss"
	case Tie:
		return "Tie"
	case Win:
		return "Win"
	default:
		return "Unknown"
	}
}

func negate(r Result) Result {
	switch r {
	case Win:
		return Loss
	case Loss:
		return Win
	case Tie:
		return Tie
	default:
		return Abort
	}
}

func compare(moverCount, opponentCount int) Result {
	switch {
	case moverCount > opponentCount:
		return Win
	case moverCount < opponentCount:
		return Loss
	default:
		return Tie
	}
}

type key struct {
	Mover, Opponent bitboard.Bitboard
}

type entry struct {
	result Result
	move   bitboard.Square
}

// Solver is the exact endgame solver. It is not safe for concurrent use:
// a decide_move call owns it exclusively, matching the transposition
// table's own exclusivity contract (§5).
type Solver struct {
	cache map[key]entry
}

// NewSolver returns a solver with an empty cache.
func NewSolver() *Solver {
	return &Solver{cache: make(map[key]entry)}
}

// Len reports how many positions the solver's cache currently holds.
func (s *Solver) Len() int { return len(s.cache) }

// Solve dispatches to the appropriately specialized tier based on the
// number of empty squares remaining (§4.6): a direct one-empty
// computation, a cache-free / ordering-free recursion for 2-4 empties,
// and the full cached, mobility-ordered solve otherwise.
func (s *Solver) Solve(p position.Position, deadline time.Time) (Result, bitboard.Square) {
	empties := 64 - p.Stones()
	switch {
	case empties <= 1:
		return s.solveLeafOne(p)
	case empties <= 4:
		return s.solveLeaf(p, deadline)
	default:
		return s.solveFull(p, deadline)
	}
}

// solveLeafOne handles the final empty square directly from piece counts
// after the forced play, including the case where the mover must pass
// and the opponent plays the last square.
func (s *Solver) solveLeafOne(p position.Position) (Result, bitboard.Square) {
	empty := ^(p.Mover | p.Opponent)
	sq := empty.Lsb()
	if sq == bitboard.SqNone {
		mv, opp := p.PieceCounts()
		return compare(mv, opp), bitboard.PASS
	}

	if position.FlipMask(p.Mover, p.Opponent, sq) != 0 {
		after := p.Apply(sq)
		mv, opp := after.PieceCounts()
		return compare(mv, opp), sq
	}

	swapped := p.SwapSides()
	if position.FlipMask(swapped.Mover, swapped.Opponent, sq) != 0 {
		after := swapped.Apply(sq)
		mv, opp := after.PieceCounts()
		return negate(compare(mv, opp)), bitboard.PASS
	}

	mv, opp := p.PieceCounts()
	return compare(mv, opp), bitboard.PASS
}

// solveLeaf is the 2-4 empty tier: plain recursion via Solve (so
// grandchildren fall through to solveLeafOne as they shrink), with
// neither the solver cache nor mobility ordering applied at this level.
func (s *Solver) solveLeaf(p position.Position, deadline time.Time) (Result, bitboard.Square) {
	if time.Now().After(deadline) {
		return Abort, bitboard.PASS
	}

	moves := p.LegalMoves()
	if moves == 0 {
		swapped := p.SwapSides()
		if swapped.LegalMoves() == 0 {
			mv, opp := p.PieceCounts()
			return compare(mv, opp), bitboard.PASS
		}
		res, _ := s.Solve(swapped, deadline)
		if res == Abort {
			return Abort, bitboard.PASS
		}
		return negate(res), bitboard.PASS
	}

	bestMove := bitboard.PASS
	hasDraw := false
	for b := moves; b != 0; {
		sq := b.PopLsb()
		child := p.Apply(sq).SwapSides()
		res, _ := s.Solve(child, deadline)
		if res == Abort {
			return Abort, bitboard.PASS
		}
		switch negate(res) {
		case Win:
			return Win, sq
		case Tie:
			if !hasDraw {
				hasDraw = true
				bestMove = sq
			}
		}
	}
	if hasDraw {
		return Tie, bestMove
	}
	return Loss, bitboard.PASS
}

// solveFull is the cached, mobility-ordered solve for positions with more
// than 4 empty squares (§4.6 steps 1-6).
func (s *Solver) solveFull(p position.Position, deadline time.Time) (Result, bitboard.Square) {
	k := key{p.Mover, p.Opponent}
	if e, ok := s.cache[k]; ok {
		return e.result, e.move
	}
	if time.Now().After(deadline) {
		return Abort, bitboard.PASS
	}

	moves := p.LegalMoves()
	if moves == 0 {
		swapped := p.SwapSides()
		if swapped.LegalMoves() == 0 {
			mv, opp := p.PieceCounts()
			r := compare(mv, opp)
			s.cache[k] = entry{r, bitboard.PASS}
			return r, bitboard.PASS
		}
		res, _ := s.Solve(swapped, deadline)
		if res == Abort {
			return Abort, bitboard.PASS
		}
		r := negate(res)
		s.cache[k] = entry{r, bitboard.PASS}
		return r, bitboard.PASS
	}

	type child struct {
		sq       bitboard.Square
		pos      position.Position
		mobility int
	}
	children := make([]child, 0, moves.PopCount())
	for b := moves; b != 0; {
		sq := b.PopLsb()
		np := p.Apply(sq).SwapSides()
		children = append(children, child{sq, np, np.LegalMoves().PopCount()})
	}
	// Fewer replies first: a fail-soft ordering exploiting Othello
	// mobility (§4.6 step 4).
	sort.Slice(children, func(i, j int) bool { return children[i].mobility < children[j].mobility })

	bestMove := bitboard.PASS
	hasDraw := false
	for _, c := range children {
		res, _ := s.Solve(c.pos, deadline)
		if res == Abort {
			return Abort, bitboard.PASS
		}
		switch negate(res) {
		case Win:
			s.cache[k] = entry{Win, c.sq}
			return Win, c.sq
		case Tie:
			if !hasDraw {
				hasDraw = true
				bestMove = c.sq
			}
		}
	}
	if hasDraw {
		s.cache[k] = entry{Tie, bestMove}
		return Tie, bestMove
	}
	s.cache[k] = entry{Loss, bitboard.PASS}
	return Loss, bitboard.PASS
}

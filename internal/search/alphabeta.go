//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

package search

import (
	"math"
	"sort"
	"time"

	"github.com/Vi24E/Reversi/internal/bitboard"
	"github.com/Vi24E/Reversi/internal/config"
	"github.com/Vi24E/Reversi/internal/position"
	"github.com/Vi24E/Reversi/internal/util"
)

// negaScout is the iterative-deepening search's recursive workhorse,
// implementing the NegaScout / principal-variation algorithm of §4.5.
// Scores are from p's mover's perspective; children return negated
// scores. aborted is true iff the deadline (or, for the ponder search,
// the stop flag) fired and the returned score must be discarded.
func (s *Search) negaScout(p position.Position, alpha, beta float64, depth int, deadline time.Time) (value float64, complete bool, bestMove bitboard.Square, aborted bool) {
	s.nodesVisited++
	s.statistics.NodesVisited++

	if s.stopped(deadline) {
		return 0, false, bitboard.PASS, true
	}

	originalAlpha := alpha

	if s.tt != nil {
		if e := s.tt.Probe(p.Mover, p.Opponent); e != nil {
			s.statistics.TTHit++
			if e.Complete() && e.Value >= beta {
				return e.Value, true, e.Move, false
			}
			if e.Depth() >= depth {
				switch {
				case e.Exact():
					return e.Value, e.Complete(), e.Move, false
				case e.LowerBound() && e.Value >= beta:
					s.statistics.TTCuts++
					return e.Value, e.Complete(), e.Move, false
				case e.UpperBound() && e.Value <= originalAlpha:
					s.statistics.TTCuts++
					return e.Value, e.Complete(), e.Move, false
				}
				if e.LowerBound() && e.Value > alpha {
					alpha = e.Value
				}
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	if p.Stones() == 64 {
		val := s.eval.Evaluate(p)
		s.store(p, math.MaxInt32, bitboard.PASS, val, true, true, false, false)
		return val, true, bitboard.PASS, false
	}

	if depth == 0 {
		val := s.eval.Evaluate(p)
		complete := math.Abs(val) >= config.Settings.Search.WinScore
		return val, complete, bitboard.PASS, false
	}

	moves := p.LegalMoves()
	if moves == 0 {
		swapped := p.SwapSides()
		if swapped.LegalMoves() == 0 {
			moverCount, opponentCount := p.PieceCounts()
			return terminalScore(moverCount - opponentCount), true, bitboard.PASS, false
		}
		val, complete, _, aborted := s.negaScout(swapped, -beta, -alpha, depth-1, deadline)
		if aborted {
			return 0, false, bitboard.PASS, true
		}
		return -val, complete, bitboard.PASS, false
	}

	children := s.orderedChildren(p, moves)

	bestValue, complete, _, aborted := s.negaScout(children[0].pos, -beta, -alpha, depth-1, deadline)
	if aborted {
		return 0, false, bitboard.PASS, true
	}
	bestValue = -bestValue
	bestMove = children[0].move
	allComplete := complete
	if bestValue > alpha {
		alpha = bestValue
	}

	for i := 1; i < len(children) && alpha < beta; i++ {
		c := children[i]

		val, comp, _, aborted := s.negaScout(c.pos, -alpha-1, -alpha, depth-1, deadline)
		if aborted {
			return 0, false, bitboard.PASS, true
		}
		val = -val

		if val > alpha && val < beta {
			s.statistics.PVSResearches++
			val2, comp2, _, aborted2 := s.negaScout(c.pos, -beta, -val, depth-1, deadline)
			if aborted2 {
				return 0, false, bitboard.PASS, true
			}
			val = -val2
			comp = comp2
		}

		allComplete = allComplete && comp
		if val > bestValue {
			bestValue = val
			bestMove = c.move
		}
		if val > alpha {
			alpha = val
		}
	}

	if alpha >= beta {
		s.statistics.BetaCuts++
		s.store(p, depth, bestMove, bestValue, false, allComplete, true, false)
		return bestValue, allComplete, bestMove, false
	}

	exact := bestValue > originalAlpha && bestValue < beta
	s.store(p, depth, bestMove, bestValue, exact, allComplete, !exact && bestValue >= beta, !exact && bestValue <= originalAlpha)
	return bestValue, allComplete, bestMove, false
}

type orderedChild struct {
	move bitboard.Square
	pos  position.Position
}

// orderedChildren applies each set bit of moves and sorts the resulting
// children by their cached transposition-table value, descending (§4.5
// step 6). A child with no TT entry sorts as neutral (0).
func (s *Search) orderedChildren(p position.Position, moves bitboard.Bitboard) []orderedChild {
	children := make([]orderedChild, 0, moves.PopCount())
	for b := moves; b != 0; {
		sq := b.PopLsb()
		np := p.Apply(sq).SwapSides()
		children = append(children, orderedChild{sq, np})
	}
	order := make(map[bitboard.Square]float64, len(children))
	if s.tt != nil {
		for _, c := range children {
			if e := s.tt.Probe(c.pos.Mover, c.pos.Opponent); e != nil {
				order[c.move] = e.Value
			}
		}
	}
	sort.SliceStable(children, func(i, j int) bool {
		return order[children[i].move] > order[children[j].move]
	})
	return children
}

// store writes to the transposition table if one is configured; a nil
// table (UseTT disabled) just skips persistence.
func (s *Search) store(p position.Position, depth int, move bitboard.Square, value float64, exact, complete, lower, upper bool) {
	if s.tt == nil {
		return
	}
	s.tt.Put(p.Mover, p.Opponent, depth, move, value, exact, complete, lower, upper)
}

// terminalScore implements §4.8's terminal-scoring convention:
// sign(delta) * (WIN_SCORE + |delta|).
func terminalScore(delta int) float64 {
	if delta == 0 {
		return 0
	}
	win := config.Settings.Search.WinScore
	magnitude := win + float64(util.Abs(delta))
	if delta > 0 {
		return magnitude
	}
	return -magnitude
}

// stopped reports whether the search must unwind: either the wall-clock
// deadline has passed, or (ponder search only) the shared stop flag has
// been raised (§5).
func (s *Search) stopped(deadline time.Time) bool {
	if s.stopFlag != nil && s.stopFlag.Load() {
		return true
	}
	return time.Now().After(deadline)
}

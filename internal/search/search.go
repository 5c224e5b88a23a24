//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

// Package search implements the iterative-deepening NegaScout search of
// spec §4.5, its top-level decide_move driver, and the background
// ponder search (§5): the same algorithm, depth-capped, gated by an
// atomic stop flag instead of a deadline, running against a private
// transposition table.
package search

import (
	"context"
	"math"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Vi24E/Reversi/internal/bitboard"
	"github.com/Vi24E/Reversi/internal/config"
	"github.com/Vi24E/Reversi/internal/endgame"
	"github.com/Vi24E/Reversi/internal/evaluator"
	myLogging "github.com/Vi24E/Reversi/internal/logging"
	"github.com/Vi24E/Reversi/internal/moveslice"
	"github.com/Vi24E/Reversi/internal/openingbook"
	"github.com/Vi24E/Reversi/internal/position"
	"github.com/Vi24E/Reversi/internal/transpositiontable"
	"github.com/Vi24E/Reversi/internal/util"
)

var out = message.NewPrinter(language.German)

// Search holds everything one decide_move call (or one ponder run) needs:
// the transposition table, opening book, evaluator, endgame solver, and
// bookkeeping. A Search is not safe for concurrent DecideMove calls; the
// ponder search gets its own Search instance with a private table (§5).
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	book    *openingbook.Book
	tt      *transpositiontable.TtTable
	eval    evaluator.Evaluator
	endgame *endgame.Solver

	// stopFlag is nil for the primary search (deadline-only); the ponder
	// search sets it, and storing true in the flag StartPonder returns
	// interrupts it at its next recursion entry.
	stopFlag *util.Bool

	// isRunning guards against overlapping DecideMove/ResizeTT calls (or,
	// on a ponder instance, its running goroutine) touching this Search
	// instance's mutable state (nodesVisited, statistics, TT writes).
	isRunning *semaphore.Weighted

	nodesVisited uint64
	statistics   Statistics
}

// NewSearch returns a Search wired to its own transposition table and
// endgame solver, per config.Settings.Search. eval and book are shared,
// read-only collaborators supplied by the caller.
func NewSearch(eval evaluator.Evaluator, book *openingbook.Book) *Search {
	s := &Search{
		log:       myLogging.GetLog(),
		slog:      myLogging.GetSearchLog(),
		book:      book,
		eval:      eval,
		endgame:   endgame.NewSolver(),
		isRunning: semaphore.NewWeighted(1),
	}
	if config.Settings.Search.UseTT {
		s.tt = transpositiontable.NewTtTable(config.Settings.Search.TTSize)
	}
	return s
}

// NodesVisited returns the number of nodes visited during the last
// DecideMove (or ponder) call.
func (s *Search) NodesVisited() uint64 { return s.nodesVisited }

// Statistics returns a copy of the last search's bookkeeping counters.
func (s *Search) Statistics() Statistics { return s.statistics }

// DecideMove is the core's primary entry point (§6): it returns a move
// (or PASS) for p within the time slice computed from remainingTimeMs.
// It never raises to the caller; it always yields within the granted
// time plus roughly one leaf evaluation (§7).
func (s *Search) DecideMove(p position.Position, remainingTimeMs int64) bitboard.Square {
	if !s.isRunning.TryAcquire(1) {
		s.log.Warning("DecideMove called while a search is already running on this instance")
		return bitboard.PASS
	}
	defer s.isRunning.Release(1)
	defer util.TimeTrack(time.Now(), "DecideMove")

	start := time.Now()
	s.nodesVisited = 0
	s.statistics = Statistics{}

	moves := p.LegalMoves()
	if moves == 0 {
		return bitboard.PASS
	}

	if config.Settings.Search.UseBook && s.book != nil {
		if mv, ok := s.book.Lookup(p); ok && p.IsLegal(mv) {
			s.log.Info("opening book move found")
			return mv
		}
	}

	deadline := timeSlice(p, remainingTimeMs)
	bestMove := moves.Lsb()

	empties := 64 - p.Stones()
	if empties <= config.Settings.Search.EndgameEmpties {
		res, move := s.endgame.Solve(p, deadline)
		if res != endgame.Abort {
			s.log.Infof("endgame solver returned %s for move %s", res, move.StringUci())
			return move
		}
		s.log.Warning("endgame solver aborted on deadline, falling back to heuristic search")
		deadline = time.Now().Add(50 * time.Millisecond)
	}

	maxDepth := config.Settings.Search.MaxDepth
	for depth := 1; depth <= maxDepth; depth++ {
		value, complete, move, aborted := s.negaScout(p, -math.MaxFloat64, math.MaxFloat64, depth, deadline)
		if aborted {
			break
		}
		bestMove = move
		s.statistics.CurrentIterationDepth = depth
		s.statistics.CurrentBestRootMove = move
		s.statistics.CurrentBestRootMoveVal = value
		s.statistics.CurrentVariation = s.principalVariation(p, depth)
		s.slog.Debugf("depth %d complete, best move %s value %.1f, pv %s", depth, move.StringUci(), value, s.statistics.CurrentVariation.String())
		if complete {
			break
		}
	}
	s.log.Infof("%d nodes, %d nps", s.nodesVisited, util.Nps(s.nodesVisited, time.Since(start)))
	return bestMove
}

// principalVariation walks the transposition table's best-move chain
// from p, up to maxLen plies, for diagnostics (Statistics.CurrentVariation).
// It stops early at a missing entry or at a cached move that is not
// legal in the position reached.
func (s *Search) principalVariation(p position.Position, maxLen int) moveslice.MoveSlice {
	pv := moveslice.NewMoveSlice(maxLen)
	if s.tt == nil {
		return *pv
	}
	cur := p
	for i := 0; i < maxLen; i++ {
		e := s.tt.Probe(cur.Mover, cur.Opponent)
		if e == nil {
			break
		}
		pv.PushBack(e.Move)
		if e.Move == bitboard.PASS {
			cur = cur.SwapSides()
			continue
		}
		if !cur.IsLegal(e.Move) {
			break
		}
		cur = cur.Apply(e.Move).SwapSides()
	}
	return *pv
}

// timeSlice implements §4.5's time budget policy: an aggressive slice
// while the midgame search still has many stones left to place, and a
// slice biased toward the exact solver once few empties remain.
func timeSlice(p position.Position, remainingTimeMs int64) time.Time {
	stones := p.Stones()
	var sliceMs int64
	if stones < 46 {
		denom := util.Max64(int64(50-stones), 3)
		sliceMs = remainingTimeMs * 2 / denom
	} else {
		sliceMs = remainingTimeMs * 2 / 3
	}
	if sliceMs < 1 {
		sliceMs = 1
	}
	return time.Now().Add(time.Duration(sliceMs) * time.Millisecond)
}

// StartPonder launches a background search of the same algorithm,
// capped at PonderMaxDepth and gated by an atomic stop flag rather than
// a deadline, against its own private transposition table (§5). Its
// result is discarded: DecideMove never reads it, and the ponder's
// private table is not shared with the primary search.
func (s *Search) StartPonder(p position.Position) *util.Bool {
	stop := util.NewBool(false)
	ponder := &Search{
		log:       s.log,
		slog:      s.slog,
		book:      s.book,
		eval:      s.eval,
		endgame:   endgame.NewSolver(),
		stopFlag:  stop,
		isRunning: semaphore.NewWeighted(1),
	}
	if config.Settings.Search.UseTT {
		ponder.tt = transpositiontable.NewTtTable(config.Settings.Search.TTSize)
	}

	if !ponder.isRunning.TryAcquire(1) {
		// unreachable for a freshly constructed semaphore, kept for
		// symmetry with DecideMove's guard.
		return stop
	}

	go func() {
		defer ponder.isRunning.Release(1)
		deadline := time.Now().Add(24 * time.Hour) // advisory; stop flag is the real gate
		maxDepth := config.Settings.Search.PonderMaxDepth
		for depth := 1; depth <= maxDepth; depth++ {
			if stop.Load() {
				return
			}
			_, complete, _, aborted := ponder.negaScout(p, -math.MaxFloat64, math.MaxFloat64, depth, deadline)
			if aborted || complete {
				return
			}
		}
	}()

	return stop
}

// ResizeTT reallocates the primary transposition table to hold
// numEntries entries, discarding all cached values. It refuses while a
// search is in flight on this instance. Forces and reports a GC cycle
// afterward, since dropping the old table's backing array is the kind
// of large, sudden garbage the teacher's ResizeCache always flushed
// immediately rather than leaving for the next natural GC.
func (s *Search) ResizeTT(numEntries int) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Warning("ResizeTT called while a search is already running on this instance")
		return
	}
	defer s.isRunning.Release(1)

	s.tt = transpositiontable.NewTtTable(numEntries)
	s.log.Debug(util.GcWithStats())
}

// Wait blocks until any in-flight DecideMove or ponder search on s
// finishes, mirroring the teacher's isRunning-acquire-then-release
// wait idiom.
func (s *Search) Wait() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

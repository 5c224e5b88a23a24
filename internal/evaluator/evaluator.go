//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

// Package evaluator defines the pluggable leaf-scoring capability the
// search calls at the horizon (§4.8, §9 "dynamic dispatch"), plus one
// concrete default implementation (disc differential + corners +
// mobility) standing in for the ONNX/embedded-weight evaluators that
// spec.md §1 treats as an external, replaceable collaborator.
package evaluator

import (
	"math"

	"github.com/Vi24E/Reversi/internal/bitboard"
	"github.com/Vi24E/Reversi/internal/config"
	"github.com/Vi24E/Reversi/internal/position"
)

// Evaluator scores a position from the mover's perspective: positive
// means good for the mover, symmetric under side swap up to sign (§4.8).
// It is the single polymorphic boundary in the core (§9): no other
// component here is pluggable.
type Evaluator interface {
	Evaluate(p position.Position) float64
}

const (
	// sigmoidK and sigmoidX0 parametrize the phase-blend weight of §3:
	// 1/(1 + exp(K*(i - X0))).
	sigmoidK  = 0.6
	sigmoidX0 = 54.0
)

// SigmoidTable holds the 65 precomputed phase-blend weights of §3, index
// by stones placed (0..64). Exposed as data so any Evaluator can use it,
// per §9's note that the weights are retained even though the core
// itself does not mandate their use.
var SigmoidTable [65]float64

func init() {
	for i := 0; i <= 64; i++ {
		SigmoidTable[i] = 1.0 / (1.0 + math.Exp(sigmoidK*(float64(i)-sigmoidX0)))
	}
}

var cornerMask = bitboard.SqA1.Bb() | bitboard.SqH1.Bb() | bitboard.SqA8.Bb() | bitboard.SqH8.Bb()

// Default is the disc-differential + corner-occupancy + mobility
// heuristic described in SPEC_FULL §12. Feature toggles and weights come
// from config.Settings.Eval.
type Default struct{}

// NewDefault returns the default Evaluator.
func NewDefault() *Default { return &Default{} }

// Evaluate implements Evaluator.
func (d *Default) Evaluate(p position.Position) float64 {
	moverCount, oppCount := p.PieceCounts()

	if p.Stones() == 64 {
		// Full board: §4.5 step 3 requires the exact final differential,
		// not a heuristic blend.
		return float64(moverCount - oppCount)
	}

	eval := config.Settings.Eval
	var score float64
	if eval.UseMaterial {
		score += float64(moverCount - oppCount)
	}

	if eval.UseCorners {
		moverCorners := (p.Mover & cornerMask).PopCount()
		oppCorners := (p.Opponent & cornerMask).PopCount()
		score += eval.CornerBonus * float64(moverCorners-oppCorners)
	}

	if eval.UseMobility {
		moverMoves := position.LegalMoves(p.Mover, p.Opponent).PopCount()
		oppMoves := position.LegalMoves(p.Opponent, p.Mover).PopCount()
		score += eval.MobilityBonus * float64(moverMoves-oppMoves)
	}

	if eval.UseSigmoidPhase {
		weight := SigmoidTable[p.Stones()]
		// Blend toward a pure material count in the endgame (weight -> 0
		// as stones -> 64) and toward the full heuristic in the opening.
		material := float64(moverCount - oppCount)
		score = weight*score + (1-weight)*material
	}

	return score
}

//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

package config

// evalConfiguration toggles features of the default Evaluator (§11,
// SPEC_FULL §12): disc differential, corner occupancy, and mobility,
// phase-blended via the sigmoid table of §3.
type evalConfiguration struct {
	UseMaterial bool
	UseCorners  bool
	CornerBonus float64

	UseMobility   bool
	MobilityBonus float64

	// UseSigmoidPhase blends material vs. positional terms by stones
	// placed, looked up in evaluator.SigmoidTable, instead of a flat sum.
	UseSigmoidPhase bool
}

func init() {
	Settings.Eval.UseMaterial = true

	Settings.Eval.UseCorners = true
	Settings.Eval.CornerBonus = 25.0

	Settings.Eval.UseMobility = true
	Settings.Eval.MobilityBonus = 2.0

	Settings.Eval.UseSigmoidPhase = true
}

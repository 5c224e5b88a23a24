//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

// Package tables holds the precomputed, read-only move tables described in
// spec §4.2: for every possible (mover, opponent) byte pair along an 8-bit
// line, the set of legal placements along that line ("placeable"), and for
// each placement the set of pieces flipped ("turntable"). Built once,
// before first use, serialized by sync.Once per §4.2/§9 ("initialization
// is a one-shot operation that MUST be performed before any query;
// concurrent first-use must serialize on a single initializer").
//
// The placement/flip logic itself is a pure function of the 8-bit line
// content and is identical regardless of whether the line is a rank, a
// file, or a diagonal - only the gather/scatter projection in
// internal/bitboard differs per family (see §4.1's note that diagonal
// tables carry "the per-diagonal length and the shifts", which live in
// bitboard.lineSquares, not in the placement logic here). We therefore
// build one shared core table rather than four byte-identical copies.
package tables

import "sync"

const (
	placeableSize = 1 << 16 // (mover<<8)|opponent
	turntableSize = 1 << 19 // (mover<<11)|(opponent<<3)|k
)

var (
	placeable [placeableSize]uint8
	turntable [turntableSize]uint8
	once      sync.Once
)

// Init builds the placeable and turntable arrays. Idempotent and safe for
// concurrent first-use: the actual build runs exactly once via sync.Once
// regardless of how many goroutines call Init concurrently.
func Init() {
	once.Do(build)
}

func build() {
	for mover := 0; mover < 256; mover++ {
		for opp := 0; opp < 256; opp++ {
			if mover&opp != 0 {
				continue // impossible configuration, tables stay zero
			}
			idx := (mover << 8) | opp
			placeable[idx] = computePlaceable(uint8(mover), uint8(opp))
			for k := 0; k < 8; k++ {
				ttIdx := (mover << 11) | (opp << 3) | k
				turntable[ttIdx] = computeTurntable(uint8(mover), uint8(opp), k)
			}
		}
	}
}

// Placeable returns the 8-bit mask of legal placement positions for the
// given mover/opponent line bytes. Callers must have called Init.
func Placeable(mover, opponent uint8) uint8 {
	return placeable[(int(mover)<<8)|int(opponent)]
}

// Turntable returns the 8-bit mask of positions flipped by placing at
// intra-line position k (0..7) given the mover/opponent line bytes.
// Callers must have called Init.
func Turntable(mover, opponent uint8, k int) uint8 {
	return turntable[(int(mover)<<11)|(int(opponent)<<3)|k]
}

// computePlaceable marks bit k as placeable iff k is empty and at least one
// direction from k contains >=1 contiguous opponent bit bracketed by a
// mover bit (§4.2).
func computePlaceable(mover, opponent uint8) uint8 {
	var out uint8
	for k := 0; k < 8; k++ {
		bit := uint8(1) << uint(k)
		if mover&bit != 0 || opponent&bit != 0 {
			continue
		}
		if _, ok := scan(mover, opponent, k, -1); ok {
			out |= bit
			continue
		}
		if _, ok := scan(mover, opponent, k, +1); ok {
			out |= bit
		}
	}
	return out
}

// computeTurntable returns the union of flips from both directions of
// placing at position k, regardless of whether k is itself a legal
// placement (callers only invoke this for legal placements; an illegal k
// yields zero or a meaningless non-zero value that is never consulted
// since flip_mask being zero already signals "illegal" to the caller).
func computeTurntable(mover, opponent uint8, k int) uint8 {
	var out uint8
	if flips, ok := scan(mover, opponent, k, -1); ok {
		out |= flips
	}
	if flips, ok := scan(mover, opponent, k, +1); ok {
		out |= flips
	}
	return out
}

// scan walks from k+step, k+2*step, ... collecting contiguous opponent
// bits. It returns ok=true with the collected flip mask iff the walk
// terminates on a mover bit having collected at least one opponent bit
// (running off the line, or hitting an empty square, means the direction
// contributes nothing).
func scan(mover, opponent uint8, k, step int) (uint8, bool) {
	var flips uint8
	j := k + step
	for j >= 0 && j < 8 {
		bit := uint8(1) << uint(j)
		switch {
		case opponent&bit != 0:
			flips |= bit
			j += step
		case mover&bit != 0:
			if flips == 0 {
				return 0, false
			}
			return flips, true
		default:
			return 0, false
		}
	}
	return 0, false
}

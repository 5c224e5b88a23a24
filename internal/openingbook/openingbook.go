//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

// Package openingbook loads the packed binary opening book (§6) into a
// map from canonical position to recommended move, and answers lookups
// by trying all 8 symmetry images of the opponent-to-move view of the
// query position (§4.7).
package openingbook

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Vi24E/Reversi/internal/bitboard"
	myLogging "github.com/Vi24E/Reversi/internal/logging"
	"github.com/Vi24E/Reversi/internal/position"
	"github.com/Vi24E/Reversi/internal/util"
)

var out = message.NewPrinter(language.German)
var log = myLogging.GetLog()

// key identifies a stored book position. Book entries are keyed
// directly on (mover, opponent); canonicalization happens at lookup
// time by probing all 8 symmetry images (§4.7), not at store time.
type key struct {
	Mover, Opponent bitboard.Bitboard
}

// Book is a read-only, once-loaded mapping from position to a
// recommended move square (0..63).
type Book struct {
	mu          sync.RWMutex
	entries     map[key]bitboard.Square
	initialized bool
}

// New returns an empty, uninitialized Book.
func New() *Book {
	return &Book{entries: make(map[key]bitboard.Square)}
}

// Initialize loads path into the book. Calling it more than once on an
// already-initialized Book is a no-op, matching the teacher's idempotent
// Initialize guard.
func (b *Book) Initialize(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.initialized {
		return nil
	}

	resolved, err := util.ResolveFile(path)
	if err != nil {
		log.Errorf("opening book file %q could not be resolved: %s\n", path, err)
		return fmt.Errorf("openingbook: resolving %q: %w", path, err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		log.Errorf("opening book file %q could not be read: %s\n", resolved, err)
		return fmt.Errorf("openingbook: reading %q: %w", resolved, err)
	}

	entries := make(map[key]bitboard.Square)
	r := newBitReader(data)
	count := 0
	for r.bitsLeft() >= 8 {
		k, move, ok, err := parseRecord(r)
		if err != nil {
			return fmt.Errorf("openingbook: parsing %q: %w", path, err)
		}
		if !ok {
			break
		}
		entries[k] = move
		count++
	}

	b.entries = entries
	b.initialized = true
	log.Infof("opening book loaded: %s entries from %q\n", out.Sprintf("%d", count), path)
	return nil
}

// Reset clears the book so it can be initialized again.
func (b *Book) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = make(map[key]bitboard.Square)
	b.initialized = false
}

// NumberOfEntries returns the number of positions stored in the book.
func (b *Book) NumberOfEntries() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Lookup implements the §4.7 lookup algorithm: canonicalize the query
// position to the opponent-to-move view, probe all 8 symmetry images
// against the stored map, and invert the symmetry on the first hit's
// move.
func (b *Book) Lookup(p position.Position) (bitboard.Square, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.initialized {
		return bitboard.PASS, false
	}

	swapped := p.SwapSides()
	for s := Sym(0); s < numSyms; s++ {
		k := key{
			Mover:    ApplyBitboard(swapped.Mover, s),
			Opponent: ApplyBitboard(swapped.Opponent, s),
		}
		if move, ok := b.entries[k]; ok {
			return ApplyInverseSquare(move, s), true
		}
	}
	return bitboard.PASS, false
}

// parseRecord reads one book record: 64 run-length/occupant tokens
// followed by a 6-bit move square. ok is false (with no error) when the
// stream ends before the record's first token, signalling a clean EOF;
// Initialize itself stops once less than a full byte remains.
func parseRecord(r *bitReader) (k key, move bitboard.Square, ok bool, err error) {
	var mover, opponent bitboard.Bitboard

	idx := 0
	for idx < 64 {
		if r.bitsLeft() < 2 {
			if idx == 0 {
				return key{}, 0, false, nil
			}
			return key{}, 0, false, fmt.Errorf("openingbook: truncated record at square %d", idx)
		}
		token, _ := r.readBits(2)
		switch token {
		case 0: // empty
			idx++
		case 1: // mover
			mover |= bitboard.Square(idx).Bb()
			idx++
		case 2: // opponent
			opponent |= bitboard.Square(idx).Bb()
			idx++
		case 3: // run of empties
			run, ok2 := r.readBits(5)
			if !ok2 {
				return key{}, 0, false, fmt.Errorf("openingbook: truncated run-length at square %d", idx)
			}
			idx += int(run)
			if idx > 64 {
				return key{}, 0, false, fmt.Errorf("openingbook: run-length overruns board at square %d", idx)
			}
		}
	}

	moveBits, ok2 := r.readBits(6)
	if !ok2 {
		return key{}, 0, false, fmt.Errorf("openingbook: truncated trailing move")
	}

	return key{Mover: mover, Opponent: opponent}, bitboard.Square(moveBits), true, nil
}

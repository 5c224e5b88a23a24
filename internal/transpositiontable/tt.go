//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

// Package transpositiontable implements the fixed-capacity, direct-mapped
// position cache described in spec §3/§4.4. Not thread safe; callers
// (internal/search) hold exclusive access for the duration of a
// decide_move call, or use a private table for the ponder search (§5).
package transpositiontable

import (
	"math"
	"sync"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/Vi24E/Reversi/internal/logging"
	"github.com/Vi24E/Reversi/internal/bitboard"
	"github.com/Vi24E/Reversi/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// DefaultSizeEntries is the table size spec §3 fixes: 2^22 entries.
	DefaultSizeEntries = 1 << 22
	// entrySize is the approximate in-memory footprint of one TtEntry,
	// used only for the log line (two bitboard.Bitboard + a Square +
	// float64 + uint16, rounded up) - not relied on for addressing.
	entrySize = 32
)

// TtTable is the transposition table.
type TtTable struct {
	log         *logging.Logger
	data        []TtEntry
	hashKeyMask uint64
	maxEntries  uint64
	numEntries  uint64
	Stats       TtStats
}

// TtStats holds statistical counters for diagnostics (§10.1).
type TtStats struct {
	numberOfPuts       uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
}

// NewTtTable creates a table sized to hold numEntries entries, rounded
// down to the nearest power of two (direct-mapped addressing needs a
// power-of-two mask). Pass DefaultSizeEntries for the spec's fixed 2^22.
func NewTtTable(numEntries int) *TtTable {
	tt := &TtTable{log: myLogging.GetLog()}
	tt.Resize(numEntries)
	return tt
}

// Resize discards all entries and re-allocates the table.
func (tt *TtTable) Resize(numEntries int) {
	if numEntries <= 0 {
		tt.maxEntries = 0
		tt.hashKeyMask = 0
		tt.data = nil
		return
	}
	power := uint64(math.Floor(math.Log2(float64(numEntries))))
	tt.maxEntries = uint64(1) << power
	tt.hashKeyMask = tt.maxEntries - 1
	tt.data = make([]TtEntry, tt.maxEntries)
	tt.numEntries = 0
	tt.Stats = TtStats{}
	tt.log.Info(out.Sprintf("TT sized to %d entries (~%d MB)", tt.maxEntries, (tt.maxEntries*entrySize)/(1024*1024)))
	tt.log.Debug(util.MemStat())
}

// Clear removes all entries without changing the table's size.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxEntries)
	tt.numEntries = 0
	tt.Stats = TtStats{}
}

// Probe returns the stored entry for (mover, opponent), or nil on a miss
// or a collision with a different position (§4.4: "return reference iff
// stored (M, O) match exactly").
func (tt *TtTable) Probe(mover, opponent bitboard.Bitboard) *TtEntry {
	tt.Stats.numberOfProbes++
	if tt.maxEntries == 0 {
		tt.Stats.numberOfMisses++
		return nil
	}
	e := &tt.data[tt.hash(mover, opponent)]
	if e.matches(mover, opponent) {
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores an entry, replacing the occupant of its slot iff the
// occupant's position differs from (mover, opponent), or the occupant is
// the same position but depth is not greater than the new depth (§4.4).
func (tt *TtTable) Put(mover, opponent bitboard.Bitboard, depth int, move bitboard.Square, value float64, exact, complete, lower, upper bool) {
	if tt.maxEntries == 0 {
		return
	}
	tt.Stats.numberOfPuts++
	slot := &tt.data[tt.hash(mover, opponent)]

	switch {
	case !slot.occupied():
		tt.numEntries++
	case slot.Mover != mover || slot.Opponent != opponent:
		tt.Stats.numberOfCollisions++
		tt.Stats.numberOfOverwrites++
	case depth < slot.Depth():
		// same position, stored entry is deeper: keep it (§4.4).
		return
	}

	slot.Mover = mover
	slot.Opponent = opponent
	slot.Move = move
	slot.Value = value
	slot.vmeta = packVmeta(depth, exact, complete, lower, upper)
}

// Hashfull returns how full the table is, in permille.
func (tt *TtTable) Hashfull() int {
	if tt.maxEntries == 0 {
		return 0
	}
	return int((1000 * tt.numEntries) / tt.maxEntries)
}

// Len returns the number of occupied slots.
func (tt *TtTable) Len() uint64 { return tt.numEntries }

// AgeEntries bumps every occupied entry's generation counter, spreading
// the work across goroutines the same way the teacher's AgeEntries does.
func (tt *TtTable) AgeEntries() {
	start := time.Now()
	if tt.numEntries == 0 {
		return
	}
	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	slice := tt.maxEntries / workers
	for i := uint64(0); i < workers; i++ {
		go func(i uint64) {
			defer wg.Done()
			begin := i * slice
			end := begin + slice
			if i == workers-1 {
				end = tt.maxEntries
			}
			for n := begin; n < end; n++ {
				if tt.data[n].occupied() {
					tt.data[n].increaseAge()
				}
			}
		}(i)
	}
	wg.Wait()
	tt.log.Debug(out.Sprintf("Aged %d entries of %d in %d ms", tt.numEntries, len(tt.data), time.Since(start).Milliseconds()))
}

// String reports size and hit-rate statistics for diagnostics.
func (tt *TtTable) String() string {
	return out.Sprintf("TT: capacity %d entries, occupied %d (%d%%), puts %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d",
		tt.maxEntries, tt.numEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites,
		tt.Stats.numberOfProbes, tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses)
}

// hash implements §4.4: mix M and O each with a 64-bit avalanche function
// (two xor-shift-multiply rounds plus a final xor-shift - the murmur3
// fmix64 finalizer), XOR the two results, and mask to the table size.
// Adapted from the teacher's xorshift64star PRNG core (internal/position's
// former random.go): here the xor-shift-multiply idiom mixes a fixed
// input value instead of iterating PRNG state.
func (tt *TtTable) hash(mover, opponent bitboard.Bitboard) uint64 {
	mixed := avalanche(uint64(mover)) ^ avalanche(uint64(opponent))
	return mixed & tt.hashKeyMask
}

func avalanche(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

package config

// searchConfiguration holds the tunables of the NegaScout search, the
// transposition table, and the opening book lookup (§4.4-§4.7, §10.2).
type searchConfiguration struct {
	// Opening book
	UseBook  bool
	BookPath string
	BookFile string

	// Ponder
	UsePonder      bool
	PonderMaxDepth int

	// Transposition table
	UseTT  bool
	TTSize int // entries, rounded down to a power of two

	// Iterative deepening
	MaxDepth int

	// Exact endgame solver trigger: switch to the solver once this many or
	// fewer empty squares remain (the default 18 means 46 or more stones
	// placed).
	EndgameEmpties int

	// Terminal scoring sentinels (§4.8).
	WinScore  float64
	LoseScore float64
}

func init() {
	Settings.Search.UseBook = true
	Settings.Search.BookPath = "./assets"
	Settings.Search.BookFile = "book.bin"

	Settings.Search.UsePonder = true
	Settings.Search.PonderMaxDepth = 10

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 1 << 22

	Settings.Search.MaxDepth = 60

	Settings.Search.EndgameEmpties = 18

	Settings.Search.WinScore = 1000.0
	Settings.Search.LoseScore = -1000.0
}

//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Vi24E/Reversi/internal/bitboard"
	"github.com/Vi24E/Reversi/internal/config"
	"github.com/Vi24E/Reversi/internal/evaluator"
	"github.com/Vi24E/Reversi/internal/logging"
	"github.com/Vi24E/Reversi/internal/openingbook"
	"github.com/Vi24E/Reversi/internal/perft"
	"github.com/Vi24E/Reversi/internal/position"
	"github.com/Vi24E/Reversi/internal/search"
)

const engineVersion = "0.1.0"

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./othello.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	bookPath := flag.String("bookpath", "", "path to opening book directory")
	bookFile := flag.String("bookfile", "", "opening book file name within bookpath")
	useBook := flag.Bool("book", true, "enable opening book lookup")
	useTT := flag.Bool("tt", true, "enable the transposition table")
	ttSize := flag.Int("ttsize", 0, "resize the transposition table to this many entries\n(0 keeps the configured default)")
	depth := flag.Int("depth", 0, "override the max iterative-deepening depth\n(0 keeps the configured default)")
	movetime := flag.Int64("movetime", 1000, "time budget for decide-move, in milliseconds")
	perftDepth := flag.Int("perft", 0, "runs perft to the given depth from the position reached by -moves\nand exits")
	moves := flag.String("moves", "", "comma-separated squares applied from the standard opening,\ne.g. d3,c3,c4,e3 (use \"pass\" for a forced pass)")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	if *bookPath != "" {
		config.Settings.Search.BookPath = *bookPath
	}
	if *bookFile != "" {
		config.Settings.Search.BookFile = *bookFile
	}
	config.Settings.Search.UseBook = *useBook
	config.Settings.Search.UseTT = *useTT
	if *depth > 0 {
		config.Settings.Search.MaxDepth = *depth
	}

	log := logging.GetLog()

	p, err := replayMoves(*moves)
	if err != nil {
		out.Println(err)
		os.Exit(1)
	}

	if *perftDepth > 0 {
		perft.New().Run(p, *perftDepth)
		return
	}

	var book *openingbook.Book
	if config.Settings.Search.UseBook {
		book = openingbook.New()
		path := config.Settings.Search.BookPath + "/" + config.Settings.Search.BookFile
		if err := book.Initialize(path); err != nil {
			log.Warningf("opening book not loaded: %v", err)
		}
	}

	s := search.NewSearch(evaluator.NewDefault(), book)
	if *ttSize > 0 {
		s.ResizeTT(*ttSize)
	}
	move := s.DecideMove(p, *movetime)

	out.Println(p.String())
	out.Printf("move       : %s\n", move.StringUci())
	out.Printf("nodes      : %d\n", s.NodesVisited())
	out.Printf("statistics : %s\n", s.Statistics().String())
}

// replayMoves builds the standard opening and applies a comma-separated
// list of moves to it, alternating sides after each. The turn passes only
// on a "pass" token, which is accepted only when the mover has no legal
// move; any other token for a mover without a legal move is an error.
func replayMoves(list string) (position.Position, error) {
	p := position.NewPosition(false)
	list = strings.TrimSpace(list)
	if list == "" {
		return p, nil
	}
	for _, tok := range strings.Split(list, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		sq, err := bitboard.ParseSquare(tok)
		if err != nil {
			return p, err
		}
		if sq == bitboard.PASS {
			if p.LegalMoves() != 0 {
				return p, fmt.Errorf("othello: pass given but a legal move exists")
			}
			p = p.SwapSides()
			continue
		}
		if !p.IsLegal(sq) {
			return p, fmt.Errorf("othello: illegal move %s", tok)
		}
		p = p.Apply(sq).SwapSides()
	}
	return p, nil
}

func printVersionInfo() {
	out.Printf("Reversi %s\n", engineVersion)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	out.Printf("  Number of Goroutines: %d\n", runtime.NumGoroutine())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}

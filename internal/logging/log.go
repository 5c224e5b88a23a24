//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

// Package logging is a thin helper around "github.com/op/go-logging" so
// every package gets a preconfigured *logging.Logger in one line, rather
// than repeating backend/formatter setup everywhere.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/Vi24E/Reversi/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
}

// GetLog returns the standard logger, preconfigured with an os.Stdout
// backend at config.LogLevel.
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns the search logger, preconfigured with an
// os.Stdout backend at config.SearchLogLevel - kept separate from the
// standard logger so per-node search tracing can be silenced
// independently of the rest of the engine's logging.
func GetSearchLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.SearchLogLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}

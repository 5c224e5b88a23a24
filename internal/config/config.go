//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

// Package config holds globally available configuration variables, set
// from a TOML file on disk, falling back to compiled-in defaults when no
// file is found.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Vi24E/Reversi/internal/util"
)

var (
	// ConfFile is the path to the config file, relative to the working
	// directory unless absolute.
	ConfFile = "./othello.toml"

	// LogLevel is the general log level, overridable by the config file.
	LogLevel = 5

	// SearchLogLevel is the search package's own log level.
	SearchLogLevel = 5

	// Settings is the configuration decoded from ConfFile (or defaults).
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads ConfFile once and applies it on top of the compiled-in
// defaults the per-section init()s already installed. Idempotent.
func Setup() {
	if initialized {
		return
	}
	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		log.Println("config file not found, using defaults:", err)
	} else if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config file could not be parsed, using defaults:", err)
	}
	setupLogLvl()
	initialized = true
}

// String renders the current settings via reflection, for diagnostics.
func (c *conf) String() string {
	var sb strings.Builder
	sb.WriteString("Search config:\n")
	dumpStruct(&sb, &c.Search)
	sb.WriteString("\nEval config:\n")
	dumpStruct(&sb, &c.Eval)
	return sb.String()
}

func dumpStruct(sb *strings.Builder, v interface{}) {
	s := reflect.ValueOf(v).Elem()
	t := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		fmt.Fprintf(sb, "%-2d: %-22s %-8s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface())
	}
}

//
// Reversi - bitboard Othello/Reversi engine core
//
// MIT License - see internal/bitboard/bitboard.go
//

package config

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestSetupAppliesDefaults(t *testing.T) {
	Setup()
	assert.True(t, Settings.Search.UseTT)
	assert.Equal(t, 1<<22, Settings.Search.TTSize)
	assert.Equal(t, 18, Settings.Search.EndgameEmpties)
	assert.Equal(t, 1000.0, Settings.Search.WinScore)
}

func TestSetupIsIdempotent(t *testing.T) {
	Setup()
	Settings.Search.TTSize = 42
	Setup() // second call must be a no-op, not reset to defaults
	assert.Equal(t, 42, Settings.Search.TTSize)
}

func TestStringDumpsNonEmpty(t *testing.T) {
	Setup()
	assert.Contains(t, Settings.String(), "Search config")
	assert.Contains(t, Settings.String(), "Eval config")
}

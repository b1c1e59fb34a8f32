package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holdemsim/internal/util"
	"holdemsim/pkg/holdem"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_MATCH_MAX_GAMES", "20")
	defer clear2()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal("text", cfg.Log.Format, "unset values keep their default")
	a.True(cfg.Log.DisableAccessLogs)
	a.Equal(":8080", cfg.HTTP.Addr)
	a.Equal([]string{"CallBot", "RandomBot"}, cfg.Match.Bots)
	a.Equal(int64(42), cfg.Match.Seed)
	a.Equal(20, cfg.Match.MaxGames)
	a.Equal(holdem.StartingCash, cfg.Match.StartingCash)
	a.Equal(holdem.Options{BaseBlind: 50, FullTable: 9}, cfg.Game)

	// ensure that it's only loaded once
	clear3 := util.SetEnv("HOLDEM_MATCH_MAX_GAMES", "30")
	defer clear3()
	// ensure we aren't using a pointer
	cfg.Match.MaxGames = 0
	cfg = Instance()
	a.Equal(20, cfg.Match.MaxGames)
}

func TestLoad_defaults(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal(":5000", cfg.HTTP.Addr)
	a.Equal(1000, cfg.Match.MaxGames)
	a.Equal(holdem.DefaultOptions(), cfg.Game)
	a.Len(cfg.Match.Bots, 5)
}

func TestLoad_envOverride(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_GAME_BASEBLIND", "25")
	defer clear2()
	clear3 := util.SetEnv("HOLDEM_LOG_FORMAT", "json")
	defer clear3()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal(25, cfg.Game.BaseBlind)
	a.Equal(6, cfg.Game.FullTable)
	a.Equal("json", cfg.Log.Format)
}

func TestLoad_invalidFile(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata")
	defer clear1()

	assert.Error(t, Load())
}

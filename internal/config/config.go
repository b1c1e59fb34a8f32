package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdemsim/internal/util"
	"holdemsim/pkg/holdem"
)

// Config provides configuration for the simulator
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	HTTP struct {
		Addr string `yaml:"addr"`
	}
	Match struct {
		Bots         []string `yaml:"bots"`
		StartingCash int      `yaml:"startingCash" envconfig:"starting_cash"`
		Seed         int64    `yaml:"seed"`
		MaxGames     int      `yaml:"maxGames" envconfig:"max_games"`
	}
	Game holdem.Options `yaml:"game"`
}

// DefaultConfig returns the configuration used when nothing else is set
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.HTTP.Addr = ":5000"
	cfg.Match.Bots = []string{"CallBot", "RandomBot", "RandomBot", "RandomBot", "RandomBot"}
	cfg.Match.StartingCash = holdem.StartingCash
	cfg.Match.MaxGames = 1000
	cfg.Game = holdem.DefaultOptions()

	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file is optional; environment variables prefixed with HOLDEM override it
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"holdemsim/internal/config"
	"holdemsim/internal/logging"
	"holdemsim/internal/rng"
	"holdemsim/pkg/bot"
	"holdemsim/pkg/holdem"
	"holdemsim/pkg/match"
)

var seed = flag.Int64("seed", 0, "the shuffle seed, overrides the configuration")
var maxGames = flag.Int("max-games", -1, "the maximum number of games, 0 for no limit, overrides the configuration")

func main() {
	flag.Parse()

	cfg := config.Instance()
	logging.Setup(cfg)

	if *seed != 0 {
		cfg.Match.Seed = *seed
	}

	if *maxGames >= 0 {
		cfg.Match.MaxGames = *maxGames
	}

	gen := rng.NewSeeded(cfg.Match.Seed)
	registry := holdem.NewRegistry()
	for _, name := range cfg.Match.Bots {
		strategy, err := bot.FromName(name, gen)
		if err != nil {
			logrus.WithError(err).Fatal("could not create bot")
		}

		registry.RegisterWithCash(name, strategy, cfg.Match.StartingCash)
	}

	m := match.New(logrus.StandardLogger(), registry.Players(), cfg.Game, gen)
	summary, err := m.Play(cfg.Match.MaxGames)
	if err != nil {
		logrus.WithError(err).Fatal("could not play match")
	}

	for _, gs := range summary.Games {
		for _, e := range gs.Events {
			logrus.WithField("game", gs.ID).Info(e.String())
		}

		for _, shown := range gs.Showdown {
			logrus.WithField("game", gs.ID).Infof("%s had %s (%s)", shown.Player, shown.Hand, shown.Cards)
		}
	}

	for _, s := range summary.Standings {
		logrus.WithFields(logrus.Fields{
			"player":     s.Player,
			"balance":    s.Balance,
			"eliminated": s.Eliminated,
		}).Info("standing")
	}

	if summary.Champion != "" {
		logrus.WithField("games", len(summary.Games)).Infof("%s won the match", summary.Champion)
	}
}

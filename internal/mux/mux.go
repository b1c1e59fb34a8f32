package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"holdemsim/internal/config"
	"holdemsim/pkg/holdem"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  muxConfig
	version string
	logger  logrus.FieldLogger
}

type muxConfig struct {
	// maxGames caps the number of games a single simulation may play
	maxGames     int
	startingCash int
	bots         []string
	options      holdem.Options
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		logger:  logrus.StandardLogger(),
		config: muxConfig{
			maxGames:     cfg.Match.MaxGames,
			startingCash: cfg.Match.StartingCash,
			bots:         cfg.Match.Bots,
			options:      cfg.Game,
		},
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/simulate").Handler(this.postSimulate())
	r.Methods(http.MethodPost).Path("/rank").Handler(this.postRank())

	return this
}

package mux

import (
	"errors"
	"fmt"
	"net/http"

	"holdemsim/internal/rng"
	"holdemsim/pkg/bot"
	"holdemsim/pkg/holdem"
	"holdemsim/pkg/match"
)

const maxBots = 23

type postSimulatePayload struct {
	Bots         []string `json:"bots"`
	Seed         int64    `json:"seed"`
	StartingCash int      `json:"startingCash"`
	MaxGames     int      `json:"maxGames"`
}

func (p *postSimulatePayload) validate(maxGames int) error {
	if len(p.Bots) < 2 {
		return errors.New("at least two bots are required")
	}

	if len(p.Bots) > maxBots {
		return fmt.Errorf("no more than %d bots are allowed", maxBots)
	}

	if p.StartingCash < 0 {
		return errors.New("starting cash cannot be less than zero")
	}

	if p.MaxGames < 0 {
		return errors.New("max games cannot be less than zero")
	}

	if p.MaxGames > maxGames {
		return fmt.Errorf("max games cannot be greater than %d", maxGames)
	}

	return nil
}

func (m *Mux) postSimulate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postSimulatePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if err := pp.validate(m.config.maxGames); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if pp.StartingCash == 0 {
			pp.StartingCash = m.config.startingCash
		}

		if pp.MaxGames == 0 {
			pp.MaxGames = m.config.maxGames
		}

		gen := rng.NewSeeded(pp.Seed)
		registry := holdem.NewRegistry()
		for _, name := range pp.Bots {
			strategy, err := bot.FromName(name, gen)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}

			registry.RegisterWithCash(name, strategy, pp.StartingCash)
		}

		logger := m.logger.WithField("remoteAddr", r.RemoteAddr)
		summary, err := match.New(logger, registry.Players(), m.config.options, gen).Play(pp.MaxGames)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

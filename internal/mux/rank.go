package mux

import (
	"errors"
	"net/http"

	"holdemsim/pkg/deck"
	"holdemsim/pkg/handrank"
)

type postRankPayload struct {
	Cards string `json:"cards"`
}

type rankResponse struct {
	Category handrank.Category `json:"category"`
	Hand     string            `json:"hand"`
	TieBreak []int             `json:"tieBreak"`
	Cards    deck.Cards        `json:"cards"`
}

func parseRankCards(s string) (deck.Cards, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return nil, err
	}

	if len(cards) < 5 || len(cards) > 7 {
		return nil, errors.New("between five and seven cards are required")
	}

	seen := make(map[deck.Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return nil, errors.New("cards must be unique")
		}

		seen[c] = true
	}

	return cards, nil
}

func (m *Mux) postRank() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postRankPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		cards, err := parseRankCards(pp.Cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		ranked := handrank.Evaluate(cards)
		writeJSON(w, http.StatusOK, rankResponse{
			Category: ranked.Category,
			Hand:     ranked.String(),
			TieBreak: ranked.TieBreak(),
			Cards:    ranked.Cards,
		})
	}
}

package match

import (
	"github.com/thoas/go-funk"

	"holdemsim/pkg/deck"
	"holdemsim/pkg/handrank"
	"holdemsim/pkg/holdem"
)

// Summary is the outcome of a match
type Summary struct {
	Games     []*GameSummary `json:"games"`
	Standings []*Standing    `json:"standings"`
	Champion  string         `json:"champion,omitempty"`
}

// GameSummary is the outcome of a single game
type GameSummary struct {
	ID        string         `json:"id"`
	DeckHash  string         `json:"deckHash"`
	Blind     int            `json:"blind"`
	Community deck.Cards     `json:"community"`
	Events    []holdem.Event `json:"events"`
	Showdown  []*ShownHand   `json:"showdown"`
	Winners   []string       `json:"winners"`
	Tie       bool           `json:"tie"`
	Pot       int            `json:"pot"`
	Payouts   map[string]int `json:"payouts"`
}

// ShownHand is a hand revealed at the showdown
type ShownHand struct {
	Player   string            `json:"player"`
	Cards    deck.Cards        `json:"cards"`
	Category handrank.Category `json:"category"`
	Hand     string            `json:"hand"`
}

// Standing is a player's balance at the end of a match
type Standing struct {
	PlayerID   int    `json:"playerId"`
	Player     string `json:"player"`
	Balance    int    `json:"balance"`
	Eliminated bool   `json:"eliminated"`
}

func summarizeGame(g *holdem.Game) (*GameSummary, error) {
	result, err := g.Result()
	if err != nil {
		return nil, err
	}

	gs := &GameSummary{
		ID:        g.ID(),
		DeckHash:  g.DeckHash(),
		Blind:     g.Blind(),
		Community: g.CommunityCards(),
		Events:    g.EventHistory(),
		Showdown:  make([]*ShownHand, len(result.Showdown)),
		Winners:   make([]string, len(result.Winners)),
		Tie:       result.IsTie(),
		Pot:       g.Pot(),
		Payouts:   make(map[string]int),
	}

	for i, r := range result.Showdown {
		gs.Showdown[i] = &ShownHand{
			Player:   r.Player.String(),
			Cards:    r.Player.RevealHand().Cards(),
			Category: r.Hand.Category,
			Hand:     r.Hand.String(),
		}
	}

	for i, w := range result.Winners {
		gs.Winners[i] = w.String()
	}

	for _, p := range g.Players() {
		gs.Payouts[p.String()] = result.Payouts[p.ID()]
	}

	return gs, nil
}

func (m *Match) standings() []*Standing {
	standings := make([]*Standing, len(m.entrants))
	for i, p := range m.entrants {
		standings[i] = &Standing{
			PlayerID:   p.ID(),
			Player:     p.String(),
			Balance:    p.Balance(),
			Eliminated: !funk.Contains(m.players, p),
		}
	}

	return standings
}

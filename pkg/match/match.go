package match

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/thoas/go-funk"

	"holdemsim/internal/rng"
	"holdemsim/pkg/holdem"
)

// Match is a sequence of games between the same players
// Bankrupt players leave the match, and the dealer button moves after every game
type Match struct {
	logger  logrus.FieldLogger
	options holdem.Options
	gen     rng.Generator

	entrants []*holdem.Player
	players  []*holdem.Player
	games    int
}

// New returns a new match. The first player is the dealer of the first game
// If gen is nil, decks are shuffled with a crypto generator
func New(logger logrus.FieldLogger, players []*holdem.Player, opts holdem.Options, gen rng.Generator) *Match {
	entrants := make([]*holdem.Player, len(players))
	copy(entrants, players)

	seated := make([]*holdem.Player, len(players))
	copy(seated, players)

	return &Match{
		logger:   logger,
		options:  opts,
		gen:      gen,
		entrants: entrants,
		players:  seated,
	}
}

// Players returns the players left in the match, in seating order
func (m *Match) Players() []*holdem.Player {
	players := make([]*holdem.Player, len(m.players))
	copy(players, m.players)

	return players
}

// GamesPlayed returns the number of games played
func (m *Match) GamesPlayed() int {
	return m.games
}

// PlayGame plays a game to the end: a betting round before the flop,
// and one after each of the flop, the turn and the river
func (m *Match) PlayGame() (*holdem.Game, error) {
	g, err := holdem.NewGame(m.logger, m.players, m.options, m.gen)
	if err != nil {
		return nil, err
	}

	g.RunBettingRound()
	for _, n := range []int{3, 4, 5} {
		if err := g.DealCommunityCards(n); err != nil {
			return nil, err
		}

		g.RunBettingRound()
	}

	g.Resolve()
	m.games++

	return g, nil
}

// MoveDealer removes bankrupt players and passes the dealer button to the next player
// If the dealer is still in the match, the dealer moves to the end of the order
func (m *Match) MoveDealer() {
	if len(m.players) == 0 {
		return
	}

	first := m.players[0]
	m.players = funk.Filter(m.players, func(p *holdem.Player) bool {
		return !p.IsBankrupt()
	}).([]*holdem.Player)

	if len(m.players) > 0 && m.players[0] == first {
		m.players = append(m.players[1:], first)
	}
}

// IsOver returns true if at most one player is left
func (m *Match) IsOver() bool {
	return len(m.players) < 2
}

// Play plays games until one player is left, or maxGames have been played
// A maxGames of zero or less means no limit
func (m *Match) Play(maxGames int) (*Summary, error) {
	summary := &Summary{
		Games: make([]*GameSummary, 0),
	}

	for !m.IsOver() && (maxGames <= 0 || m.games < maxGames) {
		g, err := m.PlayGame()
		if err != nil {
			return nil, fmt.Errorf("could not play game %d: %w", m.games+1, err)
		}

		gs, err := summarizeGame(g)
		if err != nil {
			return nil, fmt.Errorf("could not summarize game %d: %w", m.games, err)
		}

		summary.Games = append(summary.Games, gs)

		m.logger.WithFields(logrus.Fields{
			"game":    gs.ID,
			"winners": gs.Winners,
			"pot":     gs.Pot,
		}).Info("game finished")

		m.MoveDealer()
	}

	summary.Standings = m.standings()
	if len(m.players) == 1 {
		summary.Champion = m.players[0].String()
	}

	return summary, nil
}

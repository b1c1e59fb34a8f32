package holdem

import (
	"testing"

	"github.com/sirupsen/logrus"

	"holdemsim/pkg/action"
	"holdemsim/pkg/deck"
)

// callStrategy matches the bid level
var callStrategy = StrategyFunc(func(view *View, bidLevel int, _ *deck.Hand) int {
	return bidLevel - view.Commitment()
})

var foldStrategy = StrategyFunc(func(*View, int, *deck.Hand) int {
	return 0
})

// scripted returns the deltas in order, then calls
func scripted(deltas ...int) Strategy {
	return StrategyFunc(func(view *View, bidLevel int, hand *deck.Hand) int {
		if len(deltas) == 0 {
			return callStrategy.Bid(view, bidLevel, hand)
		}

		delta := deltas[0]
		deltas = deltas[1:]
		return delta
	})
}

// riggedGame deals cards in order: two to each player in seating order, then the community cards
func riggedGame(t *testing.T, opts Options, players []*Player, cards string) *Game {
	t.Helper()

	g, err := newGameWithDeck(logrus.StandardLogger(), players, opts, deck.NewFromCards(deck.CardsFromString(cards)))
	if err != nil {
		t.Fatal(err)
	}

	return g
}

// playOut runs every betting round, deals the board and resolves the game
func playOut(t *testing.T, g *Game) *Result {
	t.Helper()

	g.RunBettingRound()
	for _, n := range []int{3, 4, 5} {
		if err := g.DealCommunityCards(n); err != nil {
			t.Fatal(err)
		}

		g.RunBettingRound()
	}

	return g.Resolve()
}

func actionsOf(events []Event) []action.Action {
	actions := make([]action.Action, len(events))
	for i, e := range events {
		actions[i] = e.Kind
	}

	return actions
}

func playersOf(events []Event) []*Player {
	players := make([]*Player, len(events))
	for i, e := range events {
		players[i] = e.Player
	}

	return players
}

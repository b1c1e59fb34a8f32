package holdem

import (
	"sort"

	"github.com/sirupsen/logrus"

	"holdemsim/pkg/action"
	"holdemsim/pkg/handrank"
	"holdemsim/pkg/potmanager"
)

// Ranking is a player's place in the showdown
type Ranking struct {
	Player *Player
	Hand   *handrank.RankedHand
}

// Result is the settled outcome of a game
type Result struct {
	// Showdown is ordered best hand first. It is empty if the game was won without a showdown
	// Players with equal hands keep their seating order
	Showdown []Ranking

	// Winners holds a single player, or every player that tied for the best hand
	Winners []*Player

	// Payouts are the balance adjustments keyed by player ID
	Payouts map[int]int
}

// IsTie returns true if the pot was split
func (r *Result) IsTie() bool {
	return len(r.Winners) > 1
}

// Resolve settles the game and adjusts every player's cash
// Resolve should be called after the final betting round. Calling it again returns the same result
func (g *Game) Resolve() *Result {
	if g.result != nil {
		return g.result
	}

	remaining := g.remaining()
	var payouts *potmanager.Payouts

	if len(remaining) == 1 {
		winner := remaining[0]
		payouts = potmanager.PayWinner(g.stake(winner), g.stakesExcept(winner))
		g.addEvent(winner, action.Win, g.Commitment(winner))

		g.result = &Result{
			Showdown: []Ranking{},
			Winners:  []*Player{winner},
		}
	} else {
		showdown := g.rankShowdown(remaining)
		winners := []*Player{showdown[0].Player}
		for _, r := range showdown[1:] {
			if r.Hand.Compare(showdown[0].Hand) == 0 {
				winners = append(winners, r.Player)
			}
		}

		if len(winners) == 1 {
			payouts = potmanager.PayWinner(g.stake(winners[0]), g.stakesExcept(winners[0]))
			g.addEvent(winners[0], action.Win, g.Commitment(winners[0]))
		} else {
			payouts = potmanager.SplitPot(g.stakesOf(winners), g.stakesExcept(winners...))
			for _, w := range winners {
				g.addEvent(w, action.Tie, g.Commitment(w))
			}
		}

		for _, r := range showdown[len(winners):] {
			g.addEvent(r.Player, action.Lost, g.Commitment(r.Player))
		}

		g.result = &Result{
			Showdown: showdown,
			Winners:  winners,
		}
	}

	if err := payouts.Apply(); err != nil {
		panic(err)
	}
	g.result.Payouts = payouts.Map()

	winners := make([]string, len(g.result.Winners))
	for i, w := range g.result.Winners {
		winners[i] = w.String()
	}

	g.logger.WithFields(logrus.Fields{
		"winners":  winners,
		"pot":      g.Pot(),
		"showdown": g.showdown,
	}).Info("game resolved")

	return g.result
}

// rankShowdown reveals the hands of the remaining players and orders them best first
func (g *Game) rankShowdown(remaining []*Player) []Ranking {
	g.showdown = true

	community := g.CommunityCards()
	showdown := make([]Ranking, len(remaining))
	for i, p := range remaining {
		showdown[i] = Ranking{
			Player: p,
			Hand:   handrank.ForHand(p.RevealHand(), community),
		}
	}

	sort.SliceStable(showdown, func(i, j int) bool {
		return showdown[i].Hand.Beats(showdown[j].Hand)
	})

	for _, r := range showdown {
		g.logger.WithFields(logrus.Fields{
			"player": r.Player.String(),
			"hand":   r.Hand.String(),
		}).Debug("revealed hand")
	}

	return showdown
}

// Result returns the outcome of the game
func (g *Game) Result() (*Result, error) {
	if g.result == nil {
		return nil, ErrNotResolved
	}

	return g.result, nil
}

// Showdown returns the revealed hands, best first
func (g *Game) Showdown() ([]Ranking, error) {
	if g.result == nil {
		return nil, ErrNotResolved
	}

	showdown := make([]Ranking, len(g.result.Showdown))
	copy(showdown, g.result.Showdown)

	return showdown, nil
}

// Winner returns the winner of the game, or nil if the game is unresolved or was a tie
func (g *Game) Winner() *Player {
	if g.result == nil || g.result.IsTie() {
		return nil
	}

	return g.result.Winners[0]
}

func (g *Game) stake(p *Player) potmanager.Stake {
	return potmanager.Stake{
		Participant: p,
		Committed:   g.Commitment(p),
	}
}

func (g *Game) stakesOf(players []*Player) []potmanager.Stake {
	stakes := make([]potmanager.Stake, len(players))
	for i, p := range players {
		stakes[i] = g.stake(p)
	}

	return stakes
}

// stakesExcept returns the stakes of every player dealt in, folded or not, except the excluded ones
func (g *Game) stakesExcept(excluded ...*Player) []potmanager.Stake {
	stakes := make([]potmanager.Stake, 0, len(g.players))

PlayerLoop:
	for _, p := range g.players {
		for _, e := range excluded {
			if p == e {
				continue PlayerLoop
			}
		}

		stakes = append(stakes, g.stake(p))
	}

	return stakes
}

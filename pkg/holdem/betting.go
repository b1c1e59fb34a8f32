package holdem

import (
	"github.com/sirupsen/logrus"

	"holdemsim/pkg/action"
)

// MoreBidsRequired returns true if at least two players in the hand can still add to their commitment
// A player can add if it is not all-in and owns more cash than the bid level
func (g *Game) MoreBidsRequired() bool {
	level := g.bidLevel()
	count := 0
	for _, p := range g.remaining() {
		if g.LastAction(p) != action.AllIn && p.cash > level {
			count++
		}
	}

	return count > 1
}

// RunBettingRound asks the players for bids until every raise has been matched
// The round is skipped unless MoreBidsRequired() is true. Turn order carries over
// between rounds: the next round starts with the player after the one that closed this round
func (g *Game) RunBettingRound() {
	if g.result != nil || !g.MoreBidsRequired() {
		return
	}

	bidLevel := g.bidLevel()

	// marker is the player whose bid must be matched before the round is over
	var marker *Player
	skipped := 0

	for g.activeCount() > 1 {
		p := g.nextSeat()
		if p == marker {
			break
		}

		prev := g.Commitment(p)
		if p.cash <= prev {
			// already all-in
			skipped++
			if skipped >= g.activeCount() {
				break
			}

			continue
		}

		skipped = 0
		delta := p.bid(&View{game: g, player: p}, bidLevel)
		if delta < 0 {
			g.logger.WithFields(logrus.Fields{
				"player": p.String(),
				"delta":  delta,
			}).Warn("strategy returned a negative bid, treating it as zero")
			delta = 0
		}

		// delta may be AllIn, so compare before adding
		candidate := p.cash
		if delta < p.cash-prev {
			candidate = prev + delta
		}

		switch {
		case candidate == p.cash:
			g.addEvent(p, action.AllIn, candidate)
		case candidate < bidLevel:
			g.addEvent(p, action.Fold, prev)
			g.folded[p] = true
		case candidate == bidLevel:
			if delta == 0 {
				g.addEvent(p, action.Pass, candidate)
			} else {
				g.addEvent(p, action.Call, candidate)
			}
		default:
			g.addEvent(p, action.Raise, candidate)
		}

		if marker == nil && candidate >= bidLevel {
			marker = p
		}

		if candidate > bidLevel {
			marker = p
			bidLevel = candidate
		}
	}
}

// nextSeat returns the next player in the hand and moves the cursor past it
func (g *Game) nextSeat() *Player {
	for {
		p := g.players[g.cursor]
		g.cursor = (g.cursor + 1) % len(g.players)
		if !g.folded[p] {
			return p
		}
	}
}

func (g *Game) activeCount() int {
	count := 0
	for _, p := range g.players {
		if !g.folded[p] {
			count++
		}
	}

	return count
}

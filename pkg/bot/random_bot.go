package bot

import (
	"holdemsim/internal/rng"
	"holdemsim/pkg/deck"
	"holdemsim/pkg/holdem"
)

// RaiseAmount is how much RandomBot raises by
const RaiseAmount = 100

// RandomBot plays without looking at its cards
// On a draw from 0-99 it goes all-in above 95, raises above 80, calls above 40, and folds otherwise
type RandomBot struct {
	gen rng.Generator
}

// NewRandomBot returns a RandomBot. If gen is nil, a crypto generator is used
func NewRandomBot(gen rng.Generator) *RandomBot {
	if gen == nil {
		gen = rng.Crypto{}
	}

	return &RandomBot{gen: gen}
}

// Bid implements holdem.Strategy
func (r *RandomBot) Bid(view *holdem.View, bidLevel int, _ *deck.Hand) int {
	toCall := bidLevel - view.Commitment()

	switch n := r.gen.Intn(100); {
	case n > 95:
		return holdem.AllIn
	case n > 80:
		return toCall + RaiseAmount
	case n > 40:
		return toCall
	}

	return 0
}

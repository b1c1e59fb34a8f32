package bot

import (
	"holdemsim/pkg/deck"
	"holdemsim/pkg/holdem"
)

// CallBot always matches the bid level. It never raises and never folds
type CallBot struct{}

// Bid implements holdem.Strategy
func (CallBot) Bid(view *holdem.View, bidLevel int, _ *deck.Hand) int {
	return bidLevel - view.Commitment()
}

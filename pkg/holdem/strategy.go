package holdem

import (
	"math"

	"holdemsim/pkg/action"
	"holdemsim/pkg/deck"
)

// AllIn is the delta a strategy returns to commit all remaining cash
const AllIn = math.MaxInt

// Strategy decides how much a player adds to its commitment
// bidLevel is the commitment the player must match to stay in the hand.
// The returned delta is added to the player's current commitment; a delta that
// leaves the player below the bid level folds
type Strategy interface {
	Bid(view *View, bidLevel int, hand *deck.Hand) int
}

// StrategyFunc adapts a function to the Strategy interface
type StrategyFunc func(view *View, bidLevel int, hand *deck.Hand) int

// Bid calls f
func (f StrategyFunc) Bid(view *View, bidLevel int, hand *deck.Hand) int {
	return f(view, bidLevel, hand)
}

// View is the read-only part of a game a strategy may look at
type View struct {
	game   *Game
	player *Player
}

// Player returns the player the view was built for
func (v *View) Player() *Player {
	return v.player
}

// Cash returns the cash owned by the player
func (v *View) Cash() int {
	return v.player.cash
}

// Commitment returns the player's cumulative commitment in this game
func (v *View) Commitment() int {
	return v.game.Commitment(v.player)
}

// LastAction returns the player's most recent action, or an empty action
func (v *View) LastAction() action.Action {
	return v.game.LastAction(v.player)
}

// Round returns how many times the player has been asked to bid, including this time
func (v *View) Round() int {
	return v.player.bids
}

// CommitmentOf returns another player's cumulative commitment
func (v *View) CommitmentOf(p *Player) int {
	return v.game.Commitment(p)
}

// LastEvent returns the most recent event of a player
func (v *View) LastEvent(p *Player) (Event, bool) {
	return v.game.LastEvent(p)
}

// CommunityCards returns a copy of the community cards
func (v *View) CommunityCards() deck.Cards {
	return v.game.CommunityCards()
}

// EventHistory returns a copy of the event log
func (v *View) EventHistory() []Event {
	return v.game.EventHistory()
}

// Players returns the players dealt into the game
func (v *View) Players() []*Player {
	return v.game.Players()
}

// Blind returns the small blind of the game
func (v *View) Blind() int {
	return v.game.Blind()
}

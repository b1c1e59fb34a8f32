package holdem

import (
	"fmt"

	"holdemsim/pkg/deck"
)

// Player is a participant in a sequence of games
// A player's cash is only changed when a game is settled
type Player struct {
	name     string
	id       int
	cash     int
	strategy Strategy

	game *Game
	hand *deck.Hand
	bids int
}

// ID returns the registry index of the player
func (p *Player) ID() int {
	return p.id
}

// Name returns the name of the player
func (p *Player) Name() string {
	return p.name
}

// Balance returns the cash owned by the player
// Commitments in a game in progress have not been subtracted yet
func (p *Player) Balance() int {
	return p.cash
}

// AdjustBalance adds to the player's cash. A negative amount is a debit
func (p *Player) AdjustBalance(amount int) {
	p.cash += amount
}

// IsBankrupt returns true if the player has no cash left
func (p *Player) IsBankrupt() bool {
	return p.cash < 1
}

// RevealHand returns the player's hand, but only when the game calls for a showdown
func (p *Player) RevealHand() *deck.Hand {
	if p.game == nil || !p.game.IsShowdown(p) {
		return nil
	}

	return p.hand
}

// Bids returns the number of decisions the player made in the current game
func (p *Player) Bids() int {
	return p.bids
}

func (p *Player) String() string {
	return fmt.Sprintf("%s%d", p.name, p.id)
}

// setHand is called by the game when the player is dealt in
func (p *Player) setHand(g *Game, hand *deck.Hand) {
	p.game = g
	p.hand = hand
	p.bids = 0
}

func (p *Player) bid(view *View, bidLevel int) int {
	p.bids++
	return p.strategy.Bid(view, bidLevel, p.hand)
}

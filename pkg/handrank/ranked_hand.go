package handrank

import (
	"errors"
	"fmt"

	"holdemsim/pkg/deck"
)

// ErrDifferentDeal is the panic value when two hands from unrelated deals are compared
var ErrDifferentDeal = errors.New("cannot compare hands from different decks")

// RankedHand is the comparable value of the best five cards a player can make
// Which fields are meaningful depends on the Category:
//
//	StraightFlush, Straight: High is the top card of the run (5 for a wheel)
//	FourOfAKind:             High is the quad rank, Kickers holds one kicker
//	FullHouse:               High is the trips rank, Low the rank that fills the house
//	Flush, HighCard:         Kickers holds the five ranks played
//	ThreeOfAKind:            High is the trips rank, Kickers holds two kickers
//	TwoPair:                 High and Low are the pairs, Kickers holds one kicker
//	OnePair:                 High is the pair rank, Kickers holds three kickers
type RankedHand struct {
	Category Category
	High     int
	Low      int
	Kickers  []int

	// Cards are the source cards, sorted by rank descending
	Cards deck.Cards

	deal *deck.Deck
}

// Evaluate ranks five to seven cards which are not bound to a deal
// Hands returned by Evaluate can be compared with each other, but never with a hand from ForHand
func Evaluate(cards deck.Cards) *RankedHand {
	return New(cards).RankedHand()
}

// ForHand ranks a player's hole cards together with the community cards
func ForHand(hand *deck.Hand, community deck.Cards) *RankedHand {
	cards := append(hand.Cards(), community...)
	r := Evaluate(cards)
	r.deal = hand.Deck()

	return r
}

// Compare returns 1 if r beats other, -1 if other beats r, and 0 for a chop
// Compare panics with ErrDifferentDeal if the hands were not ranked from the same deal
func (r *RankedHand) Compare(other *RankedHand) int {
	if r.deal != other.deal {
		panic(ErrDifferentDeal)
	}

	if r.Category != other.Category {
		return compareInts(int(r.Category), int(other.Category))
	}

	switch r.Category {
	case StraightFlush, Straight:
		return compareInts(r.High, other.High)
	case FullHouse:
		return compareRanks([]int{r.High, r.Low}, []int{other.High, other.Low})
	case Flush, HighCard:
		return compareRanks(r.Kickers, other.Kickers)
	case FourOfAKind, ThreeOfAKind, OnePair:
		if c := compareInts(r.High, other.High); c != 0 {
			return c
		}

		return compareRanks(r.Kickers, other.Kickers)
	case TwoPair:
		if c := compareRanks([]int{r.High, r.Low}, []int{other.High, other.Low}); c != 0 {
			return c
		}

		return compareRanks(r.Kickers, other.Kickers)
	}

	panic(fmt.Sprintf("unknown category: %d", r.Category))
}

// Beats returns true if r is strictly better than other
func (r *RankedHand) Beats(other *RankedHand) bool {
	return r.Compare(other) > 0
}

// TieBreak returns the ranks that decide between hands of the same category, most significant first
func (r *RankedHand) TieBreak() []int {
	tb := make([]int, 0, 5)
	switch r.Category {
	case StraightFlush, Straight:
		tb = append(tb, r.High)
	case FullHouse:
		tb = append(tb, r.High, r.Low)
	case TwoPair:
		tb = append(tb, r.High, r.Low)
	case FourOfAKind, ThreeOfAKind, OnePair:
		tb = append(tb, r.High)
	}

	return append(tb, r.Kickers...)
}

func (r *RankedHand) String() string {
	switch r.Category {
	case StraightFlush, Straight:
		return fmt.Sprintf("%s, %s high", r.Category, deck.RankName(r.High))
	case FourOfAKind, ThreeOfAKind:
		return fmt.Sprintf("%s, %ss", r.Category, deck.RankName(r.High))
	case FullHouse:
		return fmt.Sprintf("%s, %ss full of %ss", r.Category, deck.RankName(r.High), deck.RankName(r.Low))
	case TwoPair:
		return fmt.Sprintf("%s, %ss and %ss", r.Category, deck.RankName(r.High), deck.RankName(r.Low))
	case OnePair:
		return fmt.Sprintf("%s of %ss", r.Category, deck.RankName(r.High))
	case Flush, HighCard:
		return fmt.Sprintf("%s, %s high", r.Category, deck.RankName(r.Kickers[0]))
	}

	return r.Category.String()
}

func compareInts(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}

	return 0
}

// compareRanks compares positionally, highest first
func compareRanks(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareInts(a[i], b[i]); c != 0 {
			return c
		}
	}

	return compareInts(len(a), len(b))
}

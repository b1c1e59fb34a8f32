package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"holdemsim/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Size is the number of cards in a standard deck
const Size = 52

// Deck is a shuffled deck of 52 cards. A deck is shuffled once, when it is built,
// and every card is dealt at most once
type Deck struct {
	cards []Card
	next  int
}

// New returns a deck shuffled with a crypto-backed generator
func New() *Deck {
	return NewWithGenerator(rng.Crypto{})
}

// NewWithGenerator returns a deck shuffled with the provided generator
func NewWithGenerator(gen rng.Generator) *Deck {
	d := &Deck{cards: ordered()}

	for j := len(d.cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}

	return d
}

// NewFromCards returns a deck which deals the provided cards in order, followed by
// the remaining cards of a standard deck. Intended for tests which need a rigged deal.
// Panics if a card is invalid or repeated
func NewFromCards(top Cards) *Deck {
	seen := make(map[Card]bool, Size)
	cards := make([]Card, 0, Size)
	for _, c := range top {
		if !c.IsValid() || seen[c] {
			panic("deck: invalid or duplicate card " + CardToString(c))
		}

		seen[c] = true
		cards = append(cards, c)
	}

	for _, c := range ordered() {
		if !seen[c] {
			cards = append(cards, c)
		}
	}

	return &Deck{cards: cards}
}

func ordered() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

// HashCode returns a SHA1 hash code of the deck order
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned
func (d *Deck) Draw() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, ErrEndOfDeck
	}

	card := d.cards[d.next]
	d.next++

	return card, nil
}

// DealHand deals two hole cards bound to this deck
func (d *Deck) DealHand() (*Hand, error) {
	h := &Hand{deck: d}
	for i := range h.cards {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}

		h.cards[i] = card
	}

	return h, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return d.CardsLeft() >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.cards) - d.next
}

package deck

import "sort"

// Cards represents a collection of cards
type Cards []Card

func (c Cards) Len() int {
	return len(c)
}

// Less orders by rank descending, then by suit
func (c Cards) Less(i, j int) bool {
	if c[i].Rank != c[j].Rank {
		return c[i].Rank > c[j].Rank
	}

	return c[i].Suit > c[j].Suit
}

func (c Cards) Swap(i, j int) {
	c[i], c[j] = c[j], c[i]
}

// Sorted returns a copy sorted by rank descending
func (c Cards) Sorted() Cards {
	sorted := c.Clone()
	sort.Sort(sorted)

	return sorted
}

// HasCard returns true if the collection contains the specified card
func (c Cards) HasCard(card Card) bool {
	for _, cc := range c {
		if cc == card {
			return true
		}
	}

	return false
}

func (c Cards) String() string {
	return CardsToString(c)
}

// Clone returns a clone of the cards
func (c Cards) Clone() Cards {
	c2 := make(Cards, len(c))
	copy(c2, c)

	return c2
}

// Hand is a private hand of two hole cards. A Hand remembers the deck it was dealt from
type Hand struct {
	deck  *Deck
	cards [2]Card
}

// NewHand returns a hand bound to the deck. It does not draw from the deck; use Deck.DealHand for that
func NewHand(d *Deck, first, second Card) *Hand {
	return &Hand{deck: d, cards: [2]Card{first, second}}
}

// Cards returns a copy of the hole cards
func (h *Hand) Cards() Cards {
	return Cards{h.cards[0], h.cards[1]}
}

// Deck returns the deck the hand was dealt from
func (h *Hand) Deck() *Deck {
	return h.deck
}

// SameDeck returns true if both hands were dealt from the same deck
func (h *Hand) SameDeck(other *Hand) bool {
	return h != nil && other != nil && h.deck == other.deck
}

func (h *Hand) String() string {
	return CardsToString(h.cards[:])
}

package handrank

import (
	"holdemsim/pkg/deck"
)

// HandAnalyzer breaks a set of five to seven cards down into the combinations it can make
type HandAnalyzer struct {
	cards         deck.Cards
	distinct      []int
	flush         []int
	quads         []int
	trips         []int
	pairs         []int
	straightFlush int
	straight      int

	category Category
}

// New will return a new HandAnalyzer instance
// The cards are copied, so the caller's slice is never modified
func New(cards deck.Cards) *HandAnalyzer {
	h := &HandAnalyzer{
		cards: cards.Sorted(),
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateCategory()

	return h
}

// analyzeHand groups the cards by rank and by suit
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	suitRanks := make(map[deck.Suit][]int)
	counts := make(map[int]int)

	for _, card := range h.cards {
		suitRanks[card.Suit] = append(suitRanks[card.Suit], card.Rank)

		if counts[card.Rank] == 0 {
			h.distinct = append(h.distinct, card.Rank)
		}
		counts[card.Rank]++
	}

	// h.distinct is descending because h.cards is
	for _, rank := range h.distinct {
		switch counts[rank] {
		case 4:
			h.quads = append(h.quads, rank)
		case 3:
			h.trips = append(h.trips, rank)
		case 2:
			h.pairs = append(h.pairs, rank)
		}
	}

	for _, suit := range deck.Suits {
		if ranks := suitRanks[suit]; len(ranks) >= 5 {
			h.flush = ranks
			break
		}
	}

	if len(h.distinct) >= 5 {
		h.straight, _ = findStraight(h.distinct)
	}

	// a straight and a flush can both be present without making a straight flush,
	// so the flush suit is checked on its own
	if h.flush != nil && h.straight > 0 {
		h.straightFlush, _ = findStraight(h.flush)
	}
}

// calculateCategory will determine the best category
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateCategory() {
	if _, ok := h.GetStraightFlush(); ok {
		h.category = StraightFlush
		return
	}

	if len(h.distinct) == len(h.cards) {
		// no duplicate ranks, so nothing can pair
		if _, ok := h.GetFlush(); ok {
			h.category = Flush
		} else if _, ok := h.GetStraight(); ok {
			h.category = Straight
		} else {
			h.category = HighCard
		}

		return
	}

	if _, ok := h.GetFourOfAKind(); ok {
		h.category = FourOfAKind
	} else if _, ok := h.GetFullHouse(); ok {
		h.category = FullHouse
	} else if _, ok := h.GetFlush(); ok {
		h.category = Flush
	} else if _, ok := h.GetStraight(); ok {
		h.category = Straight
	} else if _, ok := h.GetThreeOfAKind(); ok {
		h.category = ThreeOfAKind
	} else if _, ok := h.GetTwoPair(); ok {
		h.category = TwoPair
	} else if _, ok := h.GetPair(); ok {
		h.category = OnePair
	} else {
		h.category = HighCard
	}
}

// GetCategory returns the best category the cards can make
func (h *HandAnalyzer) GetCategory() Category {
	return h.category
}

// GetStraightFlush will return the high card of the best straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (int, bool) {
	if h.straightFlush > 0 {
		return h.straightFlush, true
	}

	return 0, false
}

// GetFourOfAKind will return the best four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the best full house, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if len(h.trips) == 0 {
		return nil, false
	}

	if len(h.trips) >= 2 {
		// the second set of trips plays as the pair
		return []int{h.trips[0], h.trips[1]}, true
	}

	if len(h.pairs) > 0 {
		return []int{h.trips[0], h.pairs[0]}, true
	}

	return nil, false
}

// GetFlush will return the five highest ranks of the flush suit, if possible
func (h *HandAnalyzer) GetFlush() ([]int, bool) {
	if h.flush != nil {
		return h.flush[0:5], true
	}

	return nil, false
}

// GetStraight will return the high card of the best straight, if possible
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the best three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return the best two pairs, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if len(h.pairs) >= 2 {
		return h.pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}

// GetHighCard will return the five highest ranks
func (h *HandAnalyzer) GetHighCard() ([]int, bool) {
	return h.kickers(5), true
}

// kickers returns the n highest ranks, skipping any rank in exclude
func (h *HandAnalyzer) kickers(n int, exclude ...int) []int {
	ranks := make([]int, 0, n)

CardLoop:
	for _, card := range h.cards {
		for _, e := range exclude {
			if card.Rank == e {
				continue CardLoop
			}
		}

		ranks = append(ranks, card.Rank)
		if len(ranks) == n {
			break
		}
	}

	return ranks
}

// RankedHand builds the comparable value for the analyzed cards
func (h *HandAnalyzer) RankedHand() *RankedHand {
	r := &RankedHand{
		Category: h.category,
		Cards:    h.cards.Clone(),
	}

	switch h.category {
	case StraightFlush:
		r.High, _ = h.GetStraightFlush()
	case FourOfAKind:
		r.High, _ = h.GetFourOfAKind()
		r.Kickers = h.kickers(1, r.High)
	case FullHouse:
		fh, _ := h.GetFullHouse()
		r.High, r.Low = fh[0], fh[1]
	case Flush:
		r.Kickers, _ = h.GetFlush()
	case Straight:
		r.High, _ = h.GetStraight()
	case ThreeOfAKind:
		r.High, _ = h.GetThreeOfAKind()
		r.Kickers = h.kickers(2, r.High)
	case TwoPair:
		tp, _ := h.GetTwoPair()
		r.High, r.Low = tp[0], tp[1]
		r.Kickers = h.kickers(1, r.High, r.Low)
	case OnePair:
		r.High, _ = h.GetPair()
		r.Kickers = h.kickers(3, r.High)
	case HighCard:
		r.Kickers, _ = h.GetHighCard()
	}

	return r
}

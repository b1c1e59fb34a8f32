package handrank

import (
	"fmt"
	"math/rand"
	"testing"

	refpoker "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"

	"holdemsim/pkg/deck"
)

func eval(cards string) *RankedHand {
	return Evaluate(deck.CardsFromString(cards))
}

func TestRankedHand_Compare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"straight flush beats quads", "9h,10h,11h,12h,13h,2c,3d", "14c,14d,14h,14s,13c,2d,3h", 1},
		{"quads beat full house", "2c,2d,2h,2s,5c,7d,9h", "14c,14d,14h,13s,13c,2d,3h", 1},
		{"full house beats flush", "2c,2d,2h,5s,5c,7d,9h", "14c,12c,9c,7c,3c,2d,3h", 1},
		{"flush beats straight", "14c,12c,9c,7c,3c,2d,3h", "10c,11d,12h,13s,14d,2d,3h", 1},
		{"straight beats trips", "2c,3d,4h,5s,6c,13d,9h", "14c,14d,14h,12s,3c,2d,7h", 1},
		{"trips beat two pair", "2c,2d,2h,5s,7c,9d,11h", "14c,14d,13h,13s,3c,2d,7h", 1},
		{"two pair beats pair", "2c,2d,3h,3s,7c,9d,11h", "14c,14d,13h,12s,3c,2d,7h", 1},
		{"pair beats high card", "2c,2d,4h,5s,7c,9d,11h", "14c,13d,12h,10s,3c,2d,7h", 1},

		{"wheel loses to six high", "14c,2d,3h,4s,5c,9d,9h", "2c,3d,4h,5s,6c,13d,13h", -1},
		{"broadway beats king high", "10c,11d,12h,13s,14c,2d,3h", "9c,10d,11h,12s,13c,2d,3h", 1},
		{"same straight chops", "10c,11d,12h,13s,14c,2d,3h", "10d,11h,12c,13d,14h,4d,5h", 0},

		{"quads kicker", "13c,13d,13h,13s,14c,2d,3h", "13c,13d,13h,13s,12c,2d,3h", 1},
		{"full house trips first", "13c,13d,13h,2s,2c,4d,6h", "12c,12d,12h,14s,14c,4d,6h", 1},
		{"full house pair second", "13c,13d,13h,3s,3c,4d,6h", "13c,13d,13h,2s,2c,4d,6h", 1},
		{"full house from two trips", "13c,13d,13h,3s,3c,3d,6h", "13c,13d,13h,2s,2c,4d,6h", 1},
		{"flush fifth card", "14c,12c,9c,7c,4c,2d,3h", "14c,12c,9c,7c,3c,2d,4h", 1},
		{"trips kicker", "9c,9d,9h,14s,4c,2d,3h", "9c,9d,9h,13s,12c,2d,3h", 1},
		{"two pair high pair", "9c,9d,3h,3s,4c,2d,6h", "8c,8d,7h,7s,14c,2d,3h", 1},
		{"two pair low pair", "9c,9d,4h,4s,3c,2d,6h", "9c,9d,3h,3s,14c,2d,7h", 1},
		{"two pair kicker", "9c,9d,4h,4s,14c,2d,6h", "9c,9d,4h,4s,13c,2d,6h", 1},
		{"pair third kicker", "9c,9d,14h,12s,8c,2d,3h", "9c,9d,14h,12s,7c,2d,3h", 1},
		{"high card fifth card", "14c,12d,10h,8s,6c,2d,3h", "14c,12d,10h,8s,5c,2d,3h", 1},
		{"high card ignores sixth card", "14c,12d,10h,8s,6c,4d,3h", "14c,12d,10h,8s,6c,4d,2h", 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := assert.New(t)
			h1 := eval(test.a)
			h2 := eval(test.b)
			a.Equal(test.expected, h1.Compare(h2))
			a.Equal(-test.expected, h2.Compare(h1))
			a.Equal(test.expected > 0, h1.Beats(h2))
		})
	}
}

func TestRankedHand_StraightAndFlushIsNotStraightFlush(t *testing.T) {
	a := assert.New(t)

	// 5-6-7-8-9 straight, hearts flush without the 8
	h := eval("5h,6h,7h,8s,9h,12h,4d")
	a.Equal(Flush, h.Category)
	a.Equal([]int{12, 9, 7, 6, 5}, h.Kickers)
}

func TestRankedHand_TieBreak(t *testing.T) {
	a := assert.New(t)

	a.Equal([]int{13}, eval("9h,10h,11h,12h,13h,2c,3d").TieBreak())
	a.Equal([]int{14, 13}, eval("14c,14d,14h,14s,13c,2d,3h").TieBreak())
	a.Equal([]int{2, 5}, eval("2c,2d,2h,5s,5c,7d,9h").TieBreak())
	a.Equal([]int{5}, eval("14c,2d,3h,4s,5c,9d,9h").TieBreak())
	a.Equal([]int{2, 11, 9}, eval("2c,2d,2h,5s,7c,9d,11h").TieBreak())
	a.Equal([]int{2, 11, 9, 7}, eval("2c,2d,4h,5s,7c,9d,11h").TieBreak())
	a.Equal([]int{14, 13, 12, 10, 7}, eval("14c,13d,12h,10s,3c,2d,7h").TieBreak())
}

func TestRankedHand_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("Straight flush, K high", eval("9h,10h,11h,12h,13h,2c,3d").String())
	a.Equal("Four of a kind, As", eval("14c,14d,14h,14s,13c,2d,3h").String())
	a.Equal("Full house, 2s full of 5s", eval("2c,2d,2h,5s,5c,7d,9h").String())
	a.Equal("Flush, A high", eval("14c,12c,9c,7c,3c,2d,3h").String())
	a.Equal("Straight, 5 high", eval("14c,2d,3h,4s,5c,9d,9h").String())
	a.Equal("Three of a kind, 2s", eval("2c,2d,2h,5s,7c,9d,11h").String())
	a.Equal("Two pair, As and Ks", eval("14c,14d,13h,13s,3c,2d,7h").String())
	a.Equal("Pair of 2s", eval("2c,2d,4h,5s,7c,9d,11h").String())
	a.Equal("High card, A high", eval("14c,13d,12h,10s,3c,2d,7h").String())
}

func TestForHand_differentDeals(t *testing.T) {
	a := assert.New(t)

	d1 := deck.New()
	d2 := deck.New()

	h1, _ := d1.DealHand()
	h2, _ := d1.DealHand()
	h3, _ := d2.DealHand()

	community := deck.CardsFromString("2c,3c,4c,5c,6c")
	r1 := ForHand(h1, community)
	r2 := ForHand(h2, community)
	r3 := ForHand(h3, community)

	a.NotPanics(func() { r1.Compare(r2) })
	a.PanicsWithValue(ErrDifferentDeal, func() { r1.Compare(r3) })
	a.PanicsWithValue(ErrDifferentDeal, func() { r1.Compare(eval("2c,3c,4c,5c,6c,7d,8d")) })
}

// dealShowdown deals a community and n players' hole cards from a seeded deck
func dealShowdown(seed int64, n int) (deck.Cards, []*deck.Hand) {
	d := deck.NewWithGenerator(rand.New(rand.NewSource(seed)))
	hands := make([]*deck.Hand, n)
	for i := range hands {
		hands[i], _ = d.DealHand()
	}

	community := make(deck.Cards, 5)
	for i := range community {
		community[i], _ = d.Draw()
	}

	return community, hands
}

func TestRankedHand_TotalOrder(t *testing.T) {
	a := assert.New(t)

	for seed := int64(1); seed <= 300; seed++ {
		community, hands := dealShowdown(seed, 6)
		ranked := make([]*RankedHand, len(hands))
		for i, h := range hands {
			ranked[i] = ForHand(h, community)
		}

		for _, x := range ranked {
			a.Equal(0, x.Compare(x))
			for _, y := range ranked {
				// antisymmetric
				a.Equal(-x.Compare(y), y.Compare(x))

				for _, z := range ranked {
					// transitive
					if x.Compare(y) >= 0 && y.Compare(z) >= 0 {
						a.True(x.Compare(z) >= 0, "seed %d: %s >= %s >= %s", seed, x.Cards, y.Cards, z.Cards)
					}
				}
			}
		}
	}
}

func toReference(t *testing.T, cards deck.Cards) [7]refpoker.Card {
	t.Helper()

	var ref [7]refpoker.Card
	for i, c := range cards {
		var suit refpoker.Suit
		switch c.Suit {
		case deck.Clubs:
			suit = refpoker.Club
		case deck.Diamonds:
			suit = refpoker.Diamond
		case deck.Hearts:
			suit = refpoker.Heart
		case deck.Spades:
			suit = refpoker.Spade
		}

		rank := c.Rank
		if rank == deck.Ace {
			rank = deck.LowAce
		}

		rc, err := refpoker.MakeCard(suit, refpoker.Rank(rank))
		if err != nil {
			t.Fatal(err)
		}

		ref[i] = rc
	}

	return ref
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}

	return 0
}

func TestRankedHand_AgreesWithReferenceEvaluator(t *testing.T) {
	for seed := int64(1); seed <= 2000; seed++ {
		community, hands := dealShowdown(seed, 2)

		c1 := append(hands[0].Cards(), community...)
		c2 := append(hands[1].Cards(), community...)

		ref1 := toReference(t, c1)
		ref2 := toReference(t, c2)
		expected := sign(int(refpoker.Eval7(&ref1)) - int(refpoker.Eval7(&ref2)))

		r1 := ForHand(hands[0], community)
		r2 := ForHand(hands[1], community)
		if !assert.Equal(t, expected, r1.Compare(r2), fmt.Sprintf("seed %d: %s (%s) vs %s (%s)", seed, c1, r1, c2, r2)) {
			return
		}
	}
}

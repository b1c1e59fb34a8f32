package potmanager

import "sort"

// PayWinner settles a game with a single winner
// Every other participant pays what they committed, capped at what the winner committed.
// Anything committed above the cap stays with its owner
func PayWinner(winner Stake, others []Stake) *Payouts {
	payouts := newPayouts()
	payouts.add(winner, 0)

	for _, other := range others {
		amount := min(other.Committed, winner.Committed)
		if amount <= 0 {
			continue
		}

		payouts.add(other, -amount)
		payouts.add(winner, amount)
	}

	return payouts
}

// SplitPot settles a game where the winners tied
// The winners must be in rank order; uneven chips go to the best-ranked winner,
// even when that winner is not eligible for the tier being split.
// Each distinct winner commitment forms a tier. A tier is shared by the winners who committed
// at least that much, and funded by each loser up to that level
func SplitPot(winners []Stake, losers []Stake) *Payouts {
	if len(winners) == 0 {
		panic("potmanager: SplitPot requires at least one winner")
	}

	payouts := newPayouts()
	for _, w := range winners {
		payouts.add(w, 0)
	}

	owed := make([]int, len(losers))
	for i, l := range losers {
		owed[i] = l.Committed
	}

	processed := 0
	for _, tier := range tiers(winners) {
		if tier <= processed {
			continue
		}

		eligible := make([]Stake, 0, len(winners))
		for _, w := range winners {
			if w.Committed >= tier {
				eligible = append(eligible, w)
			}
		}

		split := len(eligible)
		for i := range losers {
			amount := min(owed[i], tier-processed)
			if amount <= 0 {
				continue
			}

			share := amount / split
			for _, w := range eligible {
				payouts.add(w, share)
			}

			if remainder := amount - share*split; remainder > 0 {
				payouts.add(winners[0], remainder)
			}

			owed[i] -= amount
		}

		processed = tier
	}

	for i, l := range losers {
		if paid := l.Committed - owed[i]; paid > 0 {
			payouts.add(l, -paid)
		}
	}

	return payouts
}

// tiers returns the distinct winner commitments, ascending
func tiers(winners []Stake) []int {
	seen := make(map[int]bool, len(winners))
	levels := make([]int, 0, len(winners))
	for _, w := range winners {
		if !seen[w.Committed] {
			seen[w.Committed] = true
			levels = append(levels, w.Committed)
		}
	}

	sort.Ints(levels)
	return levels
}

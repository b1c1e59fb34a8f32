package handrank

import "holdemsim/pkg/deck"

// used to keep track of the straight progress
type straightTracker struct {
	startRank int
	prevRank  int
	streak    int
}

// check feeds the next rank, in descending order, into the tracker
// If a five-card run is complete, the highest rank of the run is returned
func (st *straightTracker) check(rank int) (int, bool) {
	switch {
	case st.streak > 0 && rank == st.prevRank:
		// duplicate ranks never break a run
		return 0, false
	case st.streak > 0 && rank+1 == st.prevRank:
		st.streak++
	default:
		st.streak = 1
		st.startRank = rank
	}

	st.prevRank = rank
	if st.streak >= 5 {
		return st.startRank, true
	}

	return 0, false
}

// findStraight returns the high card of the best straight within ranks
// The ranks must be sorted descending. An ace is tried again as a low ace to find a wheel
func findStraight(ranks []int) (int, bool) {
	st := straightTracker{}
	for _, rank := range ranks {
		if high, ok := st.check(rank); ok {
			return high, true
		}
	}

	if len(ranks) > 0 && ranks[0] == deck.Ace {
		return st.check(deck.LowAce)
	}

	return 0, false
}

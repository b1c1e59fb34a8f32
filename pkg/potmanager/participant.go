package potmanager

// Participant provides an interface for retrieving and adjusting a participant's balance
type Participant interface {
	ID() int
	Balance() int
	AdjustBalance(amount int)
}

// Stake is a participant together with the total it committed over the whole game
type Stake struct {
	Participant
	Committed int
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}

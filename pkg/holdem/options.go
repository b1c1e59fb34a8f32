package holdem

import "errors"

// Options configures the forced bets of a game
type Options struct {
	// BaseBlind is the small blind at a full table
	BaseBlind int `json:"baseBlind" yaml:"baseBlind"`

	// FullTable is the number of players at which the small blind equals BaseBlind
	// The blind doubles for every player fewer, and halves for every player more
	FullTable int `json:"fullTable" yaml:"fullTable"`
}

// DefaultOptions returns the default options for a game
func DefaultOptions() Options {
	return Options{
		BaseBlind: 100,
		FullTable: 6,
	}
}

func validateOptions(opts Options) error {
	if opts.BaseBlind <= 0 {
		return errors.New("base blind must be greater than zero")
	}

	if opts.FullTable < 2 {
		return errors.New("a full table must have at least two players")
	}

	return nil
}

// blindFor returns the small blind for a game with n players
func (o Options) blindFor(n int) int {
	if n <= o.FullTable {
		return o.BaseBlind << uint(o.FullTable-n)
	}

	blind := o.BaseBlind >> uint(n-o.FullTable)
	if blind < 1 {
		return 1
	}

	return blind
}

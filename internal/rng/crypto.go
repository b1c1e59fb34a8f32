package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto draws from crypto/rand. It is the default generator for shuffling a deck
type Crypto struct{}

// Intn returns a uniformly distributed number in [0, n)
func (Crypto) Intn(n int) int {
	if n <= 0 {
		panic("rng: n must be > 0")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto draws from crypto/rand
// It is the generator used for live sessions
type Crypto struct{}

// Intn returns a number in [0, n)
// Panics if n <= 0 or the system source fails
func (Crypto) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(v.Int64())
}

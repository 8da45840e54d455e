package engine

import (
	"math/rand/v2"
	"time"
)

// Rand is the source of randomness for gifts and events.
type Rand interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewRand returns a PCG-backed Rand. A zero seed uses the current time.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

package t2048

import (
	"math/rand"
	"time"
)

// Source is the slice of math/rand the grid needs.
// *rand.Rand satisfies it; tests can supply a scripted sequence.
type Source interface {
	// Intn returns a value in [0, n). n is always > 0.
	Intn(n int) int
}

// NewSource returns a long-lived random source.
// A zero seed means seed from the current time.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

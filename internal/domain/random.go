package domain

import (
	"fmt"
	"math/rand/v2"
)

// Rand is the source of randomness used by distinct selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// globalRand uses the package-level math/rand/v2 generator.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand returns a Rand backed by the auto-seeded global generator.
func DefaultRand() Rand {
	return globalRand{}
}

// RandomDistinctIndex returns an index in [0, n) other than current, chosen
// uniformly among the n-1 alternatives.
//
// When current is not a valid index it returns current with ErrNoCurrentItem.
// When n == 1 it returns current with ErrSelectionNoop.
func RandomDistinctIndex(n, current int, r Rand) (int, error) {
	if current < 0 || current >= n {
		return current, fmt.Errorf("%w: was given %d items but current index is %d", ErrNoCurrentItem, n, current)
	}
	if n == 1 {
		return current, fmt.Errorf("%w: was given 1 item", ErrSelectionNoop)
	}
	if r == nil {
		r = DefaultRand()
	}
	k := r.IntN(n - 1)
	if k >= current {
		k++
	}
	return k, nil
}

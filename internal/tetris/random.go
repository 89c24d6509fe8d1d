package tetris

import "math/rand"

// Rand is the source of randomness for shape and colour selection.
// *rand.Rand satisfies it; tests supply scripted sequences.
type Rand interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// RandFactory builds a Rand for a given seed. The game calls it on every reset.
type RandFactory func(seed int64) Rand

// SeededRand is the default factory backed by math/rand.
func SeededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

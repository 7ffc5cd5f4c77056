package core

import "math/rand"

// Rand is the single source of randomness used for response variation.
// Injectable so tests can force every decoration on or off.
type Rand interface {
	// Next returns a value in [0, 1).
	Next() float64
}

type systemRand struct{}

func (systemRand) Next() float64 { return rand.Float64() }

func NewRand() Rand { return systemRand{} }

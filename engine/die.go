package engine

import (
	"math/rand"
	"time"
)

// Faces is the number of sides on the die.
const Faces = 6

// Die is the random source for turns. Roll returns a value in [1, Faces].
type Die interface {
	Roll() int
}

// RandomDie is a uniformly distributed die.
type RandomDie struct {
	seed int64
	rng  *rand.Rand
}

// NewDie creates a die from seed. A zero seed is replaced with the current time.
func NewDie(seed int64) *RandomDie {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomDie{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the die was created with, so a game can be replayed.
func (d *RandomDie) Seed() int64 {
	return d.seed
}

func (d *RandomDie) Roll() int {
	return d.rng.Intn(Faces) + 1
}

package services

import (
	"math/rand"
	"time"
)

// Clock supplies the wall-clock time used for timestamps and market hours
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local time
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// RandomSource draws uniform values in [0,1) for price ticks
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a seeded generator; seed 0 seeds from the clock.
// The generator is not safe for concurrent use and is only called under the engine lock.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Package jitter adds randomness to durations so that values assigned
// together (cache TTLs, retry intervals) do not fire together.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter is the standard jitter factor (50%).
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration returns d with jitter applied.
// The result lies in [d, d*(1+jitterFactor)].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	randMutex.Lock()
	j := globalRand.Float64() * jitterFactor * float64(d)
	randMutex.Unlock()
	return d + time.Duration(j)
}

// DurationWithSeed is Duration with a caller-owned rng, for deterministic tests.
func DurationWithSeed(d time.Duration, jitterFactor float64, rng *rand.Rand) time.Duration {
	return d + time.Duration(rng.Float64()*jitterFactor*float64(d))
}

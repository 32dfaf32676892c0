package maze

import (
	"math/rand"
	"time"
)

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// timeSeed is the fallback when no source was configured.
func timeSeed() int64 {
	return time.Now().UnixNano()
}

// oddIn returns a uniformly chosen odd index in [lo, hi]. lo must be odd.
func oddIn(r *rand.Rand, lo, hi int) int {
	return lo + 2*r.Intn((hi-lo)/2+1)
}

// evenIn returns a uniformly chosen even index in [lo, hi], or -1 when the
// range holds none. lo must be even.
func evenIn(r *rand.Rand, lo, hi int) int {
	if hi < lo {
		return -1
	}
	return lo + 2*r.Intn((hi-lo)/2+1)
}

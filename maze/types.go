// Package maze defines sentinel errors and options for the maze and terrain
// generators.
package maze

import (
	"errors"
	"math/rand"
)

// Sentinel errors for maze generation.
var (
	// ErrGridNil is returned when a nil grid is passed to a generator.
	ErrGridNil = errors.New("maze: grid is nil")

	// ErrBadDensity is returned when a scatter density lies outside [0, 1].
	ErrBadDensity = errors.New("maze: density must be within [0, 1]")
)

// Options configures a generator.
type Options struct {
	// Rand is the randomness source. Nil means a time-seeded source.
	Rand *rand.Rand
}

// Option mutates Options.
type Option func(*Options)

// WithRand uses r for every random choice. r must not be shared across
// goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithSeed makes generation deterministic: the same seed on the same grid
// dimensions always yields the same layout. Seed 0 selects a fixed default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rngFromSeed(seed) }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(timeSeed()))
	}
	return o
}

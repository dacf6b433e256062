package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// Option customizes a Generator. Invalid values are reported by New as
// ErrBadOption rather than by panicking.
type Option func(*config)

type config struct {
	seed         int64
	rng          *rand.Rand
	delay        time.Duration
	batch        int
	maxFallbacks int
	err          error
}

func defaultConfig() config {
	return config{
		delay:        DefaultDelay,
		batch:        DefaultBatch,
		maxFallbacks: DefaultMaxFallbacks,
	}
}

func (c *config) fail(format string, args ...any) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: "+format, append([]any{ErrBadOption}, args...)...)
	}
}

// WithSeed makes every run start from a fresh RNG seeded with seed.
// Seed 0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand shares r across runs; consecutive runs then differ. r must not
// be used from other goroutines while a run is in progress.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r == nil {
			c.fail("WithRand(nil)")
			return
		}
		c.rng = r
	}
}

// WithDelay sets the per-cell delay carried by each Step. Zero disables it.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		if d < 0 {
			c.fail("WithDelay(%v)", d)
			return
		}
		c.delay = d
	}
}

// WithBatch groups n placed cells into each Step.
func WithBatch(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.fail("WithBatch(%d)", n)
			return
		}
		c.batch = n
	}
}

// WithMaxFallbacks bounds the number of fallback layouts. Zero disables the
// fallback; Report.Solvable still reflects the final check.
func WithMaxFallbacks(n int) Option {
	return func(c *config) {
		if n < 0 {
			c.fail("WithMaxFallbacks(%d)", n)
			return
		}
		c.maxFallbacks = n
	}
}

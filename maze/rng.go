package maze

import (
	"math"
	"math/rand"
)

// defaultSeed replaces seed 0 so the zero value stays reproducible.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// biasedInt draws an integer in [lo, hi]. With high=false the draw leans
// toward lo (u^2.5); with high=true it leans toward hi (1-(1-u)^2.5).
func biasedInt(r *rand.Rand, lo, hi int, high bool) int {
	u := r.Float64()
	if high {
		u = 1 - math.Pow(1-u, biasExponent)
	} else {
		u = math.Pow(u, biasExponent)
	}
	v := lo + int(u*float64(hi-lo+1))
	return min(v, hi)
}

// pick returns a uniformly chosen element of xs, or -1 when xs is empty.
func pick(r *rand.Rand, xs []int) int {
	if len(xs) == 0 {
		return -1
	}
	return xs[r.Intn(len(xs))]
}

// parityRange lists the integers in [lo, hi] with the given parity
// (0 = even, 1 = odd).
func parityRange(lo, hi, parity int) []int {
	var out []int
	for i := lo; i <= hi; i++ {
		if i%2 == parity {
			out = append(out, i)
		}
	}
	return out
}

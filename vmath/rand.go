package vmath

import "math"

// FastRand is a xorshift64 generator
// Not safe for concurrent use; each simulation owns its instance
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; seed 0 is remapped to 1 since xorshift sticks at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Angle returns a value in [0, 2π)
func (r *FastRand) Angle() float64 {
	return r.Float64() * 2 * math.Pi
}

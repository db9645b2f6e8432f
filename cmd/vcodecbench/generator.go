package main

import "math/rand"

// Config holds the parameters used to synthesize a benchmark data set.
type Config struct {
	Sizes  []int   // value counts to benchmark, one run per entry
	Jitter float64 // per-step jitter as a fraction of the running value
	Seed   int64   // random seed, fixed for reproducibility
}

// GenerateSeries produces a random-walk float32 series of the given length,
// resembling a telemetry/sensor trace: each value is the previous one plus
// a small jittered step, which is the data shape the delta predictor and
// xor-hash-table stage are built to compress well.
func GenerateSeries(rng *rand.Rand, n int, jitter float64) []float32 {
	values := make([]float32, n)

	current := 100.0
	for i := range values {
		step := current * jitter * (rng.Float64()*2 - 1)
		current += step
		values[i] = float32(current)
	}

	return values
}

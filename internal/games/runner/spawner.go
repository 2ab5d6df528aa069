package runner

import (
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// Spawner decides when obstacles appear and how many at once.
type Spawner struct {
	rng       *rand.Rand
	base      float64 // Base interval in ms
	weights   []float64
	jitterMin float64
	jitterMax float64

	timer    int     // Elapsed ms since the last spawn
	interval float64 // Current interval in ms
}

// NewSpawner creates a spawner whose first interval is the profile's base
// interval without jitter.
func NewSpawner(rng *rand.Rand, profile config.DifficultyProfile, spawn config.SpawnConfig) *Spawner {
	s := &Spawner{
		rng:       rng,
		base:      float64(profile.IntervalMs),
		weights:   append([]float64(nil), profile.GroupWeights...),
		jitterMin: spawn.JitterMin,
		jitterMax: spawn.JitterMax,
	}
	s.Reset()
	return s
}

// Reset zeroes the timer and restores the base interval.
func (s *Spawner) Reset() {
	s.timer = 0
	s.interval = s.base
}

// Advance adds dtMs to the timer. When the timer exceeds the interval it
// restarts, draws a new jittered interval and returns the number of
// obstacles to spawn; otherwise it returns 0.
func (s *Spawner) Advance(dtMs int) int {
	s.timer += dtMs
	if float64(s.timer) <= s.interval {
		return 0
	}
	s.timer = 0
	n := s.GroupSize()
	s.interval = s.base * (s.jitterMin + s.rng.Float64()*(s.jitterMax-s.jitterMin))
	return n
}

// GroupSize draws a group size from the weights: index i of the weights
// is the weight of spawning i+1 obstacles.
func (s *Spawner) GroupSize() int {
	return weightedChoice(s.rng, s.weights) + 1
}

// Timer returns the elapsed ms since the last spawn.
func (s *Spawner) Timer() int { return s.timer }

// Interval returns the current spawn interval in ms.
func (s *Spawner) Interval() float64 { return s.interval }

// weightedChoice returns an index with probability proportional to its
// weight. Weights are validated non-negative with a positive sum.
func weightedChoice(rng *rand.Rand, weights []float64) int {
	total := 0.0
	last := 0
	for i, w := range weights {
		total += w
		if w > 0 {
			last = i
		}
	}

	r := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return i
		}
	}
	return last
}

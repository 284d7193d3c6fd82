package sim

import (
	"fmt"
	"math"
)

// Rand is the source of randomness used by the simulation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// RandomTimer counts down from an interval drawn uniformly from [min, max).
//
// It is level-triggered: once the countdown reaches zero IsActive keeps
// reporting true until Reset draws a new interval.
type RandomTimer struct {
	min, max float64
	timeLeft float64
	rng      Rand
}

// NewRandomTimer creates a timer and draws its first interval.
func NewRandomTimer(min, max float64, rng Rand) (*RandomTimer, error) {
	if rng == nil {
		return nil, fmt.Errorf("sim: timer: %w", ErrNilRand)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(max, 0) || min < 0 || max < min {
		return nil, fmt.Errorf("sim: timer range [%v, %v): %w", min, max, ErrInvalidParams)
	}

	t := &RandomTimer{min: min, max: max, rng: rng}
	t.Reset()
	return t, nil
}

// Update subtracts dt from the countdown. The countdown may go negative.
func (t *RandomTimer) Update(dt float64) {
	t.timeLeft -= dt
}

// IsActive reports whether the countdown has run out.
func (t *RandomTimer) IsActive() bool {
	return t.timeLeft <= 0
}

// Reset draws a new interval.
func (t *RandomTimer) Reset() {
	t.timeLeft = t.min + t.rng.Float64()*(t.max-t.min)
}

// TimeLeft returns the remaining countdown.
func (t *RandomTimer) TimeLeft() float64 {
	return t.timeLeft
}

// Range returns the interval bounds.
func (t *RandomTimer) Range() (min, max float64) {
	return t.min, t.max
}

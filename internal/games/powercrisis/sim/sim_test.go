package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/power-crisis/internal/core"
)

// scriptedRand replays fixed values, then falls back to fixed defaults.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	i := r.ints[0]
	r.ints = r.ints[1:]
	return i % n
}

// quietParams returns params where nothing random happens for a long time.
func quietParams() Params {
	p := DefaultParams()
	p.HazardSpawnMin = 1000
	p.HazardSpawnMax = 1000
	p.FailureMin = 1000
	p.FailureMax = 1000
	return p
}

func emptyLayout(start core.Vec2) Layout {
	return Layout{
		PlayerStart: start,
		Van:         core.NewRect(90, 40, 4, 4),
	}
}

func newTestGame(t *testing.T, layout Layout, params Params, rng Rand) *Game {
	t.Helper()
	g, err := New(layout, params, rng)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

package sim

import (
	"errors"
	"math"
	"testing"
)

func TestGeneratorRunsDry(t *testing.T) {
	g, err := NewGenerator(1.0, 0.1, true)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 12; i++ {
		g.Update(1)
	}

	if g.Fuel() != 0 {
		t.Errorf("Fuel() = %v, expected 0", g.Fuel())
	}
	if !g.Empty() {
		t.Error("generator should be empty")
	}
}

func TestGeneratorMonotonic(t *testing.T) {
	g, err := NewGenerator(5, 0.3, true)
	if err != nil {
		t.Fatal(err)
	}

	rng := seeded(11)
	prev := g.Fuel()
	for i := 0; i < 1000; i++ {
		g.Update(rng.Float64() * 3)
		if g.Fuel() > prev {
			t.Fatalf("fuel increased from %v to %v", prev, g.Fuel())
		}
		if g.Fuel() < 0 {
			t.Fatalf("fuel went negative: %v", g.Fuel())
		}
		prev = g.Fuel()
	}

	g.Update(math.MaxFloat64)
	if g.Fuel() != 0 {
		t.Errorf("huge dt should clamp to 0, got %v", g.Fuel())
	}
}

func TestGeneratorStopped(t *testing.T) {
	g, err := NewGenerator(1, 0.5, false)
	if err != nil {
		t.Fatal(err)
	}

	g.Update(1)
	if g.Fuel() != 1 {
		t.Errorf("stopped generator burned fuel: %v", g.Fuel())
	}

	g.SetRunning(true)
	g.Update(1)
	if g.Fuel() != 0.5 {
		t.Errorf("Fuel() = %v, expected 0.5", g.Fuel())
	}
}

func TestNewGeneratorRejects(t *testing.T) {
	tests := []struct {
		name             string
		fuel, efficiency float64
	}{
		{"negative fuel", -1, 0.1},
		{"nan fuel", math.NaN(), 0.1},
		{"negative efficiency", 1, -0.1},
		{"infinite efficiency", 1, math.Inf(1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGenerator(tc.fuel, tc.efficiency, true); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("error = %v, expected ErrInvalidParams", err)
			}
		})
	}
}

package sim

import (
	"fmt"
	"math"
)

// Generator burns fuel while running. An empty generator ends the game.
type Generator struct {
	fuel       float64
	efficiency float64
	running    bool
}

// NewGenerator creates a generator with the given fuel and burn rate
// (fuel units per second).
func NewGenerator(fuel, efficiency float64, running bool) (*Generator, error) {
	if math.IsNaN(fuel) || math.IsInf(fuel, 0) || fuel < 0 {
		return nil, fmt.Errorf("sim: generator fuel %v: %w", fuel, ErrInvalidParams)
	}
	if math.IsNaN(efficiency) || math.IsInf(efficiency, 0) || efficiency < 0 {
		return nil, fmt.Errorf("sim: generator efficiency %v: %w", efficiency, ErrInvalidParams)
	}
	return &Generator{fuel: fuel, efficiency: efficiency, running: running}, nil
}

// Update burns efficiency*dt fuel if running. Fuel never drops below zero.
func (g *Generator) Update(dt float64) {
	if !g.running || g.fuel <= 0 {
		return
	}
	g.fuel = max(g.fuel-g.efficiency*dt, 0)
}

// Fuel returns the remaining fuel.
func (g *Generator) Fuel() float64 { return g.fuel }

// Efficiency returns the burn rate.
func (g *Generator) Efficiency() float64 { return g.efficiency }

// Running reports whether the generator is burning fuel.
func (g *Generator) Running() bool { return g.running }

// SetRunning starts or stops the generator.
func (g *Generator) SetRunning(running bool) { g.running = running }

// Empty reports whether the fuel has run out.
func (g *Generator) Empty() bool { return g.fuel <= 0 }

package sim

import (
	"fmt"
	"math"
)

// GeneratorPolicy decides who controls the generator's running state.
type GeneratorPolicy int

const (
	// PolicyAuto runs the generator whenever fewer than half of the
	// equipment units are working.
	PolicyAuto GeneratorPolicy = iota
	// PolicyManual leaves the running state to SetGeneratorRunning.
	PolicyManual
)

// String returns the policy name used in configuration files.
func (p GeneratorPolicy) String() string {
	switch p {
	case PolicyAuto:
		return "auto"
	case PolicyManual:
		return "manual"
	default:
		return fmt.Sprintf("GeneratorPolicy(%d)", int(p))
	}
}

// ParsePolicy converts a configuration name to a GeneratorPolicy.
func ParsePolicy(s string) (GeneratorPolicy, error) {
	switch s {
	case "auto", "":
		return PolicyAuto, nil
	case "manual":
		return PolicyManual, nil
	default:
		return PolicyAuto, fmt.Errorf("sim: unknown generator policy %q: %w", s, ErrInvalidParams)
	}
}

// Params holds the simulation tunables. Distances are world units,
// durations are seconds.
type Params struct {
	MapWidth  float64
	MapHeight float64

	PlayerSize       float64
	PlayerSpeed      float64 // velocity added per intent
	SprintMultiplier float64

	Drag       float64 // velocity multiplier per frame
	HazardDrag float64 // used instead of Drag while standing in a puddle

	GeneratorFuel       float64
	GeneratorEfficiency float64 // fuel burned per second
	GeneratorPolicy     GeneratorPolicy
	GeneratorRunning    bool // initial state, only used by PolicyManual

	HazardSpawnMin float64
	HazardSpawnMax float64
	HazardLifetime float64
	HazardSize     float64

	FailureMin    float64
	FailureMax    float64
	FailureChance float64 // probability a due failure roll breaks a unit

	MaxRepairKits     int
	InteractionMargin float64
}

// DefaultParams returns the stock game tuning.
func DefaultParams() Params {
	return Params{
		MapWidth:            1600.0 / 16,
		MapHeight:           800.0 / 16,
		PlayerSize:          6.0 / 16,
		PlayerSpeed:         2,
		SprintMultiplier:    1.5,
		Drag:                0.75,
		HazardDrag:          0.5,
		GeneratorFuel:       1,
		GeneratorEfficiency: 0.1,
		GeneratorPolicy:     PolicyAuto,
		HazardSpawnMin:      0.1,
		HazardSpawnMax:      1,
		HazardLifetime:      60,
		HazardSize:          1,
		FailureMin:          10,
		FailureMax:          30,
		FailureChance:       1,
		MaxRepairKits:       5,
		InteractionMargin:   0.5,
	}
}

// Validate checks every tunable.
func (p Params) Validate() error {
	checks := []struct {
		name string
		val  float64
		ok   func(float64) bool
	}{
		{"map width", p.MapWidth, positive},
		{"map height", p.MapHeight, positive},
		{"player size", p.PlayerSize, positive},
		{"player speed", p.PlayerSpeed, nonNegative},
		{"sprint multiplier", p.SprintMultiplier, nonNegative},
		{"drag", p.Drag, unit},
		{"hazard drag", p.HazardDrag, unit},
		{"generator fuel", p.GeneratorFuel, nonNegative},
		{"generator efficiency", p.GeneratorEfficiency, nonNegative},
		{"hazard spawn min", p.HazardSpawnMin, nonNegative},
		{"hazard spawn max", p.HazardSpawnMax, nonNegative},
		{"hazard lifetime", p.HazardLifetime, positive},
		{"hazard size", p.HazardSize, positive},
		{"failure min", p.FailureMin, nonNegative},
		{"failure max", p.FailureMax, nonNegative},
		{"failure chance", p.FailureChance, unit},
		{"interaction margin", p.InteractionMargin, nonNegative},
	}
	for _, c := range checks {
		if !c.ok(c.val) {
			return fmt.Errorf("sim: %s %v: %w", c.name, c.val, ErrInvalidParams)
		}
	}

	if p.HazardSpawnMax < p.HazardSpawnMin {
		return fmt.Errorf("sim: hazard spawn range [%v, %v): %w", p.HazardSpawnMin, p.HazardSpawnMax, ErrInvalidParams)
	}
	if p.FailureMax < p.FailureMin {
		return fmt.Errorf("sim: failure range [%v, %v): %w", p.FailureMin, p.FailureMax, ErrInvalidParams)
	}
	if p.HazardSize > p.MapWidth || p.HazardSize > p.MapHeight {
		return fmt.Errorf("sim: hazard size %v exceeds map: %w", p.HazardSize, ErrInvalidParams)
	}
	if p.PlayerSize > p.MapWidth || p.PlayerSize > p.MapHeight {
		return fmt.Errorf("sim: player size %v exceeds map: %w", p.PlayerSize, ErrInvalidParams)
	}
	if p.MaxRepairKits < 0 {
		return fmt.Errorf("sim: max repair kits %d: %w", p.MaxRepairKits, ErrInvalidParams)
	}
	if p.GeneratorPolicy != PolicyAuto && p.GeneratorPolicy != PolicyManual {
		return fmt.Errorf("sim: %v: %w", p.GeneratorPolicy, ErrInvalidParams)
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func positive(v float64) bool { return finite(v) && v > 0 }

func nonNegative(v float64) bool { return finite(v) && v >= 0 }

func unit(v float64) bool { return finite(v) && v >= 0 && v <= 1 }

package config

import (
	"fmt"

	"github.com/vovakirdan/power-crisis/internal/games/powercrisis/sim"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables difficulty scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPowerCrisisPreset modifies the config based on a difficulty preset.
func ApplyPowerCrisisPreset(cfg *PowerCrisisConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Repair.MaxKits = max(cfg.Repair.MaxKits, 8)
	case DifficultyHard:
		cfg.Repair.MaxKits = min(cfg.Repair.MaxKits, 3)
	}
}

// Level returns the effective difficulty level in [0, 1].
func (d DifficultyConfig) Level() float64 {
	if !d.Enabled {
		return 0
	}
	return clampF(d.InitialLevel, 0.0, 1.0)
}

// ToParams converts the configuration to simulation tunables with the
// difficulty level applied.
func (c PowerCrisisConfig) ToParams() (sim.Params, error) {
	policy, err := sim.ParsePolicy(c.Generator.Policy)
	if err != nil {
		return sim.Params{}, fmt.Errorf("config: %w", err)
	}

	level := c.Difficulty.Level()
	burn := 1.0 + level*c.Difficulty.Scaling.BurnMultiplier
	failure := clampF(1.0-level*c.Difficulty.Scaling.FailureReduction, 0.05, 1.0)
	spawn := clampF(1.0-level*c.Difficulty.Scaling.SpawnReduction, 0.05, 1.0)

	p := sim.Params{
		MapWidth:            c.Map.Width,
		MapHeight:           c.Map.Height,
		PlayerSize:          c.Player.Size,
		PlayerSpeed:         c.Player.Speed,
		SprintMultiplier:    c.Player.SprintMultiplier,
		Drag:                c.Drag.Normal,
		HazardDrag:          c.Drag.Hazard,
		GeneratorFuel:       c.Generator.Fuel,
		GeneratorEfficiency: c.Generator.Efficiency * burn,
		GeneratorPolicy:     policy,
		HazardSpawnMin:      c.Hazards.SpawnMin * spawn,
		HazardSpawnMax:      c.Hazards.SpawnMax * spawn,
		HazardLifetime:      c.Hazards.Lifetime,
		HazardSize:          c.Hazards.Size,
		FailureMin:          c.Failures.Min * failure,
		FailureMax:          c.Failures.Max * failure,
		FailureChance:       c.Failures.Chance,
		MaxRepairKits:       c.Repair.MaxKits,
		InteractionMargin:   c.Repair.InteractionMargin,
	}
	if err := p.Validate(); err != nil {
		return sim.Params{}, fmt.Errorf("config: %w", err)
	}
	return p, nil
}

// clampF restricts a float64 to [min, max].
func clampF(val, lo, hi float64) float64 {
	return max(lo, min(hi, val))
}

package config

import (
	_ "embed"
)

//go:embed defaults/powercrisis.yaml
var defaultPowerCrisisYAML []byte

// DefaultPowerCrisisConfig returns the default Power Crisis configuration.
func DefaultPowerCrisisConfig() PowerCrisisConfig {
	return PowerCrisisConfig{
		Generator: GeneratorConfig{
			Fuel:       1.0,
			Efficiency: 0.1,
			Policy:     "auto",
		},
		Player: PlayerConfig{
			Size:             6.0 / 16,
			Speed:            2.0,
			SprintMultiplier: 1.5,
		},
		Drag: DragConfig{
			Normal: 0.75,
			Hazard: 0.5,
		},
		Hazards: HazardConfig{
			SpawnMin: 0.1,
			SpawnMax: 1.0,
			Lifetime: 60,
			Size:     1,
		},
		Failures: FailureConfig{
			Min:    10,
			Max:    30,
			Chance: 1,
		},
		Repair: RepairConfig{
			MaxKits:           5,
			InteractionMargin: 0.5,
		},
		Map: MapConfig{
			Width:  1600.0 / 16,
			Height: 800.0 / 16,
			Level:  "default",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Scaling: ScalingConfig{
				BurnMultiplier:   1.0,
				FailureReduction: 0.5,
				SpawnReduction:   0.5,
			},
		},
	}
}

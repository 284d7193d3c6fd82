// Package config provides YAML-based game configuration loading and
// difficulty presets for Power Crisis.
package config

// PowerCrisisConfig contains all configuration for Power Crisis.
type PowerCrisisConfig struct {
	Generator  GeneratorConfig  `yaml:"generator"`
	Player     PlayerConfig     `yaml:"player"`
	Drag       DragConfig       `yaml:"drag"`
	Hazards    HazardConfig     `yaml:"hazards"`
	Failures   FailureConfig    `yaml:"failures"`
	Repair     RepairConfig     `yaml:"repair"`
	Map        MapConfig        `yaml:"map"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GeneratorConfig defines the backup generator.
type GeneratorConfig struct {
	Fuel       float64 `yaml:"fuel"`
	Efficiency float64 `yaml:"efficiency"` // Fuel burned per second
	Policy     string  `yaml:"policy"`     // "auto" or "manual"
}

// PlayerConfig defines player movement.
type PlayerConfig struct {
	Size             float64 `yaml:"size"`
	Speed            float64 `yaml:"speed"`
	SprintMultiplier float64 `yaml:"sprint_multiplier"`
}

// DragConfig defines the per-frame velocity multipliers.
type DragConfig struct {
	Normal float64 `yaml:"normal"`
	Hazard float64 `yaml:"hazard"`
}

// HazardConfig defines puddle spawning.
type HazardConfig struct {
	SpawnMin float64 `yaml:"spawn_min"`
	SpawnMax float64 `yaml:"spawn_max"`
	Lifetime float64 `yaml:"lifetime"`
	Size     float64 `yaml:"size"`
}

// FailureConfig defines random equipment failures.
type FailureConfig struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Chance float64 `yaml:"chance"`
}

// RepairConfig defines repair kits.
type RepairConfig struct {
	MaxKits           int     `yaml:"max_kits"`
	InteractionMargin float64 `yaml:"interaction_margin"`
}

// MapConfig defines the playing field.
type MapConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Level  string  `yaml:"level"` // Built-in map ID or path
}

// DifficultyConfig defines how a difficulty level reshapes the tuning.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	BurnMultiplier   float64 `yaml:"burn_multiplier"`   // Added to generator efficiency multiplier
	FailureReduction float64 `yaml:"failure_reduction"` // Fraction cut from failure intervals
	SpawnReduction   float64 `yaml:"spawn_reduction"`   // Fraction cut from hazard spawn intervals
}

package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/power-crisis/internal/games/powercrisis/sim"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	embedded, ok := parseOver(defaultPowerCrisisYAML)
	if !ok {
		t.Fatal("embedded defaults do not parse")
	}
	if embedded != DefaultPowerCrisisConfig() {
		t.Errorf("embedded defaults drifted:\n%+v\n%+v", embedded, DefaultPowerCrisisConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom.yaml")
	data := "generator:\n  fuel: 3\n  policy: manual\nrepair:\n  max_kits: 2\n"
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPowerCrisis(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Generator.Fuel != 3 || cfg.Generator.Policy != "manual" || cfg.Repair.MaxKits != 2 {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	if cfg.Drag.Normal != 0.75 {
		t.Errorf("unset fields should keep defaults, drag = %v", cfg.Drag.Normal)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadPowerCrisis(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	p := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(p, []byte("generator: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPowerCrisis(p); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestToParamsFixed(t *testing.T) {
	cfg := DefaultPowerCrisisConfig()
	ApplyPowerCrisisPreset(&cfg, DifficultyFixed)

	p, err := cfg.ToParams()
	if err != nil {
		t.Fatal(err)
	}

	expected := sim.DefaultParams()
	if p != expected {
		t.Errorf("fixed preset should reproduce stock params:\n%+v\n%+v", p, expected)
	}
}

func TestPresetsScale(t *testing.T) {
	params := func(preset DifficultyPreset) sim.Params {
		cfg := DefaultPowerCrisisConfig()
		ApplyPowerCrisisPreset(&cfg, preset)
		p, err := cfg.ToParams()
		if err != nil {
			t.Fatalf("%s: %v", preset, err)
		}
		return p
	}

	easy, normal, hard := params(DifficultyEasy), params(DifficultyNormal), params(DifficultyHard)

	if !(easy.GeneratorEfficiency < normal.GeneratorEfficiency && normal.GeneratorEfficiency < hard.GeneratorEfficiency) {
		t.Errorf("burn rate should grow with difficulty: %v %v %v",
			easy.GeneratorEfficiency, normal.GeneratorEfficiency, hard.GeneratorEfficiency)
	}
	if !(easy.FailureMax > normal.FailureMax && normal.FailureMax > hard.FailureMax) {
		t.Errorf("failures should come sooner with difficulty: %v %v %v",
			easy.FailureMax, normal.FailureMax, hard.FailureMax)
	}
	if easy.MaxRepairKits != 8 || hard.MaxRepairKits != 3 {
		t.Errorf("kits easy=%d hard=%d", easy.MaxRepairKits, hard.MaxRepairKits)
	}
	if math.Abs(hard.FailureMin-10*0.65) > 1e-9 {
		t.Errorf("hard failure min = %v, expected 6.5", hard.FailureMin)
	}
}

func TestToParamsRejects(t *testing.T) {
	cfg := DefaultPowerCrisisConfig()
	cfg.Generator.Policy = "sometimes"
	if _, err := cfg.ToParams(); err == nil {
		t.Error("expected an error for an unknown policy")
	}

	cfg = DefaultPowerCrisisConfig()
	cfg.Drag.Normal = 2
	if _, err := cfg.ToParams(); err == nil {
		t.Error("expected an error for drag above 1")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"", DifficultyNormal, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr || got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, %v", tc.in, got, err)
		}
	}
}

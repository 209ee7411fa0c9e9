package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Frames <= 0 {
		t.Error("frames should be positive")
	}
	if err := cfg.Sim().Validate(); err != nil {
		t.Errorf("default config does not map to a runnable simulation: %v", err)
	}
}

func TestSimMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gravity.Y = 123
	cfg.Container.Radius = 400
	cfg.Solver.Restitution = 0.25

	sim := cfg.Sim()
	if sim.Gravity.Y != 123 {
		t.Errorf("expected gravity y 123, got %v", sim.Gravity.Y)
	}
	if sim.ContainerRadius != 400 {
		t.Errorf("expected container radius 400, got %v", sim.ContainerRadius)
	}
	if sim.Restitution != 0.25 {
		t.Errorf("expected restitution 0.25, got %v", sim.Restitution)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("bouncy")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Solver.Restitution != 1.0 {
		t.Errorf("expected restitution 1.0, got %f", cfg.Solver.Restitution)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestGetPresetReturnsCopy(t *testing.T) {
	cfg := GetPreset("gentle")
	cfg.Dt = 999

	if again := GetPreset("gentle"); again.Dt == 999 {
		t.Error("mutating a returned preset leaked into the shared table")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] >= presets[i] {
			t.Errorf("preset list not sorted: %q before %q", presets[i-1], presets[i])
		}
	}
}

func TestPresetsAllRunnable(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.Sim().Validate(); err != nil {
			t.Errorf("preset %q does not map to a runnable simulation: %v", name, err)
		}
		if cfg.Dt <= 0 || cfg.Frames <= 0 || cfg.FPS <= 0 {
			t.Errorf("preset %q has unusable run settings", name)
		}
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Gravity.Y = 42
	cfg.Turbulence.Strength = 99
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Gravity.Y != 42 {
		t.Errorf("expected gravity y 42, got %v", loaded.Gravity.Y)
	}
	if loaded.Turbulence.Strength != 99 {
		t.Errorf("expected turbulence strength 99, got %v", loaded.Turbulence.Strength)
	}
	// Fields absent from the file keep their defaults.
	if loaded.Particles.Max != 1000 {
		t.Errorf("expected default max particles, got %d", loaded.Particles.Max)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

package experiment

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const scenarioYAML = `name: settling study
description: two short runs with different gravity
steps:
  - name: weak gravity
    frames: 30
    params:
      gravity_y: 200
  - name: strong gravity
    preset: sticky
    frames: 30
    params:
      gravity_y: 1200
    save_as: strong
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, scenarioYAML)

	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if sc.Name != "settling study" {
		t.Errorf("expected name %q, got %q", "settling study", sc.Name)
	}
	if len(sc.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(sc.Steps))
	}
	if sc.Steps[1].Preset != "sticky" {
		t.Errorf("expected preset sticky, got %q", sc.Steps[1].Preset)
	}
	if sc.Steps[1].SaveAs != "strong" {
		t.Errorf("expected save_as strong, got %q", sc.Steps[1].SaveAs)
	}
}

func TestRunScenario(t *testing.T) {
	path := writeScenario(t, scenarioYAML)
	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	results, err := RunScenario(context.Background(), sc, nil)
	if err != nil {
		t.Fatalf("scenario failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 step results, got %d", len(results))
	}

	if results[0].Config.Gravity.Y != 200 {
		t.Errorf("step 1 param override lost: gravity y %v", results[0].Config.Gravity.Y)
	}
	if results[1].Config.Gravity.Y != 1200 {
		t.Errorf("step 2 param override lost: gravity y %v", results[1].Config.Gravity.Y)
	}
	if results[1].Config.Restitution != 0 {
		t.Errorf("step 2 did not start from the sticky preset: restitution %v", results[1].Config.Restitution)
	}
	for i, r := range results {
		if r.Result.FramesRun != 30 {
			t.Errorf("step %d: expected 30 frames, got %d", i+1, r.Result.FramesRun)
		}
	}
}

func TestRunScenarioUnknownPreset(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{{Preset: "nope"}}}
	if _, err := RunScenario(context.Background(), sc, nil); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestScenarioStepLabel(t *testing.T) {
	tests := []struct {
		step ScenarioStep
		want string
	}{
		{ScenarioStep{Name: "warmup", Preset: "dense"}, "warmup"},
		{ScenarioStep{Preset: "dense"}, "dense"},
		{ScenarioStep{}, "reference"},
	}
	for _, tt := range tests {
		if got := tt.step.Label(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

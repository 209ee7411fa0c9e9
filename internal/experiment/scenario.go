package experiment

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/programORdie2/verletlab/internal/config"
	"github.com/programORdie2/verletlab/internal/verlet"
)

// Scenario is a scripted sequence of headless runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep runs one simulation. Preset picks the base
// configuration ("reference" when empty); Params overrides individual
// tunables on top of it.
type ScenarioStep struct {
	Name   string             `yaml:"name"`
	Preset string             `yaml:"preset"`
	Frames int                `yaml:"frames"`
	Dt     float64            `yaml:"dt"`
	Params map[string]float64 `yaml:"params"`
	SaveAs string             `yaml:"save_as"`
}

// StepResult pairs a finished step with its recorded run and the
// final particle state, so steps marked save_as can be persisted.
type StepResult struct {
	Step      ScenarioStep
	Config    verlet.Config
	RunConfig Config
	Result    *Result
	Particles []verlet.Particle
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// RunScenario executes every step in order. Each step gets a fresh
// simulation; a failing step aborts the rest and returns what ran.
func RunScenario(ctx context.Context, scenario *Scenario,
	newMetrics func(verlet.Config) []verlet.Metric) ([]StepResult, error) {

	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		fmt.Printf("Running step %d/%d: %s\n", i+1, len(scenario.Steps), step.Label())

		cfg, runCfg, err := resolveStep(step)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		sim, err := verlet.New(cfg)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		runner := NewRunner(sim)
		if newMetrics != nil {
			for _, m := range newMetrics(cfg) {
				runner.AddMetric(m)
			}
		}

		result, err := runner.Run(ctx, runCfg)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{
			Step:      step,
			Config:    cfg,
			RunConfig: runCfg,
			Result:    result,
			Particles: sim.Particles(),
		})
	}

	return results, nil
}

func resolveStep(step ScenarioStep) (verlet.Config, Config, error) {
	base := config.DefaultConfig()
	if step.Preset != "" {
		base = config.GetPreset(step.Preset)
		if base == nil {
			return verlet.Config{}, Config{}, fmt.Errorf("unknown preset %q", step.Preset)
		}
	}

	cfg := base.Sim()
	for name, value := range step.Params {
		if err := applyParam(&cfg, name, value); err != nil {
			return verlet.Config{}, Config{}, err
		}
	}

	runCfg := Config{Dt: base.Dt, Frames: base.Frames, Validate: true}
	if step.Dt > 0 {
		runCfg.Dt = step.Dt
	}
	if step.Frames > 0 {
		runCfg.Frames = step.Frames
	}
	return cfg, runCfg, nil
}

// Label names the step for progress output and storage: the explicit
// name, the preset, or "reference" for a bare step.
func (s ScenarioStep) Label() string {
	if s.Name != "" {
		return s.Name
	}
	if s.Preset != "" {
		return s.Preset
	}
	return "reference"
}

package experiment

import (
	"context"
	"fmt"
	"sync"

	"github.com/programORdie2/verletlab/internal/verlet"
)

// RunEnsemble executes one independent simulation per configuration,
// concurrently. Each goroutine owns its whole simulation, so nothing
// is shared; results come back in configuration order. Metrics, when
// a factory is given, are constructed fresh inside each run.
func RunEnsemble(ctx context.Context, cfgs []verlet.Config, runCfg Config,
	newMetrics func(verlet.Config) []verlet.Metric) ([]*Result, error) {

	results := make([]*Result, len(cfgs))
	errs := make([]error, len(cfgs))

	var wg sync.WaitGroup
	for i := range cfgs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			sim, err := verlet.New(cfgs[idx])
			if err != nil {
				errs[idx] = err
				return
			}
			runner := NewRunner(sim)
			if newMetrics != nil {
				for _, m := range newMetrics(cfgs[idx]) {
					runner.AddMetric(m)
				}
			}
			results[idx], errs[idx] = runner.Run(ctx, runCfg)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// Sweep generates configurations varying one tunable parameter over an
// inclusive range.
type Sweep struct {
	Base  verlet.Config
	Param string
	Min   float64
	Max   float64
	Steps int
}

// Configs expands the sweep into per-run configurations and the
// parameter value behind each one.
func (s *Sweep) Configs() ([]verlet.Config, []float64, error) {
	if s.Steps < 2 {
		return nil, nil, fmt.Errorf("sweep needs at least 2 steps, got %d", s.Steps)
	}
	cfgs := make([]verlet.Config, 0, s.Steps)
	values := make([]float64, 0, s.Steps)
	step := (s.Max - s.Min) / float64(s.Steps-1)
	for i := 0; i < s.Steps; i++ {
		v := s.Min + float64(i)*step
		cfg := s.Base
		if err := applyParam(&cfg, s.Param, v); err != nil {
			return nil, nil, err
		}
		cfgs = append(cfgs, cfg)
		values = append(values, v)
	}
	return cfgs, values, nil
}

// applyParam mirrors the tunable names of Simulation.SetParam onto a
// configuration, so sweeps and scenarios speak the same vocabulary.
func applyParam(cfg *verlet.Config, name string, value float64) error {
	switch name {
	case "gravity_x":
		cfg.Gravity.X = value
	case "gravity_y":
		cfg.Gravity.Y = value
	case "damping":
		cfg.Damping = value
	case "restitution":
		cfg.Restitution = value
	case "spawn_speed":
		cfg.SpawnSpeed = value
	case "turbulence_strength":
		cfg.Turbulence.Strength = value
	default:
		return fmt.Errorf("%w: %q", verlet.ErrUnknownParam, name)
	}
	return nil
}

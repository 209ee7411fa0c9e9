package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/programORdie2/verletlab/internal/verlet"
)

// Config describes one headless run.
type Config struct {
	Dt       float64
	Frames   int
	Validate bool // sweep for NaN/Inf after every frame
}

// Result is the recorded outcome of a run: one sample per frame for
// each metric, plus the final metric values.
type Result struct {
	Times     []float64
	Counts    []int
	Series    map[string][]float64
	Metrics   map[string]float64
	FramesRun int
	Elapsed   time.Duration
	Errors    []error
}

// Runner drives a simulation through a fixed number of frames,
// feeding every registered metric and observer once per frame.
type Runner struct {
	sim       *verlet.Simulation
	metrics   []verlet.Metric
	observers []verlet.Observer
}

func NewRunner(sim *verlet.Simulation) *Runner {
	return &Runner{
		sim:       sim,
		metrics:   make([]verlet.Metric, 0),
		observers: make([]verlet.Observer, 0),
	}
}

func (r *Runner) AddMetric(m verlet.Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o verlet.Observer) { r.observers = append(r.observers, o) }

// Simulation exposes the underlying simulation, for frontends that
// want to render while a run records.
func (r *Runner) Simulation() *verlet.Simulation { return r.sim }

// Run advances the simulation cfg.Frames times. Cancellation is
// honored between frames, never inside one; the partial result is
// returned alongside the context error.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}

	result := &Result{
		Times:   make([]float64, 0, cfg.Frames),
		Counts:  make([]int, 0, cfg.Frames),
		Series:  make(map[string][]float64, len(r.metrics)),
		Metrics: make(map[string]float64, len(r.metrics)),
		Errors:  make([]error, 0),
	}

	for _, m := range r.metrics {
		m.Reset()
		result.Series[m.Name()] = make([]float64, 0, cfg.Frames)
	}

	start := time.Now()
	for frame := 1; frame <= cfg.Frames; frame++ {
		select {
		case <-ctx.Done():
			result.Elapsed = time.Since(start)
			return result, ctx.Err()
		default:
		}

		r.sim.Advance(cfg.Dt, frame)

		t := float64(frame) * cfg.Dt
		ps := r.sim.Particles()

		if cfg.Validate && !r.sim.Valid() {
			err := &verlet.StepError{Frame: frame, Time: t, Wrapped: verlet.ErrInvalidState}
			result.Errors = append(result.Errors, err)
			result.Elapsed = time.Since(start)
			return result, err
		}

		for _, m := range r.metrics {
			m.Observe(ps, frame, t)
			result.Series[m.Name()] = append(result.Series[m.Name()], m.Value())
		}
		for _, obs := range r.observers {
			obs.OnFrame(ps, frame, t)
		}

		result.Times = append(result.Times, t)
		result.Counts = append(result.Counts, r.sim.Count())
		result.FramesRun++
	}
	result.Elapsed = time.Since(start)

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

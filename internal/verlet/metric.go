package verlet

// Metric accumulates a scalar observation over a run.
type Metric interface {
	Name() string
	Observe(ps []Particle, frame int, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every simulated frame.
type Observer interface {
	OnFrame(ps []Particle, frame int, t float64)
}

// Configurable exposes live-tunable parameters to interactive
// frontends.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

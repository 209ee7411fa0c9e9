package verlet

import (
	"fmt"
	"time"
)

// Simulation owns a growing set of particles inside a circular
// container. Advance is the only mutating entry point; the accessors
// are snapshots of the most recent frame. Not safe for concurrent
// use.
type Simulation struct {
	cfg       Config
	particles []Particle
	turb      *turbulence
	pending   *stir
	stats     Stats
}

// New builds an empty simulation from cfg. The configuration is
// copied, so later changes to cfg never reach the simulation.
func New(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulation{
		cfg:       cfg,
		particles: make([]Particle, 0, cfg.MaxParticles),
		turb:      newTurbulence(cfg.Turbulence),
	}, nil
}

// Advance runs one frame: at most one spawn, then SubSteps rounds of
// {accumulate forces, boundary constraint, collision resolution,
// integrate} over dt/SubSteps each. frame must increase monotonically
// between calls for the spawn cadence to mean anything; dt <= 0 is a
// no-op. Any stir queued since the previous frame is consumed here.
func (s *Simulation) Advance(dt float64, frame int) {
	if dt <= 0 {
		return
	}
	stats := Stats{Frame: frame}
	if frame%s.cfg.SpawnEvery == 0 && len(s.particles) < s.cfg.MaxParticles {
		s.spawn()
		stats.Spawned = true
	}
	subDt := dt / float64(s.cfg.SubSteps)
	for step := 0; step < s.cfg.SubSteps; step++ {
		start := time.Now()
		s.accumulateForces()
		forces := time.Now()
		s.applyBoundary()
		boundary := time.Now()
		s.solveCollisions()
		collisions := time.Now()
		s.integrate(subDt)
		stats.Forces += forces.Sub(start)
		stats.Boundary += boundary.Sub(forces)
		stats.Collisions += collisions.Sub(boundary)
		stats.Integrate += time.Since(collisions)
	}
	s.pending = nil
	stats.Particles = len(s.particles)
	s.stats = stats
}

func (s *Simulation) accumulateForces() {
	turbStrength := s.cfg.Turbulence.Strength
	for i := range s.particles {
		p := &s.particles[i]
		p.Accelerate(s.cfg.Gravity)
		if turbStrength != 0 {
			p.Accelerate(s.turb.force(p.Pos, turbStrength))
		}
		if s.pending != nil {
			p.Accelerate(s.pending.force(p.Pos))
		}
	}
}

func (s *Simulation) integrate(dt float64) {
	for i := range s.particles {
		s.particles[i].Integrate(dt)
	}
}

// Particles returns the live particle slice, ordered by spawn time.
// Callers must treat it as read-only.
func (s *Simulation) Particles() []Particle { return s.particles }

func (s *Simulation) Count() int      { return len(s.particles) }
func (s *Simulation) Radius() float64 { return s.cfg.ParticleRadius }
func (s *Simulation) Config() Config  { return s.cfg }
func (s *Simulation) Stats() Stats    { return s.stats }

// Reset drops every particle and any pending interaction, returning
// the simulation to its frame-zero state. The configuration keeps any
// SetParam adjustments made since construction.
func (s *Simulation) Reset() {
	s.particles = s.particles[:0]
	s.pending = nil
	s.stats = Stats{}
}

// Valid reports whether every particle still holds finite components.
func (s *Simulation) Valid() bool {
	for i := range s.particles {
		if !s.particles[i].IsValid() {
			return false
		}
	}
	return true
}

func (s *Simulation) GetParams() map[string]float64 {
	return map[string]float64{
		"gravity_x":           s.cfg.Gravity.X,
		"gravity_y":           s.cfg.Gravity.Y,
		"damping":             s.cfg.Damping,
		"restitution":         s.cfg.Restitution,
		"spawn_speed":         s.cfg.SpawnSpeed,
		"turbulence_strength": s.cfg.Turbulence.Strength,
	}
}

func (s *Simulation) SetParam(name string, value float64) error {
	switch name {
	case "gravity_x":
		s.cfg.Gravity.X = value
	case "gravity_y":
		s.cfg.Gravity.Y = value
	case "damping":
		if value <= 0 || value > 1 {
			return fmt.Errorf("%w: damping %v not in (0, 1]", ErrParamBounds, value)
		}
		s.cfg.Damping = value
	case "restitution":
		if value < 0 || value > 1 {
			return fmt.Errorf("%w: restitution %v not in [0, 1]", ErrParamBounds, value)
		}
		s.cfg.Restitution = value
	case "spawn_speed":
		s.cfg.SpawnSpeed = value
	case "turbulence_strength":
		s.cfg.Turbulence.Strength = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	return nil
}

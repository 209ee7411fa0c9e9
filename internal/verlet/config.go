package verlet

import "fmt"

// TurbulenceConfig drives the optional perlin-noise flow field.
// Zero Strength leaves it off; everything stays deterministic for a
// fixed Seed.
type TurbulenceConfig struct {
	Strength float64
	Scale    float64
	Seed     int64
}

// Config holds every knob of a run. It is copied at construction:
// mutating a Config after New has no effect on a running simulation
// (live tuning goes through SetParam instead).
type Config struct {
	Gravity          Vec2
	ParticleRadius   float64
	Center           Vec2
	ContainerRadius  float64
	MaxParticles     int
	SpawnEvery       int
	SubSteps         int
	Damping          float64
	Restitution      float64
	SpawnPos         Vec2
	SpawnSpeed       float64
	SpawnAnglePeriod int
	Turbulence       TurbulenceConfig
}

// DefaultConfig returns the reference sandbox: a 250-radius container
// centered at (300,300) filling with up to 1000 particles of radius 4
// under gravity (0,750), six sub-steps per frame.
func DefaultConfig() Config {
	return Config{
		Gravity:          Vec2{0, 750},
		ParticleRadius:   4,
		Center:           Vec2{300, 300},
		ContainerRadius:  250,
		MaxParticles:     1000,
		SpawnEvery:       1,
		SubSteps:         6,
		Damping:          0.999,
		Restitution:      0.7,
		SpawnPos:         Vec2{300, 100},
		SpawnSpeed:       4,
		SpawnAnglePeriod: 40,
	}
}

// Validate reports the first reason c cannot run.
func (c Config) Validate() error {
	switch {
	case c.ParticleRadius <= 0:
		return fmt.Errorf("%w: particle radius %v must be positive", ErrInvalidConfig, c.ParticleRadius)
	case c.ContainerRadius <= c.ParticleRadius:
		return fmt.Errorf("%w: container radius %v must exceed particle radius %v",
			ErrInvalidConfig, c.ContainerRadius, c.ParticleRadius)
	case c.MaxParticles < 0:
		return fmt.Errorf("%w: max particles %d must not be negative", ErrInvalidConfig, c.MaxParticles)
	case c.SpawnEvery < 1:
		return fmt.Errorf("%w: spawn cadence %d must be at least 1 frame", ErrInvalidConfig, c.SpawnEvery)
	case c.SubSteps < 1:
		return fmt.Errorf("%w: sub-steps %d must be at least 1", ErrInvalidConfig, c.SubSteps)
	case c.Damping <= 0 || c.Damping > 1:
		return fmt.Errorf("%w: damping %v must be in (0, 1]", ErrInvalidConfig, c.Damping)
	case c.Restitution < 0 || c.Restitution > 1:
		return fmt.Errorf("%w: restitution %v must be in [0, 1]", ErrInvalidConfig, c.Restitution)
	case c.SpawnAnglePeriod < 1:
		return fmt.Errorf("%w: spawn angle period %d must be at least 1", ErrInvalidConfig, c.SpawnAnglePeriod)
	case !c.Gravity.IsValid() || !c.Center.IsValid() || !c.SpawnPos.IsValid():
		return fmt.Errorf("%w: NaN or Inf in gravity, center or spawn position", ErrInvalidConfig)
	}
	return nil
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/programORdie2/verletlab/internal/verlet"
)

const (
	DefaultDt     = 1.0 / 60
	DefaultFrames = 600
	DefaultFPS    = 60
)

// Config is the file-facing run description. Physics fields mirror
// [verlet.Config]; Dt, Frames and FPS drive the frontends.
type Config struct {
	Dt     float64 `yaml:"dt"`
	Frames int     `yaml:"frames"`
	FPS    int     `yaml:"fps"`

	Gravity    GravityConfig    `yaml:"gravity"`
	Container  ContainerConfig  `yaml:"container"`
	Particles  ParticleConfig   `yaml:"particles"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Solver     SolverConfig     `yaml:"solver"`
	Turbulence TurbulenceConfig `yaml:"turbulence"`
}

type GravityConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ContainerConfig struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	Radius  float64 `yaml:"radius"`
}

type ParticleConfig struct {
	Radius float64 `yaml:"radius"`
	Max    int     `yaml:"max"`
}

type SpawnConfig struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Speed       float64 `yaml:"speed"`
	Every       int     `yaml:"every"`
	AnglePeriod int     `yaml:"angle_period"`
}

type SolverConfig struct {
	SubSteps    int     `yaml:"sub_steps"`
	Damping     float64 `yaml:"damping"`
	Restitution float64 `yaml:"restitution"`
}

type TurbulenceConfig struct {
	Strength float64 `yaml:"strength"`
	Scale    float64 `yaml:"scale"`
	Seed     int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:        DefaultDt,
		Frames:    DefaultFrames,
		FPS:       DefaultFPS,
		Gravity:   GravityConfig{X: 0, Y: 750},
		Container: ContainerConfig{CenterX: 300, CenterY: 300, Radius: 250},
		Particles: ParticleConfig{Radius: 4, Max: 1000},
		Spawn:     SpawnConfig{X: 300, Y: 100, Speed: 4, Every: 1, AnglePeriod: 40},
		Solver:    SolverConfig{SubSteps: 6, Damping: 0.999, Restitution: 0.7},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Sim maps the file config onto the engine configuration.
func (c *Config) Sim() verlet.Config {
	return verlet.Config{
		Gravity:          verlet.Vec2{X: c.Gravity.X, Y: c.Gravity.Y},
		ParticleRadius:   c.Particles.Radius,
		Center:           verlet.Vec2{X: c.Container.CenterX, Y: c.Container.CenterY},
		ContainerRadius:  c.Container.Radius,
		MaxParticles:     c.Particles.Max,
		SpawnEvery:       c.Spawn.Every,
		SubSteps:         c.Solver.SubSteps,
		Damping:          c.Solver.Damping,
		Restitution:      c.Solver.Restitution,
		SpawnPos:         verlet.Vec2{X: c.Spawn.X, Y: c.Spawn.Y},
		SpawnSpeed:       c.Spawn.Speed,
		SpawnAnglePeriod: c.Spawn.AnglePeriod,
		Turbulence: verlet.TurbulenceConfig{
			Strength: c.Turbulence.Strength,
			Scale:    c.Turbulence.Scale,
			Seed:     c.Turbulence.Seed,
		},
	}
}

package metrics

import (
	"github.com/programORdie2/verletlab/internal/verlet"
)

// Containment scores how reliably the boundary holds: the fraction of
// observed frames where every particle sat within the container, with
// slack for the drift the pipeline allows between constraint passes.
type Containment struct {
	name       string
	center     verlet.Vec2
	allowed    float64
	slack      float64
	violations int
	samples    int
}

func NewContainment(cfg verlet.Config) *Containment {
	return &Containment{
		name:    "containment",
		center:  cfg.Center,
		allowed: cfg.ContainerRadius - cfg.ParticleRadius,
		slack:   2 * cfg.ParticleRadius,
	}
}

func (c *Containment) Name() string { return c.name }

func (c *Containment) Observe(ps []verlet.Particle, frame int, t float64) {
	c.samples++
	for i := range ps {
		if ps[i].Pos.Sub(c.center).Length() > c.allowed+c.slack {
			c.violations++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}

// Overlap reports the deepest pair penetration in the last observed
// frame. Zero means the pile is fully relaxed.
type Overlap struct {
	name    string
	minDist float64
	last    float64
}

func NewOverlap(particleRadius float64) *Overlap {
	return &Overlap{name: "overlap", minDist: 2 * particleRadius}
}

func (o *Overlap) Name() string { return o.name }

func (o *Overlap) Observe(ps []verlet.Particle, frame int, t float64) {
	worst := 0.0
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if d := ps[i].Pos.Sub(ps[j].Pos).Length(); o.minDist-d > worst {
				worst = o.minDist - d
			}
		}
	}
	o.last = worst
}

func (o *Overlap) Value() float64 { return o.last }

func (o *Overlap) Reset() { o.last = 0 }

package metrics

import (
	"github.com/programORdie2/verletlab/internal/verlet"
)

// KineticEnergy reports the pile's total kinetic energy (unit mass per
// particle). Implicit Verlet velocities are per-sub-step displacements,
// so the sub-step duration is needed to recover units per second.
type KineticEnergy struct {
	name  string
	subDt float64
	last  float64
	peak  float64
}

func NewKineticEnergy(subDt float64) *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy", subDt: subDt}
}

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) Observe(ps []verlet.Particle, frame int, t float64) {
	if k.subDt <= 0 {
		return
	}
	total := 0.0
	for i := range ps {
		v := ps[i].Velocity().Scale(1 / k.subDt)
		total += 0.5 * v.LengthSq()
	}
	k.last = total
	if total > k.peak {
		k.peak = total
	}
}

// Value returns the most recent total, not an average: the pile keeps
// gaining particles, so a running mean would say nothing useful.
func (k *KineticEnergy) Value() float64 { return k.last }

func (k *KineticEnergy) Peak() float64 { return k.peak }

func (k *KineticEnergy) Reset() {
	k.last = 0
	k.peak = 0
}

// MaxSpeed reports the fastest particle seen in the last observation,
// in units per second.
type MaxSpeed struct {
	name  string
	subDt float64
	last  float64
}

func NewMaxSpeed(subDt float64) *MaxSpeed {
	return &MaxSpeed{name: "max_speed", subDt: subDt}
}

func (m *MaxSpeed) Name() string { return m.name }

func (m *MaxSpeed) Observe(ps []verlet.Particle, frame int, t float64) {
	if m.subDt <= 0 {
		return
	}
	max := 0.0
	for i := range ps {
		if s := ps[i].Velocity().Length() / m.subDt; s > max {
			max = s
		}
	}
	m.last = max
}

func (m *MaxSpeed) Value() float64 { return m.last }

func (m *MaxSpeed) Reset() { m.last = 0 }
